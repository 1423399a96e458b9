package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/player-scout/internal/domain/player"
)

type playerTableModel struct {
	ID            int64           `db:"sofifa_id"`
	PlayerURL     sql.NullString  `db:"player_url"`
	ShortName     string          `db:"short_name"`
	LongName      string          `db:"long_name"`
	Age           int             `db:"age"`
	ClubName      sql.NullString  `db:"club_name"`
	LeagueName    sql.NullString  `db:"league_name"`
	Nationality   sql.NullString  `db:"nationality"`
	Positions     string          `db:"player_positions"`
	Overall       int             `db:"overall"`
	Potential     int             `db:"potential"`
	ValueEUR      sql.NullFloat64 `db:"value_eur"`
	RealFace      sql.NullString  `db:"real_face"`
	RealFaceLocal sql.NullString  `db:"real_face_local"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// playerInsertModel carries the columns written on import; timestamps are
// left to column defaults.
type playerInsertModel struct {
	ID            int64           `db:"sofifa_id"`
	PlayerURL     sql.NullString  `db:"player_url"`
	ShortName     string          `db:"short_name"`
	LongName      string          `db:"long_name"`
	Age           int             `db:"age"`
	ClubName      sql.NullString  `db:"club_name"`
	LeagueName    sql.NullString  `db:"league_name"`
	Nationality   sql.NullString  `db:"nationality"`
	Positions     string          `db:"player_positions"`
	Overall       int             `db:"overall"`
	Potential     int             `db:"potential"`
	ValueEUR      sql.NullFloat64 `db:"value_eur"`
	RealFace      sql.NullString  `db:"real_face"`
	RealFaceLocal sql.NullString  `db:"real_face_local"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:            m.ID,
		PlayerURL:     m.PlayerURL.String,
		ShortName:     m.ShortName,
		LongName:      m.LongName,
		Age:           m.Age,
		ClubName:      m.ClubName.String,
		LeagueName:    m.LeagueName.String,
		Nationality:   m.Nationality.String,
		Positions:     m.Positions,
		Overall:       m.Overall,
		Potential:     m.Potential,
		ValueEUR:      m.ValueEUR.Float64,
		RealFace:      m.RealFace.String,
		RealFaceLocal: m.RealFaceLocal.String,
	}
}

func newPlayerInsertModel(p player.Player) playerInsertModel {
	return playerInsertModel{
		ID:            p.ID,
		PlayerURL:     nullString(p.PlayerURL),
		ShortName:     p.ShortName,
		LongName:      p.LongName,
		Age:           p.Age,
		ClubName:      nullString(p.ClubName),
		LeagueName:    nullString(p.LeagueName),
		Nationality:   nullString(p.Nationality),
		Positions:     p.Positions,
		Overall:       p.Overall,
		Potential:     p.Potential,
		ValueEUR:      sql.NullFloat64{Float64: p.ValueEUR, Valid: true},
		RealFace:      nullString(p.RealFace),
		RealFaceLocal: nullString(p.RealFaceLocal),
	}
}
