package httpapi

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/player-scout/internal/domain/formation"
	"github.com/riskibarqy/player-scout/internal/domain/player"
	"github.com/riskibarqy/player-scout/internal/usecase"
)

const placeholderImagePath = "/placeholder.svg"

type playerDTO struct {
	SofifaID      int64   `json:"sofifa_id"`
	PlayerURL     string  `json:"player_url"`
	ShortName     string  `json:"short_name"`
	LongName      string  `json:"long_name"`
	Age           int     `json:"age"`
	ClubName      string  `json:"club_name"`
	LeagueName    string  `json:"league_name"`
	Nationality   string  `json:"nationality"`
	Positions     string  `json:"player_positions"`
	Overall       int     `json:"overall"`
	Potential     int     `json:"potential"`
	ValueEUR      float64 `json:"value_eur"`
	RealFace      string  `json:"real_face"`
	RealFaceLocal string  `json:"real_face_local"`
}

type bestTeamPlayerDTO struct {
	playerDTO
	ChosenPosition string `json:"chosen_position"`
}

type bestTeamDTO struct {
	Formation          string              `json:"formation"`
	RequestedFormation string              `json:"requested_formation,omitempty"`
	FormationHonoured  bool                `json:"formation_honoured"`
	Count              int                 `json:"count"`
	Players            []bestTeamPlayerDTO `json:"players"`
}

type pageDTO[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	Total    int  `json:"total"`
	HasNext  bool `json:"has_next"`
}

// playerImagePath points at the image proxy when a photo source is known.
func playerImagePath(p player.Player) string {
	if !p.HasLocalImage() && strings.TrimSpace(p.RealFace) == "" {
		return placeholderImagePath
	}
	return "/v1/players/" + strconv.FormatInt(p.ID, 10) + "/image"
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		SofifaID:      p.ID,
		PlayerURL:     p.PlayerURL,
		ShortName:     p.ShortName,
		LongName:      p.LongName,
		Age:           p.Age,
		ClubName:      p.ClubName,
		LeagueName:    p.LeagueName,
		Nationality:   p.Nationality,
		Positions:     p.Positions,
		Overall:       p.Overall,
		Potential:     p.Potential,
		ValueEUR:      p.ValueEUR,
		RealFace:      p.RealFace,
		RealFaceLocal: playerImagePath(p),
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func playerPageToDTO(page usecase.Page[player.Player]) pageDTO[playerDTO] {
	return pageDTO[playerDTO]{
		Items:    playersToDTO(page.Items),
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
		HasNext:  page.HasNext,
	}
}

func bestTeamToDTO(result usecase.BestTeamResult) bestTeamDTO {
	players := make([]bestTeamPlayerDTO, 0, len(result.Picks))
	for _, pick := range result.Picks {
		players = append(players, pickToDTO(pick))
	}

	return bestTeamDTO{
		Formation:          result.Formation,
		RequestedFormation: result.Requested,
		FormationHonoured:  result.Honoured,
		Count:              len(players),
		Players:            players,
	}
}

func pickToDTO(pick formation.Pick) bestTeamPlayerDTO {
	return bestTeamPlayerDTO{
		playerDTO:      playerToDTO(pick.Player),
		ChosenPosition: pick.Position,
	}
}
