package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuilder_FiltersAndPaging(t *testing.T) {
	query, args, err := Select("sofifa_id", "short_name").
		From("players").
		Where(
			ILike("league_name", "Spain"),
			AnyOf(ILike("short_name", "messi"), ILike("long_name", "messi")),
			Gte("age", 20),
			Lte("overall", 90),
		).
		OrderBy("overall DESC", "sofifa_id").
		Limit(10).
		Offset(20).
		ToSQL()
	require.NoError(t, err)

	wantQuery := "SELECT sofifa_id, short_name FROM players WHERE league_name ILIKE $1 AND (short_name ILIKE $2 OR long_name ILIKE $3) AND age >= $4 AND overall <= $5 ORDER BY overall DESC, sofifa_id LIMIT 10 OFFSET 20"
	assert.Equal(t, wantQuery, query)
	assert.Equal(t, []any{"%Spain%", "%messi%", "%messi%", 20, 90}, args)
}

func TestSelectBuilder_Validation(t *testing.T) {
	_, _, err := Select().From("players").ToSQL()
	assert.Error(t, err)

	_, _, err = Select("id").ToSQL()
	assert.Error(t, err)

	_, _, err = Select("id").From("players").Offset(-1).ToSQL()
	assert.Error(t, err)
}

func TestILike_EscapesWildcards(t *testing.T) {
	_, args, err := Select("id").From("players").Where(ILike("club_name", `50%_off\`)).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, []any{`%50\%\_off\\%`}, args)
}

func TestInsertModels_Upsert(t *testing.T) {
	type row struct {
		ID      int64  `db:"sofifa_id"`
		Name    string `db:"short_name"`
		ignored string
		Skip    string `db:"-"`
	}

	query, args, err := InsertModels("players", []row{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, "ON CONFLICT (sofifa_id) DO NOTHING")
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO players (sofifa_id, short_name) VALUES ($1, $2), ($3, $4) ON CONFLICT (sofifa_id) DO NOTHING", query)
	assert.Equal(t, []any{int64(1), "a", int64(2), "b"}, args)

	_, _, err = InsertModels[row]("players", nil, "")
	assert.Error(t, err)
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("real_face_local", "players/1.png").
		SetExpr("updated_at", "NOW()").
		Where(Eq("sofifa_id", int64(1))).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE players SET real_face_local = $1, updated_at = NOW() WHERE sofifa_id = $2", query)
	assert.Equal(t, []any{"players/1.png", int64(1)}, args)

	_, _, err = Update("players").Set("a", 1).ToSQL()
	assert.Error(t, err)
}

func TestIn_EmptyValues(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("sofifa_id", nil)).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM players WHERE 1=0", query)
	assert.Empty(t, args)
}
