package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreateNewGameDTO(t *testing.T) {
	t.Parallel()

	dto, err := ParseCreateNewGameDTO(url.Values{
		"width":      {"9"},
		"height":     {"9"},
		"mine_count": {"10"},
		"x":          {"4"},
	})
	require.NoError(t, err)
	assert.Equal(t, CreateNewGameDTO{Width: 9, Height: 9, MineCount: 10}, dto)

	_, err = ParseCreateNewGameDTO(url.Values{"width": {"9"}})
	assert.Error(t, err)
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	dto, err := ParsePosition(url.Values{"x": {"3"}, "y": {"0"}})
	require.NoError(t, err)
	assert.Equal(t, PositionDTO{X: 3, Y: 0}, dto)

	_, err = ParsePosition(url.Values{"x": {"3"}})
	assert.Error(t, err)
}

func TestParseGameMove(t *testing.T) {
	t.Parallel()

	for s, want := range map[string]GameMove{
		"open":  Open,
		"flag":  Flag,
		"chord": Chord,
	} {
		move, err := ParseGameMove(s)
		require.NoError(t, err)
		assert.Equal(t, want, move)
	}

	_, err := ParseGameMove("poke")
	assert.Error(t, err)
}
