package gamefactory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"twohundred-server/pkg/playable"
)

func TestGet(t *testing.T) {
	factory, err := Get("two-hundred")
	assert.NoError(t, err)
	assert.NotNil(t, factory)

	_, err = Get("canasta")
	assert.EqualError(t, err, "no factory with name: canasta")
}

func Test_twoHundredFactory_CreateGame(t *testing.T) {
	factory, _ := Get("two-hundred")

	game, err := factory.CreateGame(nil, []int64{1, 2, 3, 4}, playable.AdditionalData{
		"scoreTarget": float64(300),
		"hasKitty":    true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "two-hundred", game.Name())

	_, err = factory.CreateGame(nil, []int64{1, 2, 3}, nil)
	assert.Error(t, err)

	_, err = factory.CreateGame(nil, []int64{1, 2, 3, 4}, playable.AdditionalData{
		"scoreTarget": float64(250),
	})
	assert.EqualError(t, err, "score target must be one of 200, 300, 500 or 1000")

	_, err = factory.CreateGame(nil, []int64{1, 2, 3, 4}, playable.AdditionalData{
		"deckVariant": float64(36),
		"hasKitty":    true,
	})
	assert.EqualError(t, err, "the kitty requires the 40-card deck")
}

func Test_twoHundredFactory_Details(t *testing.T) {
	name, err := factories["two-hundred"].Details(playable.AdditionalData{
		"scoreTarget": float64(500),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Two Hundred to 500", name)
}
