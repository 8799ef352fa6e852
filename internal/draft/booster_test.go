package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexhaven/cubedraft/internal/draft"
)

func TestBoosterPickByName(t *testing.T) {
	b := draft.NewBooster([]string{"Lightning Bolt", "Counterspell", "Lightning Bolt"})

	card, err := b.PickByName("Lightning Bolt")
	require.NoError(t, err)
	assert.Equal(t, "Lightning Bolt", card)
	// Only the first copy leaves the pack.
	assert.Equal(t, []string{"Counterspell", "Lightning Bolt"}, b.Cards())

	_, err = b.PickByName("Black Lotus")
	assert.ErrorIs(t, err, draft.ErrNotInPack)
	assert.Equal(t, 2, b.Len(), "a miss must not mutate the pack")
}

func TestBoosterPickByPosition(t *testing.T) {
	b := draft.NewBooster([]string{"a", "b", "c"})

	card, err := b.PickByPosition(2)
	require.NoError(t, err)
	assert.Equal(t, "b", card)
	assert.Equal(t, []string{"a", "c"}, b.Cards())

	for _, pos := range []int{0, -1, 3} {
		_, err := b.PickByPosition(pos)
		assert.ErrorIs(t, err, draft.ErrOutOfRange, "position %d", pos)
	}
	assert.Equal(t, 2, b.Len())
}

func TestBoosterCopiesItsInput(t *testing.T) {
	cards := []string{"a", "b"}
	b := draft.NewBooster(cards)
	cards[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, b.Cards())

	got := b.Cards()
	got[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, b.Cards())
}
