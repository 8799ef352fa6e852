package draft

import "strings"

// Booster is an ordered pack of cards. Cards only ever leave a booster; a
// picked card is never re-inserted or duplicated. A booster never knows which
// seat currently holds it.
type Booster struct {
	cards []string
}

// NewBooster copies cards into a fresh booster, preserving order.
func NewBooster(cards []string) *Booster {
	return &Booster{cards: append([]string(nil), cards...)}
}

// Len reports how many cards remain in the booster.
func (b *Booster) Len() int {
	return len(b.cards)
}

// Cards returns the remaining cards in pack order.
func (b *Booster) Cards() []string {
	return append([]string(nil), b.cards...)
}

// PickByName removes and returns the first card equal to name, or
// ErrNotInPack if it is absent.
func (b *Booster) PickByName(name string) (string, error) {
	for i, c := range b.cards {
		if c == name {
			b.cards = append(b.cards[:i], b.cards[i+1:]...)
			return c, nil
		}
	}
	return "", ErrNotInPack
}

// PickByPosition removes and returns the card at pos, counting from 1. The
// position is validated before anything mutates.
func (b *Booster) PickByPosition(pos int) (string, error) {
	if pos < 1 || pos > len(b.cards) {
		return "", ErrOutOfRange
	}
	card := b.cards[pos-1]
	b.cards = append(b.cards[:pos-1], b.cards[pos:]...)
	return card, nil
}

func (b *Booster) String() string {
	return strings.Join(b.cards, ", ")
}
