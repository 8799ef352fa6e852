package draft

import "fmt"

// Selector identifies one card in a booster, either by exact name or by
// 1-indexed position. The zero Selector matches nothing.
type Selector struct {
	name string
	pos  int
}

// ByName selects the first card equal to name.
func ByName(name string) Selector {
	return Selector{name: name}
}

// ByPosition selects the card at pos, counting from 1. Numbered UI choices
// drive this path.
func ByPosition(pos int) Selector {
	return Selector{pos: pos}
}

func (s Selector) apply(b *Booster) (string, error) {
	if s.name != "" {
		return b.PickByName(s.name)
	}
	return b.PickByPosition(s.pos)
}

func (s Selector) String() string {
	if s.name != "" {
		return fmt.Sprintf("name(%s)", s.name)
	}
	return fmt.Sprintf("position(%d)", s.pos)
}
