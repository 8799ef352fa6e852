package draft

import "strings"

// Player is the per-seat cursor for one drafter: the pack in front of them,
// the cards they have taken so far, and whether the draft is waiting on them.
type Player struct {
	ID string `json:"id"`
	// CurrentPack is nil exactly when the player has nothing to act on:
	// before the draft starts, after they pick and before boosters move
	// again, and once the draft is complete.
	CurrentPack *Booster `json:"-"`
	// Deck accumulates picks in pick order. It only grows.
	Deck []string `json:"deck"`
	// FaceUp is the subset of Deck whose effect was triggered on pick.
	FaceUp  []string `json:"face_up,omitempty"`
	Pending bool     `json:"pending"`
	Bot     bool     `json:"bot,omitempty"`
}

func (p *Player) receivePack(b *Booster) {
	p.CurrentPack = b
	p.Pending = true
}

func (p *Player) recordPick(card string, effect Effect) {
	p.Deck = append(p.Deck, card)
	if effect != EffectNone {
		p.FaceUp = append(p.FaceUp, card)
	}
}

// Deckfile renders the deck as an exportable plain-text list, one card name
// per line, in pick order.
func (p *Player) Deckfile() string {
	return strings.Join(p.Deck, "\n")
}
