package draft

// Effect is a session-wide rules effect triggered when its card is drafted.
// Cards with effects are drafted face up so the table can be told about them.
type Effect string

const (
	// EffectNone is the effect of every unregistered card.
	EffectNone Effect = ""
	// EffectInjectBooster opens a brand-new booster from the leftover pool
	// and enters it into the draft's rotation, increasing total pack count.
	EffectInjectBooster Effect = "inject_booster"
)

// Registry maps card names to their draft effects. It is read-only once
// built; sessions share a registry freely.
type Registry struct {
	effects map[string]Effect
}

// NewRegistry builds a registry from a card-to-effect table.
func NewRegistry(effects map[string]Effect) *Registry {
	m := make(map[string]Effect, len(effects))
	for card, effect := range effects {
		m[card] = effect
	}
	return &Registry{effects: m}
}

// DefaultRegistry covers the cards with draft-time effects in the default
// cube.
func DefaultRegistry() *Registry {
	return NewRegistry(map[string]Effect{
		"Lore Seeker": EffectInjectBooster,
	})
}

// Lookup returns the effect registered for card, or EffectNone.
func (r *Registry) Lookup(card string) Effect {
	if r == nil {
		return EffectNone
	}
	return r.effects[card]
}
