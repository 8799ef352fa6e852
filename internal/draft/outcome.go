package draft

// Stage is the lifecycle state of a draft session.
type Stage string

const (
	StageNotStarted Stage = "not_started"
	StageDrafting   Stage = "drafting"
	StageComplete   Stage = "complete"
)

// EffectTrigger records a face-up card whose effect fired during a pick, so
// the embedding application can announce it to the table.
type EffectTrigger struct {
	Player string
	Card   string
	Effect Effect
	// Skipped is true when the effect could not be honored, e.g. an extra
	// booster with the leftover pool exhausted. The draft continues.
	Skipped bool
}

// PickOutcome describes everyone who needs to be notified after a
// state-changing call. The session never delivers notifications itself; the
// caller decides sequencing, retries and rendering.
type PickOutcome struct {
	// Distributed lists players who just received a pack, in seat order.
	// Each should be shown their new pack's contents.
	Distributed []string
	// Pending lists players the draft is still waiting on.
	Pending []string
	// Autopicks holds cards picked on a player's behalf by the autopick
	// policy, in pick order.
	Autopicks map[string][]string
	// Effects lists face-up effect triggers to announce.
	Effects []EffectTrigger
	// Completed is true once the session reached its terminal stage.
	Completed bool
	// Abandoned is true when completion came from abandon votes rather than
	// pack exhaustion.
	Abandoned bool
	// PackNumber and PickNumber locate the draft after the call.
	PackNumber int
	PickNumber int
}
