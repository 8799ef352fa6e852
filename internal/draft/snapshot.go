package draft

import (
	"encoding/json"
	"fmt"
)

// snapshotVersion tags every serialized session. Deserialize dispatches on it
// and fails closed on versions it does not know.
const snapshotVersion = 1

type snapshotEnvelope struct {
	Version int             `json:"version"`
	Session json.RawMessage `json:"session"`
}

type roundSnapshotV1 struct {
	Boosters [][]string `json:"boosters"`
	Seat     int        `json:"seat,omitempty"`
	Injected bool       `json:"injected,omitempty"`
}

type sessionSnapshotV1 struct {
	ID              string            `json:"id"`
	Stage           Stage             `json:"stage"`
	Players         []*Player         `json:"players"`
	Packs           map[int][]string  `json:"packs,omitempty"`
	Schedule        []roundSnapshotV1 `json:"schedule,omitempty"`
	Leftover        []string          `json:"leftover,omitempty"`
	PackNumber      int               `json:"pack_number"`
	PickNumber      int               `json:"pick_number"`
	NumberOfPacks   int               `json:"number_of_packs"`
	CardsPerBooster int               `json:"cards_per_booster"`
	Metadata        map[string]any    `json:"metadata,omitempty"`
	AbandonVotes    []string          `json:"abandon_votes,omitempty"`
}

// Serialize renders the full session as a versioned, self-describing
// snapshot. The embedding application decides where the bytes live and is
// expected to call this after every state-changing call.
func Serialize(s *Session) ([]byte, error) {
	snap := sessionSnapshotV1{
		ID:              s.id,
		Stage:           s.stage,
		Players:         s.players,
		PackNumber:      s.packNumber,
		PickNumber:      s.pickNumber,
		NumberOfPacks:   s.numberOfPacks,
		CardsPerBooster: s.cardsPerBooster,
		Metadata:        s.metadata,
		Leftover:        s.leftover,
	}
	if len(s.packs) > 0 {
		snap.Packs = make(map[int][]string, len(s.packs))
		for seat, b := range s.packs {
			snap.Packs[seat] = b.Cards()
		}
	}
	for _, round := range s.schedule {
		rs := roundSnapshotV1{Seat: round.seat, Injected: round.injected}
		for _, b := range round.boosters {
			rs.Boosters = append(rs.Boosters, b.Cards())
		}
		snap.Schedule = append(snap.Schedule, rs)
	}
	for id := range s.abandonVotes {
		snap.AbandonVotes = append(snap.AbandonVotes, id)
	}

	session, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("draft: serialize session %s: %w", s.id, err)
	}
	return json.Marshal(snapshotEnvelope{Version: snapshotVersion, Session: session})
}

// Deserialize restores a session from a snapshot produced by Serialize.
// Garbage bytes, unknown schema versions and structurally impossible states
// all fail with ErrSnapshotCorrupt so the caller can distinguish a bad
// snapshot from a transient error. Runtime collaborators (registry, autopick
// policy, rng, logger) come from opts, not from the snapshot.
func Deserialize(data []byte, opts Options) (*Session, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	if env.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unknown snapshot version %d", ErrSnapshotCorrupt, env.Version)
	}
	var snap sessionSnapshotV1
	if err := json.Unmarshal(env.Session, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}

	switch snap.Stage {
	case StageNotStarted, StageDrafting, StageComplete:
	default:
		return nil, fmt.Errorf("%w: unknown stage %q", ErrSnapshotCorrupt, snap.Stage)
	}
	if len(snap.Players) == 0 {
		return nil, fmt.Errorf("%w: no players", ErrSnapshotCorrupt)
	}
	seen := make(map[string]bool, len(snap.Players))
	for _, p := range snap.Players {
		if p == nil || p.ID == "" || seen[p.ID] {
			return nil, fmt.Errorf("%w: bad player roster", ErrSnapshotCorrupt)
		}
		seen[p.ID] = true
	}
	for seat := range snap.Packs {
		if seat < 0 || seat >= len(snap.Players) {
			return nil, fmt.Errorf("%w: pack at unknown seat %d", ErrSnapshotCorrupt, seat)
		}
	}

	opts.ID = snap.ID
	ids := make([]string, len(snap.Players))
	for i, p := range snap.Players {
		ids[i] = p.ID
	}
	s := NewSession(ids, opts)
	s.stage = snap.Stage
	s.players = snap.Players
	s.packNumber = snap.PackNumber
	s.pickNumber = snap.PickNumber
	s.numberOfPacks = snap.NumberOfPacks
	s.cardsPerBooster = snap.CardsPerBooster
	s.leftover = snap.Leftover
	if snap.Metadata != nil {
		s.metadata = snap.Metadata
	}
	for _, id := range snap.AbandonVotes {
		s.abandonVotes[id] = true
	}
	if len(snap.Packs) > 0 {
		s.packs = make(map[int]*Booster, len(snap.Packs))
		for seat, cards := range snap.Packs {
			s.packs[seat] = NewBooster(cards)
		}
	}
	for _, rs := range snap.Schedule {
		round := &scheduledRound{seat: rs.Seat, injected: rs.Injected}
		for _, cards := range rs.Boosters {
			round.boosters = append(round.boosters, NewBooster(cards))
		}
		s.schedule = append(s.schedule, round)
	}

	// A pending player's current pack is the booster live at their seat.
	for seat, p := range s.players {
		if !p.Pending {
			continue
		}
		b, ok := s.packs[seat]
		if !ok {
			return nil, fmt.Errorf("%w: player %s pending without a pack", ErrSnapshotCorrupt, p.ID)
		}
		p.CurrentPack = b
	}
	return s, nil
}
