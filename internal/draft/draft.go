package draft

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hexhaven/cubedraft/internal"
)

// AutopickPolicy decides whether to pick on a player's behalf whenever they
// are handed a pack. Returning false leaves the player pending so the caller
// can nudge them instead.
type AutopickPolicy func(p *Player) (Selector, bool)

// BotAutopick takes the first card for bot seats and never touches humans.
func BotAutopick(p *Player) (Selector, bool) {
	if !p.Bot {
		return Selector{}, false
	}
	return ByPosition(1), true
}

// Options configures a new session. The zero value picks sane defaults: a
// random seating shuffle, the default effect registry and bot-only autopick.
type Options struct {
	// ID is the session id. A fresh uuid (hyphens stripped) is generated
	// when empty.
	ID string
	// Bots marks which player ids are bot seats.
	Bots map[string]bool
	// Registry maps cards to draft effects. Defaults to DefaultRegistry.
	Registry *Registry
	// Autopick is consulted for every player holding a pack. Defaults to
	// BotAutopick; pass NoAutopick to disable.
	Autopick AutopickPolicy
	// Rand drives the seating and pool shuffles. Defaults to a time-seeded
	// source. Sessions are single-writer, so an unlocked source is fine.
	Rand   *rand.Rand
	Logger *zap.SugaredLogger
}

// NoAutopick is an AutopickPolicy that never picks for anyone.
func NoAutopick(*Player) (Selector, bool) {
	return Selector{}, false
}

// scheduledRound is a round of boosters dealt but not yet in front of
// players. Injected rounds hold a single booster that starts at the seat of
// the player who triggered the effect.
type scheduledRound struct {
	boosters []*Booster
	seat     int
	injected bool
}

// Session owns one booster draft: the seating order, the live booster per
// seat, the schedule of unopened rounds, and the pick/pass state machine.
//
// A session assumes a single-writer discipline: at most one call mutates it
// at a time, serialized by the embedding application. No method blocks; any
// waiting on other players is reported declaratively in the PickOutcome.
type Session struct {
	id    string
	stage Stage

	// players is the seating order, fixed after the Start shuffle. It never
	// reorders; SeatSwap only renames an occupant in place.
	players []*Player
	// packs maps seat index to the booster live at that seat this round. A
	// booster stays mapped after its holder picks so it can rotate.
	packs map[int]*Booster
	// schedule holds unopened rounds in opening order. Injected boosters are
	// appended here as extra single-booster rounds.
	schedule []*scheduledRound
	// leftover keeps the undealt remainder of the shuffled pool; injected
	// boosters draw from it.
	leftover []string

	packNumber      int
	pickNumber      int
	numberOfPacks   int
	cardsPerBooster int

	// metadata is an opaque store for the embedding application. It rides
	// along in snapshots with JSON semantics.
	metadata     map[string]any
	abandonVotes map[string]bool

	registry *Registry
	autopick AutopickPolicy
	rng      *rand.Rand
	shuffle  func(n int, swap func(i, j int))
	log      *zap.SugaredLogger
}

// NewSession seats the given players for a draft. The session stays in
// StageNotStarted until Start deals the boosters.
func NewSession(playerIDs []string, opts Options) *Session {
	if opts.ID == "" {
		opts.ID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry()
	}
	if opts.Autopick == nil {
		opts.Autopick = BotAutopick
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = internal.GetLogger()
	}

	players := make([]*Player, len(playerIDs))
	for i, id := range playerIDs {
		players[i] = &Player{ID: id, Bot: opts.Bots[id]}
	}
	s := &Session{
		id:           opts.ID,
		stage:        StageNotStarted,
		players:      players,
		metadata:     make(map[string]any),
		abandonVotes: make(map[string]bool),
		registry:     opts.Registry,
		autopick:     opts.Autopick,
		rng:          opts.Rand,
		log:          opts.Logger.With("draft", opts.ID),
	}
	s.shuffle = s.rng.Shuffle
	return s
}

// Start validates the parameters, shuffles seating and pool once, deals every
// round's boosters, puts the first round in front of the players and moves
// the session to StageDrafting. Nothing mutates until validation passes.
func (s *Session) Start(pool []string, numberOfPacks, cardsPerBooster int) (*PickOutcome, error) {
	if s.stage != StageNotStarted {
		return nil, ErrWrongStage
	}
	if len(s.players) < 1 {
		return nil, ErrNoPlayers
	}
	seen := make(map[string]bool, len(s.players))
	for _, p := range s.players {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = true
	}
	if numberOfPacks < 1 {
		return nil, ErrBadPackCount
	}
	if cardsPerBooster < 2 {
		return nil, ErrBadBoosterSize
	}
	need := numberOfPacks * cardsPerBooster * len(s.players)
	if len(pool) < need {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientCards, len(pool), need)
	}

	s.shuffle(len(s.players), func(i, j int) {
		s.players[i], s.players[j] = s.players[j], s.players[i]
	})
	cards := append([]string(nil), pool...)
	s.shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	s.numberOfPacks = numberOfPacks
	s.cardsPerBooster = cardsPerBooster
	for r := 0; r < numberOfPacks; r++ {
		round := &scheduledRound{}
		for seat := 0; seat < len(s.players); seat++ {
			round.boosters = append(round.boosters, NewBooster(cards[:cardsPerBooster]))
			cards = cards[cardsPerBooster:]
		}
		s.schedule = append(s.schedule, round)
	}
	s.leftover = cards
	s.stage = StageDrafting
	s.log.Infow("draft started",
		"players", len(s.players),
		"packs", numberOfPacks,
		"cards_per_booster", cardsPerBooster,
	)

	out := &PickOutcome{}
	s.openNextRound(out)
	s.runAutopicks(out)
	s.finishOutcome(out)
	return out, nil
}

// Pick resolves one pick for playerID. Illegal picks fail without any state
// change and are safe to retry; a successful pick may resolve the round,
// rotating boosters or opening the next scheduled round, and may cascade
// through autopicked seats. The returned outcome names everyone to notify.
func (s *Session) Pick(playerID string, sel Selector) (*PickOutcome, error) {
	out := &PickOutcome{}
	if err := s.pick(playerID, sel, out); err != nil {
		return nil, err
	}
	s.runAutopicks(out)
	s.finishOutcome(out)
	return out, nil
}

func (s *Session) pick(playerID string, sel Selector, out *PickOutcome) error {
	if s.stage != StageDrafting {
		return ErrWrongStage
	}
	seat := s.seatOf(playerID)
	if seat < 0 {
		return ErrUnknownPlayer
	}
	p := s.players[seat]
	if p.CurrentPack == nil {
		return ErrNoCurrentPack
	}
	if !p.Pending {
		return ErrAlreadyPicked
	}
	card, err := sel.apply(p.CurrentPack)
	if err != nil {
		return err
	}

	effect := s.registry.Lookup(card)
	p.recordPick(card, effect)
	p.Pending = false
	p.CurrentPack = nil
	s.log.Debugw("pick", "player", playerID, "card", card, "pack", s.packNumber, "pick", s.pickNumber)
	if effect != EffectNone {
		s.resolveEffect(seat, card, effect, out)
	}
	s.maybeResolveRound(out)
	return nil
}

func (s *Session) resolveEffect(seat int, card string, effect Effect, out *PickOutcome) {
	trigger := EffectTrigger{Player: s.players[seat].ID, Card: card, Effect: effect}
	switch effect {
	case EffectInjectBooster:
		if len(s.leftover) < s.cardsPerBooster {
			// Pool exhausted: skip the injection deterministically and keep
			// the round going.
			trigger.Skipped = true
			s.log.Warnw("extra booster skipped, pool exhausted",
				"player", trigger.Player, "card", card, "leftover", len(s.leftover))
		} else {
			b := NewBooster(s.leftover[:s.cardsPerBooster])
			s.leftover = s.leftover[s.cardsPerBooster:]
			s.schedule = append(s.schedule, &scheduledRound{
				boosters: []*Booster{b},
				seat:     seat,
				injected: true,
			})
			s.log.Infow("extra booster added to the draft", "player", trigger.Player, "card", card)
		}
	}
	out.Effects = append(out.Effects, trigger)
}

// maybeResolveRound is the round-resolution point: once nobody is pending,
// either rotate the live boosters one seat or open the next scheduled round.
func (s *Session) maybeResolveRound(out *PickOutcome) {
	for _, p := range s.players {
		if p.Pending {
			return
		}
	}
	for _, b := range s.packs {
		if b.Len() > 0 {
			s.passBoosters(out)
			return
		}
	}
	s.openNextRound(out)
}

func (s *Session) passBoosters(out *PickOutcome) {
	next := make(map[int]*Booster, len(s.packs))
	for seat, b := range s.packs {
		if b.Len() == 0 {
			// Exhausted boosters retire from the rotation.
			continue
		}
		next[s.nextSeat(seat)] = b
	}
	s.packs = next
	s.pickNumber++
	s.distributePacks(out)
}

// nextSeat rotates one seat in the direction dictated by pack parity:
// odd-numbered packs pass toward higher seat indexes, even-numbered packs
// toward lower, wrapping around the table.
func (s *Session) nextSeat(seat int) int {
	if s.packNumber%2 == 1 {
		if seat+1 >= len(s.players) {
			return 0
		}
		return seat + 1
	}
	if seat-1 < 0 {
		return len(s.players) - 1
	}
	return seat - 1
}

func (s *Session) openNextRound(out *PickOutcome) {
	if len(s.schedule) == 0 {
		s.complete()
		return
	}
	round := s.schedule[0]
	s.schedule = s.schedule[1:]
	s.packNumber++
	s.pickNumber = 1
	s.packs = make(map[int]*Booster)
	if round.injected {
		seat := round.seat
		if seat >= len(s.players) {
			seat = 0
		}
		s.packs[seat] = round.boosters[0]
	} else {
		for seat, b := range round.boosters {
			s.packs[seat] = b
		}
	}
	s.log.Infow("opening pack", "pack_number", s.packNumber, "injected", round.injected)
	s.distributePacks(out)
}

func (s *Session) distributePacks(out *PickOutcome) {
	for seat := 0; seat < len(s.players); seat++ {
		b, ok := s.packs[seat]
		if !ok {
			continue
		}
		p := s.players[seat]
		p.receivePack(b)
		out.Distributed = append(out.Distributed, p.ID)
	}
}

// runAutopicks drains every seat the policy is willing to pick for, looping
// because a bot's pick can resolve the round and hand packs to more bots.
func (s *Session) runAutopicks(out *PickOutcome) {
	if s.autopick == nil {
		return
	}
	for s.stage == StageDrafting {
		progressed := false
		for _, p := range s.players {
			if !p.Pending || p.CurrentPack == nil {
				continue
			}
			sel, ok := s.autopick(p)
			if !ok {
				continue
			}
			id := p.ID
			if err := s.pick(id, sel, out); err != nil {
				s.log.Errorw("autopick failed", "player", id, "selector", sel.String(), "error", err)
				continue
			}
			if out.Autopicks == nil {
				out.Autopicks = make(map[string][]string)
			}
			out.Autopicks[id] = append(out.Autopicks[id], p.Deck[len(p.Deck)-1])
			progressed = true
		}
		if !progressed {
			return
		}
	}
}

func (s *Session) complete() {
	s.stage = StageComplete
	s.packs = nil
	for _, p := range s.players {
		p.CurrentPack = nil
		p.Pending = false
	}
	s.log.Infow("draft complete")
}

func (s *Session) finishOutcome(out *PickOutcome) {
	out.PackNumber = s.packNumber
	out.PickNumber = s.pickNumber
	out.Pending = s.PendingPlayers()
	out.Completed = s.stage == StageComplete
}

// SeatSwap replaces the occupant of oldID's seat with newID, preserving the
// seating position, current pack, pending flag and pick history. This models
// a human taking over a bot or placeholder seat, not two humans trading.
func (s *Session) SeatSwap(oldID, newID string) error {
	if oldID == newID {
		return ErrSameSeat
	}
	seat := s.seatOf(oldID)
	if seat < 0 {
		return ErrUnknownPlayer
	}
	if s.seatOf(newID) >= 0 {
		return ErrSeatTaken
	}
	s.players[seat].ID = newID
	s.players[seat].Bot = false
	delete(s.abandonVotes, oldID)
	s.log.Infow("seat swapped", "seat", seat, "old", oldID, "new", newID)
	return nil
}

// AbandonVote idempotently records playerID's vote to cancel the draft. Once
// min(3, players) distinct voters accrue, the session completes immediately.
func (s *Session) AbandonVote(playerID string) (*PickOutcome, error) {
	if s.stage == StageComplete {
		return nil, ErrWrongStage
	}
	if s.seatOf(playerID) < 0 {
		return nil, ErrUnknownPlayer
	}
	s.abandonVotes[playerID] = true
	out := &PickOutcome{}
	if len(s.abandonVotes) >= s.VotesToAbandon() {
		s.complete()
		out.Abandoned = true
		s.log.Infow("draft abandoned", "votes", len(s.abandonVotes))
	}
	s.finishOutcome(out)
	return out, nil
}

// VotesToAbandon is the number of distinct votes that cancels the draft.
func (s *Session) VotesToAbandon() int {
	if len(s.players) < 3 {
		return len(s.players)
	}
	return 3
}

// AbandonVotes reports how many distinct players have voted to abandon.
func (s *Session) AbandonVotes() int {
	return len(s.abandonVotes)
}

// PendingPlayers lists, in seat order, everyone holding a pack they have not
// picked from. Callers use it for "waiting on X, Y" notifications.
func (s *Session) PendingPlayers() []string {
	var pending []string
	for _, p := range s.players {
		if p.Pending && p.CurrentPack != nil {
			pending = append(pending, p.ID)
		}
	}
	return pending
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Stage returns the lifecycle stage.
func (s *Session) Stage() Stage { return s.stage }

// PackNumber returns the 1-based number of the pack currently being drafted,
// or 0 before the draft starts.
func (s *Session) PackNumber() int { return s.packNumber }

// PickNumber returns the 1-based pick within the current pack.
func (s *Session) PickNumber() int { return s.pickNumber }

// NumberOfPacks returns how many packs each seat opens, not counting
// injected boosters.
func (s *Session) NumberOfPacks() int { return s.numberOfPacks }

// CardsPerBooster returns the booster size the draft was started with.
func (s *Session) CardsPerBooster() int { return s.cardsPerBooster }

// Seating returns the player ids in seat order.
func (s *Session) Seating() []string {
	ids := make([]string, len(s.players))
	for i, p := range s.players {
		ids[i] = p.ID
	}
	return ids
}

// PlayerByID returns the seated player with the given id.
func (s *Session) PlayerByID(id string) (*Player, bool) {
	seat := s.seatOf(id)
	if seat < 0 {
		return nil, false
	}
	return s.players[seat], true
}

// PackOf returns the booster in front of the player, or nil.
func (s *Session) PackOf(id string) *Booster {
	p, ok := s.PlayerByID(id)
	if !ok {
		return nil
	}
	return p.CurrentPack
}

// DeckOf returns a copy of the player's picks in pick order.
func (s *Session) DeckOf(id string) []string {
	p, ok := s.PlayerByID(id)
	if !ok {
		return nil
	}
	return append([]string(nil), p.Deck...)
}

// Metadata is an opaque string-keyed store for the embedding application. It
// is serialized with the session.
func (s *Session) Metadata() map[string]any { return s.metadata }

func (s *Session) seatOf(playerID string) int {
	for i, p := range s.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}
