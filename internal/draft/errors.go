package draft

import "errors"

// Validation errors reported to the caller that starts a draft. No state
// changes once one of these is returned.
var (
	ErrNoPlayers         = errors.New("draft: at least one player is required")
	ErrDuplicatePlayer   = errors.New("draft: duplicate player id in roster")
	ErrBadPackCount      = errors.New("draft: at least one pack is required")
	ErrBadBoosterSize    = errors.New("draft: boosters need at least two cards")
	ErrInsufficientCards = errors.New("draft: card pool has too few cards for this draft")
)

// Illegal-pick errors. These are normal gameplay misses (stale UI, duplicate
// events), reported to the acting player only, and always safe to retry.
var (
	ErrWrongStage    = errors.New("draft: not accepting picks in this stage")
	ErrUnknownPlayer = errors.New("draft: player is not seated in this draft")
	ErrNoCurrentPack = errors.New("draft: player has no pack in front of them")
	ErrAlreadyPicked = errors.New("draft: player already picked this round")
	ErrNotInPack     = errors.New("draft: card is not in the pack")
	ErrOutOfRange    = errors.New("draft: pick position is out of range")
)

// Seat swap errors.
var (
	ErrSeatTaken = errors.New("draft: replacement player is already seated")
	ErrSameSeat  = errors.New("draft: cannot swap a seat with itself")
)

// ErrSnapshotCorrupt marks a snapshot that cannot be restored, either because
// the bytes are garbage or because the schema version is unknown. Callers
// should discard the session and alert an operator rather than retry.
var ErrSnapshotCorrupt = errors.New("draft: corrupt or incompatible snapshot")
