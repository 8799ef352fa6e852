package draft

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// midDraftSession builds a session part-way through a draft with an injected
// booster on the schedule, metadata and an abandon vote, so snapshots cover
// every field.
func midDraftSession(t *testing.T) *Session {
	t.Helper()
	s := testSession(t, []string{"A", "B"}, Options{ID: "snaptest"})
	pool := []string{"Lore Seeker", "x", "y", "z", "e1", "e2", "e3", "e4"}
	_, err := s.Start(pool, 1, 2)
	require.NoError(t, err)

	mustPick(t, s, "A", ByName("Lore Seeker"))
	s.Metadata()["start_channel_id"] = "chan-42"
	_, err = s.AbandonVote("A")
	require.NoError(t, err)
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := midDraftSession(t)

	data, err := Serialize(s)
	require.NoError(t, err)

	r, err := Deserialize(data, Options{Logger: zap.NewNop().Sugar(), Autopick: NoAutopick})
	require.NoError(t, err)

	assert.Equal(t, s.ID(), r.ID())
	assert.Equal(t, s.Stage(), r.Stage())
	assert.Equal(t, s.Seating(), r.Seating())
	assert.Equal(t, s.PackNumber(), r.PackNumber())
	assert.Equal(t, s.PickNumber(), r.PickNumber())
	assert.Equal(t, s.NumberOfPacks(), r.NumberOfPacks())
	assert.Equal(t, s.CardsPerBooster(), r.CardsPerBooster())
	assert.Equal(t, s.AbandonVotes(), r.AbandonVotes())
	assert.Equal(t, "chan-42", r.Metadata()["start_channel_id"])
	assert.Equal(t, s.leftover, r.leftover)
	require.Len(t, r.schedule, len(s.schedule))
	assert.Equal(t, s.schedule[0].injected, r.schedule[0].injected)

	for _, id := range s.Seating() {
		want := seated(t, s, id)
		got := seated(t, r, id)
		assert.Equal(t, want.Deck, got.Deck, "deck of %s", id)
		assert.Equal(t, want.FaceUp, got.FaceUp, "face-up of %s", id)
		assert.Equal(t, want.Pending, got.Pending, "pending of %s", id)
		if want.CurrentPack == nil {
			assert.Nil(t, got.CurrentPack, "pack of %s", id)
		} else {
			require.NotNil(t, got.CurrentPack, "pack of %s", id)
			assert.Equal(t, want.CurrentPack.Cards(), got.CurrentPack.Cards(), "pack of %s", id)
		}
	}

	// Serialization is idempotent: a restored session snapshots to the same
	// bytes.
	again, err := Serialize(r)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestSnapshotResumeContinuesDraft(t *testing.T) {
	s := midDraftSession(t)
	data, err := Serialize(s)
	require.NoError(t, err)
	r, err := Deserialize(data, Options{Logger: zap.NewNop().Sugar(), Autopick: NoAutopick})
	require.NoError(t, err)

	// Drive both sessions through the same picks; they stay in lockstep.
	for s.Stage() == StageDrafting {
		pending := s.PendingPlayers()
		require.Equal(t, pending, r.PendingPlayers())
		for _, id := range pending {
			mustPick(t, s, id, ByPosition(1))
			mustPick(t, r, id, ByPosition(1))
		}
	}
	assert.Equal(t, StageComplete, r.Stage())
	for _, id := range s.Seating() {
		assert.Equal(t, s.DeckOf(id), r.DeckOf(id))
	}
}

func TestSnapshotFailsClosed(t *testing.T) {
	valid := func(mutate func(*sessionSnapshotV1)) []byte {
		snap := sessionSnapshotV1{
			ID:    "x",
			Stage: StageDrafting,
			Players: []*Player{
				{ID: "A", Pending: true},
				{ID: "B"},
			},
			Packs:           map[int][]string{0: {"c1"}},
			PackNumber:      1,
			PickNumber:      1,
			NumberOfPacks:   1,
			CardsPerBooster: 2,
		}
		if mutate != nil {
			mutate(&snap)
		}
		session, err := json.Marshal(snap)
		require.NoError(t, err)
		env, err := json.Marshal(snapshotEnvelope{Version: snapshotVersion, Session: session})
		require.NoError(t, err)
		return env
	}

	// The base document restores.
	_, err := Deserialize(valid(nil), Options{Logger: zap.NewNop().Sugar()})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("not a snapshot")},
		{"unknown version", []byte(`{"version":99,"session":{}}`)},
		{"no players", valid(func(s *sessionSnapshotV1) { s.Players = nil })},
		{"duplicate players", valid(func(s *sessionSnapshotV1) { s.Players[1].ID = "A" })},
		{"unknown stage", valid(func(s *sessionSnapshotV1) { s.Stage = "limbo" })},
		{"pack at unknown seat", valid(func(s *sessionSnapshotV1) {
			s.Packs = map[int][]string{5: {"c1"}}
			s.Players[0].Pending = false
		})},
		{"pending without a pack", valid(func(s *sessionSnapshotV1) { s.Packs = nil })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize(tt.data, Options{Logger: zap.NewNop().Sugar()})
			assert.ErrorIs(t, err, ErrSnapshotCorrupt)
		})
	}
}
