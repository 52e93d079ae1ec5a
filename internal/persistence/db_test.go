package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/utopian-sands/internal/player"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "save.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func samplePlayer() *player.State {
	s := player.New("Ada")
	s.ApplyAlignment(-20, -15, player.LawfulGood)
	s.ApplyAlignment(15, 0, player.ChaoticNeutral)
	s.ApplyReputation(player.ReputationDelta{Authorities: 10, Citizens: 5, Underworld: -30})
	s.AdjustGuilt(-15)
	s.AdjustHealth(20)
	s.AddItem("Stolen Goods")
	s.AddItem("Trained Dog")
	s.LogChoice("Falling event: Choice 5")
	s.LogChoice("Aftermath event: Choice 4")
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	snap := Snapshot{
		Slot:      "default",
		SessionID: uuid.New(),
		Player:    samplePlayer(),
		Cursor:    2,
		SavedAt:   time.Unix(1700000000, 123),
	}
	require.NoError(t, db.Save(ctx, snap))

	got, err := db.Load(ctx, "default")
	require.NoError(t, err)

	assert.Equal(t, snap.Slot, got.Slot)
	assert.Equal(t, snap.SessionID, got.SessionID)
	assert.Equal(t, snap.Cursor, got.Cursor)
	assert.True(t, snap.SavedAt.Equal(got.SavedAt))
	assert.Equal(t, *snap.Player, *got.Player)
}

func TestLoadMissingSlot(t *testing.T) {
	db := openTemp(t)

	_, err := db.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestSaveReplacesSlot(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, db.Save(ctx, Snapshot{Slot: "a", SessionID: id, Player: player.New("Ada"), Cursor: 1}))
	require.NoError(t, db.Save(ctx, Snapshot{Slot: "a", SessionID: id, Player: samplePlayer(), Cursor: 4}))

	got, err := db.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Cursor)
	assert.Equal(t, []string{"Stolen Goods", "Trained Dog"}, got.Player.Inventory)

	last, err := db.GetMeta("last_slot")
	require.NoError(t, err)
	assert.Equal(t, "a", last)
}

func TestSaveRejectsNilPlayer(t *testing.T) {
	db := openTemp(t)
	err := db.Save(context.Background(), Snapshot{Slot: "a", SessionID: uuid.New()})
	assert.Error(t, err)
}

func TestLoadRejectsIncompatibleRows(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		version int
		session string
		player  string
		cursor  int
	}{
		{name: "future schema", version: SchemaVersion + 1, session: uuid.NewString(), player: `{"name":"Ada"}`},
		{name: "negative cursor", version: SchemaVersion, session: uuid.NewString(), player: `{"name":"Ada"}`, cursor: -1},
		{name: "missing player", version: SchemaVersion, session: uuid.NewString(), player: "null"},
		{name: "corrupt player", version: SchemaVersion, session: uuid.NewString(), player: "{"},
		{name: "bad tally", version: SchemaVersion, session: uuid.NewString(), player: `{"choices":{"x":1}}`},
		{name: "bad session", version: SchemaVersion, session: "not-a-uuid", player: `{"name":"Ada"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := db.conn.Exec(`INSERT OR REPLACE INTO saves
				(slot, schema_version, session_id, player_json, cursor, saved_at)
				VALUES (?, ?, ?, ?, ?, ?)`,
				tc.name, tc.version, tc.session, tc.player, tc.cursor, time.Now().UnixNano())
			require.NoError(t, err)

			_, err = db.Load(ctx, tc.name)
			assert.ErrorIs(t, err, ErrIncompatibleSave)
		})
	}
}

func TestSlotsAndDelete(t *testing.T) {
	db := openTemp(t)
	ctx := context.Background()

	require.NoError(t, db.Save(ctx, Snapshot{Slot: "old", SessionID: uuid.New(), Player: player.New("A"), SavedAt: time.Unix(100, 0)}))
	require.NoError(t, db.Save(ctx, Snapshot{Slot: "new", SessionID: uuid.New(), Player: player.New("B"), SavedAt: time.Unix(200, 0)}))

	slots, err := db.Slots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, slots)

	require.NoError(t, db.Delete(ctx, "old"))
	require.NoError(t, db.Delete(ctx, "old"))

	_, err = db.Load(ctx, "old")
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestSchemaVersionRecorded(t *testing.T) {
	db := openTemp(t)

	v, err := db.GetMeta("schema_version")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}
