package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ntndev/skinscan/internal/models"
	"github.com/ntndev/skinscan/internal/repositories/snapshots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryStore(t *testing.T) (*HistoryStore, *snapshots.MemoryRepository) {
	t.Helper()
	snaps := snapshots.NewMemoryRepository()
	return NewHistoryStore(snaps, discardLogger()), snaps
}

func sampleDetections() []models.Detection {
	return []models.Detection{
		{ConditionID: "acne", Name: "Acne", Probability: 0.8},
		{ConditionID: "eczema", Name: "Eczema", Probability: 0.5},
	}
}

func TestAddScan_NewestFirst(t *testing.T) {
	h, _ := newHistoryStore(t)
	ctx := context.Background()

	first := h.AddScan(ctx, "1", "img://1", sampleDetections())
	second := h.AddScan(ctx, "1", "img://2", sampleDetections())

	all := h.Scans()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "latest scan always lands at index 0")
	assert.Equal(t, first.ID, all[1].ID)
}

func TestAddScan_PopulatesRecord(t *testing.T) {
	h, _ := newHistoryStore(t)
	h.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}

	rec := h.AddScan(context.Background(), "7", "img://scan.jpg", sampleDetections())

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "7", rec.UserID)
	assert.Equal(t, "img://scan.jpg", rec.ImageURI)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), rec.Date)
	require.Len(t, rec.Diseases, 2)
	assert.Equal(t, 0.8, rec.Diseases[0].Probability)
	assert.Empty(t, rec.Notes)
}

func TestAddScan_UniqueIDsInSameTick(t *testing.T) {
	h, _ := newHistoryStore(t)
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return frozen }
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		rec := h.AddScan(ctx, "1", "img://x", nil)
		_, dup := seen[rec.ID]
		require.False(t, dup, "id %q generated twice", rec.ID)
		seen[rec.ID] = struct{}{}
	}
}

func TestDeleteScan_Idempotent(t *testing.T) {
	h, _ := newHistoryStore(t)
	ctx := context.Background()

	rec := h.AddScan(ctx, "1", "img://1", sampleDetections())
	keep := h.AddScan(ctx, "1", "img://2", sampleDetections())

	assert.True(t, h.DeleteScan(ctx, rec.ID))
	afterFirst := h.Scans()

	// second delete of the same id: no-op, same collection
	assert.False(t, h.DeleteScan(ctx, rec.ID))
	assert.Equal(t, afterFirst, h.Scans())

	require.Len(t, h.Scans(), 1)
	assert.Equal(t, keep.ID, h.Scans()[0].ID)
}

func TestUpdateNotes(t *testing.T) {
	h, _ := newHistoryStore(t)
	ctx := context.Background()

	rec := h.AddScan(ctx, "1", "img://1", sampleDetections())

	assert.True(t, h.UpdateNotes(ctx, rec.ID, "itchy since monday"))

	got := h.Scans()[0]
	assert.Equal(t, "itchy since monday", got.Notes)
	// everything else untouched
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Diseases, got.Diseases)
}

func TestUpdateNotes_AbsentRecordLeavesCollectionUnchanged(t *testing.T) {
	h, _ := newHistoryStore(t)
	ctx := context.Background()

	h.AddScan(ctx, "1", "img://1", sampleDetections())

	before, err := json.Marshal(h.Scans())
	require.NoError(t, err)

	assert.False(t, h.UpdateNotes(ctx, "no-such-id", "text"))

	after, err := json.Marshal(h.Scans())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestHistory_SnapshotRoundTrip(t *testing.T) {
	snaps := snapshots.NewMemoryRepository()
	ctx := context.Background()

	h1 := NewHistoryStore(snaps, discardLogger())
	r1 := h1.AddScan(ctx, "1", "img://1", sampleDetections())
	h1.AddScan(ctx, "2", "img://2", nil)
	h1.UpdateNotes(ctx, r1.ID, "note")

	h2 := NewHistoryStore(snaps, discardLogger())
	require.NoError(t, h2.Load(ctx))

	// time round-trips through RFC 3339; compare serialized forms
	want, err := json.Marshal(h1.Scans())
	require.NoError(t, err)
	got, err := json.Marshal(h2.Scans())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestHistory_LoadKeepsIDsMonotonic(t *testing.T) {
	snaps := snapshots.NewMemoryRepository()
	ctx := context.Background()

	h1 := NewHistoryStore(snaps, discardLogger())
	old := h1.AddScan(ctx, "1", "img://1", nil)

	h2 := NewHistoryStore(snaps, discardLogger())
	require.NoError(t, h2.Load(ctx))
	// force the clock backwards; new ids must still move past loaded ones
	h2.now = func() time.Time { return time.Unix(0, 1) }

	fresh := h2.AddScan(ctx, "1", "img://2", nil)
	assert.Greater(t, fresh.ID, old.ID)
	assert.NotEqual(t, old.ID, fresh.ID)
}

func TestHistory_SubscribeAndUnsubscribe(t *testing.T) {
	h, _ := newHistoryStore(t)
	ctx := context.Background()

	var calls int
	unsub := h.Subscribe(func(all []models.ScanRecord) { calls++ })

	h.AddScan(ctx, "1", "img://1", nil)
	require.Equal(t, 1, calls)

	unsub()
	h.AddScan(ctx, "1", "img://2", nil)
	assert.Equal(t, 1, calls)
}

// Session and history lifecycles are independent: logging out never touches
// the scan collection.
func TestScenario_RegisterScanLogout(t *testing.T) {
	ctx := context.Background()
	snaps := snapshots.NewMemoryRepository()
	dir := seededDirectory(t)

	session := NewSessionStore(dir, snaps, 0, discardLogger())
	history := NewHistoryStore(snaps, discardLogger())

	require.NoError(t, session.Register(ctx, "Bob", "bob@x.com", "pw1"))
	st := session.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "Bob", st.User.Name)
	assert.True(t, st.IsAuthenticated)

	history.AddScan(ctx, st.User.ID, "img://1",
		[]models.Detection{{ConditionID: "acne", Name: "Acne", Probability: 0.8}})
	require.Len(t, history.Scans(), 1)
	assert.Equal(t, 0.8, history.Scans()[0].Diseases[0].Probability)

	session.Logout(ctx)
	assert.Nil(t, session.State().User)
	assert.False(t, session.State().IsAuthenticated)
	assert.Len(t, history.Scans(), 1)
}
