package store

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/ntndev/skinscan/internal/logging"
	"github.com/ntndev/skinscan/internal/models"
	"github.com/ntndev/skinscan/internal/repositories/snapshots"
)

const historySnapshotKey = "history-storage"

// HistoryStore owns the scan record collection for all local users, newest
// first. Records cross-reference their owner by identifier only; filtering
// by owner is the caller's responsibility. All operations are total: acting
// on an absent record is a no-op, reported through the boolean return.
type HistoryStore struct {
	mu     sync.Mutex
	scans  []models.ScanRecord
	lastID int64
	snaps  snapshots.Repository
	log    logging.Logger
	now    func() time.Time

	subMu   sync.Mutex
	subs    map[int]func([]models.ScanRecord)
	nextSub int
}

func NewHistoryStore(snaps snapshots.Repository, log logging.Logger) *HistoryStore {
	return &HistoryStore{
		snaps: snaps,
		log:   log.With("component", "history-store"),
		now:   time.Now,
		subs:  make(map[int]func([]models.ScanRecord)),
	}
}

// Load restores the collection from its durable snapshot; missing snapshot
// means an empty collection.
func (h *HistoryStore) Load(ctx context.Context) error {
	data, err := h.snaps.Get(ctx, historySnapshotKey)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}

	var snap models.HistorySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	h.mu.Lock()
	h.scans = snap.Scans
	for _, r := range snap.Scans {
		if n, err := strconv.ParseInt(r.ID, 10, 64); err == nil && n > h.lastID {
			h.lastID = n
		}
	}
	h.mu.Unlock()
	return nil
}

// Scans returns a deep copy of the collection, newest first.
func (h *HistoryStore) Scans() []models.ScanRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.scansLocked()
}

// Subscribe registers fn to receive the collection after every mutation.
// The returned function removes the subscription.
func (h *HistoryStore) Subscribe(fn func([]models.ScanRecord)) func() {
	h.subMu.Lock()
	defer h.subMu.Unlock()

	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	return func() {
		h.subMu.Lock()
		defer h.subMu.Unlock()
		delete(h.subs, id)
	}
}

// AddScan constructs a complete record from the analysis outcome and prepends
// it to the collection. The identifier is time-derived and guaranteed unique
// across the collection even when two scans land in the same tick. Never
// fails; the snapshot flush afterwards is best-effort.
func (h *HistoryStore) AddScan(ctx context.Context, userID, imageURI string, diseases []models.Detection) models.ScanRecord {
	h.mu.Lock()
	rec := models.ScanRecord{
		ID:       h.nextIDLocked(),
		UserID:   userID,
		ImageURI: imageURI,
		Date:     h.now().UTC(),
		Diseases: append([]models.Detection(nil), diseases...),
	}
	h.scans = append([]models.ScanRecord{rec}, h.scans...)
	all := h.scansLocked()
	h.mu.Unlock()

	h.persist(ctx)
	h.notify(all)
	h.log.Info(ctx, "scan stored", "id", rec.ID, "owner", rec.UserID)
	return rec.Clone()
}

// DeleteScan removes the record with the given identifier. Idempotent:
// deleting an absent record is a silent no-op and returns false.
func (h *HistoryStore) DeleteScan(ctx context.Context, id string) bool {
	h.mu.Lock()
	idx := h.indexLocked(id)
	if idx < 0 {
		h.mu.Unlock()
		return false
	}
	h.scans = append(h.scans[:idx], h.scans[idx+1:]...)
	all := h.scansLocked()
	h.mu.Unlock()

	h.persist(ctx)
	h.notify(all)
	h.log.Info(ctx, "scan deleted", "id", id)
	return true
}

// UpdateNotes replaces the notes of the record with the given identifier.
// No-op returning false when the record is absent; nothing else about the
// record ever changes.
func (h *HistoryStore) UpdateNotes(ctx context.Context, id, notes string) bool {
	h.mu.Lock()
	idx := h.indexLocked(id)
	if idx < 0 {
		h.mu.Unlock()
		return false
	}
	h.scans[idx].Notes = notes
	all := h.scansLocked()
	h.mu.Unlock()

	h.persist(ctx)
	h.notify(all)
	return true
}

// nextIDLocked derives a unique identifier from the current time. Caller
// must hold mu.
func (h *HistoryStore) nextIDLocked() string {
	n := h.now().UnixNano()
	if n <= h.lastID {
		n = h.lastID + 1
	}
	h.lastID = n
	return strconv.FormatInt(n, 10)
}

func (h *HistoryStore) indexLocked(id string) int {
	for i, r := range h.scans {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (h *HistoryStore) scansLocked() []models.ScanRecord {
	out := make([]models.ScanRecord, len(h.scans))
	for i, r := range h.scans {
		out[i] = r.Clone()
	}
	return out
}

// persist flushes the {scans} snapshot. Best-effort, like the session store.
func (h *HistoryStore) persist(ctx context.Context) {
	h.mu.Lock()
	snap := models.HistorySnapshot{Scans: h.scans}
	data, err := json.Marshal(snap)
	h.mu.Unlock()

	if err != nil {
		h.log.Error(ctx, "history snapshot marshal failed", "error", err)
		return
	}
	if err := h.snaps.Set(ctx, historySnapshotKey, data); err != nil {
		h.log.Warn(ctx, "history snapshot flush failed", "error", err)
	}
}

func (h *HistoryStore) notify(all []models.ScanRecord) {
	h.subMu.Lock()
	fns := make([]func([]models.ScanRecord), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.subMu.Unlock()

	for _, fn := range fns {
		fn(all)
	}
}
