package memory

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSlot rejects writes, standing in for a full or broken storage layer.
type failingSlot struct {
	MemorySlot
	writeErr error
}

func (s *failingSlot) Write(data []byte) error { return s.writeErr }

func TestStore_AppendPersistsAndLoadRoundTrips(t *testing.T) {
	slot := NewMemorySlot()
	store := NewStore(slot)

	first, err := store.Append(Draft{Category: CategoryMeal, Content: "Tacos", Author: "Dad"})
	require.NoError(t, err)
	second, err := store.Append(Draft{Category: CategoryWin, Content: "New job", Author: "Mom", ImageURL: "data:image/png;base64,AAAA"})
	require.NoError(t, err)

	// A fresh store over the same slot sees the identical sequence.
	reloaded := NewStore(slot)
	records := reloaded.Load()
	require.Len(t, records, 2)
	assert.Equal(t, first, records[0])
	assert.Equal(t, second, records[1])
}

func TestStore_AppendAssignsUniqueIDsAndNonDecreasingTimestamps(t *testing.T) {
	store := NewStore(NewMemorySlot())

	const n = 10
	ids := make(map[string]bool)
	var last int64
	for i := 0; i < n; i++ {
		rec, err := store.Append(Draft{Category: CategoryGoal, Content: fmt.Sprintf("goal %d", i), Author: "Kid"})
		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.False(t, ids[rec.ID], "duplicate id %q", rec.ID)
		ids[rec.ID] = true
		assert.GreaterOrEqual(t, rec.Timestamp, last)
		last = rec.Timestamp
	}
	assert.Equal(t, n, store.Len())
}

func TestStore_InjectableClockAndID(t *testing.T) {
	now := time.UnixMilli(1735689600000)
	store := NewStore(NewMemorySlot(), func(o *StoreOptions) {
		o.Clock = func() time.Time { return now }
		o.NewID = func() string { return "fixed-id" }
	})

	rec, err := store.Append(Draft{Category: CategoryMVP, Content: "Grandma", Author: "Everyone"})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", rec.ID)
	assert.Equal(t, int64(1735689600000), rec.Timestamp)
}

func TestStore_LoadMalformedSlotRecoversToEmpty(t *testing.T) {
	slot := NewMemorySlot()
	require.NoError(t, slot.Write([]byte("not json")))

	store := NewStore(slot)
	records := store.Load()
	assert.Empty(t, records)
	assert.Equal(t, 0, store.Len())
}

func TestStore_LoadUnknownCategoryRecoversToEmpty(t *testing.T) {
	slot := NewMemorySlot()
	require.NoError(t, slot.Write([]byte(`[{"id":"1","category":"Not A Category","content":"x","author":"y","timestamp":1}]`)))

	store := NewStore(slot)
	assert.Empty(t, store.Load())
}

func TestStore_LoadAbsentSlotIsEmpty(t *testing.T) {
	store := NewStore(NewMemorySlot())
	assert.Empty(t, store.Load())
}

func TestStore_ClearIsDestructiveAndTotal(t *testing.T) {
	slot := NewMemorySlot()
	store := NewStore(slot)
	for i := 0; i < 5; i++ {
		_, err := store.Append(Draft{Category: CategoryPurchase, Content: fmt.Sprintf("thing %d", i), Author: "Dad"})
		require.NoError(t, err)
	}
	require.Equal(t, 5, store.Len())

	require.NoError(t, store.Clear())
	assert.Equal(t, 0, store.Len())

	// The slot itself is gone, not just emptied.
	_, ok, err := slot.Read()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PersistFailurePropagates(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	store := NewStore(&failingSlot{writeErr: wantErr})

	_, err := store.Append(Draft{Category: CategoryMeal, Content: "Tacos", Author: "Dad"})
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)

	// The record stays in memory; the next successful persist rewrites
	// the slot in full anyway.
	assert.Equal(t, 1, store.Len())
}

func TestStore_FileSlotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), SlotName+".json")

	store := NewStore(NewFileSlot(path))
	rec, err := store.Append(Draft{
		Category: CategoryPhotobook,
		Content:  "First snow",
		Author:   "Maya",
		ImageURL: "data:image/jpeg;base64,/9j/4AAQ",
	})
	require.NoError(t, err)

	reloaded := NewStore(NewFileSlot(path))
	records := reloaded.Load()
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
}

func TestStore_RecordsReturnsCopyInInsertionOrder(t *testing.T) {
	store := NewStore(NewMemorySlot())
	a, _ := store.Append(Draft{Category: CategoryMeal, Content: "a", Author: "x"})
	b, _ := store.Append(Draft{Category: CategoryWin, Content: "b", Author: "y"})

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, []Record{a, b}, records)

	// Mutating the returned slice must not touch the store.
	records[0].Content = "changed"
	assert.Equal(t, "a", store.Records()[0].Content)
}
