package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotTableSetGetClear(t *testing.T) {
	var tbl SlotTable

	require.NoError(t, tbl.Set(0, 345, "hello"))
	assert.Equal(t, Slot{Recno: 345, Text: "hello"}, tbl.Get(0))

	tbl.Clear(0)
	assert.Equal(t, Slot{}, tbl.Get(0))
}

func TestSlotTableSetOutOfRange(t *testing.T) {
	var tbl SlotTable
	assert.Error(t, tbl.Set(-1, 1, "x"))
	assert.Error(t, tbl.Set(MaxSequence, 1, "x"))
	assert.Equal(t, Slot{}, tbl.Get(-1))
	assert.Equal(t, Slot{}, tbl.Get(MaxSequence))
}

func TestSlotTableSnapshotInSlotOrder(t *testing.T) {
	var tbl SlotTable
	require.NoError(t, tbl.Set(3, 350, "b"))
	require.NoError(t, tbl.Set(0, 345, "a"))

	got := tbl.Snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, PopulatedSlot{Index: 0, Recno: 345, Text: "a"}, got[0])
	assert.Equal(t, PopulatedSlot{Index: 3, Recno: 350, Text: "b"}, got[1])
}

func TestSlotTableIndexOf(t *testing.T) {
	var tbl SlotTable
	require.NoError(t, tbl.Set(5, 345, "x"))

	idx, ok := tbl.IndexOf(345)
	assert.True(t, ok)
	assert.Equal(t, 5, idx)

	_, ok = tbl.IndexOf(999)
	assert.False(t, ok)

	// Recno zero never matches, even though empty slots hold it.
	_, ok = tbl.IndexOf(0)
	assert.False(t, ok)
}

func TestSlotTableApplySequence(t *testing.T) {
	var tbl SlotTable
	require.NoError(t, tbl.Set(0, 345, "a"))
	require.NoError(t, tbl.Set(1, 350, "b"))
	require.NoError(t, tbl.Set(2, 360, "c"))

	// "CA" keeps slots 2 and 0; slot 1 is no longer referenced.
	tbl.ApplySequence("CA")

	assert.Equal(t, 345, tbl.Get(0).Recno)
	assert.Equal(t, 0, tbl.Get(1).Recno)
	assert.Equal(t, 360, tbl.Get(2).Recno)
}

func TestSlotTableApplySequenceEmptyClearsAll(t *testing.T) {
	var tbl SlotTable
	require.NoError(t, tbl.Set(0, 345, "a"))
	require.NoError(t, tbl.Set(7, 350, "b"))

	tbl.ApplySequence("")
	assert.Empty(t, tbl.Snapshot())
}

func TestSequenceByteRoundTrip(t *testing.T) {
	for i := 0; i < MaxSequence; i++ {
		assert.Equal(t, i, SlotIndex(SequenceByte(i)))
	}
	assert.Equal(t, byte('A'), SequenceByte(0))
	assert.Equal(t, 0, SlotIndex('A'))
}
