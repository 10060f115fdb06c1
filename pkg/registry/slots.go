package registry

import "fmt"

// MaxSequence is the fixed slot capacity of a device's display list.
const MaxSequence = 30

// signBase is the byte encoding slot 0 in a sequence string; byte i of
// the string names the slot occupying display position i.
const signBase = 'A'

// Slot holds what a single display position is showing. A zero Recno
// marks the slot empty.
type Slot struct {
	Recno int
	Text  string
}

// PopulatedSlot is a snapshot entry: a non-empty slot with its index.
type PopulatedSlot struct {
	Index int
	Recno int
	Text  string
}

// SlotTable is one device's fixed-capacity display list. Slot 0 is the
// most visible position. The table is owned by the device's dispatcher
// worker and is not synchronized.
type SlotTable struct {
	slots [MaxSequence]Slot
}

// Set places a banner recno and its rendered text into a slot.
func (t *SlotTable) Set(index, recno int, text string) error {
	if index < 0 || index >= MaxSequence {
		return fmt.Errorf("slot index %d out of range", index)
	}
	t.slots[index] = Slot{Recno: recno, Text: text}
	return nil
}

// Get returns the slot at index, or an empty slot when out of range.
func (t *SlotTable) Get(index int) Slot {
	if index < 0 || index >= MaxSequence {
		return Slot{}
	}
	return t.slots[index]
}

// Clear empties a single slot.
func (t *SlotTable) Clear(index int) {
	if index >= 0 && index < MaxSequence {
		t.slots[index] = Slot{}
	}
}

// ClearAll empties every slot.
func (t *SlotTable) ClearAll() {
	t.slots = [MaxSequence]Slot{}
}

// Snapshot returns the populated slots in slot order.
func (t *SlotTable) Snapshot() []PopulatedSlot {
	var out []PopulatedSlot
	for i, s := range t.slots {
		if s.Recno != 0 {
			out = append(out, PopulatedSlot{Index: i, Recno: s.Recno, Text: s.Text})
		}
	}
	return out
}

// IndexOf returns the slot index holding the given recno.
func (t *SlotTable) IndexOf(recno int) (int, bool) {
	if recno == 0 {
		return 0, false
	}
	for i, s := range t.slots {
		if s.Recno == recno {
			return i, true
		}
	}
	return 0, false
}

// ApplySequence treats the sequence string as authoritative: every
// populated slot whose index is not referenced by the string is cleared.
func (t *SlotTable) ApplySequence(seq string) {
	referenced := [MaxSequence]bool{}
	for i := 0; i < len(seq); i++ {
		if idx := SlotIndex(seq[i]); idx >= 0 && idx < MaxSequence {
			referenced[idx] = true
		}
	}
	for i := range t.slots {
		if !referenced[i] {
			t.slots[i] = Slot{}
		}
	}
}

// SlotIndex decodes one sequence byte into a slot index.
func SlotIndex(b byte) int {
	return int(b) - signBase
}

// SequenceByte encodes a slot index as a sequence byte.
func SequenceByte(index int) byte {
	return byte(signBase + index)
}
