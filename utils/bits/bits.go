package bits

// This package implements a packed per-slot state field.
//
// The legacy contract's player set tracks slot occupancy with 2 state bits
// per slot, packed into little-endian 64-bit words. Each slot is free,
// occupied, or marked for removal (a tombstone left behind by deletion).
//
// Use Case:
// - Decoding the occupancy metadata of a fixed-capacity slot table.
// - Inspecting/reporting per-slot state without unpacking the whole field.

// SlotState is the 2-bit occupancy state of a single slot.
type SlotState uint8

const (
	// SlotFree marks a never-used slot.
	SlotFree SlotState = 0
	// SlotOccupied marks a slot holding a live entry.
	SlotOccupied SlotState = 1
	// SlotRemoved marks a tombstone: the slot held an entry that was
	// deleted, and must not terminate probe sequences.
	SlotRemoved SlotState = 2
)

const (
	bitsPerSlot = 2
	slotMask    = 1<<bitsPerSlot - 1
	wordBits    = 64
)

// Field is a fixed-capacity per-slot state table packed into uint64 words.
// Slot i occupies bits [2i%64, 2i%64+2) of word 2i/64.
type Field struct {
	words []uint64
	slots int
}

// WordsFor returns the number of 64-bit words needed to hold the state bits
// of the given slot count.
func WordsFor(slots int) int {
	return (slots*bitsPerSlot + wordBits - 1) / wordBits
}

// NewField creates an all-free field with the given slot capacity.
func NewField(slots int) *Field {
	return &Field{
		words: make([]uint64, WordsFor(slots)),
		slots: slots,
	}
}

// FieldFromWords wraps already-packed words (e.g. decoded from a state file)
// without copying. The word slice must hold at least WordsFor(slots) words.
func FieldFromWords(words []uint64, slots int) *Field {
	if len(words) < WordsFor(slots) {
		panic("bits: word slice too short for slot count")
	}
	return &Field{
		words: words,
		slots: slots,
	}
}

// Slots returns the field's slot capacity.
func (f *Field) Slots() int {
	return f.slots
}

// Words returns the underlying packed words. The slice is shared, not copied.
func (f *Field) Words() []uint64 {
	return f.words
}

// State returns the state of slot i.
func (f *Field) State(i int) SlotState {
	f.check(i)
	word := f.words[i*bitsPerSlot/wordBits]
	shift := uint(i * bitsPerSlot % wordBits)
	return SlotState(word >> shift & slotMask)
}

// SetState assigns the state of slot i.
func (f *Field) SetState(i int, s SlotState) {
	f.check(i)
	idx := i * bitsPerSlot / wordBits
	shift := uint(i * bitsPerSlot % wordBits)
	f.words[idx] = f.words[idx]&^(slotMask<<shift) | uint64(s)<<shift
}

// Count returns how many slots currently hold the given state.
func (f *Field) Count(s SlotState) int {
	n := 0
	for i := 0; i < f.slots; i++ {
		if f.State(i) == s {
			n++
		}
	}
	return n
}

func (f *Field) check(i int) {
	if i < 0 || i >= f.slots {
		panic("bits: slot index out of range")
	}
}

// String renders slot states for debugging, one rune per slot:
// '.' free, 'o' occupied, 'x' removed, '?' out-of-protocol value.
func (f *Field) String() string {
	buf := make([]byte, f.slots)
	for i := 0; i < f.slots; i++ {
		switch f.State(i) {
		case SlotFree:
			buf[i] = '.'
		case SlotOccupied:
			buf[i] = 'o'
		case SlotRemoved:
			buf[i] = 'x'
		default:
			buf[i] = '?'
		}
	}
	return string(buf)
}
