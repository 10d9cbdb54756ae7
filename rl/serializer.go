/*
This file and its legacy_/state_ siblings implement the binary codec for the
two contract state layouts.

The wire format is the natural C layout of the original contract structs,
pinned here explicitly instead of being derived from any language's struct
rules: every field is read/written at a fixed offset in declaration order,
all multi-byte integers are little-endian, and the alignment padding the C
layout introduces is enumerated as explicit byte runs. Padding is zero-filled
on encode and skipped (never interpreted) on decode.

Decoding is strict: a buffer whose length differs from the layout's pinned
size is rejected with *SizeMismatchError before any field is touched. Past
that check decoding is total, so malformed input can only yield unexpected
values, never an out-of-bounds read. Format versions are chosen explicitly by
the caller; they are never inferred from buffer length.
*/
package rl

import (
	"fmt"

	"github.com/qubic-tools/go-rl-migrate/utils/fast"
)

// Pinned layout sizes, in bytes. These are constants of the format:
// the decoders reject any input whose length differs.
const (
	// WinnerInfoV0: address + revenue + epoch + pad(2) + tick.
	winnerInfoV0Size = IDSize + 8 + 2 + 2 + 4

	// WinnerInfo: V0 layout + day-of-week + trailing pad(7) to 8-byte alignment.
	winnerInfoSize = winnerInfoV0Size + 1 + 7

	// PlayerHashSet: slot table + occupancy words + population + removal counter.
	playerHashSetSize = MaxPlayers*IDSize + occupationWords*8 + 8 + 8

	// NextEpochData: new price + schedule + trailing pad(7).
	nextEpochDataSize = 8 + 1 + 7

	// StateV0Size is the exact byte length of a legacy state file:
	// two addresses, four fee bytes, pad(4), ticket price, the player set,
	// the winners history, the ring index, the sale state, trailing pad(7).
	StateV0Size = 2*IDSize + 4 + 4 + 8 +
		playerHashSetSize +
		MaxWinnersInHistory*winnerInfoV0Size +
		8 + 1 + 7

	// StateSize is the exact byte length of a current state file:
	// winners history, player table, two addresses, next-epoch data,
	// ticket price, player counter, ring index, draw guards
	// (day, hour, pad(2), date stamp), four fee bytes, schedule, draw hour,
	// the sale state, trailing pad(1).
	StateSize = MaxWinnersInHistory*winnerInfoSize +
		MaxPlayers*IDSize +
		2*IDSize +
		nextEpochDataSize +
		3*8 +
		1 + 1 + 2 + 4 +
		4 + 1 + 1 + 1 + 1
)

// SizeMismatchError reports a state blob whose length differs from the
// pinned layout size. The decoder produces no partial state in this case.
type SizeMismatchError struct {
	Want int
	Got  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("state size mismatch: expected %d bytes, got %d", e.Want, e.Got)
}

func (id *ID) marshalTo(w *fast.Writer) {
	w.Write(id[:])
}

func (id *ID) unmarshalFrom(r *fast.Reader) {
	copy(id[:], r.Read(IDSize))
}
