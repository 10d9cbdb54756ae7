// This file defines the legacy (V0) state layout. It is preserved to read
// and migrate state files written by older contract builds; nothing in this
// repository writes new V0 files outside of tests.

package rl

import (
	"github.com/qubic-tools/go-rl-migrate/utils/bits"
)

// occupationWords is the number of 64-bit words holding the player table's
// packed occupancy bits (2 state bits per slot).
const occupationWords = (MaxPlayers*2 + 63) / 64

// PlayerHashSet is the legacy fixed-capacity player set: a slot table of
// account IDs plus the packed occupancy metadata the contract's probing
// logic maintained (free/occupied/removed per slot, a live-entry counter,
// and a tombstone counter).
//
// Here it is purely a decode target. No set operation is ever performed on
// it, and the upgrade keeps only the raw address table: occupancy flags,
// population and the removal counter do not survive migration.
type PlayerHashSet struct {
	Players            [MaxPlayers]ID
	OccupationFlags    [occupationWords]uint64
	Population         uint64
	MarkRemovalCounter uint64
}

// Occupancy wraps the packed occupation flags as a per-slot state field.
// The field shares the underlying words, it does not copy them.
func (p *PlayerHashSet) Occupancy() *bits.Field {
	return bits.FieldFromWords(p.OccupationFlags[:], MaxPlayers)
}

// ActivePlayers counts slots holding a non-sentinel address.
func (p *PlayerHashSet) ActivePlayers() int {
	n := 0
	for i := range p.Players {
		if !p.Players[i].IsZero() {
			n++
		}
	}
	return n
}

// StateV0 is the legacy contract state layout.
//
// WinnersInfoNextEmptyIndex is the ring index of the winners history: the
// next write position, wrapping at MaxWinnersInHistory. Fee percentages are
// [0..100] by convention only; nothing here enforces ranges or that the
// four fees sum to 100.
type StateV0 struct {
	TeamAddress  ID
	OwnerAddress ID

	TeamFeePercent         uint8
	DistributionFeePercent uint8
	WinnerFeePercent       uint8
	BurnPercent            uint8

	TicketPrice uint64

	Players PlayerHashSet

	Winners                   [MaxWinnersInHistory]WinnerInfoV0
	WinnersInfoNextEmptyIndex uint64

	CurrentState SaleState
}
