// Package rl defines the on-disk state of the Random Lottery contract in its
// two historical layouts, and the one-way upgrade between them.
//
// StateV0 is the legacy layout as persisted by older contract builds.
// State is the current layout, which adds draw scheduling, fee deferral and
// per-day time guards. Both are plain value objects: decoded once per run,
// never mutated afterwards, with no identity beyond their byte contents.
package rl

import (
	"encoding/base64"
	"fmt"
)

const (
	// MaxPlayers is the fixed capacity of the player table.
	MaxPlayers = 1024

	// MaxWinnersInHistory is the fixed capacity of the winners ring buffer.
	// WinnersCounter wraps at this bound.
	MaxWinnersInHistory = 1024

	// IDSize is the byte width of a contract account identifier.
	IDSize = 32
)

// ID is a 256-bit contract account identifier. IDs are compared byte-wise;
// the all-zero value is a reserved sentinel meaning "no account" and never
// names a real account.
type ID [IDSize]byte

// ZeroID is the sentinel marking an unused slot.
var ZeroID = ID{}

// IsZero reports whether the ID is the unused-slot sentinel.
func (id ID) IsZero() bool {
	return id == ZeroID
}

// Bytes returns the raw 32 bytes.
func (id ID) Bytes() []byte {
	return id[:]
}

// String encodes the ID as standard base64 for display and logs.
// The binary state format never uses this encoding.
func (id ID) String() string {
	return base64.StdEncoding.EncodeToString(id[:])
}

// SaleState is the contract's epoch phase.
type SaleState uint8

const (
	// Selling accepts ticket purchases.
	Selling SaleState = 0
	// Locked refuses purchases while the draw settles.
	Locked SaleState = 1
)

func (s SaleState) String() string {
	switch s {
	case Selling:
		return "SELLING"
	case Locked:
		return "LOCKED"
	default:
		return fmt.Sprintf("SaleState(%d)", uint8(s))
	}
}

// WinnerInfoV0 is one entry of the legacy winners history:
// the drawn account, its prize, and when the draw happened.
type WinnerInfoV0 struct {
	WinnerAddress ID
	Revenue       uint64
	Epoch         uint16
	Tick          uint32
}

// IsEmpty reports whether the entry is an unused history slot
// rather than a recorded winner.
func (w *WinnerInfoV0) IsEmpty() bool {
	return w.WinnerAddress.IsZero()
}

// WinnerInfo is one entry of the current winners history. It extends the
// legacy record with the UTC weekday of the draw.
type WinnerInfo struct {
	WinnerAddress ID
	Revenue       uint64
	Epoch         uint16
	Tick          uint32
	DayOfWeek     uint8
}

// IsEmpty reports whether the entry is an unused history slot.
func (w *WinnerInfo) IsEmpty() bool {
	return w.WinnerAddress.IsZero()
}
