package rl

import (
	"github.com/qubic-tools/go-rl-migrate/utils/fast"
)

// Codec for the legacy (V0) layout. Field order and padding are pinned in
// serializer.go; see the StateV0Size breakdown there.

func (w *WinnerInfoV0) marshalTo(fw *fast.Writer) {
	w.WinnerAddress.marshalTo(fw)
	fw.WriteU64(w.Revenue)
	fw.WriteU16(w.Epoch)
	fw.Pad(2)
	fw.WriteU32(w.Tick)
}

func (w *WinnerInfoV0) unmarshalFrom(fr *fast.Reader) {
	w.WinnerAddress.unmarshalFrom(fr)
	w.Revenue = fr.ReadU64()
	w.Epoch = fr.ReadU16()
	fr.Skip(2)
	w.Tick = fr.ReadU32()
}

func (p *PlayerHashSet) marshalTo(fw *fast.Writer) {
	for i := range p.Players {
		p.Players[i].marshalTo(fw)
	}
	for _, word := range p.OccupationFlags {
		fw.WriteU64(word)
	}
	fw.WriteU64(p.Population)
	fw.WriteU64(p.MarkRemovalCounter)
}

func (p *PlayerHashSet) unmarshalFrom(fr *fast.Reader) {
	for i := range p.Players {
		p.Players[i].unmarshalFrom(fr)
	}
	for i := range p.OccupationFlags {
		p.OccupationFlags[i] = fr.ReadU64()
	}
	p.Population = fr.ReadU64()
	p.MarkRemovalCounter = fr.ReadU64()
}

// MarshalBinary encodes the legacy state into exactly StateV0Size bytes.
// The occupancy metadata is re-emitted verbatim, so decode/encode is a
// structural round-trip up to padding contents (padding re-encodes as zero).
func (s *StateV0) MarshalBinary() ([]byte, error) {
	fw := fast.NewWriter(make([]byte, 0, StateV0Size))

	s.TeamAddress.marshalTo(fw)
	s.OwnerAddress.marshalTo(fw)

	fw.WriteByte(s.TeamFeePercent)
	fw.WriteByte(s.DistributionFeePercent)
	fw.WriteByte(s.WinnerFeePercent)
	fw.WriteByte(s.BurnPercent)
	fw.Pad(4)

	fw.WriteU64(s.TicketPrice)

	s.Players.marshalTo(fw)

	for i := range s.Winners {
		s.Winners[i].marshalTo(fw)
	}
	fw.WriteU64(s.WinnersInfoNextEmptyIndex)

	fw.WriteByte(byte(s.CurrentState))
	fw.Pad(7)

	return fw.Bytes(), nil
}

// UnmarshalBinary strictly decodes a legacy state blob. Inputs whose length
// differs from StateV0Size are rejected with *SizeMismatchError before any
// field is read; accepted inputs populate every field.
func (s *StateV0) UnmarshalBinary(raw []byte) error {
	if len(raw) != StateV0Size {
		return &SizeMismatchError{Want: StateV0Size, Got: len(raw)}
	}
	fr := fast.NewReader(raw)

	s.TeamAddress.unmarshalFrom(fr)
	s.OwnerAddress.unmarshalFrom(fr)

	s.TeamFeePercent = fr.ReadByte()
	s.DistributionFeePercent = fr.ReadByte()
	s.WinnerFeePercent = fr.ReadByte()
	s.BurnPercent = fr.ReadByte()
	fr.Skip(4)

	s.TicketPrice = fr.ReadU64()

	s.Players.unmarshalFrom(fr)

	for i := range s.Winners {
		s.Winners[i].unmarshalFrom(fr)
	}
	s.WinnersInfoNextEmptyIndex = fr.ReadU64()

	s.CurrentState = SaleState(fr.ReadByte())
	fr.Skip(7)

	return nil
}
