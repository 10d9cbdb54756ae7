package rl

import (
	"github.com/qubic-tools/go-rl-migrate/utils/fast"
)

// Codec for the current layout. Field order and padding are pinned in
// serializer.go; see the StateSize breakdown there.

func (w *WinnerInfo) marshalTo(fw *fast.Writer) {
	w.WinnerAddress.marshalTo(fw)
	fw.WriteU64(w.Revenue)
	fw.WriteU16(w.Epoch)
	fw.Pad(2)
	fw.WriteU32(w.Tick)
	fw.WriteByte(w.DayOfWeek)
	fw.Pad(7)
}

func (w *WinnerInfo) unmarshalFrom(fr *fast.Reader) {
	w.WinnerAddress.unmarshalFrom(fr)
	w.Revenue = fr.ReadU64()
	w.Epoch = fr.ReadU16()
	fr.Skip(2)
	w.Tick = fr.ReadU32()
	w.DayOfWeek = fr.ReadByte()
	fr.Skip(7)
}

func (n *NextEpochData) marshalTo(fw *fast.Writer) {
	fw.WriteU64(n.NewPrice)
	fw.WriteByte(n.Schedule)
	fw.Pad(7)
}

func (n *NextEpochData) unmarshalFrom(fr *fast.Reader) {
	n.NewPrice = fr.ReadU64()
	n.Schedule = fr.ReadByte()
	fr.Skip(7)
}

// MarshalBinary encodes the state into exactly StateSize bytes. Encoding is
// total: every field is a fixed-width integer with no range constraints, so
// a populated State always yields a complete buffer.
func (s *State) MarshalBinary() ([]byte, error) {
	fw := fast.NewWriter(make([]byte, 0, StateSize))

	for i := range s.Winners {
		s.Winners[i].marshalTo(fw)
	}
	for i := range s.Players {
		s.Players[i].marshalTo(fw)
	}

	s.TeamAddress.marshalTo(fw)
	s.OwnerAddress.marshalTo(fw)

	s.NextEpochData.marshalTo(fw)

	fw.WriteU64(s.TicketPrice)
	fw.WriteU64(s.PlayerCounter)
	fw.WriteU64(s.WinnersCounter)

	fw.WriteByte(s.LastDrawDay)
	fw.WriteByte(s.LastDrawHour)
	fw.Pad(2)
	fw.WriteU32(s.LastDrawDateStamp)

	fw.WriteByte(s.TeamFeePercent)
	fw.WriteByte(s.DistributionFeePercent)
	fw.WriteByte(s.WinnerFeePercent)
	fw.WriteByte(s.BurnPercent)

	fw.WriteByte(s.Schedule)
	fw.WriteByte(s.DrawHour)

	fw.WriteByte(byte(s.CurrentState))
	fw.Pad(1)

	return fw.Bytes(), nil
}

// UnmarshalBinary strictly decodes a current-layout state blob. Inputs whose
// length differs from StateSize are rejected with *SizeMismatchError before
// any field is read.
func (s *State) UnmarshalBinary(raw []byte) error {
	if len(raw) != StateSize {
		return &SizeMismatchError{Want: StateSize, Got: len(raw)}
	}
	fr := fast.NewReader(raw)

	for i := range s.Winners {
		s.Winners[i].unmarshalFrom(fr)
	}
	for i := range s.Players {
		s.Players[i].unmarshalFrom(fr)
	}

	s.TeamAddress.unmarshalFrom(fr)
	s.OwnerAddress.unmarshalFrom(fr)

	s.NextEpochData.unmarshalFrom(fr)

	s.TicketPrice = fr.ReadU64()
	s.PlayerCounter = fr.ReadU64()
	s.WinnersCounter = fr.ReadU64()

	s.LastDrawDay = fr.ReadByte()
	s.LastDrawHour = fr.ReadByte()
	fr.Skip(2)
	s.LastDrawDateStamp = fr.ReadU32()

	s.TeamFeePercent = fr.ReadByte()
	s.DistributionFeePercent = fr.ReadByte()
	s.WinnerFeePercent = fr.ReadByte()
	s.BurnPercent = fr.ReadByte()

	s.Schedule = fr.ReadByte()
	s.DrawHour = fr.ReadByte()

	s.CurrentState = SaleState(fr.ReadByte())
	fr.Skip(1)

	return nil
}
