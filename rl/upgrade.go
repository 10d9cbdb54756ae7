package rl

// Upgrade maps a legacy state onto the current layout. It is a pure,
// total field mapping: carried-over data is copied verbatim and every field
// the legacy format lacks starts at zero.
//
// Specifically:
//   - addresses, fees, ticket price, sale state: verbatim;
//   - winners history: verbatim per slot, DayOfWeek starts at 0 since the
//     legacy format never recorded a weekday;
//   - WinnersCounter takes over WinnersInfoNextEmptyIndex verbatim;
//   - the player slot table is copied by position, dropping the legacy
//     set's occupancy flags, population and removal counter;
//   - PlayerCounter restarts at zero. It is NOT derived from the legacy
//     Population, even though the player addresses are carried over
//     verbatim;
//   - NextEpochData and every draw-guard/schedule field start at zero.
//
// No business validation happens here: fee sums, percentage ranges and the
// ring-index bound pass through untouched.
func (s *StateV0) Upgrade() *State {
	n := &State{
		Players: s.Players.Players,

		TeamAddress:  s.TeamAddress,
		OwnerAddress: s.OwnerAddress,

		TicketPrice:    s.TicketPrice,
		WinnersCounter: s.WinnersInfoNextEmptyIndex,

		TeamFeePercent:         s.TeamFeePercent,
		DistributionFeePercent: s.DistributionFeePercent,
		WinnerFeePercent:       s.WinnerFeePercent,
		BurnPercent:            s.BurnPercent,

		CurrentState: s.CurrentState,
	}
	for i := range s.Winners {
		old := &s.Winners[i]
		n.Winners[i] = WinnerInfo{
			WinnerAddress: old.WinnerAddress,
			Revenue:       old.Revenue,
			Epoch:         old.Epoch,
			Tick:          old.Tick,
		}
	}
	return n
}
