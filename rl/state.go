package rl

// NextEpochData carries deferred changes that the contract applies at the
// end of the current epoch. A freshly migrated state has no pending changes.
type NextEpochData struct {
	// NewPrice replaces TicketPrice at the epoch boundary (0 = no change).
	NewPrice uint64
	// Schedule replaces the draw-day bitmask at the epoch boundary.
	Schedule uint8
}

// State is the current contract state layout.
type State struct {
	// Winners is the ring buffer of the winners history, indexed modulo
	// MaxWinnersInHistory by WinnersCounter.
	Winners [MaxWinnersInHistory]WinnerInfo

	// Players holds the accounts participating in the current epoch.
	// Zero-sentinel entries are unused slots.
	Players [MaxPlayers]ID

	TeamAddress  ID
	OwnerAddress ID

	// NextEpochData holds deferred price/schedule changes.
	NextEpochData NextEpochData

	// TicketPrice is the price of one ticket, in the smallest currency unit.
	TicketPrice uint64

	// PlayerCounter is the number of tickets sold in the current epoch.
	PlayerCounter uint64

	// WinnersCounter is the ring index of the winners history: the next
	// write position, wrapping at MaxWinnersInHistory.
	WinnersCounter uint64

	// LastDrawDay/LastDrawHour/LastDrawDateStamp guard draw operations:
	// the contract refuses more than one draw per UTC calendar day.
	LastDrawDay       uint8
	LastDrawHour      uint8
	LastDrawDateStamp uint32

	// Fee percentages, [0..100] by convention, not enforced here.
	TeamFeePercent         uint8
	DistributionFeePercent uint8
	WinnerFeePercent       uint8
	BurnPercent            uint8

	// Schedule is the draw-day bitmask: bit 0 = Wednesday, bit 1 = Thursday,
	// ..., bit 6 = Tuesday. A set bit permits draws on that day.
	Schedule uint8

	// DrawHour is the UTC hour [0..23] at which a draw may run.
	DrawHour uint8

	CurrentState SaleState
}
