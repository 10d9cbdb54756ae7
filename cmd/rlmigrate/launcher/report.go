package launcher

import (
	"fmt"
	"io"

	"github.com/qubic-tools/go-rl-migrate/rl"
	"github.com/qubic-tools/go-rl-migrate/utils/bits"
)

// Human-readable dumps of both state layouts, for operators verifying a
// migration by eye. Nothing here feeds back into the conversion.

const reportRule = "==========================================================="

// ReportLegacy prints the contents of a legacy (V0) state.
func ReportLegacy(w io.Writer, s *rl.StateV0) {
	fmt.Fprintln(w, reportRule)
	fmt.Fprintln(w, "           LEGACY (V0) STATE")
	fmt.Fprintln(w, reportRule)

	reportAddresses(w, s.TeamAddress, s.OwnerAddress)
	reportFees(w, s.TeamFeePercent, s.DistributionFeePercent, s.WinnerFeePercent, s.BurnPercent)
	fmt.Fprintf(w, "Tickets:\n  price: %d units\n", s.TicketPrice)

	occ := s.Players.Occupancy()
	fmt.Fprintln(w, "Players:")
	fmt.Fprintf(w, "  active (non-zero):  %d\n", s.Players.ActivePlayers())
	fmt.Fprintf(w, "  population counter: %d\n", s.Players.Population)
	fmt.Fprintf(w, "  occupied slots:     %d\n", occ.Count(bits.SlotOccupied))
	fmt.Fprintf(w, "  removed slots:      %d\n", occ.Count(bits.SlotRemoved))
	fmt.Fprintf(w, "  removal counter:    %d\n", s.Players.MarkRemovalCounter)
	reportPlayerList(w, s.Players.Players[:])

	fmt.Fprintln(w, "Winners history:")
	fmt.Fprintf(w, "  next empty index: %d\n", s.WinnersInfoNextEmptyIndex)
	for i := range s.Winners {
		win := &s.Winners[i]
		if win.IsEmpty() {
			continue
		}
		fmt.Fprintf(w, "  %4d. %s\n", i+1, win.WinnerAddress)
		fmt.Fprintf(w, "        prize: %d units, epoch: %d, tick: %d\n",
			win.Revenue, win.Epoch, win.Tick)
	}

	fmt.Fprintf(w, "State: %s\n", s.CurrentState)
	fmt.Fprintln(w, reportRule)
}

// ReportState prints the contents of a current-layout state.
func ReportState(w io.Writer, s *rl.State) {
	fmt.Fprintln(w, reportRule)
	fmt.Fprintln(w, "           CURRENT STATE")
	fmt.Fprintln(w, reportRule)

	reportAddresses(w, s.TeamAddress, s.OwnerAddress)
	reportFees(w, s.TeamFeePercent, s.DistributionFeePercent, s.WinnerFeePercent, s.BurnPercent)
	fmt.Fprintf(w, "Tickets:\n  price: %d units\n", s.TicketPrice)

	fmt.Fprintln(w, "Counters:")
	fmt.Fprintf(w, "  players (tickets sold): %d\n", s.PlayerCounter)
	fmt.Fprintf(w, "  winners ring index:     %d\n", s.WinnersCounter)

	fmt.Fprintln(w, "Schedule:")
	fmt.Fprintf(w, "  draw days bitmask: 0b%08b (bit 0 = Wednesday)\n", s.Schedule)
	fmt.Fprintf(w, "  draw hour (UTC):   %d\n", s.DrawHour)
	fmt.Fprintf(w, "  last draw day/hour: %d/%d\n", s.LastDrawDay, s.LastDrawHour)
	fmt.Fprintf(w, "  last draw date stamp: %d\n", s.LastDrawDateStamp)

	fmt.Fprintln(w, "Next epoch:")
	fmt.Fprintf(w, "  new price: %d\n", s.NextEpochData.NewPrice)
	fmt.Fprintf(w, "  schedule:  0b%08b\n", s.NextEpochData.Schedule)

	fmt.Fprintln(w, "Players:")
	reportPlayerList(w, s.Players[:])

	fmt.Fprintln(w, "Winners history:")
	for i := range s.Winners {
		win := &s.Winners[i]
		if win.IsEmpty() {
			continue
		}
		fmt.Fprintf(w, "  %4d. %s\n", i+1, win.WinnerAddress)
		fmt.Fprintf(w, "        prize: %d units, epoch: %d, tick: %d, weekday: %d\n",
			win.Revenue, win.Epoch, win.Tick, win.DayOfWeek)
	}

	fmt.Fprintf(w, "State: %s\n", s.CurrentState)
	fmt.Fprintln(w, reportRule)
}

func reportAddresses(w io.Writer, team, owner rl.ID) {
	fmt.Fprintln(w, "Addresses:")
	fmt.Fprintf(w, "  team:  %s\n", team)
	fmt.Fprintf(w, "  owner: %s\n", owner)
}

func reportFees(w io.Writer, team, distribution, winner, burn uint8) {
	fmt.Fprintln(w, "Fees:")
	fmt.Fprintf(w, "  team: %d%%  distribution: %d%%  winner: %d%%  burn: %d%%\n",
		team, distribution, winner, burn)
}

func reportPlayerList(w io.Writer, players []rl.ID) {
	for i := range players {
		if players[i].IsZero() {
			continue
		}
		fmt.Fprintf(w, "  %4d. %s\n", i+1, players[i])
	}
}
