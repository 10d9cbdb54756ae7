package rl

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUpgrade_FieldMapping verifies the verbatim-copy side of the mapping
// on randomized legacy states.
func TestUpgrade_FieldMapping(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for caseN := 0; caseN < 10; caseN++ {
		t.Run(fmt.Sprintf("case#%d", caseN), func(t *testing.T) {
			require := require.New(t)

			old := randStateV0(r)
			n := old.Upgrade()

			require.Equal(old.TeamAddress, n.TeamAddress)
			require.Equal(old.OwnerAddress, n.OwnerAddress)
			require.Equal(old.TeamFeePercent, n.TeamFeePercent)
			require.Equal(old.DistributionFeePercent, n.DistributionFeePercent)
			require.Equal(old.WinnerFeePercent, n.WinnerFeePercent)
			require.Equal(old.BurnPercent, n.BurnPercent)
			require.Equal(old.TicketPrice, n.TicketPrice)
			require.Equal(old.CurrentState, n.CurrentState)

			require.Equal(old.WinnersInfoNextEmptyIndex, n.WinnersCounter,
				"ring index is renamed, not recomputed")

			for i := range old.Winners {
				require.Equalf(old.Winners[i].WinnerAddress, n.Winners[i].WinnerAddress, "winner %d", i)
				require.Equalf(old.Winners[i].Revenue, n.Winners[i].Revenue, "winner %d", i)
				require.Equalf(old.Winners[i].Epoch, n.Winners[i].Epoch, "winner %d", i)
				require.Equalf(old.Winners[i].Tick, n.Winners[i].Tick, "winner %d", i)
				require.Equalf(uint8(0), n.Winners[i].DayOfWeek, "winner %d: legacy has no weekday", i)
			}

			// Slot identity by position: addresses (sentinel or not) keep
			// their index.
			require.Equal(old.Players.Players, n.Players)
		})
	}
}

// TestUpgrade_Defaults verifies every field the legacy format lacks starts
// at zero, regardless of the legacy contents.
func TestUpgrade_Defaults(t *testing.T) {
	require := require.New(t)
	r := rand.New(rand.NewSource(4))

	old := randStateV0(r)
	// Make the discarded occupancy metadata conspicuously non-zero.
	old.Players.Population = 777
	old.Players.MarkRemovalCounter = 999

	n := old.Upgrade()

	require.Zero(n.PlayerCounter, "PlayerCounter resets, it is not the legacy population")
	require.Equal(NextEpochData{}, n.NextEpochData)
	require.Zero(n.LastDrawDay)
	require.Zero(n.LastDrawHour)
	require.Zero(n.LastDrawDateStamp)
	require.Zero(n.Schedule)
	require.Zero(n.DrawHour)
}

// TestUpgrade_Pure verifies the transform leaves its input untouched and is
// deterministic.
func TestUpgrade_Pure(t *testing.T) {
	require := require.New(t)
	r := rand.New(rand.NewSource(5))

	old := randStateV0(r)
	snapshot := *old

	a := old.Upgrade()
	b := old.Upgrade()

	require.Equal(&snapshot, old, "Upgrade must not mutate its receiver")
	require.Equal(a, b, "Upgrade must be deterministic")
}

// TestUpgrade_NextEpochDataEncodesZero checks the encoded NextEpochData
// block of an upgraded state is all-zero bytes, padding included.
func TestUpgrade_NextEpochDataEncodesZero(t *testing.T) {
	require := require.New(t)
	r := rand.New(rand.NewSource(6))

	raw, err := randStateV0(r).Upgrade().MarshalBinary()
	require.NoError(err)

	// NextEpochData sits right after winners, players and the two addresses.
	off := MaxWinnersInHistory*winnerInfoSize + MaxPlayers*IDSize + 2*IDSize
	require.Equal(make([]byte, nextEpochDataSize), raw[off:off+nextEpochDataSize])
}

// TestUpgrade_EndToEnd drives the whole pipeline on a crafted legacy blob:
// decode, upgrade, encode, then verify through an independent decode of the
// target buffer.
func TestUpgrade_EndToEnd(t *testing.T) {
	require := require.New(t)

	old := &StateV0{
		TeamFeePercent:            5,
		TicketPrice:               100,
		WinnersInfoNextEmptyIndex: 3,
	}
	old.Winners[0] = WinnerInfoV0{
		WinnerAddress: ID{0: 0xAB},
		Revenue:       42,
		Epoch:         7,
		Tick:          99,
	}
	old.Players.Players[1] = ID{0: 0xCD}
	old.Players.Population = 1

	rawOld, err := old.MarshalBinary()
	require.NoError(err)

	decoded := new(StateV0)
	require.NoError(decoded.UnmarshalBinary(rawOld))

	rawNew, err := decoded.Upgrade().MarshalBinary()
	require.NoError(err)
	require.Equal(StateSize, len(rawNew))

	verifier := new(State)
	require.NoError(verifier.UnmarshalBinary(rawNew))

	require.Equal(uint64(100), verifier.TicketPrice)
	require.Equal(uint8(5), verifier.TeamFeePercent)
	require.Equal(uint64(3), verifier.WinnersCounter)
	require.Zero(verifier.PlayerCounter)
	require.Zero(verifier.Schedule)
	require.Zero(verifier.DrawHour)

	require.Equal(WinnerInfo{
		WinnerAddress: ID{0: 0xAB},
		Revenue:       42,
		Epoch:         7,
		Tick:          99,
		DayOfWeek:     0,
	}, verifier.Winners[0])

	require.True(verifier.Players[0].IsZero(), "sentinel slots keep their position")
	require.Equal(ID{0: 0xCD}, verifier.Players[1])
	require.Equal(Selling, verifier.CurrentState)
}
