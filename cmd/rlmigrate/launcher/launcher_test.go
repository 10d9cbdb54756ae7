package launcher

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qubic-tools/go-rl-migrate/rl"
)

func writeLegacyFixture(t *testing.T, dir string) (string, *rl.StateV0) {
	t.Helper()

	old := &rl.StateV0{
		TeamFeePercent:            5,
		DistributionFeePercent:    10,
		WinnerFeePercent:          80,
		BurnPercent:               5,
		TicketPrice:               100,
		WinnersInfoNextEmptyIndex: 3,
		CurrentState:              rl.Locked,
	}
	old.TeamAddress[0] = 0x11
	old.OwnerAddress[0] = 0x22
	old.Players.Players[1][0] = 0xCD
	old.Players.Population = 1
	old.Winners[0] = rl.WinnerInfoV0{
		WinnerAddress: rl.ID{0: 0xAB},
		Revenue:       42,
		Epoch:         7,
		Tick:          99,
	}

	raw, err := old.MarshalBinary()
	require.NoError(t, err)

	path := filepath.Join(dir, "contract0016.185")
	require.NoError(t, ioutil.WriteFile(path, raw, 0644))
	return path, old
}

// TestLaunch_Convert drives the CLI end to end over temp files and verifies
// the written output through an independent decode.
func TestLaunch_Convert(t *testing.T) {
	require := require.New(t)

	dir, err := ioutil.TempDir("", "rlmigrate")
	require.NoError(err)
	defer os.RemoveAll(dir)

	input, old := writeLegacyFixture(t, dir)
	output := filepath.Join(dir, "contract0016_new.185")

	require.NoError(Launch([]string{"rl-migrate", "--quiet", "convert", input, output}))

	raw, err := ioutil.ReadFile(output)
	require.NoError(err)
	require.Equal(rl.StateSize, len(raw))

	got := new(rl.State)
	require.NoError(got.UnmarshalBinary(raw))
	require.Equal(old.Upgrade(), got)
}

// TestLaunch_ConvertRejectsTruncated verifies that a size-mismatched input
// aborts the run and produces no output file.
func TestLaunch_ConvertRejectsTruncated(t *testing.T) {
	require := require.New(t)

	dir, err := ioutil.TempDir("", "rlmigrate")
	require.NoError(err)
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "short.bin")
	require.NoError(ioutil.WriteFile(input, make([]byte, rl.StateV0Size-1), 0644))
	output := filepath.Join(dir, "out.bin")

	err = Launch([]string{"rl-migrate", "--quiet", "convert", input, output})
	require.Error(err)
	require.Contains(err.Error(), "state size mismatch")

	_, statErr := os.Stat(output)
	require.True(os.IsNotExist(statErr), "no output may be written on decode failure")
}

func TestLaunch_ConvertMissingInput(t *testing.T) {
	require := require.New(t)

	dir, err := ioutil.TempDir("", "rlmigrate")
	require.NoError(err)
	defer os.RemoveAll(dir)

	output := filepath.Join(dir, "out.bin")
	err = Launch([]string{"rl-migrate", "--quiet", "convert", filepath.Join(dir, "missing.bin"), output})
	require.Error(err)

	_, statErr := os.Stat(output)
	require.True(os.IsNotExist(statErr))
}

func TestLaunch_ConvertArgCount(t *testing.T) {
	require.Error(t, Launch([]string{"rl-migrate", "convert", "only-one-arg"}))
}

// TestLaunch_Inspect checks both layout selections of the inspect command.
func TestLaunch_Inspect(t *testing.T) {
	require := require.New(t)

	dir, err := ioutil.TempDir("", "rlmigrate")
	require.NoError(err)
	defer os.RemoveAll(dir)

	input, old := writeLegacyFixture(t, dir)
	require.NoError(Launch([]string{"rl-migrate", "--quiet", "inspect", input}))

	converted := filepath.Join(dir, "new.bin")
	raw, err := old.Upgrade().MarshalBinary()
	require.NoError(err)
	require.NoError(ioutil.WriteFile(converted, raw, 0644))

	require.NoError(Launch([]string{"rl-migrate", "--quiet", "inspect", "--format", "current", converted}))

	// The legacy decoder must refuse a current-layout file.
	require.Error(Launch([]string{"rl-migrate", "--quiet", "inspect", converted}))

	require.Error(Launch([]string{"rl-migrate", "--quiet", "inspect", "--format", "bogus", input}))
}

// TestReports sanity-checks the human-readable dumps.
func TestReports(t *testing.T) {
	require := require.New(t)

	old := &rl.StateV0{TicketPrice: 100, TeamFeePercent: 5}
	old.Players.Players[0] = rl.ID{0: 1}
	old.Players.OccupationFlags[0] = 0b01 // slot 0 occupied
	old.Players.Population = 1

	var buf bytes.Buffer
	ReportLegacy(&buf, old)
	out := buf.String()
	require.Contains(out, "LEGACY (V0) STATE")
	require.Contains(out, "price: 100 units")
	require.Contains(out, "team: 5%")
	require.Contains(out, "occupied slots:     1")
	require.Contains(out, "SELLING")

	buf.Reset()
	ReportState(&buf, old.Upgrade())
	out = buf.String()
	require.Contains(out, "CURRENT STATE")
	require.Contains(out, "winners ring index:     0")
	require.Contains(out, "draw days bitmask: 0b00000000")
}
