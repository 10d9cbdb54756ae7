package launcher

import (
	"fmt"
	"io/ioutil"

	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/qubic-tools/go-rl-migrate/rl"
)

// convertAction is the full pipeline: read, strict-decode the legacy layout,
// upgrade, encode, write. Any failure aborts the run before the output file
// is touched; a partial output is never produced.
func convertAction(ctx *cli.Context) error {
	cfg, err := makeConvertConfig(ctx)
	if err != nil {
		return err
	}

	raw, err := readStateFile(cfg.Input, rl.StateV0Size)
	if err != nil {
		return err
	}

	old := new(rl.StateV0)
	if err := old.UnmarshalBinary(raw); err != nil {
		return fmt.Errorf("decode legacy state %s: %w", cfg.Input, err)
	}
	log.WithField("file", cfg.Input).Info("legacy state decoded")

	if !cfg.Quiet {
		ReportLegacy(app.Writer, old)
	}

	upgraded := old.Upgrade()
	if !cfg.Quiet {
		ReportState(app.Writer, upgraded)
	}

	out, err := upgraded.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := ioutil.WriteFile(cfg.Output, out, 0644); err != nil {
		return fmt.Errorf("write output state: %w", err)
	}

	log.WithFields(log.Fields{
		"file":  cfg.Output,
		"bytes": len(out),
	}).Info("converted state written")
	return nil
}

func inspectAction(ctx *cli.Context) error {
	cfg, err := makeInspectConfig(ctx)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "legacy":
		raw, err := readStateFile(cfg.File, rl.StateV0Size)
		if err != nil {
			return err
		}
		s := new(rl.StateV0)
		if err := s.UnmarshalBinary(raw); err != nil {
			return fmt.Errorf("decode legacy state %s: %w", cfg.File, err)
		}
		ReportLegacy(app.Writer, s)
	case "current":
		raw, err := readStateFile(cfg.File, rl.StateSize)
		if err != nil {
			return err
		}
		s := new(rl.State)
		if err := s.UnmarshalBinary(raw); err != nil {
			return fmt.Errorf("decode state %s: %w", cfg.File, err)
		}
		ReportState(app.Writer, s)
	}
	return nil
}

// readStateFile loads a whole state file. The strict size check belongs to
// the decoder; the expected size is logged here so a truncated file is easy
// to spot next to the byte count.
func readStateFile(path string, expected int) ([]byte, error) {
	log.WithField("file", path).Info("reading contract state")

	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	head := raw
	if len(head) > 32 {
		head = head[:32]
	}
	log.WithFields(log.Fields{
		"bytes":    len(raw),
		"expected": expected,
		"head":     hexutil.Encode(head),
	}).Debug("state file loaded")
	return raw, nil
}
