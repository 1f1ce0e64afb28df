// Command e2echeck reads a hex-encoded frame from stdin, applies one
// profile's Protect or Check operation to it, and writes the resulting hex
// frame (protect) or verdict (check) to stdout. It exists to give the
// library a runnable entry point, the same way the richer pack examples
// ship a cmd/ alongside their library code.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/go-e2e/e2e/e2eerr"
	"github.com/go-e2e/e2e/internal/config"
	"github.com/go-e2e/e2e/internal/elog"
	"github.com/go-e2e/e2e/p01"
	"github.com/go-e2e/e2e/p02"
	"github.com/go-e2e/e2e/p04"
	"github.com/go-e2e/e2e/p05"
	"github.com/go-e2e/e2e/p06"
	"github.com/go-e2e/e2e/p07"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "e2echeck:", err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return err
	}

	logger := elog.New("e2echeck")
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading frame: %w", err)
	}
	buf, err := hex.DecodeString(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("decoding hex frame: %w", err)
	}

	logger.Debug("loaded frame", "profile", cfg.Profile, "mode", cfg.Mode, "bytes", len(buf))

	switch cfg.Mode {
	case config.ModeProtect:
		if err := protect(cfg, buf); err != nil {
			return err
		}
		fmt.Fprintln(out, hex.EncodeToString(buf))
	case config.ModeCheck:
		ok, err := check(cfg, buf)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(out, "ok")
		} else {
			fmt.Fprintln(out, "FAILED")
		}
	}
	return nil
}

func protect(cfg config.Config, buf []byte) error {
	switch cfg.Profile {
	case config.ProfileP01:
		return p01.Protect(buf, uint16(cfg.DataID), len(buf), p01.DataIDBoth, cfg.Increment)
	case config.ProfileP02:
		return p02.Protect(buf, len(buf)-1, dataIDTable(cfg.DataID))
	case config.ProfileP04:
		return p04.Protect(buf, len(buf), uint32(cfg.DataID), cfg.Offset, cfg.Increment)
	case config.ProfileP05:
		return p05.Protect(buf, len(buf)-cfg.Offset-p05.CRCSize, uint16(cfg.DataID), cfg.Offset, cfg.Increment)
	case config.ProfileP06:
		return p06.Protect(buf, len(buf), uint16(cfg.DataID), cfg.Offset, cfg.Increment)
	case config.ProfileP07:
		return p07.Protect(buf, len(buf), uint32(cfg.DataID), cfg.Offset, cfg.Increment)
	default:
		return e2eerr.New(cfg.Profile, e2eerr.KindUnknownMode, "unknown profile")
	}
}

func check(cfg config.Config, buf []byte) (bool, error) {
	switch cfg.Profile {
	case config.ProfileP01:
		return p01.Check(buf, uint16(cfg.DataID), len(buf), p01.DataIDBoth)
	case config.ProfileP02:
		return p02.Check(buf, len(buf)-1, dataIDTable(cfg.DataID))
	case config.ProfileP04:
		return p04.Check(buf, len(buf), uint32(cfg.DataID), cfg.Offset)
	case config.ProfileP05:
		return p05.Check(buf, len(buf)-cfg.Offset-p05.CRCSize, uint16(cfg.DataID), cfg.Offset)
	case config.ProfileP06:
		return p06.Check(buf, len(buf), uint16(cfg.DataID), cfg.Offset)
	case config.ProfileP07:
		return p07.Check(buf, len(buf), uint32(cfg.DataID), cfg.Offset)
	default:
		return false, e2eerr.New(cfg.Profile, e2eerr.KindUnknownMode, "unknown profile")
	}
}

// dataIDTable builds the 16-entry data-ID table P02 indexes by counter
// nibble, from a single configured data ID, for the CLI frontend where a
// caller has only one data ID to hand over.
func dataIDTable(dataID uint64) []byte {
	table := make([]byte, p02.DataIDListSize)
	for i := range table {
		table[i] = byte(dataID) + byte(i)
	}
	return table
}
