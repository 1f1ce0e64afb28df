// Package config parses the command-line flags shared by the e2echeck
// frontend: which profile to run and the header geometry (data-ID, offset,
// whether to bump the counter) to apply to it.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Profile names accepted by the -profile flag.
const (
	ProfileP01 = "p01"
	ProfileP02 = "p02"
	ProfileP04 = "p04"
	ProfileP05 = "p05"
	ProfileP06 = "p06"
	ProfileP07 = "p07"
)

// Mode selects whether the frontend protects or checks a frame.
const (
	ModeProtect = "protect"
	ModeCheck   = "check"
)

// Config holds the parsed flags for a single e2echeck invocation.
type Config struct {
	Profile   string
	Mode      string
	DataID    uint64
	Offset    int
	Increment bool
	Verbose   bool
}

// Parse parses args (excluding the program name, as in os.Args[1:]) into a
// Config. It does not touch the global pflag.CommandLine, so it is safe to
// call more than once in a test process.
func Parse(args []string) (Config, error) {
	fs := pflag.NewFlagSet("e2echeck", pflag.ContinueOnError)

	profile := fs.StringP("profile", "p", "", "protection profile: p01, p02, p04, p05, p06, p07")
	mode := fs.StringP("mode", "m", ModeProtect, "protect or check")
	dataID := fs.Uint64P("data-id", "d", 0, "data ID of the signal group")
	offset := fs.IntP("offset", "o", 0, "byte offset of the protection header within the frame")
	increment := fs.Bool("increment", false, "bump the counter before protecting (ignored in check mode)")
	verbose := fs.BoolP("verbose", "v", false, "log each step at debug level")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: e2echeck --profile <p01|p02|p04|p05|p06|p07> [flags] < frame.hex")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Profile:   *profile,
		Mode:      *mode,
		DataID:    *dataID,
		Offset:    *offset,
		Increment: *increment,
		Verbose:   *verbose,
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Profile {
	case ProfileP01, ProfileP02, ProfileP04, ProfileP05, ProfileP06, ProfileP07:
	default:
		return fmt.Errorf("config: unknown profile %q", c.Profile)
	}
	switch c.Mode {
	case ModeProtect, ModeCheck:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if c.Offset < 0 {
		return fmt.Errorf("config: offset must be non-negative, got %d", c.Offset)
	}
	return nil
}
