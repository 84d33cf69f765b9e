// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"bcseq/core/sseq"
	"bcseq/internal/cliutil"
	"bcseq/internal/cmdutil"
	"bcseq/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Barcodes  []string // positionals
	Whitelist []string // -w entries, comma-separated lists flattened

	// Neighbors
	Policy    string // skip | mutate
	Neighbors bool   // list every neighbor, not just the count
	PolyT     int    // polyT suffix length tested per barcode
	GemGroup  int

	// Output
	Output string
	Sort   bool
	Header bool // true unless --no-header

	// Misc
	LogLevel string
	Quiet    bool
	Version  bool
}

// HammingPolicy returns the parsed --policy.
func (o Options) HammingPolicy() sseq.HammingPolicy {
	p, _ := sseq.ParsePolicy(o.Policy) // validated in ParseArgs
	return p
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: inspect DNA barcodes and their one-mismatch neighbors

Version: %s

Usage: %s [options] BARCODE...

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse(argv []string) (Options, error) { return ParseArgs(flag.CommandLine, argv) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and barcodes may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var wl stringSlice
	fs.Var(&wl, "whitelist", "whitelisted barcode(s), comma-separated or repeatable")
	fs.Var(&wl, "w", "alias of --whitelist")

	fs.StringVar(&opt.Policy, "policy", "skip", "N handling for neighbors: skip | mutate [skip]")
	fs.BoolVar(&opt.Neighbors, "neighbors", false, "list every one-mismatch neighbor [false]")
	fs.BoolVar(&opt.Neighbors, "n", false, "alias of --neighbors")
	fs.IntVar(&opt.PolyT, "polyt", 5, "polyT suffix length to test [5]")
	fs.IntVar(&opt.GemGroup, "gem-group", 1, "GEM group attached to every barcode [1]")

	fs.StringVar(&opt.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs by gem group and sequence [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text [false]")

	fs.StringVar(&opt.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader
	opt.Barcodes = append(posArgs, fs.Args()...)
	opt.Whitelist = cliutil.SplitList(wl)

	return opt, Validate(opt)
}

// Validate applies CLI invariants.
func Validate(o Options) error {
	if len(o.Barcodes) == 0 {
		return errors.New("at least one barcode is required")
	}
	if _, err := sseq.ParsePolicy(o.Policy); err != nil {
		return fmt.Errorf("--policy: %w", err)
	}
	if o.PolyT < 0 || o.PolyT > sseq.MaxLen {
		return fmt.Errorf("--polyt must be between 0 and %d", sseq.MaxLen)
	}
	if o.GemGroup < 0 || o.GemGroup > 0xFFFF {
		return errors.New("--gem-group must be between 0 and 65535")
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if _, err := cmdutil.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
