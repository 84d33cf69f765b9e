// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"bcseq/core/barcode"
	"bcseq/core/sseq"
	"bcseq/internal/cli"
	"bcseq/internal/cmdutil"
	"bcseq/internal/output"
	"bcseq/internal/version"
	"bcseq/internal/writers"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitInvalid = 1 // at least one barcode was rejected
	ExitUsage   = 2
	ExitFailure = 3 // write failure or cancellation
)

// matcherCacheSize bounds memoized whitelist lookups per run.
const matcherCacheSize = 4096

// flush finishes a run by flushing outw; broken pipes count as success.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("bcseq")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "bcseq version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	log, err := cmdutil.NewLogger(stderr, opts.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	in := inspector{
		gemGroup:  uint16(opts.GemGroup),
		policy:    opts.HammingPolicy(),
		polyT:     opts.PolyT,
		neighbors: opts.Neighbors,
	}
	if len(opts.Whitelist) > 0 {
		wl, err := barcode.FromStrings(opts.Whitelist)
		if err != nil {
			log.Error("bad whitelist", "error", err)
			return ExitUsage
		}
		log.Debug("whitelist loaded", "entries", wl.Len())
		in.matcher = barcode.NewMatcher(wl, barcode.WithPolicy(in.policy), barcode.WithCacheSize(matcherCacheSize))
	}

	recs, rejected, err := inspectAll(parent, log, in, opts.Barcodes)
	if err != nil {
		log.Error("run aborted", "error", err)
		return ExitFailure
	}
	if opts.Sort {
		output.SortRecords(recs)
	}

	cols := output.Columns{Header: opts.Header, Neighbors: opts.Neighbors, Whitelist: in.matcher != nil}
	if err := writers.Write(opts.Output, outw, recs, cols); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	code := ExitOK
	if rejected > 0 {
		log.Warn("barcodes rejected", "count", rejected)
		code = ExitInvalid
	}
	return flush(outw, stderr, code)
}

// inspectAll parses and inspects every raw barcode on a bounded pool of
// goroutines. Invalid ones are logged and counted, not fatal. Records keep
// the input order.
func inspectAll(ctx context.Context, log *slog.Logger, in inspector, raw []string) ([]output.Record, int, error) {
	slots := make([]output.Record, len(raw))
	ok := make([]bool, len(raw))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range raw {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seq, err := sseq.FromString(s)
			if err != nil {
				log.Warn("skipping barcode", "index", i, "barcode", s, "kind", sseq.KindOf(err).String(), "error", err)
				return nil
			}
			slots[i], ok[i] = in.inspect(seq), true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	recs := make([]output.Record, 0, len(raw))
	for i := range slots {
		if ok[i] {
			recs = append(recs, slots[i])
		}
	}
	return recs, len(raw) - len(recs), nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
