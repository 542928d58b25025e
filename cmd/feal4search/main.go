// Command feal4search recovers the six FEAL-4 round subkeys from a
// known-plaintext corpus via cascaded linear-approximation search.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	feal4 "github.com/hariof98/linear-cryptanalysis-feal-4-cipher"
)

var (
	workers int
	maxKeys int
	quiet   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "feal4search [path-to-pair-file]",
		Short:        "Recover FEAL-4 round subkeys from known plaintext/ciphertext pairs",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runSearch,
	}

	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "goroutines sharding the K0 outer sweep")
	cmd.Flags().IntVar(&maxKeys, "max-keys", feal4.MaxValidKeys, "stop after this many accepted subkey tuples")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the progress banner")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	path := "known.txt"
	if len(args) == 1 {
		path = args[0]
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	if !quiet {
		fmt.Println("feal4search: FEAL-4 known-plaintext linear cryptanalysis")
		fmt.Printf("loading pairs from %s\n", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	corpus, err := feal4.LoadCorpus(f)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	log.Info().
		Int("pairs", corpus.Count()).
		Int("workers", workers).
		Hex("fingerprint", fingerprintPrefix(corpus)).
		Msg("corpus loaded")

	if !quiet {
		fmt.Printf("loaded %d pairs\n", corpus.Count())
	}

	rep := feal4.NewCappedReporter(os.Stdout, maxKeys)

	start := time.Now()
	feal4.Search(context.Background(), corpus, rep, workers)
	elapsed := time.Since(start)

	fmt.Printf("search complete: %d key(s) found in %d ms\n", rep.Count(), elapsed.Milliseconds())
	log.Info().Int("found", rep.Count()).Dur("elapsed", elapsed).Msg("search complete")

	return nil
}

// fingerprintPrefix returns the first 8 bytes of the corpus fingerprint
// for a compact log field.
func fingerprintPrefix(c *feal4.Corpus) []byte {
	fp := c.Fingerprint()
	return fp[:8]
}
