package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/allockit/page"
)

func init() {
	rootCmd.AddCommand(newSoakCmd())
}

func newSoakCmd() *cobra.Command {
	var (
		pages  uint64
		rounds uint64
		touch  bool
	)
	cmd := &cobra.Command{
		Use:   "soak",
		Short: "Drive repeated request/release round trips",
		Long: `The soak command maps and releases the same shape of run over and
over. A healthy provider sustains this indefinitely with a flat memory
footprint; use it to spot leaks, fragmentation, or slowdowns under
sustained churn.

Example:
  akctl soak --rounds 10000
  akctl soak --rounds 1000 --pages 64 --touch=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSoak(pages, rounds, touch)
		},
	}
	cmd.Flags().Uint64Var(&pages, "pages", 4, "Pages per round trip")
	cmd.Flags().Uint64Var(&rounds, "rounds", 1000, "Number of round trips")
	cmd.Flags().BoolVar(&touch, "touch", true, "Write into every page while mapped")
	return cmd
}

func runSoak(pages, rounds uint64, touch bool) error {
	pageSize := page.Size()
	if pageSize == 0 {
		return errors.New("page size query failed")
	}
	if rounds == 0 {
		return errors.New("rounds must be nonzero")
	}
	count, err := pageCount(pages)
	if err != nil {
		return err
	}

	printVerbose("soaking %d rounds of %d pages, touch=%v\n", rounds, pages, touch)

	var total uint64
	begin := time.Now()
	for i := uint64(0); i < rounds; i++ {
		chunk, err := page.Request(pageSize, nil, count)
		if err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
		if touch {
			buf := chunk.Bytes(pageSize)
			for off := uintptr(0); off < uintptr(len(buf)); off += pageSize {
				buf[off] = byte(i)
			}
		}
		total += pages * uint64(pageSize)
		if err := page.Release(pageSize, &chunk); err != nil {
			return fmt.Errorf("round %d: release: %w", i, err)
		}
	}
	elapsed := time.Since(begin)

	rate := float64(total) / elapsed.Seconds()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"rounds":          rounds,
			"pages_per_round": pages,
			"bytes_total":     total,
			"elapsed_ms":      elapsed.Milliseconds(),
			"bytes_per_sec":   uint64(rate),
		})
	}

	printInfo("Completed %s round trips of %d pages in %s\n",
		humanize.Comma(int64(rounds)), pages, elapsed.Round(time.Millisecond))
	printInfo("  cycled: %s\n", humanize.IBytes(total))
	printInfo("  rate:   %s/s\n", humanize.IBytes(uint64(rate)))
	return nil
}
