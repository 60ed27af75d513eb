package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/allockit/page"
)

func init() {
	rootCmd.AddCommand(newProbeCmd())
}

func newProbeCmd() *cobra.Command {
	var (
		pages uint64
		at    string
	)
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Map a run of pages, touch every page, and release it",
		Long: `The probe command requests a run of pages from the operating system,
writes one byte into every page to force it resident, and releases the
run again. With --at the run must land at exactly that address; the
probe fails if the address is unavailable.

Example:
  akctl probe --pages 16
  akctl probe --pages 4 --at 0x7f0000000000
  akctl probe --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(pages, at)
		},
	}
	cmd.Flags().Uint64Var(&pages, "pages", 4, "Number of pages to map")
	cmd.Flags().StringVar(&at, "at", "", "Exact address to map at (for example 0x7f0000000000)")
	return cmd
}

func runProbe(pages uint64, atStr string) error {
	pageSize := page.Size()
	if pageSize == 0 {
		return errors.New("page size query failed")
	}

	count, err := pageCount(pages)
	if err != nil {
		return err
	}

	var at unsafe.Pointer
	if atStr != "" {
		v, err := strconv.ParseUint(atStr, 0, 64)
		if err != nil {
			return fmt.Errorf("bad --at address %q: %w", atStr, err)
		}
		if uint64(uintptr(v)) != v {
			return fmt.Errorf("--at address %#x exceeds the addressable range", v)
		}
		at = unsafe.Pointer(uintptr(v))
	}

	printVerbose("requesting %d pages of %d bytes\n", pages, pageSize)

	begin := time.Now()
	chunk, err := page.Request(pageSize, at, count)
	if err != nil {
		return err
	}
	start := chunk.Start()
	count = chunk.Count()

	buf := chunk.Bytes(pageSize)
	for off := uintptr(0); off < uintptr(len(buf)); off += pageSize {
		buf[off] = 0xA5
	}
	touched := time.Since(begin)

	if err := page.Release(pageSize, &chunk); err != nil {
		return fmt.Errorf("release: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"page_size_bytes": uint64(pageSize),
			"pages":           uint64(count),
			"start":           fmt.Sprintf("%p", start),
			"bytes":           uint64(len(buf)),
			"elapsed_us":      touched.Microseconds(),
		})
	}

	printInfo("Mapped and touched %s across %d pages at %p in %s\n",
		humanize.IBytes(uint64(len(buf))), count, start, touched.Round(time.Microsecond))
	printVerbose("released cleanly\n")
	return nil
}
