package main

import (
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/allockit/page"
)

func init() {
	rootCmd.AddCommand(newPagesizeCmd())
}

func newPagesizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagesize",
		Short: "Print the platform page size",
		Long: `The pagesize command queries the operating system for its page size
and prints it. The query is live, not cached.

Example:
  akctl pagesize
  akctl pagesize --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPagesize()
		},
	}
	return cmd
}

func runPagesize() error {
	pageSize := page.Size()
	if pageSize == 0 {
		return errors.New("page size query failed")
	}

	if jsonOut {
		return printJSON(map[string]uint64{"page_size_bytes": uint64(pageSize)})
	}

	printInfo("Page size: %d bytes (%s)\n", pageSize, humanize.IBytes(uint64(pageSize)))
	return nil
}
