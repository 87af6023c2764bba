// SPDX-License-Identifier: GPL-3.0-or-later
package cli

import (
	"fmt"

	"github.com/CrawX/go-instapaper-sorter/link"

	"github.com/spf13/cobra"
)

const DefaultHistoryLimit = 20

func (a *app) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent moves and how many bookmarks went to each folder",
		Args:  cobra.NoArgs,
		RunE:  a.runHistory,
	}
	cmd.Flags().IntVar(&a.limit, "limit", DefaultHistoryLimit, "number of recent moves to show")
	return cmd
}

func (a *app) runHistory(cmd *cobra.Command, args []string) error {
	if a.limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}

	history, err := a.history()
	if err != nil {
		return err
	}
	defer history.Close()

	moves, err := history.RecentMoves(a.limit)
	if err != nil {
		return err
	}
	counts, err := history.FolderCounts()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(moves) == 0 {
		fmt.Fprintln(out, "No moves yet.")
		return nil
	}

	fmt.Fprintln(out, "Recent moves:")
	for _, m := range moves {
		fmt.Fprintf(out, "  %s  %-6s  %s -> %s  %s\n", m.MovedAt.Local().Format("2006-01-02 15:04"), m.Source, m.Domain, m.FolderTitle, link.ShortTitle(link.DisplayTitle(m.Title)))
	}

	fmt.Fprintln(out, "\nMoves per folder:")
	for _, c := range counts {
		fmt.Fprintf(out, "  %5d  %s (id=%d)\n", c.Moves, c.FolderTitle, c.FolderId)
	}
	return nil
}
