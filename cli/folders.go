// SPDX-License-Identifier: GPL-3.0-or-later
package cli

import (
	"fmt"
	"strconv"

	"github.com/CrawX/go-instapaper-sorter/triage"

	"github.com/spf13/cobra"
)

func (a *app) foldersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List folders and the keys they are bound to",
		Args:  cobra.NoArgs,
		RunE:  a.runFolders,
	}
}

func (a *app) runFolders(cmd *cobra.Command, args []string) error {
	client, err := a.client(cmd.Context())
	if err != nil {
		return err
	}

	folders, err := client.ListFolders(cmd.Context())
	if err != nil {
		return fmt.Errorf("could not list folders: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(folders) == 0 {
		fmt.Fprintln(out, "No folders.")
		return nil
	}

	for i, f := range folders {
		key := "-"
		if i < triage.MaxKeys {
			key = strconv.Itoa(i + 1)
		}
		fmt.Fprintf(out, "%s: %s (id=%d)\n", key, f.Title, f.Id)
	}
	return nil
}
