// SPDX-License-Identifier: GPL-3.0-or-later
package cli

import (
	"fmt"
	"strconv"

	"github.com/CrawX/go-instapaper-sorter/rules"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) rulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show and edit domain rules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print rules in the order they are matched",
		Args:  cobra.NoArgs,
		RunE:  a.runRulesList,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add <pattern> <folder-id>",
		Short: "Bind an exact host or a .suffix to a folder",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runRulesAdd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <pattern>",
		Short: "Delete a rule",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runRulesRemove,
	})

	return cmd
}

func (a *app) loadTable() (*rules.FileRepository, *rules.Table, error) {
	repository := rules.NewFileRepository(a.conf.RulesFile)
	loaded, err := repository.LoadRules()
	if err != nil {
		return nil, nil, err
	}
	return repository, rules.NewTable(loaded), nil
}

func (a *app) runRulesList(cmd *cobra.Command, args []string) error {
	_, table, err := a.loadTable()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if table.Len() == 0 {
		fmt.Fprintln(out, "No rules.")
		return nil
	}

	for _, r := range table.Rules() {
		fmt.Fprintf(out, "%-40s %d\n", r.Pattern, r.FolderId)
	}
	return nil
}

func (a *app) runRulesAdd(cmd *cobra.Command, args []string) error {
	pattern, err := rules.NormalizePattern(args[0])
	if err != nil {
		return err
	}

	folderId, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid folder id %q", args[1])
	}

	client, err := a.client(cmd.Context())
	if err != nil {
		return err
	}
	folders, err := client.ListFolders(cmd.Context())
	if err != nil {
		return fmt.Errorf("could not list folders: %w", err)
	}

	title := ""
	for _, f := range folders {
		if f.Id == folderId {
			title = f.Title
		}
	}
	if len(title) == 0 {
		return fmt.Errorf("no folder with id %d, see the folders command", folderId)
	}

	repository, table, err := a.loadTable()
	if err != nil {
		return err
	}
	err = table.Save(pattern, folderId)
	if err != nil {
		return err
	}
	err = repository.SaveRules(table.Rules())
	if err != nil {
		return err
	}

	a.l.WithFields(logrus.Fields{"pattern": pattern, "folder": folderId}).Info("Saved rule")
	fmt.Fprintf(cmd.OutOrStdout(), "saved: %s -> %s\n", pattern, title)
	return nil
}

func (a *app) runRulesRemove(cmd *cobra.Command, args []string) error {
	pattern, err := rules.NormalizePattern(args[0])
	if err != nil {
		return err
	}

	repository, table, err := a.loadTable()
	if err != nil {
		return err
	}
	if !table.Remove(pattern) {
		return fmt.Errorf("no rule for %s", pattern)
	}

	err = repository.SaveRules(table.Rules())
	if err != nil {
		return err
	}

	a.l.WithField("pattern", pattern).Info("Removed rule")
	fmt.Fprintf(cmd.OutOrStdout(), "removed: %s\n", pattern)
	return nil
}
