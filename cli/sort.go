// SPDX-License-Identifier: GPL-3.0-or-later
package cli

import (
	"github.com/CrawX/go-instapaper-sorter/rules"
	"github.com/CrawX/go-instapaper-sorter/terminal"
	"github.com/CrawX/go-instapaper-sorter/triage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) addSortFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&a.dryRun, "dry-run", "n", false, "do not move bookmarks, only show what would be moved")
	cmd.Flags().BoolVar(&a.autoApply, "auto", false, "move bookmarks with a suggestion without asking")
	cmd.Flags().IntVar(&a.pageSize, "page-size", triage.DefaultPageSize, "unread bookmarks fetched per page")
}

func (a *app) sortCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort unread bookmarks interactively (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runSort,
	}
	a.addSortFlags(cmd)
	return cmd
}

func (a *app) runSort(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := a.client(ctx)
	if err != nil {
		return err
	}

	history, err := a.history()
	if err != nil {
		return err
	}
	defer history.Close()

	configs := []triage.ConfigFunc{
		triage.PageSize(a.conf.PageSize),
		triage.WithHistory(history),
	}
	if a.conf.DryRun {
		configs = append(configs, triage.DryRun())
	}
	if a.conf.AutoApply {
		configs = append(configs, triage.AutoApply())
	}

	session, err := triage.NewSession(client, rules.NewFileRepository(a.conf.RulesFile), terminal.NewTerminal(ctx, cmd.InOrStdin(), cmd.OutOrStdout()), configs...)
	if err != nil {
		return err
	}

	a.l.WithFields(logrus.Fields{"rules": a.conf.RulesFile, "dryrun": a.conf.DryRun, "autoapply": a.conf.AutoApply, "pagesize": a.conf.PageSize}).Info("Sorting unread bookmarks")
	if a.conf.DryRun {
		a.l.Warn("Skipping moves and rule learning due to dry-run")
	}

	return session.Run(ctx)
}
