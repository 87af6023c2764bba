// SPDX-License-Identifier: GPL-3.0-or-later
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/CrawX/go-instapaper-sorter/config"
	"github.com/CrawX/go-instapaper-sorter/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries the flag values and the loaded configuration shared by all
// commands of one invocation.
type app struct {
	configFile string
	loglevel   string

	dryRun    bool
	autoApply bool
	pageSize  int
	limit     int

	conf    *config.Config
	logFile *os.File
	l       *logrus.Logger
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "instapaper-sorter",
		Short: "Sort unread Instapaper bookmarks into folders",
		Long: `instapaper-sorter walks through your unread Instapaper bookmarks and moves
each one into a folder. Folders are suggested from per-domain rules that
are learned from your choices and stored in rules.json.

Without a subcommand the interactive sort session is started.`,
		PersistentPreRunE: a.setup,
		RunE:              a.runSort,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default <user config dir>/instapaper-sorter/config.toml)")
	rootCmd.PersistentFlags().StringVar(&a.loglevel, "loglevel", "", "log level: debug, info, warn or error")
	a.addSortFlags(rootCmd)

	rootCmd.AddCommand(a.sortCommand())
	rootCmd.AddCommand(a.foldersCommand())
	rootCmd.AddCommand(a.rulesCommand())
	rootCmd.AddCommand(a.historyCommand())
	rootCmd.AddCommand(a.loginCommand())

	return rootCmd
}

// Execute runs the command line until the command finishes or the process
// is interrupted. A second interrupt kills the process.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	return run(ctx, os.Args[1:], os.Stderr)
}

// run executes args and reports a failure through the main logger on
// stderr, also when the log was sent to a file.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	log.InitLogging("warn")
	log.SetOutput(stderr)

	a := &app{}
	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	a.close(stderr)

	if err != nil {
		logger := log.Logger(log.LOG_MAIN)
		if errors.Is(err, context.Canceled) {
			logger.Warn("Interrupted")
		} else {
			logger.WithField("error", err).Error("Command failed")
		}
		return err
	}
	return nil
}

// close releases the log file and sends log output back to stderr.
func (a *app) close(stderr io.Writer) {
	log.SetOutput(stderr)
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.l = log.Logger(log.LOG_MAIN)

	filename := a.configFile
	mustExist := len(filename) > 0
	if !mustExist {
		var err error
		filename, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	conf, err := config.ReadConfig(filename, mustExist)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	level := conf.Level()
	if len(a.loglevel) > 0 {
		level = a.loglevel
	}
	a.logFile, err = log.Configure(level, conf.LogFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dry-run") {
		conf.DryRun = a.dryRun
	}
	if flags.Changed("auto") {
		conf.AutoApply = a.autoApply
	}
	if flags.Changed("page-size") {
		conf.PageSize = a.pageSize
	}

	a.conf = conf
	a.l.WithFields(logrus.Fields{"config": filename, "rules": conf.RulesFile, "database": conf.Database}).Debug("Loaded config")
	return nil
}
