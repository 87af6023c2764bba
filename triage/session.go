// SPDX-License-Identifier: GPL-3.0-or-later
package triage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/CrawX/go-instapaper-sorter/domain"
	"github.com/CrawX/go-instapaper-sorter/link"
	"github.com/CrawX/go-instapaper-sorter/log"
	"github.com/CrawX/go-instapaper-sorter/rules"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultPageSize = 25

var ErrNoFolders = errors.New("no user-created folders, create folders in Instapaper first")

type outcome int

const (
	nextItem = outcome(iota)
	sameItem
	quit
)

// Session files unread bookmarks one page at a time. It suggests a folder
// per bookmark from the rule table and learns from the user's choices.
type Session struct {
	instapaper domain.Instapaper
	rules      domain.RuleRepository
	prompter   domain.Prompter

	configuration *configuration
	runId         string

	l *logrus.Logger
}

// run is the state of one Run: the folder catalog, the rule table and
// counters for the final log line.
type run struct {
	catalog *catalog
	table   *rules.Table

	moved, failed, skipped, learned, saved int
}

type item struct {
	bookmark   *domain.Bookmark
	domain     string
	suggestion int64
	suggested  bool
}

func NewSession(instapaper domain.Instapaper, ruleRepository domain.RuleRepository, prompter domain.Prompter, configFunc ...ConfigFunc) (*Session, error) {
	config := &configuration{PageSize: DefaultPageSize}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Session{
		instapaper:    instapaper,
		rules:         ruleRepository,
		prompter:      prompter,
		configuration: config,
		runId:         uuid.NewString(),
		l:             log.Logger(log.LOG_SORTER),
	}, nil
}

// Run triages until the user quits, the input ends or no unread bookmarks
// are left. Once the rules are loaded they are persisted exactly once when
// Run returns, also if it returns an error.
func (s *Session) Run(ctx context.Context) error {
	folders, err := s.instapaper.ListFolders(ctx)
	if err != nil {
		return fmt.Errorf("could not list folders: %w", err)
	}
	if len(folders) == 0 {
		return ErrNoFolders
	}

	loaded, err := s.rules.LoadRules()
	if err != nil {
		return fmt.Errorf("could not load rules: %w", err)
	}
	r := &run{
		catalog: newCatalog(folders),
		table:   rules.NewTable(loaded),
	}

	s.l.WithFields(logrus.Fields{"run": s.runId, "folders": len(folders), "rules": r.table.Len(), "dryrun": s.configuration.DryRun, "autoapply": s.configuration.AutoApply}).Info("Starting triage")
	s.printControls(r.catalog)

	err = s.loop(ctx, r)

	saveErr := s.rules.SaveRules(r.table.Rules())
	s.l.WithFields(logrus.Fields{"run": s.runId, "moved": r.moved, "failed": r.failed, "skipped": r.skipped, "learned": r.learned, "saved": r.saved}).Info("Finished triage")

	if err != nil {
		if saveErr != nil {
			s.l.WithField("error", saveErr).Error("Could not persist rules")
		}
		return err
	}
	if saveErr != nil {
		return fmt.Errorf("could not persist rules: %w", saveErr)
	}
	return nil
}

func (s *Session) loop(ctx context.Context, r *run) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := s.instapaper.ListUnread(ctx, s.configuration.PageSize)
		if err != nil {
			return fmt.Errorf("could not fetch unread bookmarks: %w", err)
		}

		if len(page) == 0 {
			s.prompter.Printf("No unread bookmarks.\n")
			return nil
		}
		s.l.WithFields(logrus.Fields{"run": s.runId, "bookmarks": len(page)}).Debug("Fetched page")

		for _, b := range page {
			o, err := s.triage(ctx, r, b)
			if err != nil {
				return err
			}
			if o == quit {
				return nil
			}
		}
	}
}

func (s *Session) triage(ctx context.Context, r *run, b *domain.Bookmark) (outcome, error) {
	it := &item{
		bookmark: b,
		domain:   link.DomainOf(b.Url),
	}
	it.suggestion, it.suggested = r.table.Suggest(it.domain)
	s.present(r.catalog, it)

	// an item the automatic move did not file stays unread and is shown
	// again on the next page, so it has to be decided by hand now
	if s.configuration.AutoApply && it.suggested {
		moved, err := s.move(ctx, r, it, it.suggestion, domain.MovedAuto)
		if err != nil {
			return quit, err
		}
		if moved {
			s.prompter.Printf("\n")
			return nextItem, nil
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return quit, err
		}

		line, err := s.prompter.Prompt("> ")
		if errors.Is(err, io.EOF) {
			return quit, nil
		}
		if err != nil {
			return quit, fmt.Errorf("could not read command: %w", err)
		}

		o, err := s.handle(ctx, r, it, strings.ToLower(strings.TrimSpace(line)))
		if err != nil || o == quit {
			return o, err
		}
		if o == nextItem {
			s.prompter.Printf("\n")
			return o, nil
		}
	}
}

func (s *Session) handle(ctx context.Context, r *run, it *item, cmd string) (outcome, error) {
	switch cmd {
	case "q":
		return quit, nil
	case "n", "":
		r.skipped++
		return nextItem, nil
	case "a":
		if !it.suggested {
			s.prompter.Printf("  no suggestion\n")
			return nextItem, nil
		}
		_, err := s.move(ctx, r, it, it.suggestion, domain.MovedByRule)
		return nextItem, err
	case "s":
		return s.saveRule(r, it)
	}

	folder := r.catalog.byKey(cmd)
	if folder == nil {
		s.prompter.Printf("  unknown command\n")
		return sameItem, nil
	}

	_, err := s.move(ctx, r, it, folder.Id, domain.MovedManually)
	return nextItem, err
}

// move reports whether the bookmark was filed. Non fatal failures are only
// reported; the returned error ends the session.
func (s *Session) move(ctx context.Context, r *run, it *item, folderId int64, source domain.MoveSource) (bool, error) {
	title := r.catalog.title(folderId)
	fields := logrus.Fields{"bookmark": it.bookmark.Id, "domain": it.domain, "folder": folderId, "source": source}

	if s.configuration.DryRun {
		s.l.WithFields(fields).Info("Not moving bookmark due to dry-run")
		s.prompter.Printf("  would move -> %s (dry-run)\n", title)
		return false, nil
	}

	err := s.instapaper.Move(ctx, it.bookmark.Id, folderId)
	if domain.IsFatal(err) {
		return false, err
	}
	if err != nil && ctx.Err() != nil {
		s.l.WithFields(fields).Warn("Interrupted while moving bookmark")
		return false, ctx.Err()
	}
	if err != nil {
		r.failed++
		s.l.WithFields(fields).WithField("error", err).Warn("Could not move bookmark")
		s.prompter.Printf("  move failed: %v\n", err)
		return false, nil
	}

	r.moved++
	s.l.WithFields(fields).Info("Moved bookmark")
	s.prompter.Printf("  moved -> %s\n", title)

	// manual moves teach the table, unless the domain already has a rule
	if source == domain.MovedManually && r.table.Learn(it.domain, folderId) {
		r.learned++
		s.prompter.Printf("  learned: %s -> %s\n", it.domain, title)
	}

	s.journal(it, folderId, title, source)
	return true, nil
}

func (s *Session) saveRule(r *run, it *item) (outcome, error) {
	if len(it.domain) == 0 {
		s.prompter.Printf("  no domain; cannot save rule\n")
		return nextItem, nil
	}

	s.prompter.Printf("Pick folder key to bind this domain to:\n")
	for _, k := range r.catalog.keys {
		s.prompter.Printf("  %s: %s\n", k.key, k.folder.Title)
	}

	line, err := s.prompter.Prompt("folder key> ")
	if errors.Is(err, io.EOF) {
		return quit, nil
	}
	if err != nil {
		return quit, fmt.Errorf("could not read folder key: %w", err)
	}

	folder := r.catalog.byKey(strings.TrimSpace(line))
	if folder == nil {
		s.prompter.Printf("  invalid key\n")
		return nextItem, nil
	}

	err = r.table.Save(it.domain, folder.Id)
	if err != nil {
		return nextItem, fmt.Errorf("could not save rule: %w", err)
	}
	r.saved++

	err = s.rules.SaveRules(r.table.Rules())
	if err != nil {
		s.l.WithFields(logrus.Fields{"domain": it.domain, "error": err}).Warn("Could not persist rules, retrying on exit")
		s.prompter.Printf("  saved for this session only: %v\n", err)
		return nextItem, nil
	}

	s.l.WithFields(logrus.Fields{"domain": it.domain, "folder": folder.Id}).Info("Saved rule")
	s.prompter.Printf("  saved: %s -> %s\n", it.domain, folder.Title)
	return nextItem, nil
}

func (s *Session) journal(it *item, folderId int64, title string, source domain.MoveSource) {
	if s.configuration.History == nil {
		return
	}

	err := s.configuration.History.SaveMove(domain.MoveRecord{
		RunId:       s.runId,
		BookmarkId:  it.bookmark.Id,
		Title:       it.bookmark.Title,
		Domain:      it.domain,
		FolderId:    folderId,
		FolderTitle: title,
		Source:      source,
	})
	if err != nil {
		s.l.WithFields(logrus.Fields{"bookmark": it.bookmark.Id, "error": err}).Warn("Could not journal move")
	}
}

func (s *Session) printControls(cat *catalog) {
	s.prompter.Printf("Folders (1..%d):\n", len(cat.keys))
	for _, k := range cat.keys {
		s.prompter.Printf("  %s: %s (id=%d)\n", k.key, k.folder.Title, k.folder.Id)
	}
	s.prompter.Printf("\nControls: [1-%d]=move  [a]=auto(move by rule)  [s]=save rule for domain  [n]=skip  [q]=quit\n\n", len(cat.keys))
}

func (s *Session) present(cat *catalog, it *item) {
	s.prompter.Printf("[%d] %s\n", it.bookmark.Id, link.DisplayTitle(it.bookmark.Title))
	if len(it.domain) > 0 {
		s.prompter.Printf("  %s\n", it.domain)
	} else {
		s.prompter.Printf("  %s\n", strings.TrimSpace(it.bookmark.Url))
	}
	if it.suggested {
		s.prompter.Printf("  suggestion: %s\n", cat.title(it.suggestion))
	}
}
