// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"embed"
	"fmt"
	"time"

	"github.com/CrawX/go-instapaper-sorter/domain"
	"github.com/CrawX/go-instapaper-sorter/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Persistence journals every move done by a triage run.
type Persistence struct {
	db  *sqlx.DB
	now func() time.Time
	l   *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Debug("Connected")

	migrationSource := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db:  db,
		now: time.Now,
		l:   l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Debug("Disconnected")
	return nil
}

func (p *Persistence) SaveMove(move domain.MoveRecord) error {
	_, err := p.db.Exec(
		"INSERT INTO moves (runid, bookmarkid, title, domain, folderid, foldertitle, source, movedat) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		move.RunId,
		move.BookmarkId,
		move.Title,
		move.Domain,
		move.FolderId,
		move.FolderTitle,
		string(move.Source),
		p.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("could not save move: %w", err)
	}

	p.l.WithFields(logrus.Fields{"bookmark": move.BookmarkId, "folder": move.FolderId, "source": move.Source}).Debug("Persisted move")
	return nil
}

// RecentMoves returns up to limit moves, newest first.
func (p *Persistence) RecentMoves(limit int) ([]*domain.SavedMove, error) {
	dbMoves := []struct {
		Id          int64
		RunId       string
		BookmarkId  int64
		Title       string
		Domain      string
		FolderId    int64
		FolderTitle string
		Source      string
		MovedAt     time.Time
	}{}

	err := p.db.Select(
		&dbMoves,
		`SELECT id, runid, bookmarkid, title, domain, folderid, foldertitle, source, movedat FROM moves ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	moves := []*domain.SavedMove{}
	for _, m := range dbMoves {
		moves = append(
			moves,
			&domain.SavedMove{
				Id:          m.Id,
				RunId:       m.RunId,
				BookmarkId:  m.BookmarkId,
				Title:       m.Title,
				Domain:      m.Domain,
				FolderId:    m.FolderId,
				FolderTitle: m.FolderTitle,
				Source:      domain.MoveSource(m.Source),
				MovedAt:     m.MovedAt,
			},
		)
	}

	return moves, nil
}

// FolderCounts returns the number of moves per folder, busiest first.
func (p *Persistence) FolderCounts() ([]*domain.FolderCount, error) {
	dbCounts := []struct {
		FolderId    int64
		FolderTitle string
		Moves       int
	}{}

	err := p.db.Select(
		&dbCounts,
		`SELECT folderid, MAX(foldertitle) AS foldertitle, COUNT(*) AS moves FROM moves GROUP BY folderid ORDER BY moves DESC, folderid`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	counts := []*domain.FolderCount{}
	for _, c := range dbCounts {
		counts = append(counts, &domain.FolderCount{FolderId: c.FolderId, FolderTitle: c.FolderTitle, Moves: c.Moves})
	}

	return counts, nil
}
