// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . History
type MoveSource string

const (
	MovedManually = MoveSource("manual")
	MovedByRule   = MoveSource("rule")
	MovedAuto     = MoveSource("auto")
)

type MoveRecord struct {
	RunId       string
	BookmarkId  int64
	Title       string
	Domain      string
	FolderId    int64
	FolderTitle string
	Source      MoveSource
}

type SavedMove struct {
	Id          int64
	RunId       string
	BookmarkId  int64
	Title       string
	Domain      string
	FolderId    int64
	FolderTitle string
	Source      MoveSource
	MovedAt     time.Time
}

type FolderCount struct {
	FolderId    int64
	FolderTitle string
	Moves       int
}

type History interface {
	Close() error
	SaveMove(move MoveRecord) error
	RecentMoves(limit int) ([]*SavedMove, error)
	FolderCounts() ([]*FolderCount, error)
}
