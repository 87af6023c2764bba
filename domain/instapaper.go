// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "context"

//go:generate mockgen -destination=mocks/instapaper.go -package=mocks . Instapaper
type Folder struct {
	Id    int64
	Title string
}

type Bookmark struct {
	Id    int64
	Title string
	Url   string
}

type Credentials struct {
	Token       string `json:"oauth_token"`
	TokenSecret string `json:"oauth_token_secret"`
}

type Instapaper interface {
	ListFolders(ctx context.Context) ([]*Folder, error)
	ListUnread(ctx context.Context, limit int) ([]*Bookmark, error)
	Move(ctx context.Context, bookmarkId int64, folderId int64) error
}
