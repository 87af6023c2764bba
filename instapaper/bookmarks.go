// SPDX-License-Identifier: GPL-3.0-or-later
package instapaper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/CrawX/go-instapaper-sorter/domain"

	"github.com/sirupsen/logrus"
)

const (
	DefaultPageSize = 25

	endpointListBookmarks = "/bookmarks/list"
	endpointMoveBookmark  = "/bookmarks/move"
)

type bookmarkResponse struct {
	Type       string `json:"type"`
	BookmarkId int64  `json:"bookmark_id"`
	Title      string `json:"title"`
	Url        string `json:"url"`
}

type bookmarksResponse struct {
	Bookmarks []bookmarkResponse `json:"bookmarks"`
}

// ListUnread returns at most limit bookmarks of the unread folder. Other
// entities in the response (user, meta, highlights) are skipped.
func (c *Client) ListUnread(ctx context.Context, limit int) ([]*domain.Bookmark, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	raw, err := c.Call(ctx, endpointListBookmarks, url.Values{
		"folder_id": {"unread"},
		"limit":     {strconv.Itoa(limit)},
	})
	if err != nil {
		return nil, fmt.Errorf("could not list unread bookmarks: %w", err)
	}

	entities, err := decodeBookmarks(raw)
	if err != nil {
		return nil, malformed(endpointListBookmarks, err)
	}

	bookmarks := []*domain.Bookmark{}
	for _, e := range entities {
		if e.Type != "bookmark" {
			continue
		}
		if e.BookmarkId <= 0 {
			return nil, malformed(endpointListBookmarks, fmt.Errorf("bookmark %q has no bookmark_id", e.Title))
		}
		if len(bookmarks) == limit {
			break
		}

		bookmarks = append(bookmarks, &domain.Bookmark{Id: e.BookmarkId, Title: e.Title, Url: e.Url})
	}

	c.l.WithFields(logrus.Fields{"bookmarks": len(bookmarks), "limit": limit}).Debug("Listed unread bookmarks")
	return bookmarks, nil
}

// decodeBookmarks accepts both the current object response and the older
// flat list of typed entities.
func decodeBookmarks(raw json.RawMessage) ([]bookmarkResponse, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	if bytes.HasPrefix(raw, []byte("[")) {
		entities := []bookmarkResponse{}
		err := json.Unmarshal(raw, &entities)
		if err != nil {
			return nil, fmt.Errorf("could not decode bookmarks: %w", err)
		}
		return entities, nil
	}

	resp := &bookmarksResponse{}
	err := json.Unmarshal(raw, resp)
	if err != nil {
		return nil, fmt.Errorf("could not decode bookmarks: %w", err)
	}
	return resp.Bookmarks, nil
}

// Move files a bookmark into a folder.
func (c *Client) Move(ctx context.Context, bookmarkId int64, folderId int64) error {
	_, err := c.Call(ctx, endpointMoveBookmark, url.Values{
		"bookmark_id": {strconv.FormatInt(bookmarkId, 10)},
		"folder_id":   {strconv.FormatInt(folderId, 10)},
	})
	if err != nil {
		return fmt.Errorf("could not move bookmark %d to folder %d: %w", bookmarkId, folderId, err)
	}

	c.l.WithFields(logrus.Fields{"bookmark": bookmarkId, "folder": folderId}).Debug("Moved bookmark")
	return nil
}
