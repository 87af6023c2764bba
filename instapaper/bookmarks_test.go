// SPDX-License-Identifier: GPL-3.0-or-later
package instapaper

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/CrawX/go-instapaper-sorter/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListUnread(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		body     string
		expected []*domain.Bookmark
		err      string
	}{
		{
			"object",
			25,
			`{"user":{"type":"user","user_id":1},"bookmarks":[{"type":"bookmark","bookmark_id":10,"title":"A","url":"https://a.example.com/"},{"type":"bookmark","bookmark_id":11,"title":"","url":"https://b.org/"}],"highlights":[]}`,
			[]*domain.Bookmark{{Id: 10, Title: "A", Url: "https://a.example.com/"}, {Id: 11, Title: "", Url: "https://b.org/"}},
			"",
		},
		{
			"flatlist",
			25,
			`[{"type":"meta"},{"type":"user","user_id":1},{"type":"bookmark","bookmark_id":10,"title":"A","url":"https://a.example.com/"}]`,
			[]*domain.Bookmark{{Id: 10, Title: "A", Url: "https://a.example.com/"}},
			"",
		},
		{
			"truncated",
			1,
			`{"bookmarks":[{"type":"bookmark","bookmark_id":10},{"type":"bookmark","bookmark_id":11}]}`,
			[]*domain.Bookmark{{Id: 10}},
			"",
		},
		{"empty", 25, `{"bookmarks":[]}`, []*domain.Bookmark{}, ""},
		{"nobookmarks", 25, `{"user":{}}`, []*domain.Bookmark{}, ""},
		{"missingid", 25, `{"bookmarks":[{"type":"bookmark","title":"A"}]}`, nil, `bookmark "A" has no bookmark_id`},
		{"wrongtype", 25, `{"bookmarks":"none"}`, nil, "could not decode bookmarks"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/bookmarks/list", r.URL.Path)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "unread", r.PostForm.Get("folder_id"))
				assert.Equal(t, fmt.Sprint(tc.limit), r.PostForm.Get("limit"))
				fmt.Fprint(w, tc.body)
			})

			bookmarks, err := client.ListUnread(context.Background(), tc.limit)
			if len(tc.err) == 0 {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, bookmarks)
			} else {
				assert.Nil(t, bookmarks)
				assert.ErrorContains(t, err, tc.err)
				assert.False(t, domain.IsFatal(err))
			}
		})
	}
}

func TestClient_ListUnreadDefaultLimit(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "25", r.PostForm.Get("limit"))
		fmt.Fprint(w, `{"bookmarks":[]}`)
	})

	_, err := client.ListUnread(context.Background(), 0)
	assert.NoError(t, err)
}

func TestClient_Move(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/move", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "10", r.PostForm.Get("bookmark_id"))
		assert.Equal(t, "3", r.PostForm.Get("folder_id"))
		fmt.Fprint(w, `[{"type":"bookmark","bookmark_id":10}]`)
	})

	err := client.Move(context.Background(), 10, 3)

	assert.NoError(t, err)
	assert.Equal(t, int32(1), *hits)
}

func TestClient_MoveFailed(t *testing.T) {
	tests := []struct {
		name   string
		status int
		fatal  bool
	}{
		{"remote", http.StatusBadRequest, false},
		{"exhausted", http.StatusServiceUnavailable, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, failing(100, tc.status, ``))

			err := client.Move(context.Background(), 10, 3)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "could not move bookmark 10 to folder 3: ")
			assert.Equal(t, tc.fatal, domain.IsFatal(err))
		})
	}
}
