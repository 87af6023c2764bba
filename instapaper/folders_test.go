// SPDX-License-Identifier: GPL-3.0-or-later
package instapaper

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/CrawX/go-instapaper-sorter/domain"
	"github.com/stretchr/testify/assert"
)

func TestClient_ListFolders(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []*domain.Folder
		err      string
	}{
		{
			"ok",
			`[{"type":"folder","folder_id":1,"title":"Tech","position":1},{"type":"folder","folder_id":2,"title":"News"},{"type":"meta"}]`,
			[]*domain.Folder{{Id: 1, Title: "Tech"}, {Id: 2, Title: "News"}},
			"",
		},
		{"empty", `[]`, []*domain.Folder{}, ""},
		{"emptybody", ``, []*domain.Folder{}, ""},
		{"missingid", `[{"type":"folder","title":"Tech"}]`, nil, `malformed error calling /folders/list: folder "Tech" has no folder_id`},
		{"object", `{"folders":[]}`, nil, "malformed error calling /folders/list: could not decode folders"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/folders/list", r.URL.Path)
				fmt.Fprint(w, tc.body)
			})

			folders, err := client.ListFolders(context.Background())
			if len(tc.err) == 0 {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, folders)
			} else {
				assert.Nil(t, folders)
				assert.ErrorContains(t, err, tc.err)
			}
		})
	}
}

func TestClient_ListFoldersExhausted(t *testing.T) {
	client, _ := newTestClient(t, failing(100, http.StatusInternalServerError, ``))

	folders, err := client.ListFolders(context.Background())

	assert.Nil(t, folders)
	assert.True(t, domain.IsFatal(err))
	assert.ErrorContains(t, err, "could not list folders: ")
}
