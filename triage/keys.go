// SPDX-License-Identifier: GPL-3.0-or-later
package triage

import (
	"fmt"
	"strconv"

	"github.com/CrawX/go-instapaper-sorter/domain"
)

const MaxKeys = 9

type keyBinding struct {
	key    string
	folder *domain.Folder
}

type catalog struct {
	folders []*domain.Folder
	keys    []keyBinding
}

// newCatalog binds the keys 1..9 to the first folders in api order.
func newCatalog(folders []*domain.Folder) *catalog {
	c := &catalog{folders: folders, keys: []keyBinding{}}
	for i := 0; i < len(folders) && i < MaxKeys; i++ {
		c.keys = append(c.keys, keyBinding{key: strconv.Itoa(i + 1), folder: folders[i]})
	}
	return c
}

func (c *catalog) byKey(key string) *domain.Folder {
	for _, k := range c.keys {
		if k.key == key {
			return k.folder
		}
	}
	return nil
}

func (c *catalog) byId(folderId int64) *domain.Folder {
	for _, f := range c.folders {
		if f.Id == folderId {
			return f
		}
	}
	return nil
}

// title names a folder, including ids referenced by stale rules.
func (c *catalog) title(folderId int64) string {
	if f := c.byId(folderId); f != nil {
		return f.Title
	}
	return fmt.Sprintf("unknown folder (id=%d)", folderId)
}
