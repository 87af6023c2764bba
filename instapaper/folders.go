// SPDX-License-Identifier: GPL-3.0-or-later
package instapaper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CrawX/go-instapaper-sorter/domain"

	"github.com/sirupsen/logrus"
)

const endpointListFolders = "/folders/list"

type folderResponse struct {
	Type     string `json:"type"`
	FolderId int64  `json:"folder_id"`
	Title    string `json:"title"`
}

// ListFolders returns the user created folders in the order of the api.
func (c *Client) ListFolders(ctx context.Context) ([]*domain.Folder, error) {
	raw, err := c.Call(ctx, endpointListFolders, nil)
	if err != nil {
		return nil, fmt.Errorf("could not list folders: %w", err)
	}

	folders := []*domain.Folder{}
	if len(raw) == 0 {
		return folders, nil
	}

	entities := []folderResponse{}
	err = json.Unmarshal(raw, &entities)
	if err != nil {
		return nil, malformed(endpointListFolders, fmt.Errorf("could not decode folders: %w", err))
	}

	for _, e := range entities {
		if e.Type != "folder" {
			continue
		}
		if e.FolderId <= 0 {
			return nil, malformed(endpointListFolders, fmt.Errorf("folder %q has no folder_id", e.Title))
		}

		folders = append(folders, &domain.Folder{Id: e.FolderId, Title: e.Title})
	}

	c.l.WithFields(logrus.Fields{"folders": len(folders), "entities": len(entities)}).Debug("Listed folders")
	return folders, nil
}

func malformed(endpoint string, err error) error {
	return &domain.ApiError{Kind: domain.Malformed, Endpoint: endpoint, Err: err}
}
