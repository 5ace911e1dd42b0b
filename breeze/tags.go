package breeze

import (
	"context"
	"fmt"
)

// ListTags retrieves tags, optionally limited to a single folder
func (c *Client) ListTags(ctx context.Context, folderID string) ([]Tag, error) {
	var qp params
	qp.addString("folder_id", folderID)

	body, err := c.get(ctx, "/api/tags/list_tags", &qp)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	var tags []Tag
	if err := decodeInto(body, &tags); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(tags)).Msg("Retrieved tags from Breeze")
	return tags, nil
}

// ListTagFolders retrieves all tag folders
func (c *Client) ListTagFolders(ctx context.Context) ([]TagFolder, error) {
	body, err := c.get(ctx, "/api/tags/list_folders", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag folders: %w", err)
	}

	var folders []TagFolder
	if err := decodeInto(body, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}
