package api

import (
	"context"
	"fmt"

	"github.com/wfm-tools/keeper/internal/model"
)

// Items fetches the full tradable item catalog, keyed by display name.
// Name collisions keep the last entry the server sent.
func (c *Client) Items(ctx context.Context) (map[string]model.Item, error) {
	var resp itemsResponse
	if err := c.get(ctx, "/items", &resp); err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	items := make(map[string]model.Item, len(resp.Payload.Items))
	for i := range resp.Payload.Items {
		item := resp.Payload.Items[i].ToModel()
		items[item.Name] = item
	}

	return items, nil
}
