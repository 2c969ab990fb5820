package api

import (
	"time"

	"github.com/wfm-tools/keeper/internal/model"
)

// parseTimestamp parses a marketplace timestamp. Returns the zero time for
// empty or unparseable input rather than failing the whole listing.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Try without timezone
		t, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return time.Time{}
		}
	}

	return t
}

// ToModel converts an APIItem to model.Item.
func (i *APIItem) ToModel() model.Item {
	return model.Item{
		ID:      i.ID,
		Name:    i.ItemName,
		URLName: i.URLName,
	}
}

// ToModel converts an APIOrder to model.Order. typ is the order side: for
// profile listings it comes from the response array the order arrived in,
// for item listings from the order_type field.
func (o *APIOrder) ToModel(typ model.OrderType) model.Order {
	ord := model.Order{
		ID:         o.ID,
		Type:       typ,
		Quantity:   o.Quantity,
		Platinum:   o.Platinum,
		LastUpdate: parseTimestamp(o.LastUpdate),
	}

	if o.Item != nil {
		ord.Item = model.Item{
			ID:      o.Item.ID,
			Name:    o.Item.En.ItemName,
			URLName: o.Item.URLName,
		}
	}
	if o.User != nil {
		ord.User = o.User.IngameName
	}

	return ord
}
