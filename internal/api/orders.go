package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wfm-tools/keeper/internal/model"
)

const (
	platformPC   = "pc"
	statusInGame = "ingame"
)

// MyOrders fetches the authenticated user's open orders: visible sell
// orders first, then visible buy orders. Invisible orders are dropped.
func (c *Client) MyOrders(ctx context.Context) ([]model.Order, error) {
	if c.creds == nil {
		return nil, ErrNoCredentials
	}

	var resp profileOrdersResponse
	path := "/profile/" + url.PathEscape(c.creds.Nickname) + "/orders"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("list own orders: %w", err)
	}

	orders := make([]model.Order, 0, len(resp.Payload.SellOrders)+len(resp.Payload.BuyOrders))
	for i := range resp.Payload.SellOrders {
		o := &resp.Payload.SellOrders[i]
		if o.Visible {
			orders = append(orders, o.ToModel(model.OrderTypeSell))
		}
	}
	for i := range resp.Payload.BuyOrders {
		o := &resp.Payload.BuyOrders[i]
		if o.Visible {
			orders = append(orders, o.ToModel(model.OrderTypeBuy))
		}
	}

	// Profile listings carry no user block; the owner is the caller.
	for i := range orders {
		orders[i].User = c.creds.Nickname
	}

	return orders, nil
}

// ItemOrders fetches the order book for one item, keeping only PC orders
// whose owner is currently in game. Buy orders come back highest price
// first, sell orders lowest price first.
func (c *Client) ItemOrders(ctx context.Context, urlName string) (*model.OrderBook, error) {
	var resp itemOrdersResponse
	path := "/items/" + url.PathEscape(urlName) + "/orders"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("list orders for %s: %w", urlName, err)
	}

	orders := make([]model.Order, 0, len(resp.Payload.Orders))
	for i := range resp.Payload.Orders {
		o := &resp.Payload.Orders[i]
		if o.Platform != platformPC {
			continue
		}
		if o.User == nil || o.User.Status != statusInGame {
			continue
		}
		orders = append(orders, o.ToModel(model.OrderType(o.OrderType)))
	}

	book := model.NewOrderBook(orders)
	return &book, nil
}

// UpdateOrder re-submits an order's current price and quantity, which
// bumps its server-side last-update timestamp without changing its terms.
func (c *Client) UpdateOrder(ctx context.Context, order model.Order) error {
	if c.creds == nil {
		return ErrNoCredentials
	}

	payload := updateOrderRequest{
		Platinum: order.Platinum,
		Quantity: order.Quantity,
		Visible:  true,
	}

	path := "/profile/orders/" + url.PathEscape(order.ID)
	if err := c.send(ctx, http.MethodPut, path, payload, nil); err != nil {
		return fmt.Errorf("update order %s: %w", order.ID, err)
	}

	return nil
}
