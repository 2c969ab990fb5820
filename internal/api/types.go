package api

// The marketplace wraps every response in a "payload" envelope. Types here
// mirror the wire layout; convert.go maps them to model types.

// signinRequest is the body of POST /auth/signin.
type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	AuthType string `json:"auth_type"`
}

// signinResponse from POST /auth/signin. The token itself arrives in the
// Authorization response header, not in the body.
type signinResponse struct {
	Payload struct {
		User struct {
			IngameName string `json:"ingame_name"`
		} `json:"user"`
	} `json:"payload"`
}

// itemsResponse from GET /items
type itemsResponse struct {
	Payload struct {
		Items []APIItem `json:"items"`
	} `json:"payload"`
}

// APIItem is one tradable item from the catalog.
type APIItem struct {
	ID       string `json:"id"`
	ItemName string `json:"item_name"`
	URLName  string `json:"url_name"`
}

// profileOrdersResponse from GET /profile/{nickname}/orders
type profileOrdersResponse struct {
	Payload struct {
		SellOrders []APIOrder `json:"sell_orders"`
		BuyOrders  []APIOrder `json:"buy_orders"`
	} `json:"payload"`
}

// itemOrdersResponse from GET /items/{url_name}/orders
type itemOrdersResponse struct {
	Payload struct {
		Orders []APIOrder `json:"orders"`
	} `json:"payload"`
}

// APIOrder is one order as the marketplace returns it. The two listing
// endpoints fill it differently: profile listings omit order_type (implied
// by the response array) and nest the item, while item listings carry
// order_type, platform, and the posting user.
type APIOrder struct {
	ID         string        `json:"id"`
	OrderType  string        `json:"order_type"`
	Platinum   int           `json:"platinum"`
	Quantity   int           `json:"quantity"`
	Visible    bool          `json:"visible"`
	Platform   string        `json:"platform"`
	LastUpdate string        `json:"last_update"`
	Item       *APIOrderItem `json:"item"`
	User       *APIOrderUser `json:"user"`
}

// APIOrderItem is the item nested in profile order listings. The display
// name sits under a per-language key; only "en" is requested.
type APIOrderItem struct {
	ID      string `json:"id"`
	URLName string `json:"url_name"`
	En      struct {
		ItemName string `json:"item_name"`
	} `json:"en"`
}

// APIOrderUser is the posting user nested in item order listings.
type APIOrderUser struct {
	IngameName string `json:"ingame_name"`
	Status     string `json:"status"`
}

// updateOrderRequest is the body of PUT /profile/orders/{order_id}.
// Price and quantity are re-submitted unchanged; the call exists to bump
// the order's last-update timestamp.
type updateOrderRequest struct {
	Platinum int  `json:"platinum"`
	Quantity int  `json:"quantity"`
	Visible  bool `json:"visible"`
}
