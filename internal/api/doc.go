// Package api provides the Warframe Market REST client.
//
// Endpoint: https://api.warframe.market/v1
//
// Key paths: /auth/signin, /items, /items/{url_name}/orders,
// /profile/{nickname}/orders, /profile/orders/{order_id}
//
// Every request waits on a shared rate limiter before it is sent. Failed
// requests are not retried; callers decide whether a failure is fatal.
package api
