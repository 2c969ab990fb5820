package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wfm-tools/keeper/internal/auth"
)

// SignIn exchanges an email and password for credentials. The token comes
// from the Authorization header of the response; the nickname from the
// signed-in user in the body.
func (c *Client) SignIn(ctx context.Context, email, password string) (*auth.Credentials, error) {
	payload := signinRequest{
		Email:    email,
		Password: password,
		AuthType: "header",
	}

	body, header, err := c.doRequest(ctx, http.MethodPost, "/auth/signin", payload)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	token := header.Get("Authorization")
	if token == "" {
		return nil, fmt.Errorf("sign in: response carries no authorization token")
	}

	var resp signinResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("sign in: unmarshal response: %w", err)
	}
	nickname := resp.Payload.User.IngameName
	if nickname == "" {
		return nil, fmt.Errorf("sign in: response carries no ingame name")
	}

	return &auth.Credentials{
		AuthToken: token,
		Nickname:  nickname,
	}, nil
}
