package lemmy

import (
	"context"
	"encoding/json"
	"fmt"
)

type loginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

type loginResponse struct {
	JWT string `json:"jwt"`
}

// Login authenticates against the instance and returns the session JWT.
func (c *Client) Login(ctx context.Context, endpoint, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{
		UsernameOrEmail: username,
		Password:        password,
	})
	if err != nil {
		return "", fmt.Errorf("encoding login request: %w", err)
	}

	data, err := c.postJSON(ctx, endpoint+"/api/v3/user/login", string(body))
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("parsing login response: %w", err)
	}
	if resp.JWT == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return resp.JWT, nil
}
