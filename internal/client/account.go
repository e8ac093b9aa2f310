package client

import (
	"context"

	"github.com/xenking/snapbuy-client/internal/domain/customer"
)

// Account endpoints carry credentials or identity and are never cached.

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// CreateAccount registers a new customer account and returns its session
// token. The account starts in the pending status until the store owner
// accepts it.
func (c *Client) CreateAccount(ctx context.Context, cust customer.Customer, password string) (string, error) {
	body := struct {
		customer.Customer
		Password string `json:"password"`
	}{Customer: cust, Password: password}

	var resp tokenResponse
	if err := c.callJSON(ctx, "/account/create", body, &resp, ""); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// CheckAccount reports whether a username is already taken.
func (c *Client) CheckAccount(ctx context.Context, username string) (bool, error) {
	body := map[string]string{"username": username}
	var resp struct {
		Exists bool `json:"exists"`
	}
	if err := c.callJSON(ctx, "/account/check", body, &resp, ""); err != nil {
		return false, err
	}
	return resp.Exists, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp tokenResponse
	if err := c.callJSON(ctx, "/account/login", credentials{username, password}, &resp, ""); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Me fetches the profile of the session owner.
func (c *Client) Me(ctx context.Context, token string) (*customer.Customer, error) {
	var cust customer.Customer
	if err := c.callJSON(ctx, "/account/me", nil, &cust, token); err != nil {
		return nil, err
	}
	return &cust, nil
}

// ChangePassword rotates the session owner's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword, token string) error {
	body := map[string]string{
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	}
	return c.callJSON(ctx, "/account/change-password", body, nil, token)
}

// DeleteAccount permanently removes the session owner's account. The
// current password must be supplied to confirm the deletion.
func (c *Client) DeleteAccount(ctx context.Context, password, token string) error {
	body := map[string]string{"password": password}
	return c.callJSON(ctx, "/account/delete", body, nil, token)
}
