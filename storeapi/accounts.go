// storeapi/accounts.go
package storeapi

import (
	"context"
	"net/http"

	"github.com/rings-s/store-api-client/credentials"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	PhoneNumber     string `json:"phone_number,omitempty"`
}

// Register creates an account. The backend sends a verification email; the
// session is not authenticated until Login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	return decode[User](c.http.Post(ctx, "accounts/register/", req))
}

// Login authenticates and seeds the credential store with the returned token
// pair, so every subsequent call on the shared client is authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthSession, error) {
	session, err := decode[AuthSession](c.http.Post(ctx, "accounts/login/", map[string]string{
		"email":    email,
		"password": password,
	}))
	if err != nil {
		return nil, err
	}
	if err := c.http.Credentials().Set(ctx, credentials.Pair{
		Access:  session.Tokens.Access,
		Refresh: session.Tokens.Refresh,
	}); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout invalidates the refresh token server-side and drops the stored pair.
// The local pair is cleared even when the server call fails; a client that
// asked to log out must not stay authenticated.
func (c *Client) Logout(ctx context.Context) error {
	pair, err := c.http.Credentials().Get(ctx)
	if err != nil {
		return c.http.Credentials().Clear(ctx)
	}

	_, postErr := c.http.Post(ctx, "accounts/logout/", map[string]string{
		"refresh_token": pair.Refresh,
	})
	if clearErr := c.http.Credentials().Clear(ctx); clearErr != nil {
		return clearErr
	}
	return postErr
}

// VerifyEmail confirms the address with the emailed token.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	_, err := c.http.Post(ctx, "accounts/verify-email/", map[string]string{"token": token})
	return err
}

// ResendVerification requests a new verification email.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	_, err := c.http.Post(ctx, "accounts/resend-verification/", map[string]string{"email": email})
	return err
}

// RequestPasswordReset starts the reset flow for an email address.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := c.http.Post(ctx, "accounts/password-reset/", map[string]string{"email": email})
	return err
}

// ConfirmPasswordReset completes the reset flow with the emailed token.
func (c *Client) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	_, err := c.http.Post(ctx, "accounts/password-reset-confirm/", map[string]string{
		"token":        token,
		"new_password": newPassword,
	})
	return err
}

// ChangePassword changes the authenticated account's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	_, err := c.http.Post(ctx, "accounts/change-password/", map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	})
	return err
}

// Profile fetches the authenticated account.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	return decode[User](c.http.Get(ctx, "accounts/profile/", nil))
}

// ProfileUpdate carries the mutable profile fields; nil fields are left
// unchanged by the backend.
type ProfileUpdate struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// UpdateProfile patches the authenticated account.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	return decode[User](c.http.Patch(ctx, "accounts/profile/", update))
}

// UploadAvatar replaces the profile image with the file at path.
func (c *Client) UploadAvatar(ctx context.Context, path string) (*User, error) {
	return decode[User](c.http.DoMultiPart(ctx, http.MethodPut, "accounts/profile/",
		nil, map[string]string{"avatar": path}))
}
