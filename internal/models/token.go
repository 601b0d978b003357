package models

// TokenResponse is the body returned by login, register and refresh. The
// refresh token itself travels in an httpOnly cookie, never in the body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
