package dto

// LoginResp is returned on a successful login. Tipo is always "Bearer";
// ExpiresIn is the token lifetime in seconds.
type LoginResp struct {
	Token     string `json:"token"`
	Tipo      string `json:"tipo"`
	ExpiresIn int64  `json:"expiresIn"`
}
