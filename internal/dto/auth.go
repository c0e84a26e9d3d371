package dto

// LoginRequest carries the single configured admin credential. Email is
// compared case-insensitively with ADMIN_LOGIN_EMAIL when one is set.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the bearer token that unlocks the lead and moderation routes.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
