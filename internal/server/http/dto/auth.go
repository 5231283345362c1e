package dto

// CredentialsRequest describes name/password payload for login and register.
type CredentialsRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UserResponse identifies the authenticated account.
type UserResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}
