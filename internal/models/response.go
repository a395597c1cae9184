package models

// StatusResponse is the common JSON envelope.
// swagger:model StatusResponse
type StatusResponse struct {
	// HTTP status mirrored in the body
	// example: 200
	Status int `json:"status"`

	// Whether the operation succeeded
	// example: true
	Success bool `json:"success"`

	// Error message, present on failure
	// example: Name already exists!
	Error string `json:"error,omitempty"`
}

// MeResponse wraps the caller's account.
// swagger:model MeResponse
type MeResponse struct {
	Status  int          `json:"status"`
	Success bool         `json:"success"`
	Account *AccountView `json:"account"`
}

// LoginResponse carries the issued session token in ID.
// swagger:model LoginResponse
type LoginResponse struct {
	// example: 200
	Code    int    `json:"code"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	// Session token to send in x-session
	ID string `json:"ID,omitempty"`
}

// CSRFResponse carries a freshly issued CSRF token.
// swagger:model CSRFResponse
type CSRFResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// UploadResponse carries the id of a stored skin.
// swagger:model UploadResponse
type UploadResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Skin    string `json:"skin,omitempty"`
}
