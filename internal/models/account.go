package models

import "time"

// Account represents an account record in the database.
// Email, Password and Session hold codec ciphertext, never plaintext.
type Account struct {
	ID             string    `json:"id" db:"id"`                           // Primary key
	Username       string    `json:"username" db:"username"`               // Display name, original casing
	Email          string    `json:"email" db:"email"`                     // Encrypted email
	Password       string    `json:"-" db:"password"`                      // Encrypted password
	Session        *string   `json:"session" db:"session"`                 // Encrypted session token, nil until first login
	AboutMe        *string   `json:"about_me" db:"about_me"`               // Optional free text
	ProfilePicture *string   `json:"profile_picture" db:"profile_picture"` // Optional picture reference
	CreatedAt      time.Time `json:"date" db:"created_at"`                 // Creation timestamp
}

// AccountView is the @me payload: the caller's own account with the email decrypted.
// swagger:model AccountView
type AccountView struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Date           time.Time `json:"date"`
	Session        *string   `json:"session"`
	Username       string    `json:"username"`
	AboutMe        *string   `json:"about_me"`
	ProfilePicture *string   `json:"profile_picture"`
	Skins          []SkinRef `json:"skins"`
}

// PublicUser is the profile exposed to anonymous callers.
// swagger:model PublicUser
type PublicUser struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	AboutMe        *string `json:"about_me"`
	ProfilePicture *string `json:"profile_picture"`
}

// SkinRef references a skin owned by an account.
type SkinRef struct {
	ID string `json:"id"`
}
