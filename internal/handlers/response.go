package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/skins-api/internal/models"
	"github.com/sbilibin2017/skins-api/internal/services"
)

// Client-facing messages.
const (
	msgUnauthenticated = "Could not authenticate request."
	msgBadForm         = "Malformed request body."
	msgNotFound        = "Not found"
)

// clientMessages maps validation errors to the text shown to clients.
var clientMessages = map[error]string{
	services.ErrUsernameExists:       "Name already exists!",
	services.ErrEmailExists:          "Email already exists!",
	services.ErrPasswordMismatch:     "Password does not match",
	services.ErrUsernameRequired:     "Username is required.",
	services.ErrEmailRequired:        "Email is required.",
	services.ErrPasswordRequired:     "Password is required.",
	services.ErrUsernameTooLong:      "Username cannot be larger than 16 characters!",
	services.ErrEmailTooLong:         "Email cannot be larger than 256 characters!",
	services.ErrPasswordTooLong:      "Password cannot be larger than 256 characters!",
	services.ErrAboutMeTooLong:       "About me cannot be larger than 256 characters!",
	services.ErrAccountNotFound:      "Account not found.",
	services.ErrUserNotFound:         "User not found",
	services.ErrSkinMissing:          "Could not find skin file.",
	services.ErrSkinTooLarge:         "Skin file is too large. It must be less than 5KB!",
	services.ErrTitleTooLong:         "Title cannot be larger than 16 characters!",
	services.ErrDescriptionTooLong:   "Description cannot be larger than 256 characters!",
	services.ErrUnsupportedMediaType: "Skin must be a png or jpeg!",
	services.ErrInvalidDimensions:    "Skin must be 64x64 or 64x32",
	services.ErrSkinExists:           "Skin file already exists!",
	services.ErrTitleExists:          "Title already exists!",
}

// clientMessage returns the client text for err and whether err is a known
// validation error. Unknown errors are reported with their own text.
func clientMessage(err error) (string, bool) {
	for target, msg := range clientMessages {
		if errors.Is(err, target) {
			return msg, true
		}
	}
	return err.Error(), false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeStatus writes the common envelope. An empty message means success.
func writeStatus(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.StatusResponse{
		Status:  status,
		Success: message == "",
		Error:   message,
	})
}
