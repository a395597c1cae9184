package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/skins-api/internal/models"
)

// Client-facing failure messages.
const (
	msgUnauthenticated = "Could not authenticate request."
	msgInvalidCSRF     = "Invalid CSRF token."
)

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.StatusResponse{
		Status:  status,
		Success: false,
		Error:   message,
	})
}
