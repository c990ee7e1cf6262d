// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openvolunteering/orghub/internal/domain"
)

// DetailResponse is the structured payload for detail-level action results
// and generic errors.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// FieldErrors maps a field name to its error messages, mirroring the
// validation error shape clients already consume.
type FieldErrors map[string][]string

// respondWithDetail sends a {"detail": ...} payload.
func respondWithDetail(w http.ResponseWriter, code int, detail string) {
	respondWithJSON(w, code, DetailResponse{Detail: detail})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithWorkflowError translates a membership-workflow error into the
// response shape the API promises: field errors on "email" for target
// resolution problems, {"detail": ...} otherwise.
func respondWithWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotValid):
		respondWithJSON(w, http.StatusBadRequest, FieldErrors{"email": {"This user is not valid."}})
	case errors.Is(err, domain.ErrAlreadyInvited):
		respondWithJSON(w, http.StatusBadRequest, FieldErrors{"email": {"This user is already invited to this organization."}})
	case errors.Is(err, domain.ErrNotInvited):
		respondWithJSON(w, http.StatusBadRequest, FieldErrors{"email": {"This user is not invited to this organization."}})
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrOwnerCannotLeave):
		respondWithDetail(w, http.StatusForbidden, "You do not have permission to perform this action.")
	case errors.Is(err, domain.ErrOrganizationNotFound):
		respondWithDetail(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithDetail(w, http.StatusBadRequest, err.Error())
	default:
		respondWithDetail(w, http.StatusInternalServerError, "Internal server error.")
	}
}
