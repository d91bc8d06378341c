// Package apierr writes the JSON error and success payloads used by every
// API handler.
//
// Error bodies follow the shape the bot and web clients already parse:
//
//	{"detail": "User not found"}
//
// Validation failures (422) carry per-field messages instead:
//
//	{"detail": [{"field": "discord_user_id", "message": "..."}]}
package apierr

import (
	"encoding/json"
	"net/http"
)

// FieldError is one per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type validationResponse struct {
	Detail []FieldError `json:"detail"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Detail writes {"detail": msg} with the given status code.
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, detailResponse{Detail: msg})
}

// BadRequest writes a 400. Used for duplicate-identity conflicts, matching
// the status the original clients expect for "User already exists".
func BadRequest(w http.ResponseWriter, msg string) {
	Detail(w, http.StatusBadRequest, msg)
}

// Unauthorized writes a 401.
func Unauthorized(w http.ResponseWriter, msg string) {
	Detail(w, http.StatusUnauthorized, msg)
}

// NotFound writes a 404.
func NotFound(w http.ResponseWriter, msg string) {
	Detail(w, http.StatusNotFound, msg)
}

// Validation writes a 422 with per-field messages.
func Validation(w http.ResponseWriter, errs []FieldError) {
	JSON(w, http.StatusUnprocessableEntity, validationResponse{Detail: errs})
}

// Internal writes a generic 500. The cause is logged at the call site, not
// echoed to the client.
func Internal(w http.ResponseWriter) {
	Detail(w, http.StatusInternalServerError, "Internal server error")
}
