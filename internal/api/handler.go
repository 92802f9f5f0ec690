// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	practicesession "github.com/remaimber-it/matchdrill/internal/domain/practice_session"
	"github.com/remaimber-it/matchdrill/internal/domain/questionbank"
	"github.com/remaimber-it/matchdrill/internal/ledger"
	"github.com/remaimber-it/matchdrill/internal/service"
	"github.com/remaimber-it/matchdrill/internal/store"
)

const maxBodyBytes = 4 << 20

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	exams  *service.ExamService
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(exams *service.ExamService, logger *slog.Logger) *Handler {
	return &Handler{
		exams:  exams,
		logger: logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// validator is implemented by request bodies with field rules.
type validator interface {
	Validate() error
}

// decodeJSON reads the request body into v. It writes a 400 and returns
// false on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleError maps domain errors onto HTTP statuses. Returns true if an
// error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var status int
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrNoActiveSession):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, practicesession.ErrQuestionLocked),
		errors.Is(err, practicesession.ErrNotChecked),
		errors.Is(err, practicesession.ErrSessionFinished):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidBankName):
		status = http.StatusBadRequest
	case errors.Is(err, questionbank.ErrEmptyBank),
		errors.Is(err, ledger.ErrNothingToRepeat),
		errors.Is(err, ledger.ErrInvalidDocument),
		errors.Is(err, practicesession.ErrSlotOutOfRange),
		errors.Is(err, practicesession.ErrInvalidValue),
		errors.Is(err, practicesession.ErrIndexOutOfRange):
		status = http.StatusUnprocessableEntity
	default:
		h.logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return true
	}

	respondError(w, status, err.Error())
	return true
}
