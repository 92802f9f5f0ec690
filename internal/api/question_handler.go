package api

import (
	"net/http"
	"strconv"
)

// questionIndex reads the {index} path value. It writes a 400 and returns
// false when it is not a number.
func questionIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "index must be a number")
		return 0, false
	}
	return index, true
}

// getQuestionStats returns the ledger record of one question.
// @Summary      Question statistics
// @Tags         Stats
// @Produce      json
// @Param        bank   path      string  true  "Bank name"
// @Param        index  path      int     true  "Question index"
// @Success      200    {object}  StatRecordResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /banks/{bank}/questions/{index}/stats [get]
func (h *Handler) getQuestionStats(w http.ResponseWriter, r *http.Request) {
	index, ok := questionIndex(w, r)
	if !ok {
		return
	}

	record, err := h.exams.QuestionStats(r.Context(), r.PathValue("bank"), index)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toStatRecordResponse(record))
}

// toggleFavorite flips the favourite flag of one question.
// @Summary      Toggle favourite
// @Tags         Stats
// @Produce      json
// @Param        bank   path      string  true  "Bank name"
// @Param        index  path      int     true  "Question index"
// @Success      200    {object}  StatRecordResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /banks/{bank}/questions/{index}/favorite [post]
func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	index, ok := questionIndex(w, r)
	if !ok {
		return
	}

	record, err := h.exams.ToggleFavorite(r.Context(), r.PathValue("bank"), index)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toStatRecordResponse(record))
}
