package api

import (
	"io"
	"net/http"
	"time"
)

type ImportResult struct {
	Imported int `json:"imported" example:"12"`
}

// exportLedger downloads the statistics ledger.
// @Summary      Export statistics
// @Description  Returns the ledger document: "<bank>::<index>" mapped to its record.
// @Tags         Ledger
// @Produce      json
// @Success      200  {object}  map[string]StatRecordResponse
// @Failure      500  {object}  map[string]string
// @Router       /ledger/export [get]
func (h *Handler) exportLedger(w http.ResponseWriter, r *http.Request) {
	data, err := h.exams.Ledger().Export()
	if h.handleError(w, err) {
		return
	}

	filename := "matchdrill-stats-" + time.Now().UTC().Format("20060102") + ".json"
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// importLedger merges an exported ledger document.
// @Summary      Import statistics
// @Description  Validates a ledger document and merges it; imported records replace existing ones.
// @Tags         Ledger
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]StatRecordResponse  true  "Ledger document"
// @Success      200   {object}  ImportResult
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string  "invalid ledger document"
// @Failure      500   {object}  map[string]string
// @Router       /ledger/import [post]
func (h *Handler) importLedger(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	n, err := h.exams.Ledger().Import(r.Context(), data)
	if h.handleError(w, err) {
		return
	}
	h.logger.Info("ledger import", "records", n)
	respondJSON(w, http.StatusOK, ImportResult{Imported: n})
}
