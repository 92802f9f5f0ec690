// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/remaimber-it/matchdrill/internal/infrastructure/metrics"
)

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Banks
	mux.HandleFunc("POST /banks", h.createBank)
	mux.HandleFunc("GET /banks", h.listBanks)
	mux.HandleFunc("GET /banks/{bank}", h.getBank)
	mux.HandleFunc("DELETE /banks/{bank}", h.deleteBank)
	mux.HandleFunc("GET /banks/{bank}/stats", h.getBankStats)

	// Questions
	mux.HandleFunc("GET /banks/{bank}/questions/{index}/stats", h.getQuestionStats)
	mux.HandleFunc("POST /banks/{bank}/questions/{index}/favorite", h.toggleFavorite)

	// Session
	mux.HandleFunc("POST /session", h.createSession)
	mux.HandleFunc("GET /session", h.getSession)
	mux.HandleFunc("DELETE /session", h.deleteSession)
	mux.HandleFunc("PUT /session/answers", h.selectAnswer)
	mux.HandleFunc("POST /session/check", h.checkAnswer)
	mux.HandleFunc("POST /session/advance", h.advance)
	mux.HandleFunc("POST /session/jump", h.jump)
	mux.HandleFunc("POST /session/finish", h.finish)

	// Ledger
	mux.HandleFunc("GET /ledger/export", h.exportLedger)
	mux.HandleFunc("POST /ledger/import", h.importLedger)
}

// NewRouter wires every route and the middleware chain:
// Logging → Metrics → CORS → mux.
func NewRouter(h *Handler, m *metrics.Metrics, logger *slog.Logger, origins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	RegisterRoutes(mux, h)

	mux.Handle("GET /metrics", m.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return Logging(logger)(Metrics(m)(CORS(origins)(mux)))
}
