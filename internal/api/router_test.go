package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/matchdrill/internal/api"
	"github.com/remaimber-it/matchdrill/internal/infrastructure/metrics"
	"github.com/remaimber-it/matchdrill/internal/ledger"
	"github.com/remaimber-it/matchdrill/internal/service"
	"github.com/remaimber-it/matchdrill/internal/store"
)

const demoBank = "№1\n@Demo\n$a Q1\n$b Q2\n$1 R1\n$2 R2\n=12\n"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.Open(ctx, store.DriverSQLite, filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	l, err := ledger.Open(ctx, st, logger)
	require.NoError(t, err)

	m := metrics.New()
	exams := service.NewExamService(st, l, m, logger)
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(exams, logger), m, logger, []string{"*"}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func addDemoBank(t *testing.T, srv *httptest.Server) {
	t.Helper()
	resp, body := do(t, srv, http.MethodPost, "/banks", api.CreateBankRequest{Name: "demo.txt", Content: demoBank})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
}

func TestHealth(t *testing.T) {
	srv := newServer(t)

	resp, body := do(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestBanks(t *testing.T) {
	srv := newServer(t)
	addDemoBank(t, srv)

	resp, _ := do(t, srv, http.MethodPost, "/banks", api.CreateBankRequest{Name: "demo.txt", Content: demoBank})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/banks", api.CreateBankRequest{Name: "empty.txt", Content: "nothing"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/banks", api.CreateBankRequest{Name: " ", Content: demoBank})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/banks", api.CreateBankRequest{Name: "bad::name", Content: demoBank})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := do(t, srv, http.MethodGet, "/banks", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	banks := decode[[]api.BankResponse](t, body)
	require.Len(t, banks, 1)
	assert.Equal(t, 1, banks[0].Questions)

	resp, body = do(t, srv, http.MethodGet, "/banks/demo.txt", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(body), `"key"`)
	bank := decode[api.GetBankResponse](t, body)
	assert.Equal(t, []string{"Q1", "Q2"}, bank.Questions[0].Left)

	resp, _ = do(t, srv, http.MethodDelete, "/banks/demo.txt", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodDelete, "/banks/demo.txt", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSession_DemoFlow(t *testing.T) {
	srv := newServer(t)
	addDemoBank(t, srv)

	resp, _ := do(t, srv, http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := do(t, srv, http.MethodPost, "/session", api.CreateSessionRequest{Bank: "demo.txt"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	session := decode[api.SessionResponse](t, body)
	assert.Equal(t, "answering", session.Phase)
	assert.Equal(t, "full", session.Mode)

	resp, _ = do(t, srv, http.MethodPost, "/session/advance", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = do(t, srv, http.MethodPost, "/session/check", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[api.CheckResponse](t, body).Checked)

	for slot, value := range []string{"1", "2"} {
		resp, body = do(t, srv, http.MethodPut, "/session/answers", api.SelectAnswerRequest{Slot: slot, Value: value})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	}

	resp, _ = do(t, srv, http.MethodPut, "/session/answers", api.SelectAnswerRequest{Slot: 5, Value: "1"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPut, "/session/answers", api.SelectAnswerRequest{Slot: 0, Value: "12"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body = do(t, srv, http.MethodPost, "/session/check", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	check := decode[api.CheckResponse](t, body)
	assert.True(t, check.Checked)
	assert.True(t, check.IsCorrect)
	assert.Equal(t, "checked", check.Session.Phase)
	assert.Len(t, check.Session.Feedback, 2)

	resp, _ = do(t, srv, http.MethodPut, "/session/answers", api.SelectAnswerRequest{Slot: 0, Value: "2"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = do(t, srv, http.MethodPost, "/session/finish", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[api.SummaryResponse](t, body)
	assert.Equal(t, api.SummaryResponse{Correct: 1, Solved: 1, Total: 1, Percent: 100, Band: "excellent", Severity: "success"}, summary)

	resp, body = do(t, srv, http.MethodGet, "/banks/demo.txt/questions/0/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	record := decode[api.StatRecordResponse](t, body)
	assert.Equal(t, 1, record.Correct)
	require.NotNil(t, record.Last)
	assert.True(t, *record.Last)

	resp, _ = do(t, srv, http.MethodDelete, "/session", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestSession_Validation(t *testing.T) {
	srv := newServer(t)
	addDemoBank(t, srv)

	tests := []struct {
		name string
		body any
		want int
	}{
		{"missing bank", api.CreateSessionRequest{}, http.StatusBadRequest},
		{"unknown mode", api.CreateSessionRequest{Bank: "demo.txt", Mode: "random"}, http.StatusBadRequest},
		{"unknown bank", api.CreateSessionRequest{Bank: "nope.txt"}, http.StatusNotFound},
		{"nothing to repeat", api.CreateSessionRequest{Bank: "demo.txt", Mode: "repeat_wrong"}, http.StatusUnprocessableEntity},
		{"malformed json", `{"bank":`, http.StatusBadRequest},
		{"unknown field", `{"bank":"demo.txt","shuffle":true}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, srv, http.MethodPost, "/session", tt.body)
			assert.Equal(t, tt.want, resp.StatusCode, string(body))
		})
	}
}

func TestSession_Jump(t *testing.T) {
	srv := newServer(t)
	addDemoBank(t, srv)
	resp, _ := do(t, srv, http.MethodPost, "/session", api.CreateSessionRequest{Bank: "demo.txt"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/session/jump", api.JumpRequest{Index: 3})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body := do(t, srv, http.MethodPost, "/session/jump", api.JumpRequest{Index: 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[api.SessionResponse](t, body).Index)
}

func TestFavoriteAndStats(t *testing.T) {
	srv := newServer(t)
	addDemoBank(t, srv)

	resp, body := do(t, srv, http.MethodPost, "/banks/demo.txt/questions/0/favorite", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[api.StatRecordResponse](t, body).Favorite)

	resp, _ = do(t, srv, http.MethodPost, "/banks/demo.txt/questions/7/favorite", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodPost, "/banks/demo.txt/questions/x/favorite", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/banks/demo.txt/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[api.BankStatsResponse](t, body)
	assert.Equal(t, 1, stats.TotalQuestions)
	assert.Equal(t, 1, stats.Favorites)
	assert.Equal(t, 0, stats.Solved)
	require.Len(t, stats.Questions, 1)
	assert.True(t, stats.Questions[0].Stats.Favorite)
}

func TestLedgerExportImport(t *testing.T) {
	srv := newServer(t)
	addDemoBank(t, srv)

	resp, body := do(t, srv, http.MethodPost, "/ledger/import", `{"demo.txt::0":{"correct":1,"wrong":3,"favorite":false,"last":false}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, 1, decode[api.ImportResult](t, body).Imported)

	resp, body = do(t, srv, http.MethodPost, "/ledger/import", `{"demo.txt::0":{"correct":"many"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(body))

	resp, body = do(t, srv, http.MethodGet, "/ledger/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	doc := decode[map[string]api.StatRecordResponse](t, body)
	assert.Equal(t, 3, doc["demo.txt::0"].Wrong)

	resp, body = do(t, srv, http.MethodPost, "/session", api.CreateSessionRequest{Bank: "demo.txt", Mode: "repeat_wrong"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.Equal(t, "repeat_wrong", decode[api.SessionResponse](t, body).Mode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newServer(t)
	do(t, srv, http.MethodGet, "/health", nil)

	resp, body := do(t, srv, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `http_requests_total{endpoint="GET /health",method="GET",status="200"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/banks", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
