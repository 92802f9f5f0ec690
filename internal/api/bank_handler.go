package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/remaimber-it/matchdrill/internal/domain/questionbank"
	"github.com/remaimber-it/matchdrill/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateBankRequest struct {
	Name    string `json:"name" example:"anatomy.txt"`
	Content string `json:"content" example:"№1\n@Demo\n$a Q1\n$1 R1\n=1"`
}

func (r *CreateBankRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return service.ValidateBankName(r.Name)
}

type BankResponse struct {
	Name      string    `json:"name" example:"anatomy.txt"`
	Questions int       `json:"questions" example:"42"`
	AddedAt   time.Time `json:"added_at"`
}

// QuestionResponse is a question as shown to the learner; the key stays
// on the server.
type QuestionResponse struct {
	Index int      `json:"index" example:"0"`
	Title string   `json:"title" example:"Match the bones"`
	Left  []string `json:"left"`
	Right []string `json:"right"`
}

type GetBankResponse struct {
	Name      string             `json:"name"`
	Questions []QuestionResponse `json:"questions"`
}

type StatRecordResponse struct {
	Correct  int   `json:"correct" example:"2"`
	Wrong    int   `json:"wrong" example:"1"`
	Favorite bool  `json:"favorite"`
	Last     *bool `json:"last"`
}

type QuestionStatsResponse struct {
	Index int                `json:"index"`
	Title string             `json:"title"`
	Stats StatRecordResponse `json:"stats"`
}

type BankStatsResponse struct {
	Bank           string                  `json:"bank"`
	TotalQuestions int                     `json:"total_questions" example:"40"`
	Solved         int                     `json:"solved" example:"12"`
	Correct        int                     `json:"correct" example:"9"`
	Wrong          int                     `json:"wrong" example:"5"`
	Favorites      int                     `json:"favorites" example:"3"`
	Percent        int                     `json:"percent" example:"64"`
	Questions      []QuestionStatsResponse `json:"questions"`
}

func toQuestionResponse(q questionbank.Question) QuestionResponse {
	return QuestionResponse{
		Index: q.Index,
		Title: q.Title,
		Left:  q.Left,
		Right: q.Right,
	}
}

func toStatRecordResponse(r questionbank.StatRecord) StatRecordResponse {
	return StatRecordResponse{
		Correct:  r.Correct,
		Wrong:    r.Wrong,
		Favorite: r.Favorite,
		Last:     r.Last,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createBank stores a bank file.
// @Summary      Add a bank file
// @Description  Store a bank text under a unique name. Texts without questions are rejected.
// @Tags         Banks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateBankRequest  true  "Bank file"
// @Success      201   {object}  BankResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "name already in use"
// @Failure      422   {object}  map[string]string  "no questions in file"
// @Failure      500   {object}  map[string]string
// @Router       /banks [post]
func (h *Handler) createBank(w http.ResponseWriter, r *http.Request) {
	var req CreateBankRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bank, err := h.exams.AddBank(r.Context(), req.Name, req.Content)
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, BankResponse{
		Name:      bank.Name,
		Questions: bank.Len(),
		AddedAt:   time.Now().UTC(),
	})
}

// listBanks lists the stored bank files.
// @Summary      List bank files
// @Tags         Banks
// @Produce      json
// @Success      200  {array}   BankResponse
// @Failure      500  {object}  map[string]string
// @Router       /banks [get]
func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.exams.ListBanks(r.Context())
	if h.handleError(w, err) {
		return
	}

	response := make([]BankResponse, len(banks))
	for i, b := range banks {
		response[i] = BankResponse{
			Name:      b.Name,
			Questions: b.Questions,
			AddedAt:   b.AddedAt.UTC(),
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// getBank returns the parsed questions of a bank.
// @Summary      Get a bank
// @Description  Returns the parsed questions of a bank without their keys.
// @Tags         Banks
// @Produce      json
// @Param        bank  path      string  true  "Bank name"
// @Success      200   {object}  GetBankResponse
// @Failure      404   {object}  map[string]string
// @Router       /banks/{bank} [get]
func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.exams.LoadBank(r.Context(), r.PathValue("bank"))
	if h.handleError(w, err) {
		return
	}

	questions := make([]QuestionResponse, bank.Len())
	for i, q := range bank.Questions {
		questions[i] = toQuestionResponse(q)
	}
	respondJSON(w, http.StatusOK, GetBankResponse{
		Name:      bank.Name,
		Questions: questions,
	})
}

// deleteBank removes a bank file.
// @Summary      Delete a bank file
// @Description  Remove a bank file. Its statistics stay in the ledger.
// @Tags         Banks
// @Param        bank  path  string  true  "Bank name"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /banks/{bank} [delete]
func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.exams.DeleteBank(r.Context(), r.PathValue("bank"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getBankStats aggregates the ledger over a bank.
// @Summary      Bank statistics
// @Tags         Stats
// @Produce      json
// @Param        bank  path      string  true  "Bank name"
// @Success      200   {object}  BankStatsResponse
// @Failure      404   {object}  map[string]string
// @Router       /banks/{bank}/stats [get]
func (h *Handler) getBankStats(w http.ResponseWriter, r *http.Request) {
	stats, perQuestion, err := h.exams.BankStats(r.Context(), r.PathValue("bank"))
	if h.handleError(w, err) {
		return
	}

	questions := make([]QuestionStatsResponse, len(perQuestion))
	for i, qs := range perQuestion {
		questions[i] = QuestionStatsResponse{
			Index: qs.Question.Index,
			Title: qs.Question.Title,
			Stats: toStatRecordResponse(qs.Record),
		}
	}
	respondJSON(w, http.StatusOK, BankStatsResponse{
		Bank:           stats.Bank,
		TotalQuestions: stats.TotalQuestions,
		Solved:         stats.Solved,
		Correct:        stats.Correct,
		Wrong:          stats.Wrong,
		Favorites:      stats.Favorites,
		Percent:        stats.Percent,
		Questions:      questions,
	})
}
