package api

import (
	"errors"
	"net/http"

	practicesession "github.com/remaimber-it/matchdrill/internal/domain/practice_session"
	"github.com/remaimber-it/matchdrill/internal/grader"
	"github.com/remaimber-it/matchdrill/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Bank         string `json:"bank" example:"anatomy.txt"`
	Mode         string `json:"mode,omitempty" example:"full" enums:"full,repeat_wrong"`
	MaxQuestions *int   `json:"max_questions,omitempty" example:"20"`

	mode practicesession.Mode
}

func (r *CreateSessionRequest) Validate() error {
	if r.Bank == "" {
		return errors.New("bank is required")
	}
	mode, err := practicesession.ParseMode(r.Mode)
	if err != nil {
		return err
	}
	r.mode = mode
	if r.MaxQuestions != nil && *r.MaxQuestions < 1 {
		return errors.New("max_questions must be positive")
	}
	return nil
}

type SelectAnswerRequest struct {
	Slot  int    `json:"slot" example:"0"`
	Value string `json:"value" example:"3"`
}

func (r *SelectAnswerRequest) Validate() error {
	if r.Value == "" {
		return errors.New("value is required")
	}
	return nil
}

type JumpRequest struct {
	Index int `json:"index" example:"4"`
}

func (r *JumpRequest) Validate() error { return nil }

type SlotFeedbackResponse struct {
	Selected string `json:"selected"`
	Expected string `json:"expected"`
	Correct  bool   `json:"correct"`
}

type SummaryResponse struct {
	Correct  int    `json:"correct" example:"3"`
	Solved   int    `json:"solved" example:"4"`
	Total    int    `json:"total" example:"4"`
	Percent  int    `json:"percent" example:"75"`
	Band     string `json:"band" example:"good"`
	Severity string `json:"severity" example:"info"`
}

type SessionResponse struct {
	ID        string                 `json:"id"`
	Bank      string                 `json:"bank"`
	Mode      string                 `json:"mode"`
	Phase     string                 `json:"phase" enums:"answering,checked,finished"`
	Index     int                    `json:"index"`
	Total     int                    `json:"total"`
	Question  QuestionResponse       `json:"question"`
	Answer    []string               `json:"answer"`
	Statuses  []*bool                `json:"statuses"`
	Correct   int                    `json:"correct"`
	Solved    int                    `json:"solved"`
	Favorite  bool                   `json:"favorite"`
	LastWrong bool                   `json:"last_wrong"`
	Feedback  []SlotFeedbackResponse `json:"feedback,omitempty"`
	Summary   SummaryResponse        `json:"summary"`
}

type CheckResponse struct {
	Checked   bool            `json:"checked"`
	IsCorrect bool            `json:"is_correct"`
	Session   SessionResponse `json:"session"`
}

func toSummaryResponse(s grader.Summary) SummaryResponse {
	return SummaryResponse{
		Correct:  s.Correct,
		Solved:   s.Solved,
		Total:    s.Total,
		Percent:  s.Percent,
		Band:     s.Band.Label,
		Severity: string(s.Band.Severity),
	}
}

func toSessionResponse(v service.SessionView) SessionResponse {
	var feedback []SlotFeedbackResponse
	for _, f := range v.Feedback {
		feedback = append(feedback, SlotFeedbackResponse{
			Selected: f.Selected,
			Expected: f.Expected,
			Correct:  f.Correct,
		})
	}
	return SessionResponse{
		ID:        v.ID,
		Bank:      v.Bank,
		Mode:      string(v.Mode),
		Phase:     string(v.Phase),
		Index:     v.Index,
		Total:     v.Total,
		Question:  toQuestionResponse(v.Question),
		Answer:    v.Answer,
		Statuses:  v.Statuses,
		Correct:   v.Correct,
		Solved:    v.Solved,
		Favorite:  v.Record.Favorite,
		LastWrong: v.Record.LastWrong(),
		Feedback:  feedback,
		Summary:   toSummaryResponse(v.Summary),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a session, replacing the live one.
// @Summary      Start a session
// @Description  Start a session over a bank. repeat_wrong keeps only questions answered wrong more often than right.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session options"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string  "nothing to repeat"
// @Router       /session [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	config := practicesession.DefaultConfig()
	config.Mode = req.mode
	config.MaxQuestions = req.MaxQuestions

	view, err := h.exams.Start(r.Context(), req.Bank, config)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, toSessionResponse(view))
}

// getSession returns the live session.
// @Summary      Current session
// @Tags         Session
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Router       /session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.exams.View()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(view))
}

// deleteSession abandons the live session.
// @Summary      Abandon the session
// @Tags         Session
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /session [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.exams.Abandon()) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// selectAnswer fills one slot of the current question.
// @Summary      Select an answer
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      SelectAnswerRequest  true  "Slot and value"
// @Success      200   {object}  SessionResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "question already checked"
// @Failure      422   {object}  map[string]string
// @Router       /session/answers [put]
func (h *Handler) selectAnswer(w http.ResponseWriter, r *http.Request) {
	var req SelectAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.exams.SelectAnswer(req.Slot, req.Value)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(view))
}

// checkAnswer grades the current question.
// @Summary      Check the current question
// @Description  Grades the current answer and records it. checked is false while a slot is empty.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  CheckResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /session/check [post]
func (h *Handler) checkAnswer(w http.ResponseWriter, r *http.Request) {
	view, checked, err := h.exams.Check(r.Context())
	if h.handleError(w, err) {
		return
	}

	isCorrect := false
	if st := view.Statuses[view.Index]; checked && st != nil {
		isCorrect = *st
	}
	respondJSON(w, http.StatusOK, CheckResponse{
		Checked:   checked,
		IsCorrect: isCorrect,
		Session:   toSessionResponse(view),
	})
}

// advance moves past a checked question.
// @Summary      Next question
// @Tags         Session
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string  "question not checked yet"
// @Router       /session/advance [post]
func (h *Handler) advance(w http.ResponseWriter, r *http.Request) {
	view, err := h.exams.Advance()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(view))
}

// jump moves to any question of the session.
// @Summary      Jump to a question
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      JumpRequest  true  "Target index"
// @Success      200   {object}  SessionResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /session/jump [post]
func (h *Handler) jump(w http.ResponseWriter, r *http.Request) {
	var req JumpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.exams.JumpTo(req.Index)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(view))
}

// finish ends the session.
// @Summary      Finish the session
// @Tags         Session
// @Produce      json
// @Success      200  {object}  SummaryResponse
// @Failure      404  {object}  map[string]string
// @Router       /session/finish [post]
func (h *Handler) finish(w http.ResponseWriter, r *http.Request) {
	summary, err := h.exams.Finish()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSummaryResponse(summary))
}
