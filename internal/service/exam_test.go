package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	practicesession "github.com/remaimber-it/matchdrill/internal/domain/practice_session"
	"github.com/remaimber-it/matchdrill/internal/domain/questionbank"
	"github.com/remaimber-it/matchdrill/internal/infrastructure/metrics"
	"github.com/remaimber-it/matchdrill/internal/ledger"
	"github.com/remaimber-it/matchdrill/internal/service"
	"github.com/remaimber-it/matchdrill/internal/store"
)

const demoBank = "№1\n@Demo\n$a Q1\n$b Q2\n$1 R1\n$2 R2\n=12\n"

const threeBank = `Intro text
№1
@First
$a a1
$b b1
$1 one
$2 two
=21
№2
@Second
$a a2
$1 one
=1
№3
@Third
$a a3
$1 one
=1
`

type env struct {
	store   *store.SQLStore
	ledger  *ledger.Ledger
	metrics *metrics.Metrics
	svc     *service.ExamService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.Open(ctx, store.DriverSQLite, filepath.Join(t.TempDir(), "exam.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	l, err := ledger.Open(ctx, st, logger)
	require.NoError(t, err)

	m := metrics.New()
	return &env{
		store:   st,
		ledger:  l,
		metrics: m,
		svc:     service.NewExamService(st, l, m, logger),
	}
}

func answer(t *testing.T, svc *service.ExamService, values ...string) service.SessionView {
	t.Helper()
	var v service.SessionView
	var err error
	for i, value := range values {
		v, err = svc.SelectAnswer(i, value)
		require.NoError(t, err)
	}
	return v
}

func TestExam_DemoBankEndToEnd(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.svc.AddBank(ctx, "demo.txt", demoBank)
	require.NoError(t, err)

	v, err := e.svc.Start(ctx, "demo.txt", practicesession.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, practicesession.PhaseAnswering, v.Phase)
	assert.Equal(t, []string{"", ""}, v.Answer)

	answer(t, e.svc, "1", "2")
	v, checked, err := e.svc.Check(ctx)
	require.NoError(t, err)
	require.True(t, checked)
	require.NotNil(t, v.Statuses[0])
	assert.True(t, *v.Statuses[0])
	assert.Equal(t, 1, v.Correct)
	assert.Equal(t, 1, v.Record.Correct)
	assert.Len(t, v.Feedback, 2)

	summary, err := e.svc.Finish()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Correct)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 100, summary.Percent)

	v, err = e.svc.View()
	require.NoError(t, err)
	assert.Equal(t, practicesession.PhaseFinished, v.Phase)
}

func TestExam_NoActiveSession(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.View()
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	_, _, err = e.svc.Check(context.Background())
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	_, err = e.svc.Finish()
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	assert.ErrorIs(t, e.svc.Abandon(), service.ErrNoActiveSession)
}

func TestExam_StartUnknownBank(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.Start(context.Background(), "missing.txt", practicesession.DefaultConfig())

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExam_OneAttemptPerCheckAcrossSessions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.svc.AddBank(ctx, "demo.txt", demoBank)
	require.NoError(t, err)

	for _, values := range [][]string{{"1", "2"}, {"2", "1"}, {"1", "1"}} {
		_, err := e.svc.Start(ctx, "demo.txt", practicesession.DefaultConfig())
		require.NoError(t, err)
		answer(t, e.svc, values...)
		_, checked, err := e.svc.Check(ctx)
		require.NoError(t, err)
		require.True(t, checked)
	}

	r, err := e.svc.QuestionStats(ctx, "demo.txt", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Attempts())
	assert.Equal(t, 1, r.Correct)
	assert.Equal(t, 2, r.Wrong)
	assert.True(t, r.LastWrong())
}

func TestExam_IncompleteCheckIsNoop(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.svc.AddBank(ctx, "demo.txt", demoBank)
	require.NoError(t, err)
	_, err = e.svc.Start(ctx, "demo.txt", practicesession.DefaultConfig())
	require.NoError(t, err)

	answer(t, e.svc, "1")
	v, checked, err := e.svc.Check(ctx)

	require.NoError(t, err)
	assert.False(t, checked)
	assert.Equal(t, practicesession.PhaseAnswering, v.Phase)
	_, ok := e.ledger.Peek("demo.txt", 0)
	assert.False(t, ok)
}

func TestExam_RepeatWrongKeepsSourceIndex(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.svc.AddBank(ctx, "three.txt", threeBank)
	require.NoError(t, err)

	_, err = e.svc.Start(ctx, "three.txt", practicesession.SessionConfig{Mode: practicesession.ModeRepeatWrong})
	require.ErrorIs(t, err, ledger.ErrNothingToRepeat)

	// Answer the third question wrong.
	_, err = e.svc.Start(ctx, "three.txt", practicesession.DefaultConfig())
	require.NoError(t, err)
	_, err = e.svc.JumpTo(2)
	require.NoError(t, err)
	answer(t, e.svc, "9")
	_, _, err = e.svc.Check(ctx)
	require.NoError(t, err)

	v, err := e.svc.Start(ctx, "three.txt", practicesession.SessionConfig{Mode: practicesession.ModeRepeatWrong})
	require.NoError(t, err)
	assert.Equal(t, 1, v.Total)
	assert.Equal(t, "Third", v.Question.Title)
	assert.Equal(t, practicesession.ModeRepeatWrong, v.Mode)

	answer(t, e.svc, "1")
	_, _, err = e.svc.Check(ctx)
	require.NoError(t, err)

	r, ok := e.ledger.Peek("three.txt", 2)
	require.True(t, ok)
	assert.Equal(t, 1, r.Correct)
	assert.Equal(t, 1, r.Wrong)
	_, ok = e.ledger.Peek("three.txt", 0)
	assert.False(t, ok)
}

func TestExam_JumpKeepsCheckedState(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.svc.AddBank(ctx, "three.txt", threeBank)
	require.NoError(t, err)
	_, err = e.svc.Start(ctx, "three.txt", practicesession.DefaultConfig())
	require.NoError(t, err)

	answer(t, e.svc, "2", "1")
	_, _, err = e.svc.Check(ctx)
	require.NoError(t, err)
	_, err = e.svc.JumpTo(1)
	require.NoError(t, err)

	v, err := e.svc.JumpTo(0)
	require.NoError(t, err)

	assert.Equal(t, practicesession.PhaseChecked, v.Phase)
	assert.Equal(t, []string{"2", "1"}, v.Answer)
	_, err = e.svc.SelectAnswer(0, "1")
	assert.ErrorIs(t, err, practicesession.ErrQuestionLocked)
}

func TestExam_Abandon(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.svc.AddBank(ctx, "demo.txt", demoBank)
	require.NoError(t, err)
	_, err = e.svc.Start(ctx, "demo.txt", practicesession.DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, e.svc.Abandon())

	_, err = e.svc.View()
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
}

func TestBanks_AddListDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.svc.AddBank(ctx, "empty.txt", "nothing to see")
	assert.ErrorIs(t, err, questionbank.ErrEmptyBank)

	_, err = e.svc.AddBank(ctx, "three.txt", threeBank)
	require.NoError(t, err)
	_, err = e.svc.AddBank(ctx, "three.txt", threeBank)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	banks, err := e.svc.ListBanks(ctx)
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, "three.txt", banks[0].Name)
	assert.Equal(t, 3, banks[0].Questions)

	require.NoError(t, e.svc.DeleteBank(ctx, "three.txt"))
	assert.ErrorIs(t, e.svc.DeleteBank(ctx, "three.txt"), store.ErrNotFound)
}

func TestBanks_StatsAndFavorite(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.svc.AddBank(ctx, "three.txt", threeBank)
	require.NoError(t, err)

	_, err = e.svc.Start(ctx, "three.txt", practicesession.DefaultConfig())
	require.NoError(t, err)
	answer(t, e.svc, "2", "1")
	_, _, err = e.svc.Check(ctx)
	require.NoError(t, err)
	_, err = e.svc.Advance()
	require.NoError(t, err)
	answer(t, e.svc, "2")
	_, _, err = e.svc.Check(ctx)
	require.NoError(t, err)

	r, err := e.svc.ToggleFavorite(ctx, "three.txt", 2)
	require.NoError(t, err)
	assert.True(t, r.Favorite)

	_, err = e.svc.ToggleFavorite(ctx, "three.txt", 3)
	assert.ErrorIs(t, err, service.ErrQuestionNotFound)

	stats, perQuestion, err := e.svc.BankStats(ctx, "three.txt")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalQuestions)
	assert.Equal(t, 2, stats.Solved)
	assert.Equal(t, 50, stats.Percent)
	assert.Equal(t, 1, stats.Favorites)
	require.Len(t, perQuestion, 3)
	assert.True(t, perQuestion[2].Record.Favorite)
	assert.True(t, perQuestion[1].Record.LastWrong())
}

type failingKV struct{ store.Store }

func (failingKV) Set(context.Context, string, string) error { return errors.New("read-only") }

func TestExam_PersistFailureLeavesSessionUnchanged(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.svc.AddBank(ctx, "demo.txt", demoBank)
	require.NoError(t, err)

	broken, err := ledger.Open(ctx, failingKV{e.store}, nil)
	require.NoError(t, err)
	svc := service.NewExamService(e.store, broken, nil, nil)

	_, err = svc.Start(ctx, "demo.txt", practicesession.DefaultConfig())
	require.NoError(t, err)
	answer(t, svc, "1", "2")

	_, checked, err := svc.Check(ctx)
	require.Error(t, err)
	assert.False(t, checked)

	v, err := svc.View()
	require.NoError(t, err)
	assert.Equal(t, practicesession.PhaseAnswering, v.Phase)
	assert.Equal(t, 0, v.Solved)
}

func TestAddBank_RejectsInvalidNames(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for _, name := range []string{"", "  ", "bad::name", "::"} {
		_, err := e.svc.AddBank(ctx, name, demoBank)
		assert.ErrorIs(t, err, service.ErrInvalidBankName, name)
	}

	banks, err := e.svc.ListBanks(ctx)
	require.NoError(t, err)
	assert.Empty(t, banks)
}
