package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/matchdrill/internal/domain/questionbank"
	"github.com/remaimber-it/matchdrill/internal/service"
	"github.com/remaimber-it/matchdrill/internal/store"
)

func TestImportBanks(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	files := []struct{ name, content string }{
		{"demo.txt", demoBank},
		{"three.txt", threeBank},
		{"empty.txt", "no questions here"},
		{"demo.txt", demoBank},
	}
	var input []service.ImportFile
	for _, f := range files {
		input = append(input, service.ImportFile{Name: f.name, Content: f.content})
	}

	results := e.svc.ImportBanks(ctx, input)

	require.Len(t, results, 4)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, results[0].Questions)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 3, results[1].Questions)
	assert.ErrorIs(t, results[2].Err, questionbank.ErrEmptyBank)
	assert.ErrorIs(t, results[3].Err, store.ErrDuplicate)
	assert.Zero(t, results[3].Questions)

	banks, err := e.svc.ListBanks(ctx)
	require.NoError(t, err)
	assert.Len(t, banks, 2)
}

func TestImportBanks_Many(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	var input []service.ImportFile
	for i := 0; i < 25; i++ {
		input = append(input, service.ImportFile{Name: fmt.Sprintf("bank-%02d.txt", i), Content: demoBank})
	}

	results := e.svc.ImportBanks(ctx, input)

	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("bank-%02d.txt", i), r.Name)
		assert.NoError(t, r.Err)
	}
}

func TestImportBanks_RejectsSeparatorInName(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	results := e.svc.ImportBanks(ctx, []service.ImportFile{
		{Name: "bad::name.txt", Content: demoBank},
		{Name: "good.txt", Content: demoBank},
	})

	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, service.ErrInvalidBankName)
	assert.Zero(t, results[0].Questions)
	assert.NoError(t, results[1].Err)

	_, err := e.store.GetBankFile(ctx, "bad::name.txt")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
