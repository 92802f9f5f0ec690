package service

import (
	"context"
	"runtime"
	"strconv"

	"github.com/remaimber-it/matchdrill/internal/domain/questionbank"
	"github.com/remaimber-it/matchdrill/internal/store"
	"github.com/remaimber-it/matchdrill/internal/worker"
)

// ImportFile is one bank source handed to ImportBanks.
type ImportFile struct {
	Name    string
	Content string
}

// ImportResult reports the outcome of one file.
type ImportResult struct {
	Name      string
	Questions int
	Err       error
}

type parsed struct {
	file ImportFile
	bank *questionbank.QuestionBank
	err  error
}

// ImportBanks parses files on a worker pool and stores those with a valid
// name that yield questions. Results follow the input order.
func (es *ExamService) ImportBanks(ctx context.Context, files []ImportFile) []ImportResult {
	pool := worker.NewPool[parsed](runtime.NumCPU(), len(files))
	for i, f := range files {
		file := f
		pool.Submit(strconv.Itoa(i), func() parsed {
			if err := ValidateBankName(file.Name); err != nil {
				return parsed{file: file, err: err}
			}
			bank, err := questionbank.New(file.Name, file.Content)
			return parsed{file: file, bank: bank, err: err}
		})
	}
	pool.Close()

	byJob := make(map[string]parsed, len(files))
	for r := range pool.Results() {
		byJob[r.JobID] = r.Output
	}

	results := make([]ImportResult, len(files))
	for i, f := range files {
		p := byJob[strconv.Itoa(i)]
		res := ImportResult{Name: f.Name, Err: p.err}
		if p.err == nil {
			res.Err = es.store.SaveBankFile(ctx, &store.BankFile{Name: f.Name, Content: f.Content})
			res.Questions = p.bank.Len()
		}
		if res.Err != nil {
			res.Questions = 0
			es.logger.Warn("bank import failed", "bank", f.Name, "error", res.Err)
		} else {
			es.logger.Info("bank imported", "bank", f.Name, "questions", res.Questions)
		}
		es.metrics.RecordImport(res.Err == nil)
		results[i] = res
	}
	return results
}
