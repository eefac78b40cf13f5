package usecase

import (
	"context"
	"fmt"

	"voicecal/internal/harness"
	"voicecal/internal/worker"
	"voicecal/pkg/phrase"
)

type parseJob struct {
	text string
	ref  phrase.Reference
}

type parseJobResult struct {
	result harness.ParseResult
}

func (r *parseJobResult) GetError() error { return nil }

func (j *parseJob) Execute(ctx context.Context) worker.Result {
	return &parseJobResult{result: harness.ParseResult{Phrase: phrase.Parse(j.text, j.ref)}}
}

// Batch parses texts on a worker pool. workers <= 0 uses the configured default.
func (uc *implUseCase) Batch(ctx context.Context, texts []string, ref phrase.Reference, workers int) ([]harness.ParseResult, error) {
	if len(texts) == 0 {
		return []harness.ParseResult{}, nil
	}
	if workers <= 0 {
		workers = uc.workers
	}

	pool := worker.NewPool(ctx, workers)
	pool.Start()
	for _, text := range texts {
		if !pool.Submit(&parseJob{text: text, ref: ref}) {
			break
		}
	}
	raw := pool.Wait()

	results := make([]harness.ParseResult, len(texts))
	done := 0
	for i := range texts {
		if i < len(raw) && raw[i] != nil {
			results[i] = raw[i].(*parseJobResult).result
			done++
			continue
		}
		results[i] = harness.ParseResult{Phrase: phrase.Phrase{Text: texts[i]}}
	}

	if done < len(texts) {
		uc.l.Warnf(ctx, "Batch: parsed %d of %d texts before cancellation", done, len(texts))
		return results, fmt.Errorf("batch interrupted: %w", ctx.Err())
	}
	uc.l.Debugf(ctx, "Batch: parsed %d texts with %d workers", len(texts), workers)
	return results, nil
}
