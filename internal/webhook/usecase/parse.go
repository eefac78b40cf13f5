package usecase

import (
	"context"
	"strings"

	"voicecal/internal/webhook"
	"voicecal/pkg/phrase"
)

// Parse extracts and resolves the markers of input.Text.
func (uc *implUseCase) Parse(ctx context.Context, input webhook.ParseInput) (webhook.ParseOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return webhook.ParseOutput{}, webhook.ErrEmptyText
	}

	ref := uc.dateMath.Today(uc.now())
	if input.Reference != nil {
		ref = *input.Reference
	}

	out := webhook.ParseOutput{
		Reference: ref,
		Phrase:    phrase.Parse(text, phrase.ReferenceOf(ref)),
	}
	uc.l.Debugf(ctx, "Parse: ref=%s %+v", ref, out.Phrase.Extraction)
	return out, nil
}

