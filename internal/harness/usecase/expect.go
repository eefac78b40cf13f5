package usecase

import (
	"fmt"
	"time"

	"voicecal/internal/harness"
	"voicecal/internal/model"
	"voicecal/pkg/datemath"
	"voicecal/pkg/phrase"
)

// expectation resolves what the workflow should answer for c at now.
// Explicit fields win; empty ones fall back to the local extractor.
func (uc *implUseCase) expectation(c model.Case, now time.Time) (model.Slot, error) {
	var slot model.Slot
	local := now.In(uc.dateMath.Location())

	var derived *phrase.Phrase
	derive := func() *phrase.Phrase {
		if derived == nil {
			p := phrase.Parse(c.Text, phrase.ReferenceFrom(local))
			derived = &p
		}
		return derived
	}

	if c.ExpectedDate != "" {
		d, err := uc.dateMath.Parse(c.ExpectedDate, local)
		if err != nil {
			return model.Slot{}, fmt.Errorf("%w: case %q date %q: %v", harness.ErrInvalidExpectation, c.Name, c.ExpectedDate, err)
		}
		slot.Date = d.String()
	} else if p := derive(); p.Date != nil {
		slot.Date = p.Date.String()
	}

	if c.ExpectedTime != "" {
		clk, err := datemath.ParseClock(c.ExpectedTime)
		if err != nil {
			return model.Slot{}, fmt.Errorf("%w: case %q time %q: %v", harness.ErrInvalidExpectation, c.Name, c.ExpectedTime, err)
		}
		slot.Time = clk.String()
	} else if p := derive(); p.Time != nil {
		slot.Time = p.Time.String()
	}

	return slot, nil
}

// matches compares only the fields the expectation knows.
func matches(expected, actual model.Slot) bool {
	if expected.Date != "" && expected.Date != actual.Date {
		return false
	}
	if expected.Time != "" && expected.Time != actual.Time {
		return false
	}
	return true
}
