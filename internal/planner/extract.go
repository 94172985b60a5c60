package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/avezina/pathwise/internal/domain"
)

// ErrNoPlan indicates the model output did not contain a parseable plan
// object. Callers decide what to do with the raw text; extraction itself
// never mutates state.
var ErrNoPlan = errors.New("no plan object in model output")

// ExtractPlan recovers a DailyPlan from raw model output. The model is
// asked for pure JSON but routinely wraps it in prose or code fences, so
// extraction slices from the first '{' to the last '}' and parses that
// strictly. There is no secondary fallback grammar: any failure returns
// ErrNoPlan. The function is pure and performs no I/O.
//
// Shape validation is deliberately minimal here; missing optional fields
// (such as exampleLink) decode to their zero values and it is the caller's
// job to decide whether an empty plan counts as a failure.
func ExtractPlan(raw string) (*domain.DailyPlan, error) {
	start := strings.IndexByte(raw, '{')
	if start == -1 {
		return nil, ErrNoPlan
	}
	end := strings.LastIndexByte(raw, '}')
	if end < start {
		return nil, ErrNoPlan
	}

	var plan domain.DailyPlan
	if err := json.Unmarshal([]byte(raw[start:end+1]), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPlan, err)
	}
	return &plan, nil
}
