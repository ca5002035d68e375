package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnparseable means no JSON object could be recovered from model output.
var ErrUnparseable = errors.New("no parseable JSON object in model output")

// Normalize coerces free-form model output into a GeneratedPlan.
//
// The whole text is tried first. If that fails, the span from the first '{'
// to the last '}' is tried. Keys are not validated: an object missing
// workoutPlan, dietPlan or tips still normalizes, leaving those fields empty.
func Normalize(raw string) (GeneratedPlan, error) {
	plan, err := decodePlan(raw)
	if err == nil {
		return plan, nil
	}

	block, ok := extractJSONBlock(raw)
	if !ok {
		return GeneratedPlan{}, fmt.Errorf("%w: no JSON-like block found", ErrUnparseable)
	}

	plan, err = decodePlan(block)
	if err != nil {
		return GeneratedPlan{}, fmt.Errorf("%w: extracted block: %v", ErrUnparseable, err)
	}
	return plan, nil
}

// extractJSONBlock returns the widest span between the first '{' and the last '}'.
// Multiple fragments are not told apart.
func extractJSONBlock(text string) (string, bool) {
	first := strings.IndexByte(text, '{')
	last := strings.LastIndexByte(text, '}')
	if first == -1 || last == -1 || last <= first {
		return "", false
	}
	return text[first : last+1], true
}

func decodePlan(text string) (GeneratedPlan, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return GeneratedPlan{}, err
	}
	if fields == nil {
		return GeneratedPlan{}, errors.New("JSON value is null, not an object")
	}

	var plan GeneratedPlan
	if v, ok := fields["workoutPlan"]; ok {
		if err := plan.WorkoutPlan.UnmarshalJSON(v); err != nil {
			return GeneratedPlan{}, fmt.Errorf("workoutPlan: %w", err)
		}
	}
	if v, ok := fields["dietPlan"]; ok {
		if err := plan.DietPlan.UnmarshalJSON(v); err != nil {
			return GeneratedPlan{}, fmt.Errorf("dietPlan: %w", err)
		}
	}
	if v, ok := fields["tips"]; ok {
		var tips Content
		if err := tips.UnmarshalJSON(v); err != nil {
			return GeneratedPlan{}, fmt.Errorf("tips: %w", err)
		}
		plan.Tips = tips.String()
	}

	return plan, nil
}
