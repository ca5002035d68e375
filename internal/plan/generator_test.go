package plan

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"FitCoach_V0.1/internal/config"
	"FitCoach_V0.1/internal/openrouter"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	content string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, logger *zerolog.Logger, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.content, f.err
}

func sampleInput() UserInput {
	return UserInput{
		Name:            "Asha",
		Age:             29,
		Gender:          "female",
		HeightCm:        162,
		WeightKg:        58.5,
		Goal:            GoalMuscleGain,
		FitnessLevel:    LevelIntermediate,
		WorkoutLocation: LocationGym,
		DietType:        DietVegan,
		StressLevel:     StressHigh,
	}
}

func keyedConfig() *config.Config {
	return &config.Config{OpenRouterAPIKey: "sk-test", Model: config.DefaultModel}
}

func generate(t *testing.T, cfg *config.Config, c Completer) Result {
	t.Helper()
	logger := zerolog.Nop()
	return NewGenerator(cfg, c).Generate(context.Background(), &logger, sampleInput())
}

func TestGenerateWithoutCredentialReturnsBaseline(t *testing.T) {
	t.Parallel()
	fake := &fakeCompleter{content: `{"workoutPlan":"never"}`}
	res := generate(t, &config.Config{}, fake)

	assert.Equal(t, OutcomeNoCredential, res.Outcome)
	assert.ErrorIs(t, res.Err, ErrNoCredential)
	assert.Equal(t, Baseline(sampleInput()), res.Plan)
	assert.Empty(t, fake.prompts, "no outbound call without a key")
}

func TestGenerateStructuredPlan(t *testing.T) {
	t.Parallel()
	fake := &fakeCompleter{content: `{"workoutPlan":"A","dietPlan":"B","tips":"C"}`}
	res := generate(t, keyedConfig(), fake)

	assert.Equal(t, OutcomeGenerated, res.Outcome)
	assert.NoError(t, res.Err)
	assert.Equal(t, GeneratedPlan{WorkoutPlan: TextContent("A"), DietPlan: TextContent("B"), Tips: "C"}, res.Plan)

	require.Len(t, fake.prompts, 1)
	assert.Equal(t, BuildPrompt(sampleInput()), fake.prompts[0])
}

func TestGenerateFillsMissingTipsFromBaseline(t *testing.T) {
	t.Parallel()
	res := generate(t, keyedConfig(), &fakeCompleter{content: `{"workoutPlan":"A","dietPlan":"B"}`})

	assert.Equal(t, OutcomeGenerated, res.Outcome)
	assert.Equal(t, Baseline(sampleInput()).Tips, res.Plan.Tips)
}

func TestGenerateUpstreamError(t *testing.T) {
	t.Parallel()
	res := generate(t, keyedConfig(), &fakeCompleter{err: &openrouter.StatusError{StatusCode: 500, Body: "boom"}})
	baseline := Baseline(sampleInput())

	assert.Equal(t, OutcomeUpstreamError, res.Outcome)
	var upstreamErr *UpstreamError
	require.ErrorAs(t, res.Err, &upstreamErr)
	assert.Equal(t, 500, upstreamErr.StatusCode)

	assert.Equal(t, baseline.WorkoutPlan, res.Plan.WorkoutPlan)
	assert.Equal(t, baseline.DietPlan, res.Plan.DietPlan)
	assert.True(t, strings.HasPrefix(res.Plan.Tips, baseline.Tips))
	assert.Contains(t, res.Plan.Tips, "500")
}

func TestGenerateEmptyContent(t *testing.T) {
	t.Parallel()
	res := generate(t, keyedConfig(), &fakeCompleter{err: openrouter.ErrEmptyContent})

	assert.Equal(t, OutcomeEmptyContent, res.Outcome)
	assert.ErrorIs(t, res.Err, ErrEmptyContent)
	assert.Contains(t, res.Plan.Tips, "empty content")
	assert.Equal(t, Baseline(sampleInput()).WorkoutPlan, res.Plan.WorkoutPlan)
}

func TestGenerateParseFailureShowsRawText(t *testing.T) {
	t.Parallel()
	res := generate(t, keyedConfig(), &fakeCompleter{content: "not json at all"})
	baseline := Baseline(sampleInput())

	assert.Equal(t, OutcomeParseFailure, res.Outcome)
	var parseErr *ParseError
	require.ErrorAs(t, res.Err, &parseErr)
	assert.Equal(t, "not json at all", parseErr.Raw)
	assert.ErrorIs(t, res.Err, ErrUnparseable)

	assert.Equal(t, TextContent("not json at all"), res.Plan.WorkoutPlan)
	assert.Equal(t, baseline.DietPlan, res.Plan.DietPlan)
	assert.Contains(t, res.Plan.Tips, "parse failed")
}

func TestGenerateTransportFailure(t *testing.T) {
	t.Parallel()
	res := generate(t, keyedConfig(), &fakeCompleter{err: errors.New("dial tcp: connection refused")})

	assert.Equal(t, OutcomeTransportFailure, res.Outcome)
	var transportErr *TransportError
	require.ErrorAs(t, res.Err, &transportErr)
	assert.Contains(t, res.Plan.Tips, "connection refused")
	assert.Equal(t, Baseline(sampleInput()).DietPlan, res.Plan.DietPlan)
}

func TestGenerateAlwaysHasTips(t *testing.T) {
	t.Parallel()
	completers := []Completer{
		&fakeCompleter{content: `{"workoutPlan":"A","dietPlan":"B","tips":"C"}`},
		&fakeCompleter{content: `{}`},
		&fakeCompleter{content: "plain words"},
		&fakeCompleter{err: openrouter.ErrEmptyContent},
		&fakeCompleter{err: &openrouter.StatusError{StatusCode: 401}},
		&fakeCompleter{err: context.DeadlineExceeded},
	}
	for i, c := range completers {
		res := generate(t, keyedConfig(), c)
		assert.NotEmpty(t, res.Plan.Tips, "completer %d", i)
	}
	assert.NotEmpty(t, generate(t, &config.Config{}, &fakeCompleter{}).Plan.Tips)
}

func TestGenerateAgainstHTTPUpstream(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		status  int
		body    string
		outcome Outcome
	}{
		{"structured", http.StatusOK, `{"choices":[{"message":{"content":"{\"workoutPlan\":{\"day1\":\"Run\"},\"dietPlan\":\"B\",\"tips\":\"C\"}"}}]}`, OutcomeGenerated},
		{"server error", http.StatusInternalServerError, `oops`, OutcomeUpstreamError},
		{"empty", http.StatusOK, `{"choices":[]}`, OutcomeEmptyContent},
		{"prose", http.StatusOK, `{"choices":[{"message":{"content":"Sorry, I cannot help."}}]}`, OutcomeParseFailure},
		{"garbage body", http.StatusOK, `<html>`, OutcomeTransportFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			cfg := keyedConfig()
			cfg.CompletionURL = ts.URL
			res := generate(t, cfg, openrouter.NewClient(cfg, ts.Client()))
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.NotEmpty(t, res.Plan.Tips)
		})
	}
}

func TestGenerateHonoursRequestTimeout(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	cfg := keyedConfig()
	cfg.CompletionURL = ts.URL
	cfg.PlanRequestTimeout = 50 * time.Millisecond

	res := generate(t, cfg, openrouter.NewClient(cfg, ts.Client()))
	assert.Equal(t, OutcomeTransportFailure, res.Outcome)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestFallbackRateLimited(t *testing.T) {
	t.Parallel()
	logger := zerolog.Nop()
	res := Fallback(&logger, Baseline(sampleInput()), ErrRateLimited)

	assert.Equal(t, OutcomeRateLimited, res.Outcome)
	assert.Contains(t, res.Plan.Tips, "Too many plan requests")
}
