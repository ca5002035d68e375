package plan

import (
	"context"
	"errors"
	"fmt"

	"FitCoach_V0.1/internal/config"
	"FitCoach_V0.1/internal/openrouter"
	"github.com/rs/zerolog"
)

// Completer is the outbound completion call. *openrouter.Client implements it.
type Completer interface {
	Complete(ctx context.Context, logger *zerolog.Logger, prompt string) (string, error)
}

// Outcome names the branch the pipeline took for one request.
type Outcome string

const (
	OutcomeGenerated        Outcome = "generated"
	OutcomeNoCredential     Outcome = "no_credential"
	OutcomeRateLimited      Outcome = "rate_limited"
	OutcomeUpstreamError    Outcome = "upstream_error"
	OutcomeEmptyContent     Outcome = "empty_content"
	OutcomeParseFailure     Outcome = "parse_failure"
	OutcomeTransportFailure Outcome = "transport_failure"
)

/* =================================================================================
							PIPELINE ERRORS
=================================================================================*/

var (
	ErrNoCredential = errors.New("completion service credential not configured")
	ErrRateLimited  = errors.New("too many plan requests from this client")
	ErrEmptyContent = errors.New("completion service returned empty content")
)

// UpstreamError is a non-2xx answer from the completion service.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion service status %d", e.StatusCode)
}

// ParseError carries model output that normalization could not structure.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// TransportError is any failure of the outbound call itself.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// Result is what Generate hands back: always a usable plan, plus the
// branch taken and the internal error behind a fallback.
type Result struct {
	Plan    GeneratedPlan
	Outcome Outcome
	Err     error
}

/* =================================================================================
								GENERATOR
=================================================================================*/

type Generator struct {
	cfg    *config.Config
	client Completer
}

func NewGenerator(cfg *config.Config, client Completer) *Generator {
	return &Generator{cfg: cfg, client: client}
}

// Generate produces a plan for in. It never fails: every error is folded
// into the baseline plan with a note appended to its tips.
func (g *Generator) Generate(ctx context.Context, logger *zerolog.Logger, in UserInput) Result {
	baseline := Baseline(in)

	plan, err := g.requestPlan(ctx, logger, in)
	if err != nil {
		return Fallback(logger, baseline, err)
	}

	if plan.Tips == "" {
		plan.Tips = baseline.Tips
	}
	logger.Info().
		Str("outcome", string(OutcomeGenerated)).
		Str("workout_kind", plan.WorkoutPlan.Kind().String()).
		Str("diet_kind", plan.DietPlan.Kind().String()).
		Msg("Plan generated by completion service")

	return Result{Plan: plan, Outcome: OutcomeGenerated}
}

// requestPlan is the error-returning pipeline behind Generate.
func (g *Generator) requestPlan(ctx context.Context, logger *zerolog.Logger, in UserInput) (GeneratedPlan, error) {
	if !g.cfg.HasCredential() {
		return GeneratedPlan{}, ErrNoCredential
	}

	prompt := BuildPrompt(in)

	if g.cfg.PlanRequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.PlanRequestTimeout)
		defer cancel()
	}

	content, err := g.client.Complete(ctx, logger, prompt)
	if err != nil {
		var statusErr *openrouter.StatusError
		switch {
		case errors.As(err, &statusErr):
			return GeneratedPlan{}, &UpstreamError{StatusCode: statusErr.StatusCode, Body: statusErr.Body}
		case errors.Is(err, openrouter.ErrEmptyContent):
			return GeneratedPlan{}, ErrEmptyContent
		default:
			return GeneratedPlan{}, &TransportError{Err: err}
		}
	}

	plan, err := Normalize(content)
	if err != nil {
		return GeneratedPlan{}, &ParseError{Raw: content, Err: err}
	}
	return plan, nil
}

// Fallback maps a pipeline error onto the baseline plan, logging the branch.
func Fallback(logger *zerolog.Logger, baseline GeneratedPlan, err error) Result {
	var (
		upstreamErr  *UpstreamError
		parseErr     *ParseError
		transportErr *TransportError
	)
	plan := baseline

	switch {
	case errors.Is(err, ErrNoCredential):
		logger.Warn().Str("outcome", string(OutcomeNoCredential)).Msg("No completion service key configured, returning baseline plan")
		return Result{Plan: plan, Outcome: OutcomeNoCredential, Err: err}

	case errors.Is(err, ErrRateLimited):
		logger.Warn().Str("outcome", string(OutcomeRateLimited)).Msg("Plan request rate limited, returning baseline plan")
		plan.Tips += "\n\n(Note: Too many plan requests right now. Showing fallback plan.)"
		return Result{Plan: plan, Outcome: OutcomeRateLimited, Err: err}

	case errors.As(err, &upstreamErr):
		logger.Error().
			Str("outcome", string(OutcomeUpstreamError)).
			Int("status", upstreamErr.StatusCode).
			Str("body", upstreamErr.Body).
			Msg("Completion service returned non-success status")
		plan.Tips += fmt.Sprintf("\n\n(Note: AI service error %d: fallback plan used.)", upstreamErr.StatusCode)
		return Result{Plan: plan, Outcome: OutcomeUpstreamError, Err: err}

	case errors.Is(err, ErrEmptyContent):
		logger.Error().Str("outcome", string(OutcomeEmptyContent)).Msg("Completion service returned empty content")
		plan.Tips += "\n\n(Note: AI returned empty content. Showing fallback plan.)"
		return Result{Plan: plan, Outcome: OutcomeEmptyContent, Err: err}

	case errors.As(err, &parseErr):
		logger.Error().
			Str("outcome", string(OutcomeParseFailure)).
			Err(parseErr.Err).
			Str("raw", parseErr.Raw).
			Msg("Could not parse completion output as a plan")
		plan.WorkoutPlan = TextContent(parseErr.Raw)
		plan.Tips += "\n\n(Note: AI JSON parse failed, raw AI text shown in workout section.)"
		return Result{Plan: plan, Outcome: OutcomeParseFailure, Err: err}

	case errors.As(err, &transportErr):
		logger.Error().Str("outcome", string(OutcomeTransportFailure)).Err(transportErr.Err).Msg("Completion service call failed")
		plan.Tips += fmt.Sprintf("\n\n(Note: AI service call failed: %s. Showing fallback plan.)", transportErr.Err.Error())
		return Result{Plan: plan, Outcome: OutcomeTransportFailure, Err: err}

	default:
		logger.Error().Str("outcome", string(OutcomeTransportFailure)).Err(err).Msg("Plan generation failed")
		plan.Tips += fmt.Sprintf("\n\n(Note: AI service call failed: %s. Showing fallback plan.)", err.Error())
		return Result{Plan: plan, Outcome: OutcomeTransportFailure, Err: err}
	}
}
