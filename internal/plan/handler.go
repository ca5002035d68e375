package plan

import (
	"mime"
	"net/http"

	"FitCoach_V0.1/internal/utility"
	"github.com/labstack/echo/v4"
)

// OutcomeHeader exposes the pipeline branch to operators and tests.
const OutcomeHeader = "X-Plan-Outcome"

// Limiter decides whether a client may trigger another completion call.
type Limiter interface {
	Allow(identifier string) (bool, error)
}

// ExportRequest is the body of the export endpoint.
type ExportRequest struct {
	Name string        `json:"name"`
	Plan GeneratedPlan `json:"plan"`
}

type Handler struct {
	gen     *Generator
	limiter Limiter
}

// NewHandler wires the plan endpoints. limiter may be nil.
func NewHandler(gen *Generator, limiter Limiter) *Handler {
	return &Handler{gen: gen, limiter: limiter}
}

// GeneratePlanHandler answers every decodable request with 200 and a plan.
func (h *Handler) GeneratePlanHandler(c echo.Context) error {
	logger := utility.LoggerFromContext(c)

	var req UserInput
	if err := c.Bind(&req); err != nil {
		logger.Error().Err(err).Msg("Failed to bind plan request body")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if problems := req.Validate(); len(problems) > 0 {
		logger.Warn().Strs("problems", problems).Msg("Plan request has out-of-range fields, continuing")
	}

	var result Result
	if h.limited(c) {
		result = Fallback(logger, Baseline(req), ErrRateLimited)
	} else {
		result = h.gen.Generate(c.Request().Context(), logger, req)
	}

	c.Response().Header().Set(OutcomeHeader, string(result.Outcome))
	return c.JSON(http.StatusOK, result.Plan)
}

// ExportPlanHandler returns the plan as a text attachment.
func (h *Handler) ExportPlanHandler(c echo.Context) error {
	logger := utility.LoggerFromContext(c)

	var req ExportRequest
	if err := c.Bind(&req); err != nil {
		logger.Error().Err(err).Msg("Failed to bind export request body")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": ExportFilename(req.Name)})
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(ExportText(req.Name, req.Plan)))
}

func (h *Handler) limited(c echo.Context) bool {
	if h.limiter == nil {
		return false
	}
	ip := utility.GetRealIP(c)
	allowed, err := h.limiter.Allow(ip)
	if err != nil {
		utility.LoggerFromContext(c).Warn().Err(err).Str("ip", ip).Msg("Rate limiter failed, allowing request")
		return false
	}
	return !allowed
}
