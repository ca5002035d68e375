package imagelookup

import (
	"net/http"
	"net/url"
	"strings"

	"FitCoach_V0.1/internal/utility"
	"github.com/labstack/echo/v4"
)

type Category string

const (
	CategoryExercise Category = "exercise"
	CategoryMeal     Category = "meal"
)

// Query is the body of the image endpoint.
type Query struct {
	Label string   `json:"label"`
	Type  Category `json:"type"`
}

type Response struct {
	URL string `json:"url"`
}

// BuildURL returns the featured-image search URL for "<type> <label>".
// Neither field is validated; odd input yields an odd but valid query.
func BuildURL(baseURL string, q Query) string {
	return baseURL + "?" + encodeURIComponent(string(q.Type)+" "+q.Label)
}

// uriComponentUnescapes are left literal by encodeURIComponent but escaped
// by url.QueryEscape.
var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent percent-encodes s, leaving only A-Z a-z 0-9 - _ . ! ~ * ' ( ) literal.
func encodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}

type Handler struct {
	baseURL string
}

func NewHandler(baseURL string) *Handler {
	return &Handler{baseURL: baseURL}
}

// GenerateImageHandler answers with the search URL; the client fetches the image itself.
func (h *Handler) GenerateImageHandler(c echo.Context) error {
	logger := utility.LoggerFromContext(c)

	var q Query
	if err := c.Bind(&q); err != nil {
		logger.Error().Err(err).Msg("Failed to bind image request body")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	imageURL := BuildURL(h.baseURL, q)
	logger.Debug().Str("label", q.Label).Str("type", string(q.Type)).Str("url", imageURL).Msg("Built image lookup URL")

	return c.JSON(http.StatusOK, Response{URL: imageURL})
}
