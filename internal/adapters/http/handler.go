package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/randomtoy/pokedexd/internal/domain"
)

// Resolver is the application surface the handler depends on.
type Resolver interface {
	Resolve(ctx context.Context, q domain.SpeciesQuery, wantTranslation bool) (domain.ResultView, error)
}

type Handler struct {
	svc    Resolver
	logger *zap.Logger
}

func NewHandler(svc Resolver, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger.Named("http")}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	v1 := e.Group("/api/v1")
	v1.GET("/pokemon/:name", h.GetPokemon)
	v1.GET("/pokemon/:name/translated", h.GetTranslatedPokemon)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetPokemon(c echo.Context) error {
	return h.resolve(c, false)
}

func (h *Handler) GetTranslatedPokemon(c echo.Context) error {
	return h.resolve(c, true)
}

func (h *Handler) resolve(c echo.Context, translated bool) error {
	q, err := domain.NewSpeciesQuery(c.Param("name"))
	if err != nil {
		return h.mapError(c, err)
	}

	view, err := h.svc.Resolve(c.Request().Context(), q, translated)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, toResponse(view))
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get(contextKeyRequestID).(string)

	switch {
	case errors.Is(err, domain.ErrInvalidName):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: CodeInvalidName, Error: err.Error()})
	case errors.Is(err, domain.ErrSpeciesNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:  CodeNotFound,
			Error: fmt.Sprintf("species %q not found", c.Param("name")),
		})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		h.logger.Warn("species service unavailable", zap.String("request_id", requestID), zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:  CodeUpstreamUnavailable,
			Error: domain.ErrUpstreamUnavailable.Error(),
		})
	default:
		h.logger.Error("internal error", zap.String("request_id", requestID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Code: CodeInternal, Error: "internal error"})
	}
}
