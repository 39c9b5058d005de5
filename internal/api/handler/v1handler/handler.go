// Package v1handler implements the v1 HTTP API: tax calculations, the
// advisory channel and table listing.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"taxsim/internal/advisory"
	"taxsim/internal/calculator"
	"taxsim/pkg/logger"
	"taxsim/pkg/serrors"

	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Calculator calculator.Calculator
	Advisory   advisory.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 routes relative to the /v1 prefix.
func (h Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /tax/income", h.CalculateIncome)
	mux.HandleFunc("POST /tax/inheritance", h.CalculateInheritance)
	mux.HandleFunc("POST /tax/capital-gains", h.CalculateCapitalGains)
	mux.HandleFunc("GET /tax/tables", h.ListTables)
	mux.HandleFunc("POST /advice", h.Ask)

	return mux
}

// Error is the JSON body of every failed response.
type Error struct {
	Code    string
	Message string
}

// ErrorResponse pairs an Error body with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

type kindStatus struct {
	status  int
	message string
}

var kindStatuses = map[serrors.Kind]kindStatus{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:      {http.StatusBadRequest, "invalid request"},
	serrors.ErrMissingInput:    {http.StatusBadRequest, "missing input"},
	serrors.ErrDomain:          {http.StatusUnprocessableEntity, "cannot be computed"},
	serrors.ErrUnauthorized:    {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrNotFound:        {http.StatusNotFound, "resource not found"},
	serrors.ErrRateLimited:     {http.StatusTooManyRequests, "rate limited"},
	serrors.ErrTimeout:         {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:     {http.StatusBadGateway, "upstream unavailable"},
	serrors.ErrExternalService: {http.StatusBadGateway, "upstream error"},
}

// NewError maps err to a response. Errors without a known semantic kind
// become a generic 500 so internal details never reach the client.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	ks, ok := kindStatuses[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response: Error{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	message := ks.message
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}

	if ks.status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.String("kind", kind.Error()), zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.String("kind", kind.Error()), zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: ks.status,
		Response: Error{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, encodeError(res.Response))
}
