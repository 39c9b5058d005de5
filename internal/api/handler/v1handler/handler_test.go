package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"taxsim/internal/api/handler/v1handler"
	"taxsim/pkg/logger"
	"taxsim/pkg/serrors"
	"taxsim/pkg/tax"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.With(serrors.ErrBadRequest, "grossIncome must be a finite number")
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "grossIncome must be a finite number", res.Response.Message)
}

func TestNewError_NoHeirs_Unprocessable(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	_, cause := tax.ComputeInheritanceTax(1000, 0, false)
	err := fmt.Errorf("could not compute inheritance tax: %w", cause)
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	require.Equal(t, serrors.ErrDomain.Error(), res.Response.Code)
	require.Contains(t, res.Response.Message, "without a spouse or children")
}

func TestNewError_KindStatuses(t *testing.T) {
	cases := []struct {
		kind   serrors.Kind
		status int
	}{
		{serrors.ErrMissingInput, http.StatusBadRequest},
		{serrors.ErrUnauthorized, http.StatusUnauthorized},
		{serrors.ErrRateLimited, http.StatusTooManyRequests},
		{serrors.ErrTimeout, http.StatusGatewayTimeout},
		{serrors.ErrUnavailable, http.StatusBadGateway},
		{serrors.ErrExternalService, http.StatusBadGateway},
	}

	h := v1handler.New(v1handler.Deps{})
	for _, tc := range cases {
		t.Run(tc.kind.Error(), func(t *testing.T) {
			res := h.NewError(context.Background(), serrors.Wrap(tc.kind, errors.New("cause"), "detail"))
			require.Equal(t, tc.status, res.StatusCode)
			require.Equal(t, tc.kind.Error(), res.Response.Code)
			// provided message, not the cause
			require.Equal(t, "detail", res.Response.Message)
		})
	}
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrInternal, "secret detail"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}
