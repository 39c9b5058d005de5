package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"taxsim/internal/config"
	"taxsim/pkg/domain"
	"taxsim/pkg/logger"
	"taxsim/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

// UserIDKey is the context key holding the authenticated domain.UserID.
const UserIDKey ctxKey = "UserID"

// SecHandlerOptions configure bearer authentication.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA key that verifies RS256 tokens. An
	// empty key disables authentication.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler verifies bearer tokens and stores the subject in the context.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	sh := &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return sh, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}
	sh.publicKey = key

	return sh, nil
}

// Enabled reports whether tokens are required.
func (s *SecHandler) Enabled() bool {
	return s.publicKey != nil
}

// HandleBearerAuth validates token and returns a context carrying the
// token's subject as a domain.UserID.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if !s.Enabled() {
		return ctx, nil
	}

	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(id)), nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" header
// when authentication is enabled.
func (s *SecHandler) Middleware(h *Handler, next http.Handler) http.Handler {
	if !s.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		ctx = logger.WithFields(ctx, zap.Stringer("user_id", uuid.UUID(GetUserIDFromContext(ctx))))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the authenticated caller, or the zero UserID
// when authentication is disabled.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}
