package main

import (
	"fmt"
	"time"

	"taxsim/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for an API caller using the configured private key. Without --subject a
// random caller ID is issued.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a JWT for an API caller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			signed, err := signToken(cfg.JWT.PrivateKey, subject, ttl, time.Now())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().String("subject", "", "Caller ID (UUID); random when empty")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")

	return cmd
}

func signToken(privateKeyPEM, subject string, ttl time.Duration, now time.Time) (string, error) {
	if subject == "" {
		subject = uuid.NewString()
	} else if _, err := uuid.Parse(subject); err != nil {
		return "", fmt.Errorf("subject must be a UUID: %w", err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}
