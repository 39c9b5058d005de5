// Package advisory implements the free-text advisory channel. It is isolated
// from the calculator: a failed or slow answer never affects a computation.
package advisory

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"taxsim/internal/config"
	"taxsim/pkg/advisor"
	"taxsim/pkg/logger"
	"taxsim/pkg/metrics"
	"taxsim/pkg/serrors"

	"go.uber.org/zap"
)

// SystemPrompt frames every question sent to the completion API.
const SystemPrompt = "You are an expert in Japanese and Australian tax and inheritance systems. " +
	"Answer clearly and concisely, and say when a question needs a licensed professional."

// Options configure the advisory service.
type Options struct {
	// Timeout bounds a single completion request. Zero means no extra bound.
	Timeout time.Duration
	// DefaultCredential is used when a caller does not supply one.
	DefaultCredential string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Timeout:           cfg.Advisor.Timeout,
		DefaultCredential: cfg.Advisor.APIKey,
	}
}

type service struct {
	client  advisor.Client
	options Options
	metrics *metrics.Recorder
}

// New returns a Service backed by client. rec may be nil.
func New(client advisor.Client, opts Options, rec *metrics.Recorder) Service {
	return &service{
		client:  client,
		options: opts,
		metrics: rec,
	}
}

func (s *service) Ask(ctx context.Context, credential, question string) (string, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		credential = strings.TrimSpace(s.options.DefaultCredential)
	}
	question = strings.TrimSpace(question)

	switch {
	case credential == "":
		return "", serrors.With(serrors.ErrMissingInput, "an API credential is required")
	case question == "":
		return "", serrors.With(serrors.ErrMissingInput, "a question is required")
	}

	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	start := time.Now()
	ans, err := s.client.Ask(ctx, advisor.Request{
		Credential:   credential,
		SystemPrompt: SystemPrompt,
		Question:     question,
	})
	took := time.Since(start)
	if err == nil && ans == nil {
		err = serrors.With(serrors.ErrExternalService, "completion API returned no answer")
	}

	if err != nil {
		err = classify(err)
		reason := serrors.KindOf(err).Error()
		s.metrics.AdvisorCall(ctx, took, reason)
		logger.Warn(ctx, "advisory request failed",
			zap.String("reason", reason),
			zap.Duration("took", took),
			zap.Error(err))

		return "", err
	}

	s.metrics.AdvisorCall(ctx, took, "")
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "advisory request answered",
			zap.String("model", ans.Model),
			zap.Int("promptTokens", ans.PromptTokens),
			zap.Int("completionTokens", ans.CompletionTokens),
			zap.Int("questionRunes", utf8.RuneCountInString(question)),
			zap.Int("answerRunes", utf8.RuneCountInString(ans.Text)),
			zap.Duration("took", took))
	}

	return ans.Text, nil
}

// classify makes sure every failure carries a semantic kind.
func classify(err error) error {
	if serrors.KindOf(err) != nil {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "advisory request timed out")
	}

	return serrors.Wrap(serrors.ErrExternalService, err, "advisory request failed")
}
