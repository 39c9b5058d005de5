// Package advisor defines the client used to send free-text tax questions to a
// third-party completion service and receive an answer.
package advisor

import "context"

// Request is a single advisory question.
type Request struct {
	// Credential is the caller's API key for the completion service.
	Credential string
	// SystemPrompt frames the assistant's role.
	SystemPrompt string
	// Question is the user's free-text question.
	Question string
}

// Answer is the completion returned for a Request. Text is opaque and passed
// through for display.
type Answer struct {
	Text             string
	Model            string
	PromptTokens     int
	CompletionTokens int
}

// Client is the abstraction for completion services.
//
//go:generate mockgen -package mockadvisor -source=interface.go -destination=mock/mockadvisor.go *
type Client interface {
	// Ask sends the request and returns the answer. Failures are reported as
	// serrors kinds: UNAUTHORIZED, RATE_LIMITED, TIMEOUT, UNAVAILABLE or
	// EXTERNAL_SERVICE.
	Ask(ctx context.Context, req Request) (*Answer, error)
}
