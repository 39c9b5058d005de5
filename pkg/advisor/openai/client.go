// Package openai provides an advisor.Client implementation backed by an
// OpenAI-compatible chat-completions API.
package openai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"taxsim/pkg/advisor"
	"taxsim/pkg/serrors"

	faster "github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultModel is used when Options.Model is empty.
	DefaultModel = "gpt-4o-mini"
	// DefaultMaxTokens is used when Options.MaxTokens is not positive.
	DefaultMaxTokens = 1024
)

// Options configures the completion request.
type Options struct {
	// BaseURL is the API root, e.g. "https://api.openai.com/v1".
	BaseURL string
	// Model is the chat model name.
	Model string
	// Temperature is the sampling temperature.
	Temperature float64
	// MaxTokens caps the answer length.
	MaxTokens int
}

// Client talks to the chat-completions endpoint and fulfills the
// advisor.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	opts       Options
	tracer     trace.Tracer
}

// Ensure Client conforms to the advisor.Client interface at compile time.
var _ advisor.Client = (*Client)(nil)

// New constructs a Client using the provided http.Client and options. Empty
// options fall back to the package defaults.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	return &Client{
		httpClient: httpClient,
		opts:       opts,
		tracer:     otel.Tracer("taxsim/pkg/advisor/openai"),
	}
}

// Ask sends one system and one user message and returns the first choice.
func (c *Client) Ask(ctx context.Context, req advisor.Request) (*advisor.Answer, error) {
	ctx, span := c.tracer.Start(ctx, "advisor.Ask",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("llm.model", c.opts.Model)))
	defer span.End()

	ans, err := c.ask(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}
	span.SetAttributes(
		attribute.Int("llm.prompt_tokens", ans.PromptTokens),
		attribute.Int("llm.completion_tokens", ans.CompletionTokens))

	return ans, nil
}

func (c *Client) ask(ctx context.Context, req advisor.Request) (*advisor.Answer, error) {
	httpReq, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.opts.BaseURL+"/chat/completions",
		bytes.NewReader(c.encodeRequest(req)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.Credential)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "completion request timed out")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, serrors.With(serrors.ErrUnauthorized, "completion API rejected the credential: %s", apiMessage(b))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", apiMessage(b))
	case resp.StatusCode >= 500:
		return nil, serrors.With(serrors.ErrUnavailable, "completion API unavailable: %s", apiMessage(b))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, serrors.With(serrors.ErrExternalService, "completion failed: %s", apiMessage(b))
	}

	ans, err := decodeAnswer(b)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrExternalService, err, "could not decode response")
	}
	if strings.TrimSpace(ans.Text) == "" {
		return nil, serrors.With(serrors.ErrExternalService, "response missing answer")
	}

	return ans, nil
}

// encodeRequest builds the chat-completions payload.
func (c *Client) encodeRequest(req advisor.Request) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("model")
	e.Str(c.opts.Model)
	e.FieldStart("messages")
	e.ArrStart()
	for _, m := range [][2]string{{"system", req.SystemPrompt}, {"user", req.Question}} {
		if m[1] == "" {
			continue
		}
		e.ObjStart()
		e.FieldStart("role")
		e.Str(m[0])
		e.FieldStart("content")
		e.Str(m[1])
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("temperature")
	e.Float64(c.opts.Temperature)
	e.FieldStart("max_tokens")
	e.Int(c.opts.MaxTokens)
	e.ObjEnd()

	return e.Bytes()
}

// decodeAnswer extracts the first choice's content, the model and token usage.
func decodeAnswer(b []byte) (*advisor.Answer, error) {
	out := &advisor.Answer{}
	seenChoice := false

	err := jx.DecodeBytes(b).ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "model":
			v, err := d.Str()
			if err != nil {
				return faster.Wrap(err, "model")
			}
			out.Model = v
		case "choices":
			return d.Arr(func(d *jx.Decoder) error {
				if seenChoice {
					return d.Skip()
				}
				seenChoice = true

				return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
					if string(key) != "message" {
						return d.Skip()
					}

					return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
						if string(key) != "content" || d.Next() == jx.Null {
							return d.Skip()
						}
						v, err := d.Str()
						if err != nil {
							return faster.Wrap(err, "content")
						}
						out.Text = v

						return nil
					})
				})
			})
		case "usage":
			return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
				switch string(key) {
				case "prompt_tokens":
					v, err := d.Int()
					if err != nil {
						return faster.Wrap(err, "prompt_tokens")
					}
					out.PromptTokens = v
				case "completion_tokens":
					v, err := d.Int()
					if err != nil {
						return faster.Wrap(err, "completion_tokens")
					}
					out.CompletionTokens = v
				default:
					return d.Skip()
				}

				return nil
			})
		default:
			return d.Skip()
		}

		return nil
	})
	if err != nil {
		return nil, faster.Wrap(err, "completion")
	}

	return out, nil
}

// apiMessage returns error.message from an API error body, or the trimmed body.
func apiMessage(b []byte) string {
	var msg string
	_ = jx.DecodeBytes(b).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "error" || d.Next() != jx.Object {
			return d.Skip()
		}

		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) != "message" || d.Next() != jx.String {
				return d.Skip()
			}
			v, err := d.Str()
			msg = v

			return err
		})
	})
	if msg != "" {
		return msg
	}

	return strings.TrimSpace(string(b))
}
