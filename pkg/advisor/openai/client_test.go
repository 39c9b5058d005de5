package openai_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"taxsim/pkg/advisor"
	"taxsim/pkg/advisor/openai"
	"taxsim/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *openai.Client {
	return openai.New(&http.Client{Transport: fn}, openai.Options{
		BaseURL:     "https://llm.example/v1/",
		Model:       "test-model",
		Temperature: 0.2,
		MaxTokens:   256,
	})
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

var testRequest = advisor.Request{
	Credential:   "sk-test",
	SystemPrompt: "You are a tax expert.",
	Question:     "Is there inheritance tax in Australia?",
}

func TestClient_Ask_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "llm.example", r.URL.Host)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var (
			model    string
			roles    []string
			contents []string
			tokens   int
		)
		err = jx.DecodeBytes(body).ObjBytes(func(d *jx.Decoder, key []byte) error {
			switch string(key) {
			case "model":
				v, err := d.Str()
				model = v

				return err
			case "max_tokens":
				v, err := d.Int()
				tokens = v

				return err
			case "messages":
				return d.Arr(func(d *jx.Decoder) error {
					return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
						v, err := d.Str()
						if string(key) == "role" {
							roles = append(roles, v)
						} else {
							contents = append(contents, v)
						}

						return err
					})
				})
			default:
				return d.Skip()
			}
		})
		require.NoError(t, err)
		require.Equal(t, "test-model", model)
		require.Equal(t, 256, tokens)
		require.Equal(t, []string{"system", "user"}, roles)
		require.Equal(t, []string{testRequest.SystemPrompt, testRequest.Question}, contents)

		return respond(http.StatusOK, `{
			"id": "chatcmpl-1",
			"model": "test-model-2025",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "No, but CGT may apply."}},
				{"index": 1, "message": {"role": "assistant", "content": "ignored"}}
			],
			"usage": {"prompt_tokens": 21, "completion_tokens": 7, "total_tokens": 28}
		}`)
	})

	ans, err := c.Ask(context.Background(), testRequest)
	require.NoError(t, err)
	require.Equal(t, "No, but CGT may apply.", ans.Text)
	require.Equal(t, "test-model-2025", ans.Model)
	require.Equal(t, 21, ans.PromptTokens)
	require.Equal(t, 7, ans.CompletionTokens)
}

func TestClient_Ask_statusMapping(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		kind    serrors.Kind
		message string
	}{
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`,
			kind:    serrors.ErrUnauthorized,
			message: "Incorrect API key provided",
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"message":"quota exceeded"}}`,
			kind:    serrors.ErrRateLimited,
			message: "quota exceeded",
		},
		{
			name:    "upstream down",
			status:  http.StatusBadGateway,
			body:    "bad gateway",
			kind:    serrors.ErrUnavailable,
			message: "bad gateway",
		},
		{
			name:    "other client error",
			status:  http.StatusBadRequest,
			body:    `{"error":{"message":"model not found"}}`,
			kind:    serrors.ErrExternalService,
			message: "model not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(func(r *http.Request) (*http.Response, error) {
				return respond(tc.status, tc.body)
			})

			_, err := c.Ask(context.Background(), testRequest)
			require.Error(t, err)
			require.ErrorIs(t, err, tc.kind)
			require.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestClient_Ask_missingAnswer(t *testing.T) {
	for _, body := range []string{
		`{"choices": []}`,
		`{"choices": [{"message": {"role": "assistant", "content": null}}]}`,
		`{"choices": [{"message": {"role": "assistant", "content": "   "}}]}`,
	} {
		c := newTestClient(func(r *http.Request) (*http.Response, error) {
			return respond(http.StatusOK, body)
		})

		_, err := c.Ask(context.Background(), testRequest)
		require.ErrorIs(t, err, serrors.ErrExternalService, body)
	}
}

func TestClient_Ask_invalidJSON(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"choices": [`)
	})

	_, err := c.Ask(context.Background(), testRequest)
	require.ErrorIs(t, err, serrors.ErrExternalService)
}

func TestClient_Ask_transportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := c.Ask(context.Background(), testRequest)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "connection refused")
}

func TestClient_Ask_deadline(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		<-r.Context().Done()

		return nil, r.Context().Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := c.Ask(ctx, testRequest)
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestNew_Defaults(t *testing.T) {
	c := openai.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "https://api.openai.com/v1/chat/completions", r.URL.String())

		return respond(http.StatusOK, `{"choices":[{"message":{"content":"ok"}}]}`)
	})}, openai.Options{})

	ans, err := c.Ask(context.Background(), testRequest)
	require.NoError(t, err)
	require.Equal(t, "ok", ans.Text)
}
