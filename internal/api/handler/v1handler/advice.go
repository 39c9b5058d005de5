package v1handler

import (
	"net/http"
	"strings"
)

// AdvisorKeyHeader carries a caller-supplied completion API credential. It
// takes precedence over the apiKey body field.
const AdvisorKeyHeader = "X-Advisor-Key"

// Ask handles POST /advice.
func (h Handler) Ask(w http.ResponseWriter, r *http.Request) {
	b, err := readBody(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	req, err := DecodeAdviceRequest(b)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	credential := req.APIKey
	if v := strings.TrimSpace(r.Header.Get(AdvisorKeyHeader)); v != "" {
		credential = v
	}

	answer, err := h.deps.Advisory.Ask(r.Context(), credential, req.Question)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, EncodeAdvice(answer))
}
