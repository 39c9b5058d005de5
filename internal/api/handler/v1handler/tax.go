package v1handler

import (
	"net/http"
)

// CalculateIncome handles POST /tax/income.
func (h Handler) CalculateIncome(w http.ResponseWriter, r *http.Request) {
	b, err := readBody(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	in, err := DecodeIncomeInput(b)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Calculator.Income(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, EncodeIncomeResult(res))
}

// CalculateInheritance handles POST /tax/inheritance.
func (h Handler) CalculateInheritance(w http.ResponseWriter, r *http.Request) {
	b, err := readBody(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	in, err := DecodeInheritanceInput(b)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Calculator.Inheritance(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, EncodeInheritanceResult(res))
}

// CalculateCapitalGains handles POST /tax/capital-gains.
func (h Handler) CalculateCapitalGains(w http.ResponseWriter, r *http.Request) {
	b, err := readBody(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	in, err := DecodeCapitalGainInput(b)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Calculator.CapitalGains(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, EncodeCapitalGainResult(res))
}

// ListTables handles GET /tax/tables.
func (h Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, EncodeTables(h.deps.Calculator.Tables(r.Context())))
}
