package v1handler

import (
	"io"
	"math"
	"net/http"
	"strconv"

	"taxsim/pkg/domain"
	"taxsim/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const contentTypeJSON = "application/json"

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// readBody reads the full request body, translating size-limit and
// transport failures into semantic errors.
func readBody(r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", maxErr.Limit)
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	return b, nil
}

// decodeObject decodes a JSON object, dispatching each known key to its
// decoder and skipping the rest.
func decodeObject(b []byte, fields map[string]func(*jx.Decoder) error) error {
	if len(b) == 0 {
		return serrors.With(serrors.ErrBadRequest, "request body is empty")
	}

	err := jx.DecodeBytes(b).ObjBytes(func(d *jx.Decoder, key []byte) error {
		fn, ok := fields[string(key)]
		if !ok {
			return d.Skip()
		}
		if err := fn(d); err != nil {
			return errors.Wrapf(err, "field %q", key)
		}

		return nil
	})
	if err != nil {
		return serrors.With(serrors.ErrBadRequest, "invalid request body: %v", err)
	}

	return nil
}

func float64Field(dst *float64) func(*jx.Decoder) error {
	return func(d *jx.Decoder) error {
		v, err := d.Float64()
		if err != nil {
			return errors.Wrap(err, "number expected")
		}
		*dst = v

		return nil
	}
}

func intField(dst *int) func(*jx.Decoder) error {
	return func(d *jx.Decoder) error {
		v, err := d.Int()
		if err != nil {
			return errors.Wrap(err, "integer expected")
		}
		*dst = v

		return nil
	}
}

func boolField(dst *bool) func(*jx.Decoder) error {
	return func(d *jx.Decoder) error {
		v, err := d.Bool()
		if err != nil {
			return errors.Wrap(err, "boolean expected")
		}
		*dst = v

		return nil
	}
}

func stringField(dst *string) func(*jx.Decoder) error {
	return func(d *jx.Decoder) error {
		v, err := d.Str()
		if err != nil {
			return errors.Wrap(err, "string expected")
		}
		*dst = v

		return nil
	}
}

func objectField(fields map[string]func(*jx.Decoder) error) func(*jx.Decoder) error {
	return func(d *jx.Decoder) error {
		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			fn, ok := fields[string(key)]
			if !ok {
				return d.Skip()
			}

			return fn(d)
		})
	}
}

// DecodeIncomeInput decodes {"grossIncome": n, "resident": b}. resident
// defaults to true.
func DecodeIncomeInput(b []byte) (domain.IncomeInput, error) {
	in := domain.IncomeInput{Resident: true}
	err := decodeObject(b, map[string]func(*jx.Decoder) error{
		"grossIncome": float64Field(&in.GrossIncome),
		"resident":    boolField(&in.Resident),
	})

	return in, err
}

// DecodeInheritanceInput decodes
// {"estate": {"cash", "property", "other"}, "heirs": {"numChildren", "hasSpouse"}}.
func DecodeInheritanceInput(b []byte) (domain.InheritanceInput, error) {
	var in domain.InheritanceInput
	err := decodeObject(b, map[string]func(*jx.Decoder) error{
		"estate": objectField(map[string]func(*jx.Decoder) error{
			"cash":     float64Field(&in.Estate.Cash),
			"property": float64Field(&in.Estate.Property),
			"other":    float64Field(&in.Estate.Other),
		}),
		"heirs": objectField(map[string]func(*jx.Decoder) error{
			"numChildren": intField(&in.Heirs.NumChildren),
			"hasSpouse":   boolField(&in.Heirs.HasSpouse),
		}),
	})

	return in, err
}

// DecodeCapitalGainInput decodes {"assetValue", "costBase", "longHeld"}.
// longHeld defaults to true.
func DecodeCapitalGainInput(b []byte) (domain.CapitalGainInput, error) {
	in := domain.CapitalGainInput{LongHeld: true}
	err := decodeObject(b, map[string]func(*jx.Decoder) error{
		"assetValue": float64Field(&in.AssetValue),
		"costBase":   float64Field(&in.CostBase),
		"longHeld":   boolField(&in.LongHeld),
	})

	return in, err
}

// AdviceRequest is the body of POST /advice.
type AdviceRequest struct {
	Question string
	APIKey   string
}

func DecodeAdviceRequest(b []byte) (AdviceRequest, error) {
	var req AdviceRequest
	err := decodeObject(b, map[string]func(*jx.Decoder) error{
		"question": stringField(&req.Question),
		"apiKey":   stringField(&req.APIKey),
	})

	return req, err
}

func encodeError(e Error) []byte {
	var enc jx.Encoder
	enc.ObjStart()
	enc.FieldStart("code")
	enc.Str(e.Code)
	enc.FieldStart("message")
	enc.Str(e.Message)
	enc.ObjEnd()

	return enc.Bytes()
}

func numField(e *jx.Encoder, name string, v float64) {
	e.FieldStart(name)
	e.Float64(v)
}

func EncodeIncomeResult(res *domain.IncomeResult) []byte {
	var e jx.Encoder
	e.ObjStart()
	numField(&e, "grossIncome", res.GrossIncome)
	e.FieldStart("resident")
	e.Bool(res.Resident)
	numField(&e, "basicDeduction", res.BasicDeduction)
	numField(&e, "taxableIncome", res.TaxableIncome)
	numField(&e, "incomeTax", res.IncomeTax)
	numField(&e, "residentTax", res.ResidentTax)
	numField(&e, "totalTax", res.TotalTax)
	e.FieldStart("table")
	e.Str(res.Table)
	if res.Notice != "" {
		e.FieldStart("notice")
		e.Str(res.Notice)
	}
	e.ObjEnd()

	return e.Bytes()
}

func EncodeInheritanceResult(res *domain.InheritanceResult) []byte {
	var e jx.Encoder
	e.ObjStart()
	numField(&e, "estateTotal", res.EstateTotal)
	numField(&e, "property", res.Property)
	e.FieldStart("heirCount")
	e.Int(res.HeirCount)
	numField(&e, "basicDeduction", res.BasicDeduction)
	numField(&e, "taxableEstate", res.TaxableEstate)
	numField(&e, "sharePerHeir", res.SharePerHeir)
	numField(&e, "spouseExemption", res.SpouseExemption)
	numField(&e, "spouseTax", res.SpouseTax)
	numField(&e, "childTaxTotal", res.ChildTaxTotal)
	numField(&e, "total", res.Total)
	e.ObjEnd()

	return e.Bytes()
}

func EncodeCapitalGainResult(res *domain.CapitalGainResult) []byte {
	var e jx.Encoder
	e.ObjStart()
	numField(&e, "gain", res.Gain)
	numField(&e, "taxableGain", res.TaxableGain)
	numField(&e, "tax", res.Tax)
	e.ObjEnd()

	return e.Bytes()
}

func EncodeAdvice(answer string) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("answer")
	e.Str(answer)
	e.ObjEnd()

	return e.Bytes()
}

// EncodeTables writes the table list. The unbounded last tier is encoded
// with a null upperBound since JSON has no infinity.
func EncodeTables(tables []domain.NamedTable) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("tables")
	e.ArrStart()
	for _, t := range tables {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(t.Name)
		e.FieldStart("description")
		e.Str(t.Description)
		e.FieldStart("brackets")
		e.ArrStart()
		for _, b := range t.Table {
			e.ObjStart()
			e.FieldStart("upperBound")
			if math.IsInf(b.UpperBound, 1) {
				e.Null()
			} else {
				e.Float64(b.UpperBound)
			}
			numField(&e, "rate", b.Rate)
			numField(&e, "subtractor", b.Subtractor)
			e.ObjEnd()
		}
		e.ArrEnd()
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes()
}
