// Package calculator sits between the input forms (CLI flags, HTTP bodies) and
// the pure tax package: it sanitizes inputs, picks the configured tables and
// records metrics.
package calculator

import (
	"context"
	"fmt"
	"math"

	"taxsim/internal/config"
	"taxsim/pkg/domain"
	"taxsim/pkg/logger"
	"taxsim/pkg/metrics"
	"taxsim/pkg/serrors"
	"taxsim/pkg/tax"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// NonResidentNotice is attached to income results for non-residents.
const NonResidentNotice = "non-residents are generally taxed in Japan only on Japan-source income"

// MaxChildren is the largest child count accepted for an inheritance.
const MaxChildren = 1000

// Options configure which schedules the calculator applies.
type Options struct {
	// IncomeTable names the bracket table for national income tax.
	IncomeTable string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		IncomeTable: cfg.Tax.IncomeTable,
	}
}

// calculator is the concrete implementation of the Calculator interface.
type calculator struct {
	options     Options
	incomeTable domain.BracketTable
	metrics     *metrics.Recorder
}

// New returns a Calculator. rec may be nil. It fails when the configured
// income table does not exist or is malformed.
func New(opts Options, rec *metrics.Recorder) (Calculator, error) {
	if opts.IncomeTable == "" {
		opts.IncomeTable = tax.JapanIncome
	}

	table, err := tax.Table(opts.IncomeTable)
	if err != nil {
		return nil, fmt.Errorf("could not load income table: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid income table %q: %w", opts.IncomeTable, err)
	}

	return &calculator{
		options:     opts,
		incomeTable: table,
		metrics:     rec,
	}, nil
}

// field is a named numeric form value.
type field struct {
	name  string
	value *float64
}

// sanitize rejects non-finite values and floors negative ones at zero, logging
// and counting each clamp.
func (c *calculator) sanitize(ctx context.Context, kind string, fields ...field) error {
	if bad, found := lo.Find(fields, func(f field) bool {
		return math.IsNaN(*f.value) || math.IsInf(*f.value, 0)
	}); found {
		return serrors.With(serrors.ErrBadRequest, "%s must be a finite number", bad.name)
	}

	for _, f := range lo.Filter(fields, func(f field, _ int) bool { return *f.value < 0 }) {
		logger.Warn(ctx, "negative input floored to zero",
			zap.String("kind", kind),
			zap.String("field", f.name),
			zap.Float64("value", *f.value))
		c.metrics.InputClamped(ctx, kind, f.name)
		*f.value = 0
	}

	return nil
}

// Income computes national income tax and resident tax. Non-residents get a
// zero result with an explanatory notice.
func (c *calculator) Income(ctx context.Context, in domain.IncomeInput) (*domain.IncomeResult, error) {
	if err := c.sanitize(ctx, metrics.KindIncome, field{"grossIncome", &in.GrossIncome}); err != nil {
		return nil, err
	}

	out := &domain.IncomeResult{
		GrossIncome: in.GrossIncome,
		Resident:    in.Resident,
		Table:       c.options.IncomeTable,
	}

	if !in.Resident {
		out.Notice = NonResidentNotice
		c.metrics.Calculation(ctx, metrics.KindIncome)

		return out, nil
	}

	taxable, incomeTax := tax.ComputeIncomeTax(in.GrossIncome, c.incomeTable)
	out.BasicDeduction = tax.BasicIncomeDeduction
	out.TaxableIncome = taxable
	out.IncomeTax = incomeTax
	out.ResidentTax = tax.ComputeResidentTax(in.GrossIncome)
	out.TotalTax = out.IncomeTax + out.ResidentTax

	logger.Debug(ctx, "income tax computed",
		zap.Float64("taxable", out.TaxableIncome),
		zap.Float64("total", out.TotalTax),
		zap.String("table", out.Table))
	c.metrics.Calculation(ctx, metrics.KindIncome)

	return out, nil
}

// Inheritance computes Japanese inheritance tax. It returns a DOMAIN error when
// there are no heirs.
func (c *calculator) Inheritance(ctx context.Context, in domain.InheritanceInput) (*domain.InheritanceResult, error) {
	if err := c.sanitize(ctx, metrics.KindInheritance,
		field{"cash", &in.Estate.Cash},
		field{"property", &in.Estate.Property},
		field{"other", &in.Estate.Other},
	); err != nil {
		return nil, err
	}
	if in.Heirs.NumChildren < 0 {
		logger.Warn(ctx, "negative input floored to zero",
			zap.String("kind", metrics.KindInheritance),
			zap.String("field", "numChildren"),
			zap.Int("value", in.Heirs.NumChildren))
		c.metrics.InputClamped(ctx, metrics.KindInheritance, "numChildren")
		in.Heirs.NumChildren = 0
	}
	if in.Heirs.NumChildren > MaxChildren {
		return nil, serrors.With(serrors.ErrBadRequest, "numChildren must not exceed %d", MaxChildren)
	}

	total := in.Estate.Total()
	res, err := tax.ComputeInheritanceTax(total, in.Heirs.NumChildren, in.Heirs.HasSpouse)
	if err != nil {
		return nil, fmt.Errorf("could not compute inheritance tax: %w", err)
	}

	logger.Debug(ctx, "inheritance tax computed",
		zap.Float64("estate", total),
		zap.Int("heirs", in.Heirs.HeirCount()),
		zap.Float64("total", res.Total))
	c.metrics.Calculation(ctx, metrics.KindInheritance)

	return &domain.InheritanceResult{
		EstateTotal:     total,
		Property:        in.Estate.Property,
		HeirCount:       res.HeirCount,
		BasicDeduction:  res.BasicDeduction,
		TaxableEstate:   res.TaxableEstate,
		SharePerHeir:    res.SharePerHeir,
		SpouseExemption: res.SpouseExemption,
		SpouseTax:       res.SpouseTax,
		ChildTaxTotal:   res.ChildTaxTotal,
		Total:           res.Total,
	}, nil
}

// CapitalGains estimates Australian CGT on an inherited asset.
func (c *calculator) CapitalGains(ctx context.Context, in domain.CapitalGainInput) (*domain.CapitalGainResult, error) {
	if err := c.sanitize(ctx, metrics.KindCapitalGains,
		field{"assetValue", &in.AssetValue},
		field{"costBase", &in.CostBase},
	); err != nil {
		return nil, err
	}

	res := tax.ComputeCapitalGainsTax(in.AssetValue, in.CostBase, in.LongHeld)
	c.metrics.Calculation(ctx, metrics.KindCapitalGains)

	return &domain.CapitalGainResult{
		Gain:        res.Gain,
		TaxableGain: res.TaxableGain,
		Tax:         res.Tax,
	}, nil
}

// Tables lists the built-in bracket tables.
func (c *calculator) Tables(_ context.Context) []domain.NamedTable {
	return tax.Tables()
}
