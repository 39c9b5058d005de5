package calculator_test

import (
	"context"
	"math"
	"testing"

	"taxsim/internal/calculator"
	"taxsim/pkg/domain"
	"taxsim/pkg/metrics"
	"taxsim/pkg/serrors"
	"taxsim/pkg/tax"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const delta = 1e-9

func newTestCalculator(t *testing.T, opts calculator.Options) (calculator.Calculator, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	rec, err := metrics.NewRecorder(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	c, err := calculator.New(opts, rec)
	require.NoError(t, err)

	return c, reader
}

func counter(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}

	return total
}

func TestNew_UnknownTable(t *testing.T) {
	_, err := calculator.New(calculator.Options{IncomeTable: "us-federal"}, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestNew_DefaultsToJapanIncome(t *testing.T) {
	c, err := calculator.New(calculator.Options{}, nil)
	require.NoError(t, err)

	res, err := c.Income(context.Background(), domain.IncomeInput{GrossIncome: 5000, Resident: true})
	require.NoError(t, err)
	require.Equal(t, tax.JapanIncome, res.Table)
	require.InDelta(t, 4952*0.45-479.6, res.IncomeTax, delta)
}

func TestCalculator_Income_Resident(t *testing.T) {
	c, reader := newTestCalculator(t, calculator.Options{IncomeTable: tax.JapanIncome})

	res, err := c.Income(context.Background(), domain.IncomeInput{GrossIncome: 800, Resident: true})
	require.NoError(t, err)

	require.True(t, res.Resident)
	require.Empty(t, res.Notice)
	require.InDelta(t, 48.0, res.BasicDeduction, delta)
	require.InDelta(t, 752.0, res.TaxableIncome, delta)
	require.InDelta(t, 752*0.23-63.6, res.IncomeTax, delta)
	require.InDelta(t, 75.2, res.ResidentTax, delta)
	require.InDelta(t, res.IncomeTax+res.ResidentTax, res.TotalTax, delta)
	require.EqualValues(t, 1, counter(t, reader, "taxsim.calculations"))
}

func TestCalculator_Income_LegacyTable(t *testing.T) {
	c, _ := newTestCalculator(t, calculator.Options{IncomeTable: tax.JapanIncomeLegacy})

	res, err := c.Income(context.Background(), domain.IncomeInput{GrossIncome: 5048, Resident: true})
	require.NoError(t, err)
	require.Equal(t, tax.JapanIncomeLegacy, res.Table)
	require.InDelta(t, 5000*0.40-279.6, res.IncomeTax, delta)
}

func TestCalculator_Income_NonResident(t *testing.T) {
	c, reader := newTestCalculator(t, calculator.Options{})

	res, err := c.Income(context.Background(), domain.IncomeInput{GrossIncome: 800})
	require.NoError(t, err)

	require.False(t, res.Resident)
	require.Equal(t, calculator.NonResidentNotice, res.Notice)
	require.InDelta(t, 800.0, res.GrossIncome, delta)
	require.Zero(t, res.IncomeTax)
	require.Zero(t, res.ResidentTax)
	require.Zero(t, res.TotalTax)
	require.EqualValues(t, 1, counter(t, reader, "taxsim.calculations"))
}

func TestCalculator_Income_NegativeClamped(t *testing.T) {
	c, reader := newTestCalculator(t, calculator.Options{})

	res, err := c.Income(context.Background(), domain.IncomeInput{GrossIncome: -100, Resident: true})
	require.NoError(t, err)

	require.Zero(t, res.GrossIncome)
	require.Zero(t, res.TotalTax)
	require.EqualValues(t, 1, counter(t, reader, "taxsim.inputs.clamped"))
}

func TestCalculator_NonFiniteRejected(t *testing.T) {
	c, reader := newTestCalculator(t, calculator.Options{})
	ctx := context.Background()

	_, err := c.Income(ctx, domain.IncomeInput{GrossIncome: math.NaN(), Resident: true})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = c.Inheritance(ctx, domain.InheritanceInput{
		Estate: domain.Estate{Property: math.Inf(1)},
		Heirs:  domain.HeirConfig{NumChildren: 1},
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = c.CapitalGains(ctx, domain.CapitalGainInput{AssetValue: 100, CostBase: math.Inf(-1)})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	require.Zero(t, counter(t, reader, "taxsim.calculations"))
}

func TestCalculator_Inheritance(t *testing.T) {
	c, reader := newTestCalculator(t, calculator.Options{})

	res, err := c.Inheritance(context.Background(), domain.InheritanceInput{
		Estate: domain.Estate{Cash: 5000, Property: 4000, Other: 1000},
		Heirs:  domain.HeirConfig{NumChildren: 1, HasSpouse: true},
	})
	require.NoError(t, err)

	require.InDelta(t, 10000.0, res.EstateTotal, delta)
	require.InDelta(t, 4000.0, res.Property, delta)
	require.Equal(t, 2, res.HeirCount)
	require.InDelta(t, 4200.0, res.BasicDeduction, delta)
	require.InDelta(t, 5800.0, res.TaxableEstate, delta)
	require.InDelta(t, 2900.0, res.SharePerHeir, delta)
	require.Zero(t, res.SpouseTax)
	require.InDelta(t, 385.0, res.ChildTaxTotal, delta)
	require.InDelta(t, 385.0, res.Total, delta)
	require.EqualValues(t, 1, counter(t, reader, "taxsim.calculations"))
}

func TestCalculator_Inheritance_NoHeirs(t *testing.T) {
	c, reader := newTestCalculator(t, calculator.Options{})

	_, err := c.Inheritance(context.Background(), domain.InheritanceInput{
		Estate: domain.Estate{Cash: 10000},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrDomain)
	require.ErrorIs(t, err, tax.ErrNoHeirs)
	require.Zero(t, counter(t, reader, "taxsim.calculations"))
}

func TestCalculator_Inheritance_NegativeChildren(t *testing.T) {
	c, reader := newTestCalculator(t, calculator.Options{})

	res, err := c.Inheritance(context.Background(), domain.InheritanceInput{
		Estate: domain.Estate{Cash: -500, Property: 10000},
		Heirs:  domain.HeirConfig{NumChildren: -2, HasSpouse: true},
	})
	require.NoError(t, err)

	require.Equal(t, 1, res.HeirCount)
	require.InDelta(t, 10000.0, res.EstateTotal, delta)
	require.EqualValues(t, 2, counter(t, reader, "taxsim.inputs.clamped"))
}

func TestCalculator_Inheritance_TooManyChildren(t *testing.T) {
	c, reader := newTestCalculator(t, calculator.Options{})
	ctx := context.Background()

	_, err := c.Inheritance(ctx, domain.InheritanceInput{
		Estate: domain.Estate{Cash: 1e6},
		Heirs:  domain.HeirConfig{NumChildren: 1 << 40, HasSpouse: true},
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Zero(t, counter(t, reader, "taxsim.calculations"))

	res, err := c.Inheritance(ctx, domain.InheritanceInput{
		Estate: domain.Estate{Cash: 1e6},
		Heirs:  domain.HeirConfig{NumChildren: calculator.MaxChildren},
	})
	require.NoError(t, err)
	require.Equal(t, calculator.MaxChildren, res.HeirCount)
}

func TestCalculator_CapitalGains(t *testing.T) {
	c, _ := newTestCalculator(t, calculator.Options{})
	ctx := context.Background()

	res, err := c.CapitalGains(ctx, domain.CapitalGainInput{AssetValue: 500000, CostBase: 300000, LongHeld: true})
	require.NoError(t, err)
	require.InDelta(t, 200000.0, res.Gain, delta)
	require.InDelta(t, 100000.0, res.TaxableGain, delta)
	require.InDelta(t, 45000.0, res.Tax, delta)

	res, err = c.CapitalGains(ctx, domain.CapitalGainInput{AssetValue: 100000, CostBase: 300000})
	require.NoError(t, err)
	require.Zero(t, res.Gain)
	require.Zero(t, res.Tax)
}

func TestCalculator_Tables(t *testing.T) {
	c, _ := newTestCalculator(t, calculator.Options{})

	tables := c.Tables(context.Background())
	require.Len(t, tables, 3)
	for _, nt := range tables {
		require.NoError(t, nt.Table.Validate(), nt.Name)
	}
}
