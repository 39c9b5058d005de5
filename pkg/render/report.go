package render

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"taxsim/pkg/domain"

	"golang.org/x/text/number"
)

// Decimal places used for each report.
const (
	IncomeDecimals      = 2
	InheritanceDecimals = 0
)

// AustraliaNote explains why the Australian mode reports CGT instead of an
// inheritance tax.
const AustraliaNote = "Australia has no inheritance tax. Capital gains tax (CGT) may apply " +
	"when an asset passes to an heir or is sold, on the increase in value."

// reportWriter remembers the first write error so report bodies stay linear.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) line(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = printer.Fprintf(rw.w, format+"\n", args...)
}

// Income writes the income tax report. Non-resident results print only the
// notice.
func Income(w io.Writer, res *domain.IncomeResult) error {
	rw := &reportWriter{w: w}

	if !res.Resident {
		rw.line("%s", res.Notice)

		return wrap(rw.err)
	}

	rw.line("Income tax estimate (basic deduction %s applied)", Yen10k(res.BasicDeduction, 0))
	rw.line("  Taxable income: %s", Yen10k(res.TaxableIncome, IncomeDecimals))
	rw.line("  Income tax:     %s", Yen10k(res.IncomeTax, IncomeDecimals))
	rw.line("  Resident tax:   %s", Yen10k(res.ResidentTax, IncomeDecimals))
	rw.line("  Total tax:      %s", Yen10k(res.TotalTax, IncomeDecimals))

	return wrap(rw.err)
}

// Inheritance writes the Japanese inheritance tax report.
func Inheritance(w io.Writer, res *domain.InheritanceResult) error {
	rw := &reportWriter{w: w}

	rw.line("Estate: %s (of which real property: %s)",
		Yen10k(res.EstateTotal, InheritanceDecimals), Yen10k(res.Property, InheritanceDecimals))
	rw.line("  After basic deduction: %s", Yen10k(res.TaxableEstate, InheritanceDecimals))
	rw.line("  Spouse tax:            %s", Yen10k(res.SpouseTax, InheritanceDecimals))
	rw.line("  Children tax total:    %s", Yen10k(res.ChildTaxTotal, InheritanceDecimals))
	rw.line("Inheritance tax total: %s", Yen10k(res.Total, InheritanceDecimals))

	return wrap(rw.err)
}

// CapitalGains writes the Australian CGT report.
func CapitalGains(w io.Writer, res *domain.CapitalGainResult) error {
	rw := &reportWriter{w: w}

	rw.line("%s", AustraliaNote)
	rw.line("  Capital gain:  %s", AUD(res.Gain))
	rw.line("  Taxable gain:  %s", AUD(res.TaxableGain))
	rw.line("Estimated CGT: %s (top marginal rate assumed)", AUD(res.Tax))

	return wrap(rw.err)
}

func wrap(err error) error {
	if err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	return nil
}

// Tables writes each bracket table as aligned columns. Bounds are in the
// table's own units.
func Tables(w io.Writer, tables []domain.NamedTable) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rw := &reportWriter{w: tw}

	for i, t := range tables {
		if i > 0 {
			rw.line("")
		}
		rw.line("%s\t%s", t.Name, t.Description)
		rw.line("  up to\trate\tsubtractor")
		for _, b := range t.Table {
			bound := "∞"
			if !math.IsInf(b.UpperBound, 1) {
				bound = printer.Sprint(number.Decimal(b.UpperBound))
			}
			rw.line("  %s\t%v%%\t%v", bound, number.Decimal(b.Rate*100), number.Decimal(b.Subtractor))
		}
	}
	if rw.err == nil {
		rw.err = tw.Flush()
	}

	return wrap(rw.err)
}
