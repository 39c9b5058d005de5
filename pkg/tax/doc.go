// Package tax implements the progressive bracket evaluator and the Japanese
// income, resident and inheritance tax formulas built on it, plus the flat
// Australian capital-gains estimate.
//
// Every function is pure: results depend only on the arguments, nothing is
// cached and nothing is logged. Callers are expected to clamp negative inputs
// to zero beforehand; the evaluator still floors its own output at zero.
//
// Japanese amounts are in 10,000-yen units and Australian amounts in AUD. The
// rates are illustrative and fixed to a single tax year.
package tax
