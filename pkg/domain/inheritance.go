package domain

import "github.com/samber/lo"

// Estate lists the declared asset categories of a decedent, in 10,000-yen units.
type Estate struct {
	Cash     float64
	Property float64
	Other    float64
}

// Total returns the sum of all asset categories.
func (e Estate) Total() float64 {
	return lo.Sum([]float64{e.Cash, e.Property, e.Other})
}

// HeirConfig describes the statutory heirs sharing an estate.
type HeirConfig struct {
	NumChildren int
	HasSpouse   bool
}

// HeirCount is the number of children plus one for a spouse.
func (h HeirConfig) HeirCount() int {
	if h.HasSpouse {
		return h.NumChildren + 1
	}

	return h.NumChildren
}

// InheritanceInput is the inheritance form.
type InheritanceInput struct {
	Estate Estate
	Heirs  HeirConfig
}

// InheritanceResult is the Japanese inheritance tax breakdown, in 10,000-yen units.
type InheritanceResult struct {
	EstateTotal float64
	// Property repeats the real-property part of EstateTotal for display.
	Property        float64
	HeirCount       int
	BasicDeduction  float64
	TaxableEstate   float64
	SharePerHeir    float64
	SpouseExemption float64
	SpouseTax       float64
	ChildTaxTotal   float64
	Total           float64
}
