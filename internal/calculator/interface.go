package calculator

import (
	"context"

	"taxsim/pkg/domain"
)

// Calculator turns form inputs into tax results. Implementations are stateless:
// every call recomputes from its arguments.
//
//go:generate mockgen -package mockcalculator -source=interface.go -destination=mock/mockcalculator.go *
type Calculator interface {
	Income(ctx context.Context, in domain.IncomeInput) (*domain.IncomeResult, error)
	Inheritance(ctx context.Context, in domain.InheritanceInput) (*domain.InheritanceResult, error)
	CapitalGains(ctx context.Context, in domain.CapitalGainInput) (*domain.CapitalGainResult, error)
	Tables(ctx context.Context) []domain.NamedTable
}
