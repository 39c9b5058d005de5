package main

import (
	"fmt"
	"net/http"

	"taxsim/internal/advisory"
	"taxsim/internal/calculator"
	"taxsim/internal/config"
	"taxsim/pkg/advisor/openai"
	"taxsim/pkg/metrics"
)

func newCalculator(cfg *config.Config, rec *metrics.Recorder) (calculator.Calculator, error) {
	calc, err := calculator.New(calculator.NewOptions(cfg), rec)
	if err != nil {
		return nil, fmt.Errorf("could not create calculator: %w", err)
	}

	return calc, nil
}

func newAdvisory(cfg *config.Config, rec *metrics.Recorder) advisory.Service {
	client := openai.New(&http.Client{}, openai.Options{
		BaseURL:     cfg.Advisor.BaseURL,
		Model:       cfg.Advisor.Model,
		Temperature: cfg.Advisor.Temperature,
		MaxTokens:   cfg.Advisor.MaxTokens,
	})

	return advisory.New(client, advisory.NewOptions(cfg), rec)
}
