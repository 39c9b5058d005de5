package main

import (
	"taxsim/internal/config"
	"taxsim/pkg/domain"
	"taxsim/pkg/render"

	"github.com/spf13/cobra"
)

func incomeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Estimates Japanese income tax and resident tax",
		Long:  "Estimates Japanese income tax and resident tax. Amounts are in 10,000 yen.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gross, _ := cmd.Flags().GetFloat64("income")
			nonResident, _ := cmd.Flags().GetBool("non-resident")

			calc, err := newCalculator(cfg, nil)
			if err != nil {
				return err
			}
			res, err := calc.Income(cmd.Context(), domain.IncomeInput{
				GrossIncome: gross,
				Resident:    !nonResident,
			})
			if err != nil {
				return err //nolint: wrapcheck
			}

			return render.Income(cmd.OutOrStdout(), res) //nolint: wrapcheck
		},
	}

	cmd.Flags().Float64("income", 0, "Annual income in 10,000 yen")
	cmd.Flags().Bool("non-resident", false, "Taxpayer has no address in Japan")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}

func inheritanceCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inheritance",
		Short: "Estimates Japanese inheritance tax",
		Long:  "Estimates Japanese inheritance tax on an estate shared equally by the heirs. Amounts are in 10,000 yen.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in domain.InheritanceInput
			in.Estate.Cash, _ = cmd.Flags().GetFloat64("cash")
			in.Estate.Property, _ = cmd.Flags().GetFloat64("property")
			in.Estate.Other, _ = cmd.Flags().GetFloat64("other")
			in.Heirs.NumChildren, _ = cmd.Flags().GetInt("children")
			in.Heirs.HasSpouse, _ = cmd.Flags().GetBool("spouse")

			calc, err := newCalculator(cfg, nil)
			if err != nil {
				return err
			}
			res, err := calc.Inheritance(cmd.Context(), in)
			if err != nil {
				return err //nolint: wrapcheck
			}

			return render.Inheritance(cmd.OutOrStdout(), res) //nolint: wrapcheck
		},
	}

	cmd.Flags().Float64("cash", 0, "Cash and deposits in 10,000 yen")
	cmd.Flags().Float64("property", 0, "Appraised real property in 10,000 yen")
	cmd.Flags().Float64("other", 0, "Other assets in 10,000 yen")
	cmd.Flags().Int("children", 0, "Number of children")
	cmd.Flags().Bool("spouse", true, "A surviving spouse inherits")

	return cmd
}

func cgtCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cgt",
		Short: "Estimates Australian capital gains tax on an inherited asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in domain.CapitalGainInput
			in.AssetValue, _ = cmd.Flags().GetFloat64("value")
			in.CostBase, _ = cmd.Flags().GetFloat64("cost")
			in.LongHeld, _ = cmd.Flags().GetBool("long-held")

			calc, err := newCalculator(cfg, nil)
			if err != nil {
				return err
			}
			res, err := calc.CapitalGains(cmd.Context(), in)
			if err != nil {
				return err //nolint: wrapcheck
			}

			return render.CapitalGains(cmd.OutOrStdout(), res) //nolint: wrapcheck
		},
	}

	cmd.Flags().Float64("value", 0, "Asset value at transfer in AUD")
	cmd.Flags().Float64("cost", 0, "Deceased's cost base in AUD")
	cmd.Flags().Bool("long-held", true, "Asset was held for more than a year (50% discount)")

	return cmd
}

func tablesCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Lists the built-in bracket tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, err := newCalculator(cfg, nil)
			if err != nil {
				return err
			}

			return render.Tables(cmd.OutOrStdout(), calc.Tables(cmd.Context())) //nolint: wrapcheck
		},
	}
}
