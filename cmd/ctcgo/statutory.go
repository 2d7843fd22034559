package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/output"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// writeJSON prints v as indented JSON
func writeJSON(cmd *cobra.Command, v any) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatal(err)
	}
}

func wantsJSON(cmd *cobra.Command) bool {
	f, _ := cmd.Flags().GetBool("json")
	return f
}

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Compute income tax on a taxable income",
	Long: `Compute income tax on an already taxable income with a regime's slabs, surcharge,
cess and rebate. No deductions are applied.

Examples:
  ctcgo tax --income 900000 --variant fy2023-24
  ctcgo tax --income 500000 --regime old`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, reg := loadInput(cmd, nil)
		regime, err := reg.Get(cfg.Salary.Regime, cfg.Salary.Variant)
		if err != nil {
			log.Fatal(err)
		}

		income := decimalFlag(cmd, "income")
		result := calculation.ApplyRebate(regime, income, calculation.ComputeRegimeTax(income, regime))

		if wantsJSON(cmd) {
			writeJSON(cmd, result)
			return
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "INCOME TAX: %s (%s REGIME, %s)\n", output.FormatCurrency(income), strings.ToUpper(string(regime.Name)), regime.Variant)
		fmt.Fprintln(w, strings.Repeat("=", 60))
		fmt.Fprintf(w, "%-24s %6s %14s %12s\n", "Slab", "Rate", "Income", "Tax")
		for _, s := range result.SlabBreakdown {
			fmt.Fprintf(w, "%-24s %5s%% %14s %12s\n", s.Range, s.RatePercent.StringFixed(0),
				output.FormatCurrency(s.Amount), output.FormatCurrency(s.Tax))
		}
		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintf(w, "%-24s %34s\n", "Slab tax", output.FormatCurrency(result.TaxBeforeCharges))
		fmt.Fprintf(w, "%-24s %34s\n", "Surcharge", output.FormatCurrency(result.Surcharge))
		fmt.Fprintf(w, "%-24s %34s\n", "Cess", output.FormatCurrency(result.Cess))
		if !result.RebateApplied.IsZero() {
			fmt.Fprintf(w, "%-24s %34s\n", "Rebate", "-"+output.FormatCurrency(result.RebateApplied))
		}
		fmt.Fprintf(w, "%-24s %34s\n", "FINAL TAX", output.FormatCurrency(result.FinalTax))
	},
}

var pfCmd = &cobra.Command{
	Use:   "pf",
	Short: "Split a monthly basic into PF contributions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pf := calculation.CalculatePF(decimalFlag(cmd, "basic"))
		if wantsJSON(cmd) {
			writeJSON(cmd, pf)
			return
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Monthly basic:     %s\n", output.FormatCurrency(pf.BasicMonthly))
		fmt.Fprintf(w, "Employee PF (12%%): %s\n", pf.Employee.StringFixed(2))
		fmt.Fprintf(w, "Employer EPS:      %s\n", pf.EmployerEPS.StringFixed(2))
		fmt.Fprintf(w, "Employer EPF:      %s\n", pf.EmployerEPF.StringFixed(2))
		fmt.Fprintf(w, "Total per month:   %s\n", pf.Total.StringFixed(2))
	},
}

var gratuityCmd = &cobra.Command{
	Use:   "gratuity",
	Short: "Compute statutory gratuity",
	Long: `Compute statutory gratuity as (15 x basic x years) / 26. Years come from --years or
from --joined and --left (YYYY-MM-DD); a final part year over six months counts.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		basic := decimalFlag(cmd, "basic")
		joined, _ := cmd.Flags().GetString("joined")
		left, _ := cmd.Flags().GetString("left")

		var result domain.GratuityResult
		if joined != "" || left != "" {
			from, err := time.Parse(dateLayout, joined)
			if err != nil {
				log.Fatalf("invalid --joined: %v", err)
			}
			to, err := time.Parse(dateLayout, left)
			if err != nil {
				log.Fatalf("invalid --left: %v", err)
			}
			result, err = calculation.CalculateGratuityForService(basic, from, to)
			if err != nil {
				log.Fatal(err)
			}
		} else {
			years, _ := cmd.Flags().GetInt("years")
			result = calculation.CalculateGratuity(basic, years)
		}

		if wantsJSON(cmd) {
			writeJSON(cmd, result)
			return
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Years of service: %d\n", result.Years)
		fmt.Fprintf(w, "Gratuity:         %s\n", output.FormatCurrency(result.Amount))
		fmt.Fprintf(w, "Taxable portion:  %s\n", output.FormatCurrency(result.TaxableAmount))
		if !result.Eligible {
			fmt.Fprintln(w, "! Not yet eligible: gratuity needs five years of continuous service")
		}
	},
}

var hraCmd = &cobra.Command{
	Use:   "hra",
	Short: "Compute the HRA exemption",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		metro, _ := cmd.Flags().GetBool("metro")
		result := calculation.CalculateHRAExemption(
			decimalFlag(cmd, "basic"), decimalFlag(cmd, "hra"), decimalFlag(cmd, "rent"), metro)
		if wantsJSON(cmd) {
			writeJSON(cmd, result)
			return
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Actual HRA received:   %s\n", output.FormatCurrency(result.ActualHRA))
		fmt.Fprintf(w, "Share of basic:        %s\n", output.FormatCurrency(result.BasicShare))
		fmt.Fprintf(w, "Rent over 10%% basic:   %s\n", output.FormatCurrency(result.RentOverTenPct))
		fmt.Fprintf(w, "Exempt:                %s (%s)\n", output.FormatCurrency(result.Exempt), result.LimitingFactor)
		fmt.Fprintf(w, "Taxable HRA:           %s\n", output.FormatCurrency(result.Taxable))
	},
}

var bonusCmd = &cobra.Command{
	Use:   "bonus",
	Short: "Compute the statutory bonus range",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		result := calculation.CalculateBonus(decimalFlag(cmd, "basic"), nil)
		if cmd.Flags().Changed("percent") {
			pct := decimalFlag(cmd, "percent")
			result = calculation.CalculateBonus(decimalFlag(cmd, "basic"), &pct)
		}
		if wantsJSON(cmd) {
			writeJSON(cmd, result)
			return
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Minimum (8.33%%): %s\n", output.FormatCurrency(result.Minimum))
		fmt.Fprintf(w, "Maximum (20%%):   %s\n", output.FormatCurrency(result.Maximum))
		if result.Custom != nil {
			fmt.Fprintf(w, "At custom rate:  %s\n", output.FormatCurrency(*result.Custom))
		}
	},
}

var ltaCmd = &cobra.Command{
	Use:   "lta",
	Short: "Split leave travel allowance into exempt and taxable parts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		result := calculation.CalculateLTA(decimalFlag(cmd, "received"), decimalFlag(cmd, "actual"))
		if wantsJSON(cmd) {
			writeJSON(cmd, result)
			return
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Exempt:  %s\n", output.FormatCurrency(result.Exempt))
		fmt.Fprintf(w, "Taxable: %s\n", output.FormatCurrency(result.Taxable))
	},
}

var colCmd = &cobra.Command{
	Use:   "col",
	Short: "Translate a salary between cities by cost of living",
	Long: `Translate a salary between cities by cost-of-living index.

Examples:
  ctcgo col --salary 1000000 --from mumbai --to pune
  ctcgo col --list`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, city := range calculation.Cities() {
				idx, _ := calculation.CityIndex(city)
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", city, idx.String())
			}
			return
		}

		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		result, err := calculation.ConvertCostOfLiving(decimalFlag(cmd, "salary"), from, to)
		if err != nil {
			log.Fatal(err)
		}
		if wantsJSON(cmd) {
			writeJSON(cmd, result)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s in %s is like %s in %s (%s)\n",
			output.FormatCurrency(result.Salary), result.FromCity,
			output.FormatCurrency(result.Equivalent), result.ToCity,
			output.FormatCurrency(result.Difference))
	},
}

func init() {
	taxCmd.Flags().String("income", "0", "Taxable income in rupees")

	pfCmd.Flags().String("basic", "0", "Monthly basic salary")

	gratuityCmd.Flags().String("basic", "0", "Last drawn monthly basic")
	gratuityCmd.Flags().Int("years", 0, "Completed years of service")
	gratuityCmd.Flags().String("joined", "", "Join date (YYYY-MM-DD)")
	gratuityCmd.Flags().String("left", "", "Exit date (YYYY-MM-DD)")

	hraCmd.Flags().String("basic", "0", "Annual basic salary")
	hraCmd.Flags().String("hra", "0", "Annual HRA received")
	hraCmd.Flags().String("rent", "0", "Annual rent paid")
	hraCmd.Flags().Bool("metro", false, "Rent is paid in a metro city")

	bonusCmd.Flags().String("basic", "0", "Annual basic salary")
	bonusCmd.Flags().String("percent", "", "Custom bonus percentage")

	ltaCmd.Flags().String("received", "0", "LTA received")
	ltaCmd.Flags().String("actual", "0", "Actual travel cost")

	colCmd.Flags().String("salary", "0", "Salary in the source city")
	colCmd.Flags().String("from", "", "Source city")
	colCmd.Flags().String("to", "", "Destination city")
	colCmd.Flags().Bool("list", false, "List known cities and their indices")

	for _, c := range []*cobra.Command{taxCmd, pfCmd, gratuityCmd, hraCmd, bonusCmd, ltaCmd, colCmd} {
		c.Flags().Bool("json", false, "Print the result as JSON")
		rootCmd.AddCommand(c)
	}
}
