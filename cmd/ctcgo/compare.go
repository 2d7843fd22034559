package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/rgehrsitz/ctcgo/internal/compare"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare job offers by take-home",
	Long: `Compare job offers by take-home pay. Offers come from the input file's offers list or
from --offers as comma-separated name=ctc pairs. Every offer inherits the base salary
structure unless the file overrides it per offer.

Examples:
  ctcgo compare offers.yaml --base Current
  ctcgo compare --offers "Current=1200000,Startup=1800000" --format csv`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, reg := loadInput(cmd, args)

		if cmd.Flags().Changed("offers") {
			raw, _ := cmd.Flags().GetString("offers")
			offers, err := parseOffers(raw)
			if err != nil {
				log.Fatal(err)
			}
			cfg.Offers = offers
		}
		if len(cfg.Offers) < 2 {
			log.Fatal("at least two offers are required (input file offers or --offers)")
		}

		ce := newCompareEngine(cmd, reg)
		baseName, _ := cmd.Flags().GetString("base")
		configPath := ""
		if len(args) > 0 {
			configPath = args[0]
		}

		compSet, err := ce.Compare(context.Background(), cfg, compare.CompareOptions{
			BaseOfferName: baseName,
			ConfigPath:    configPath,
		})
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		switch outputFormat {
		case "table", "console", "":
			writeOut(cmd.OutOrStdout(), (&compare.TableFormatter{}).Format(compSet))
		case "compact":
			writeOut(cmd.OutOrStdout(), (&compare.TableFormatter{}).FormatCompact(compSet))
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(compSet)
			if err != nil {
				log.Fatal(err)
			}
			writeOut(cmd.OutOrStdout(), out)
		case "json":
			writeJSON(cmd, compSet)
		default:
			log.Fatalf("unknown format %q (expected table, compact, csv or json)", outputFormat)
		}
	},
}

// parseOffers reads "name=ctc,name=ctc"; a bare amount gets a positional name
func parseOffers(raw string) ([]domain.Offer, error) {
	var offers []domain.Offer
	for i, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, amount, found := strings.Cut(part, "=")
		if !found {
			name, amount = fmt.Sprintf("Offer %d", i+1), part
		}
		ctc, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return nil, fmt.Errorf("invalid offer %q: %w", part, err)
		}
		offers = append(offers, domain.Offer{Name: strings.TrimSpace(name), CTC: ctc})
	}
	return offers, nil
}

func newCompareEngine(cmd *cobra.Command, reg *domain.RegimeRegistry) *compare.CompareEngine {
	ce := compare.NewCompareEngine(newEngine(cmd, reg))
	if cmd.Flags().Changed("variant") {
		ce.Variant, _ = cmd.Flags().GetString("variant")
	}
	return ce
}

var hikeCmd = &cobra.Command{
	Use:   "hike [input-file]",
	Short: "Project take-home after a raise",
	Long: `Project take-home after a percentage raise on the current CTC.

Examples:
  ctcgo hike --ctc 1200000 --percent 15
  ctcgo hike salary.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, reg := loadInput(cmd, args)
		if !cfg.Salary.CTC.IsPositive() {
			log.Fatal("a positive --ctc (or ctc in the input file) is required")
		}

		var pct decimal.Decimal
		if cfg.Hike != nil {
			pct = cfg.Hike.Percent
		}
		if cmd.Flags().Changed("percent") {
			pct = decimalFlag(cmd, "percent")
		}
		if pct.IsZero() {
			log.Fatal("--percent (or hike.percent in the input file) is required")
		}

		p := newCompareEngine(cmd, reg).ProjectHike(cfg.Salary, pct)

		if outputFormat, _ := cmd.Flags().GetString("format"); outputFormat == "json" {
			writeJSON(cmd, p)
			return
		}
		writeOut(cmd.OutOrStdout(), (&compare.TableFormatter{}).FormatHike(p))
	},
}

var regimesCmd = &cobra.Command{
	Use:   "regimes [input-file]",
	Short: "Compare old and new regimes, or list the regime tables",
	Long: `Compute the same salary under both regimes and recommend the one with the higher
take-home. With --list, print the regime variants the registry knows instead.

Examples:
  ctcgo regimes --ctc 1500000 --rent 360000 --metro
  ctcgo regimes --list --regimes-file regimes.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if list, _ := cmd.Flags().GetBool("list"); list {
			_, reg := loadInput(cmd, args)
			listRegimes(cmd, reg)
			return
		}

		cfg, reg := loadInput(cmd, args)
		if !cfg.Salary.CTC.IsPositive() {
			log.Fatal("a positive --ctc (or ctc in the input file) is required")
		}
		if _, err := reg.Get(domain.RegimeNew, cfg.Salary.Variant); err != nil {
			log.Fatal(err)
		}

		rc := compare.NewCompareEngine(newEngine(cmd, reg)).CompareRegimes(cfg.Salary)

		if outputFormat, _ := cmd.Flags().GetString("format"); outputFormat == "json" {
			writeJSON(cmd, rc)
			return
		}
		writeOut(cmd.OutOrStdout(), (&compare.TableFormatter{}).FormatRegimes(rc))
	},
}

func listRegimes(cmd *cobra.Command, reg *domain.RegimeRegistry) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Default variant: %s\n\n", reg.DefaultVariant)
	fmt.Fprintf(w, "%-12s %-6s %12s %12s %-8s\n", "Variant", "Regime", "Std Deduct", "Rebate Upto", "Slabs")
	for _, rc := range reg.All() {
		fmt.Fprintf(w, "%-12s %-6s %12s %12s %-8s\n",
			rc.Variant, rc.Name,
			output.FormatCurrency(rc.StandardDeduction),
			output.FormatCurrency(rc.RebateThreshold),
			rc.Slabs.Name)
	}
}

func init() {
	compareCmd.Flags().String("offers", "", "Comma-separated offers as name=ctc")
	compareCmd.Flags().String("base", "", "Offer to compare the others against (default: first)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")

	addSalaryFlags(hikeCmd)
	hikeCmd.Flags().String("percent", "", "Hike percentage, e.g. 15")
	hikeCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")

	addSalaryFlags(regimesCmd)
	regimesCmd.Flags().Bool("list", false, "List the regime variants instead of comparing")
	regimesCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(hikeCmd)
	rootCmd.AddCommand(regimesCmd)
}
