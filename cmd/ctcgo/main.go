package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Environment variables read after .env is loaded
const (
	envAddr    = "CTCGO_ADDR"
	envRegime  = "CTCGO_REGIME"
	envVariant = "CTCGO_VARIANT"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ctcgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "ctcgo",
	Short: "Indian salary structure and income tax calculator",
	Long: `Break an annual CTC into its salary components, compute income tax under the old
and new regimes and reconcile it into monthly take-home pay. Also solves the reverse
problem (in-hand to CTC), compares offers and regimes, projects hikes and runs the
statutory calculators (PF, gratuity, HRA, bonus, LTA, cost of living).`,
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Compute the salary breakdown for a CTC",
	Long: `Compute the salary breakdown for a CTC.

The salary comes from the input file when one is given, otherwise from the default
component structure. --ctc, --regime and --variant override either.

Examples:
  ctcgo calculate --ctc 1500000
  ctcgo calculate salary.yaml --regime old --format csv`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && !cmd.Flags().Changed("ctc") {
			log.Fatal("either an input file or --ctc is required")
		}
		cfg, reg := loadInput(cmd, args)
		in := cfg.Salary

		if _, err := reg.Get(in.Regime, in.Variant); err != nil {
			log.Fatal(err)
		}
		breakdown := newEngine(cmd, reg).Forward(in)

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unknown format %q (available: %s)", outputFormat, strings.Join(output.AvailableFormatterNames(), ", "))
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			filename, err := output.WriteFormatted(f, breakdown, formatExtension(f.Name()))
			if err != nil {
				log.Fatal(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
			return
		}

		data, err := f.Format(breakdown)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	},
}

func formatExtension(name string) string {
	switch name {
	case "json":
		return "json"
	case "csv", "slabs-csv":
		return "csv"
	case "html":
		return "html"
	}
	return "txt"
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := parser.ResolveRegistry(cfg); err != nil {
			log.Fatal(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", inputFile)
	},
}

// loadInput reads the optional input file, resolves its regime registry and applies the
// salary flags on top. Flags win over the file, the file wins over the environment.
func loadInput(cmd *cobra.Command, args []string) (*domain.Configuration, *domain.RegimeRegistry) {
	parser := config.NewInputParser()

	var cfg *domain.Configuration
	if len(args) > 0 {
		loaded, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	} else {
		cfg = &domain.Configuration{Salary: domain.DefaultSalaryInput(decimal.Zero, domain.RegimeNew)}
	}

	if file, _ := cmd.Flags().GetString("regimes-file"); file != "" {
		cfg.RegimeFile = file
	}
	reg, err := parser.ResolveRegistry(cfg)
	if err != nil {
		log.Fatal(err)
	}

	applySalaryFlags(cmd, &cfg.Salary)
	return cfg, reg
}

// applySalaryFlags overlays command-line values onto the input. Regime and variant come
// from the flag, then CTCGO_REGIME / CTCGO_VARIANT, then the input file.
func applySalaryFlags(cmd *cobra.Command, in *domain.SalaryInput) {
	flags := cmd.Flags()
	if flags.Changed("ctc") {
		in.CTC = decimalFlag(cmd, "ctc")
	}

	regime := os.Getenv(envRegime)
	if flags.Changed("regime") {
		regime, _ = flags.GetString("regime")
	}
	if regime != "" {
		r, err := domain.ParseRegimeName(regime)
		if err != nil {
			log.Fatal(err)
		}
		in.Regime = r
	}

	variant := os.Getenv(envVariant)
	if flags.Changed("variant") {
		variant, _ = flags.GetString("variant")
	}
	if variant != "" {
		in.Variant = variant
	}

	if flags.Lookup("rent") != nil && flags.Changed("rent") {
		in.Deductions.RentPaid = decimalFlag(cmd, "rent")
	}
	if flags.Lookup("metro") != nil && flags.Changed("metro") {
		in.Deductions.Metro, _ = flags.GetBool("metro")
	}
	if flags.Lookup("component") != nil && flags.Changed("component") {
		pairs, _ := flags.GetStringArray("component")
		in.Components = componentFlags(pairs).MirrorEmployerPF()
	}
}

// componentFlags turns repeated name=value pairs into a component structure. The pairs
// replace the configured components entirely; unknown names and bad numbers are ignored.
func componentFlags(pairs []string) domain.ComponentConfig {
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			log.Fatalf("invalid --component %q: expected name=value", p)
		}
		values[strings.TrimSpace(name)] = value
	}
	return domain.ParseComponentConfig(values)
}

// decimalFlag parses a string flag holding an amount; commas are allowed
func decimalFlag(cmd *cobra.Command, name string) decimal.Decimal {
	raw, _ := cmd.Flags().GetString(name)
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("invalid --%s %q: %v", name, raw, err)
	}
	return d
}

func newEngine(cmd *cobra.Command, reg *domain.RegimeRegistry) *calculation.Engine {
	engine := calculation.NewEngine(reg)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

func addSalaryFlags(cmd *cobra.Command) {
	cmd.Flags().String("ctc", "", "Annual CTC in rupees (overrides the input file)")
	cmd.Flags().String("rent", "", "Annual rent paid, for the old regime HRA exemption")
	cmd.Flags().Bool("metro", false, "Rent is paid in a metro city")
	cmd.Flags().StringArray("component", nil, "Salary component as name=value, repeatable (replaces the configured components)")
}

func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
	if !strings.HasSuffix(s, "\n") {
		fmt.Fprintln(w)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")
	rootCmd.PersistentFlags().String("regime", "new", "Tax regime: old or new")
	rootCmd.PersistentFlags().String("variant", "", "Regime rule variant, e.g. fy2024-25 (default: registry default)")
	rootCmd.PersistentFlags().String("regimes-file", "", "YAML regime table overlay")

	addSalaryFlags(calculateCmd)
	calculateCmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	calculateCmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
