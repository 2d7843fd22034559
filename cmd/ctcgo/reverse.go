package main

import (
	"context"
	"log"

	"github.com/rgehrsitz/ctcgo/internal/solver"
	"github.com/spf13/cobra"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse [input-file]",
	Short: "Find the CTC that yields a monthly take-home",
	Long: `Find the CTC that yields a target monthly take-home, holding the rest of the salary
structure fixed. The target comes from --target or the input file's target_monthly.

Examples:
  ctcgo reverse --target 100000
  ctcgo reverse salary.yaml --both`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, reg := loadInput(cmd, args)

		target := cfg.TargetMonthly
		if cmd.Flags().Changed("target") {
			target = decimalFlag(cmd, "target")
		}
		if !target.IsPositive() {
			log.Fatal("a positive --target (or target_monthly in the input file) is required")
		}

		opts := solver.DefaultSolverOptions().WithSettings(cfg.Solver)
		if n, _ := cmd.Flags().GetInt("max-iterations"); n > 0 {
			opts.MaxIterations = n
		}
		if cmd.Flags().Changed("tolerance") {
			opts.Tolerance = decimalFlag(cmd, "tolerance")
		}
		s := solver.NewSolver(newEngine(cmd, reg), opts)

		outputFormat, _ := cmd.Flags().GetString("format")
		both, _ := cmd.Flags().GetBool("both")

		var result any
		var table string
		if both {
			res, err := s.SolveAcrossRegimes(context.Background(), target, cfg.Salary)
			if err != nil {
				log.Fatal(err)
			}
			result = res
			table = (&solver.TableFormatter{}).FormatRegimes(res)
		} else {
			res, err := s.SolveForCTC(context.Background(), target, cfg.Salary)
			if err != nil {
				log.Fatal(err)
			}
			result = res
			table = (&solver.TableFormatter{}).Format(res)
		}

		switch outputFormat {
		case "table", "console", "":
			writeOut(cmd.OutOrStdout(), table)
		case "json":
			out, err := (&solver.JSONFormatter{Pretty: true}).Format(result)
			if err != nil {
				log.Fatal(err)
			}
			writeOut(cmd.OutOrStdout(), out)
		default:
			log.Fatalf("unknown format %q (expected table or json)", outputFormat)
		}
	},
}

func init() {
	reverseCmd.Flags().String("target", "", "Target monthly in-hand in rupees")
	reverseCmd.Flags().Bool("both", false, "Solve under both regimes and report the cheaper one")
	reverseCmd.Flags().Int("max-iterations", 0, "Bisection steps (default 30 or the input file's solver settings)")
	reverseCmd.Flags().String("tolerance", "", "Acceptable monthly difference in rupees (default 1)")
	reverseCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	reverseCmd.Flags().String("rent", "", "Annual rent paid, for the old regime HRA exemption")
	reverseCmd.Flags().Bool("metro", false, "Rent is paid in a metro city")

	rootCmd.AddCommand(reverseCmd)
}

