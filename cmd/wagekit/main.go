package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/wagekit/wagekit/internal/api"
	"github.com/wagekit/wagekit/internal/breakeven"
	"github.com/wagekit/wagekit/internal/calculation"
	"github.com/wagekit/wagekit/internal/compare"
	"github.com/wagekit/wagekit/internal/config"
	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/output"
	"github.com/wagekit/wagekit/internal/reference"
	"github.com/wagekit/wagekit/internal/tui"
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

var hundred = decimal.NewFromInt(100)

// parseAmounts applies the forgiving amount parser to each entry.
func parseAmounts(raw []string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(raw))
	for i, s := range raw {
		out[i] = domain.ParseAmount(s)
	}
	return out
}

var rootCmd = &cobra.Command{
	Use:   "wagekit",
	Short: "Hourly wage, tax, and benefit estimator",
	Long:  "Deterministic take-home pay, quarterly tax, and unemployment benefit estimates for hourly and gig workers",
}

// loadScenario reads an optional YAML input file and applies any dataset
// overrides it carries to the store.
func loadScenario(inputFile string, store *reference.Store) (*config.ScenarioFile, error) {
	if inputFile == "" {
		return nil, nil
	}
	parser := config.NewInputParser()
	sf, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return nil, err
	}
	config.ApplyDataset(sf, store)
	if err := parser.ValidateAgainst(sf, store); err != nil {
		return nil, err
	}
	return sf, nil
}

func payCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Estimate take-home pay",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := reference.NewStore()
			flags := cmd.Flags()

			inputFile, _ := flags.GetString("input")
			sf, err := loadScenario(inputFile, store)
			if err != nil {
				return err
			}

			var scenario domain.PayScenario
			if sf != nil && sf.Pay != nil {
				scenario = *sf.Pay
			} else {
				rate, _ := flags.GetString("rate")
				hours, _ := flags.GetString("hours")
				tips, _ := flags.GetString("tips")
				state, _ := flags.GetString("state")
				empType, _ := flags.GetString("type")
				night, _ := flags.GetString("night-hours")
				weekend, _ := flags.GetString("weekend-hours")
				holiday, _ := flags.GetBool("holiday")
				scenario = domain.PayScenario{
					HourlyRate:     domain.ParseAmount(rate),
					HoursPerWeek:   domain.ParseAmount(hours),
					TipsPerHour:    domain.ParseAmount(tips),
					StateCode:      strings.ToUpper(state),
					EmploymentType: domain.EmploymentType(empType),
					NightHours:     domain.ParseAmount(night),
					WeekendHours:   domain.ParseAmount(weekend),
					HolidayPay:     holiday,
				}.Sanitize()
			}

			if roleID, _ := flags.GetString("role"); roleID != "" {
				role, err := store.Role(roleID)
				if err != nil {
					return err
				}
				scenario = domain.ApplyRole(scenario, role)
			}

			format, _ := flags.GetString("format")
			if all, _ := flags.GetBool("all-states"); all {
				return renderPayComparison(compare.NewEngine(store).ComparePay(scenario), format)
			}

			jurisdiction, err := store.Jurisdiction(scenario.StateCode)
			if err != nil {
				return err
			}

			calc := calculation.NewPayCalculator(calculation.NewFederalTaxCalculator(), store.ShiftDifferentials())
			result := calc.ComputePay(scenario, jurisdiction)

			rg := output.NewReportGenerator()
			switch format {
			case "json":
				return rg.JSONReport(result)
			case "csv":
				return rg.PayCSV(result)
			case "pdf":
				outFile, _ := flags.GetString("output")
				if outFile == "" {
					outFile = "pay-estimate.pdf"
				}
				f, err := os.Create(outFile)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := output.GeneratePayPDF(scenario, jurisdiction, result, f); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", outFile)
				return nil
			default:
				return rg.PayReport(scenario, jurisdiction, result)
			}
		},
	}

	cmd.Flags().String("rate", "0", "hourly rate")
	cmd.Flags().String("hours", "0", "hours per week")
	cmd.Flags().String("tips", "0", "average tips per hour")
	cmd.Flags().String("state", "", "two-letter state code")
	cmd.Flags().String("type", "w2", "employment type (w2 or 1099)")
	cmd.Flags().String("night-hours", "0", "weekly hours on night shift")
	cmd.Flags().String("weekend-hours", "0", "weekly hours on weekend shift")
	cmd.Flags().Bool("holiday", false, "include averaged holiday premium pay")
	cmd.Flags().String("role", "", "seed the scenario from a role template")
	cmd.Flags().String("input", "", "YAML scenario file")
	cmd.Flags().String("format", "console", "output format (console, json, csv, pdf; table/csv/json with --all-states)")
	cmd.Flags().String("output", "", "output path for pdf format")
	cmd.Flags().Bool("all-states", false, "rank take-home pay across every state")
	return cmd
}

func quarterlyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quarterly",
		Short: "Estimate quarterly self-employment taxes",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := reference.NewStore()
			flags := cmd.Flags()

			inputFile, _ := flags.GetString("input")
			sf, err := loadScenario(inputFile, store)
			if err != nil {
				return err
			}

			var scenario domain.TaxScenario
			if sf != nil && sf.Tax != nil {
				scenario = *sf.Tax
			} else {
				seIncome, _ := flags.GetString("se-income")
				w2Income, _ := flags.GetString("w2-income")
				state, _ := flags.GetString("state")
				combined, _ := flags.GetBool("combined")
				miles, _ := flags.GetString("miles")
				deductions, _ := flags.GetStringSlice("deduction")
				scenario = domain.TaxScenario{
					SelfEmployment: domain.ParseAmount(seIncome),
					W2Income:       domain.ParseAmount(w2Income),
					StateCode:      strings.ToUpper(state),
					CombinedIncome: combined,
					AnnualMiles:    domain.ParseAmount(miles),
					Deductions:     parseDeductionFlags(deductions),
				}.Sanitize()
			}

			jurisdiction, err := store.Jurisdiction(scenario.StateCode)
			if err != nil {
				return err
			}

			calc := calculation.NewQuarterlyTaxCalculator(
				calculation.NewFederalTaxCalculator(), store.DeductionCatalog(), store.QuarterlyDeadlines())
			result := calc.ComputeQuarterlyTax(scenario, jurisdiction)

			rg := output.NewReportGenerator()
			if format, _ := flags.GetString("format"); format == "json" {
				return rg.JSONReport(result)
			}
			return rg.TaxReport(scenario, jurisdiction, result)
		},
	}

	cmd.Flags().String("se-income", "0", "annual self-employment income")
	cmd.Flags().String("w2-income", "0", "annual W-2 income")
	cmd.Flags().String("state", "", "two-letter state code")
	cmd.Flags().Bool("combined", false, "estimate across W-2 and 1099 income together")
	cmd.Flags().String("miles", "0", "annual business miles")
	cmd.Flags().StringSlice("deduction", nil, "catalog deduction id, optionally id=amount")
	cmd.Flags().String("input", "", "YAML scenario file")
	cmd.Flags().String("format", "console", "output format (console, json)")
	return cmd
}

// parseDeductionFlags turns ["mileage", "phone=80"] into selections.
func parseDeductionFlags(raw []string) []domain.DeductionSelection {
	out := make([]domain.DeductionSelection, 0, len(raw))
	for _, entry := range raw {
		id, override, found := strings.Cut(entry, "=")
		sel := domain.DeductionSelection{ID: id}
		if found {
			amount := domain.ParseAmount(override)
			sel.Override = &amount
		}
		out = append(out, sel)
	}
	return out
}

func benefitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benefit",
		Short: "Estimate weekly unemployment benefits",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := reference.NewStore()
			flags := cmd.Flags()

			inputFile, _ := flags.GetString("input")
			sf, err := loadScenario(inputFile, store)
			if err != nil {
				return err
			}

			var scenario domain.BenefitScenario
			if sf != nil && sf.Benefit != nil {
				scenario = *sf.Benefit
			} else {
				state, _ := flags.GetString("state")
				high, _ := flags.GetString("high-quarter")
				second, _ := flags.GetString("second-quarter")
				dependents, _ := flags.GetString("dependents")
				earnings, _ := flags.GetString("earnings")
				scenario = domain.BenefitScenario{
					StateCode:          strings.ToUpper(state),
					HighQuarterWages:   domain.ParseAmount(high),
					SecondQuarterWages: domain.ParseAmount(second),
					Dependents:         domain.ParseCount(dependents),
					WeeklyEarnings:     domain.ParseAmount(earnings),
				}.Sanitize()
			}

			format, _ := flags.GetString("format")
			if all, _ := flags.GetBool("all-states"); all {
				return renderBenefitComparison(compare.NewEngine(store).CompareBenefit(scenario), format)
			}

			profile, err := store.Unemployment(scenario.StateCode)
			if err != nil {
				return err
			}

			calc := calculation.NewBenefitCalculator()
			rg := output.NewReportGenerator()

			if schedule, _ := flags.GetStringSlice("claim-week"); len(schedule) > 0 {
				projection := calc.ProjectClaim(scenario, profile, parseAmounts(schedule))
				if format == "json" {
					return rg.JSONReport(projection)
				}
				return rg.ClaimReport(projection)
			}

			result := calc.ComputeBenefit(scenario, profile)
			if format == "json" {
				return rg.JSONReport(result)
			}
			return rg.BenefitReport(scenario, profile, result)
		},
	}

	cmd.Flags().String("state", "", "two-letter state code")
	cmd.Flags().String("high-quarter", "0", "highest-quarter base period wages")
	cmd.Flags().String("second-quarter", "0", "second-highest-quarter wages")
	cmd.Flags().String("dependents", "0", "number of dependents")
	cmd.Flags().String("earnings", "0", "expected weekly part-time earnings")
	cmd.Flags().StringSlice("claim-week", nil, "project a claim with these per-week earnings")
	cmd.Flags().String("input", "", "YAML scenario file")
	cmd.Flags().String("format", "console", "output format (console, json; table/csv/json with --all-states)")
	cmd.Flags().Bool("all-states", false, "rank weekly benefits across every state")
	return cmd
}

func breakevenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Solve threshold questions over the estimators",
	}

	rateCmd := &cobra.Command{
		Use:   "rate",
		Short: "Find the 1099 rate that matches a W-2 job's yearly net",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := reference.NewStore()
			flags := cmd.Flags()

			rate, _ := flags.GetString("rate")
			hours, _ := flags.GetString("hours")
			state, _ := flags.GetString("state")
			scenario := domain.PayScenario{
				HourlyRate:   domain.ParseAmount(rate),
				HoursPerWeek: domain.ParseAmount(hours),
				StateCode:    strings.ToUpper(state),
			}

			jurisdiction, err := store.Jurisdiction(scenario.StateCode)
			if err != nil {
				return err
			}

			solver := breakeven.NewDefaultSolver(
				calculation.NewPayCalculator(calculation.NewFederalTaxCalculator(), store.ShiftDifferentials()),
				calculation.NewBenefitCalculator())
			result, err := solver.MatchingContractRate(cmd.Context(), scenario, jurisdiction)
			if err != nil {
				return err
			}

			fmt.Printf("A 1099 rate of $%s/hour matches $%s/hour W-2 take-home in %s (%d iterations).\n",
				result.Value.StringFixed(2), scenario.HourlyRate.StringFixed(2), jurisdiction.Code, result.Iterations)
			return nil
		},
	}
	rateCmd.Flags().String("rate", "0", "W-2 hourly rate to match")
	rateCmd.Flags().String("hours", "40", "hours per week")
	rateCmd.Flags().String("state", "", "two-letter state code")

	cutoffCmd := &cobra.Command{
		Use:   "cutoff",
		Short: "Find the weekly earnings where the partial benefit hits zero",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := reference.NewStore()
			flags := cmd.Flags()

			state, _ := flags.GetString("state")
			high, _ := flags.GetString("high-quarter")
			second, _ := flags.GetString("second-quarter")
			scenario := domain.BenefitScenario{
				StateCode:          strings.ToUpper(state),
				HighQuarterWages:   domain.ParseAmount(high),
				SecondQuarterWages: domain.ParseAmount(second),
			}

			profile, err := store.Unemployment(scenario.StateCode)
			if err != nil {
				return err
			}

			solver := breakeven.NewDefaultSolver(
				calculation.NewPayCalculator(calculation.NewFederalTaxCalculator(), store.ShiftDifferentials()),
				calculation.NewBenefitCalculator())
			result, err := solver.BenefitCutoffEarnings(cmd.Context(), scenario, profile)
			if err != nil {
				return err
			}

			fmt.Printf("In %s the partial benefit runs out at $%s of weekly earnings (%d iterations).\n",
				profile.Code, result.Value.StringFixed(2), result.Iterations)
			return nil
		},
	}
	cutoffCmd.Flags().String("state", "", "two-letter state code")
	cutoffCmd.Flags().String("high-quarter", "0", "highest-quarter base period wages")
	cutoffCmd.Flags().String("second-quarter", "0", "second-highest-quarter wages")

	cmd.AddCommand(rateCmd, cutoffCmd)
	return cmd
}

func statesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states [code]",
		Short: "Show jurisdiction reference data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := reference.NewStore()
			rg := output.NewReportGenerator()

			if len(args) == 1 {
				code := strings.ToUpper(args[0])
				jurisdiction, err := store.Jurisdiction(code)
				if err != nil {
					return err
				}
				profile, err := store.Unemployment(code)
				if err != nil {
					return err
				}
				return rg.JSONReport(map[string]any{
					"tax":          jurisdiction,
					"unemployment": profile,
				})
			}

			fmt.Printf("%-5s %-22s %8s %10s %12s\n", "Code", "Name", "Tax", "Min Wage", "UI Max/Week")
			fmt.Println(strings.Repeat("-", 62))
			for _, code := range store.Codes() {
				jurisdiction, err := store.Jurisdiction(code)
				if err != nil {
					continue
				}
				tax := jurisdiction.IncomeTaxRate.Mul(hundred).StringFixed(1) + "%"
				if jurisdiction.HasNoIncomeTax {
					tax = "none"
				}
				fmt.Printf("%-5s %-22s %8s %10s %12s\n",
					jurisdiction.Code, jurisdiction.Name, tax,
					"$"+jurisdiction.MinimumWage.StringFixed(2),
					"$"+jurisdiction.UnemploymentMaxWeekly.StringFixed(0))
			}
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; flags and real env win.
			_ = godotenv.Load()

			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = os.Getenv("WAGEKIT_ADDR")
			}
			if addr == "" {
				addr = ":8080"
			}

			logger := simpleCLILogger{}
			handler := api.NewHandler(reference.NewStore(), logger)
			server := &http.Server{
				Addr:              addr,
				Handler:           api.NewRouter(handler),
				ReadHeaderTimeout: 5 * time.Second,
			}

			logger.Infof("listening on %s", addr)
			return server.ListenAndServe()
		},
	}
	cmd.Flags().String("addr", "", "listen address (default $WAGEKIT_ADDR or :8080)")
	return cmd
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive quick paycheck calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(reference.NewStore())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "wagekit %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func renderPayComparison(set *compare.PayComparisonSet, format string) error {
	switch format {
	case "csv":
		out, err := (&compare.CSVFormatter{}).FormatPay(set)
		if err != nil {
			return err
		}
		fmt.Print(out)
	case "json":
		out, err := (&compare.JSONFormatter{Pretty: true}).FormatPay(set)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		fmt.Print((&compare.TableFormatter{}).FormatPay(set))
	}
	return nil
}

func renderBenefitComparison(set *compare.BenefitComparisonSet, format string) error {
	switch format {
	case "csv":
		out, err := (&compare.CSVFormatter{}).FormatBenefit(set)
		if err != nil {
			return err
		}
		fmt.Print(out)
	case "json":
		out, err := (&compare.JSONFormatter{Pretty: true}).FormatBenefit(set)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		fmt.Print((&compare.TableFormatter{}).FormatBenefit(set))
	}
	return nil
}

func main() {
	rootCmd.AddCommand(payCmd())
	rootCmd.AddCommand(quarterlyCmd())
	rootCmd.AddCommand(benefitCmd())
	rootCmd.AddCommand(breakevenCmd())
	rootCmd.AddCommand(statesCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
