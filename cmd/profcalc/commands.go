package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/profcalc/internal/calendar"
	"github.com/profcalc/internal/config"
	"github.com/profcalc/internal/report"
	"github.com/profcalc/internal/salary"
)

var calcCmd = &cobra.Command{
	Use:     "calc",
	Aliases: []string{"c"},
	Short:   "Calculate the monthly salary",
	Long: `Calculate weekly and monthly salary from the hourly rate and the hours per day.

Examples:
  profcalc calc --hours 8,8,8,8,8,4
  profcalc calc -r 62.5 --hours 6,6,6,6,6 --discount 10 --discount-type percentage
  profcalc calc --hours 8,8,8,8,8 --month 2025-09 --overtime 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inputFromFlags(cmd)
		if err != nil {
			return err
		}
		return printSummary(cmd.OutOrStdout(), in)
	},
}

var calendarCmd = &cobra.Command{
	Use:     "calendar [YYYY-MM]",
	Aliases: []string{"cal"},
	Short:   "Show days, business days and weeks of a month",
	Long:    `Show the calendar figures used by the salary calculation. Defaults to the current month.`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := calendar.MonthOf(cfg.Now())
		if len(args) > 0 {
			var err error
			if m, err = parseMonthArg(args[0]); err != nil {
				return err
			}
		}
		if m.IsZero() {
			return fmt.Errorf("month is required")
		}

		s := calendar.Summarize(m)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Month: %s | Days: %d | Business days: %d\n", s.Month, s.DaysInMonth, s.BusinessDays)
		fmt.Fprintf(out, "Weeks: %s (%s for salary)\n", s.WeeksLabel(), report.NumberBR(s.Weeks))
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configuration",
	Long: `Display the effective configuration after defaults are applied. Any flag
changes that setting and saves the config file.

Examples:
  profcalc config
  profcalc config --currency US$ --timezone America/Sao_Paulo
  profcalc config --work-days Seg,Ter,Qua,Qui,Sex --format md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig(cmd, cmd.OutOrStdout())
	},
}

func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64("weeks-per-month", 0, "Weeks per month when no reference month is set")
	flags.StringSlice("work-days", nil, "Work day labels, in order")
	flags.String("currency", "", "Currency symbol")
	flags.String("timezone", "", "Timezone (e.g., America/Sao_Paulo)")
	flags.String("format", "", "Default export format")
	flags.String("output-dir", "", "Directory for exported reports")
	flags.String("file-name", "", "Report file name without extension")
}

// applyConfigFlags copies the changed flags into c and reports whether any
// flag was set.
func applyConfigFlags(cmd *cobra.Command, c *config.Config) (bool, error) {
	flags := cmd.Flags()
	changed := false
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
			changed = true
		}
	}

	set("weeks-per-month", func() { c.WeeksPerMonth, _ = flags.GetFloat64("weeks-per-month") })
	set("work-days", func() { c.WorkDays, _ = flags.GetStringSlice("work-days") })
	set("currency", func() { c.Currency, _ = flags.GetString("currency") })
	set("timezone", func() { c.TimeZone, _ = flags.GetString("timezone") })
	set("output-dir", func() { c.OutputDir, _ = flags.GetString("output-dir") })
	set("file-name", func() { c.FileName, _ = flags.GetString("file-name") })

	if flags.Changed("format") {
		format, _ := flags.GetString("format")
		exp, err := report.ForFormat(format, report.Options{})
		if err != nil {
			return false, err
		}
		c.DefaultFormat = exp.Extension()
		changed = true
	}
	return changed, nil
}

func runConfig(cmd *cobra.Command, out io.Writer) error {
	changed, err := applyConfigFlags(cmd, cfg)
	if err != nil {
		return err
	}
	if changed {
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		zap.L().Info("config saved", zap.String("path", cfg.File()))
		fmt.Fprintf(out, "Configuration saved to %s\n", cfg.File())
	}

	fmt.Fprintf(out, "Config: Weeks/month=%g | Currency=%s | TimeZone=%s\n",
		cfg.WeeksPerMonth, cfg.Currency, cfg.GetLocation())
	fmt.Fprintf(out, "Work days: %s\n", strings.Join(cfg.WorkDays, ", "))
	fmt.Fprintf(out, "Export: %s (default format %s)\n", cfg.OutputPath(cfg.DefaultFormat), cfg.DefaultFormat)
	fmt.Fprintf(out, "Defaults: rate=%g | discount type=%s\n", salary.DefaultHourlyRate, salary.DiscountFixed)
	return nil
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for profcalc.

To load completions:

Bash:
  $ source <(profcalc completion bash)

Zsh:
  $ profcalc completion zsh > "${fpath[1]}/_profcalc"

Fish:
  $ profcalc completion fish > ~/.config/fish/completions/profcalc.fish

PowerShell:
  PS> profcalc completion powershell > profcalc.ps1
  PS> . profcalc.ps1
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.ExactValidArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletion(os.Stdout)
		}
		return nil
	},
}

func init() {
	addInputFlags(calcCmd)
	addInputFlags(exportCmd)
	addInputFlags(formCmd)
	addConfigFlags(configCmd)

	exportCmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(report.Formats(), ", "))
	exportCmd.Flags().StringP("output", "o", "", `Output file ("-" for stdout)`)
}
