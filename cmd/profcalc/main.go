package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/profcalc/internal/config"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "profcalc",
	Short: "Teacher salary calculator",
	Long: `Profcalc estimates a teacher's monthly salary from an hourly rate and the hours
taught on each day of the week, applies overtime, discounts and benefits, and
exports the summary as a PDF or another document format.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env may point PROFCALC_CONFIG somewhere else
		_ = godotenv.Load()

		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.Path()
		}

		var err error
		cfg, err = config.LoadFrom(path)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		logger, err = newLogger(verbose)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		logger.Debug("config loaded", zap.String("path", path), zap.String("currency", cfg.Currency))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default $PROFCALC_CONFIG or ~/.profcalc.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
