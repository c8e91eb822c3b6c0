package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profcalc/internal/calendar"
	"github.com/profcalc/internal/config"
	"github.com/profcalc/internal/form"
	"github.com/profcalc/internal/salary"
)

func setupConfig(t *testing.T) {
	t.Helper()
	loaded, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	loaded.OutputDir = t.TempDir()
	loaded.TimeZone = "UTC"
	cfg = loaded
}

func parseInput(t *testing.T, args ...string) (salary.Input, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addInputFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return inputFromFlags(cmd)
}

func TestInputFromFlags(t *testing.T) {
	setupConfig(t)

	in, err := parseInput(t,
		"--hours", "8,8,8,8,8,4",
		"--discount-type", "percentage",
		"--discount", "10",
		"--month", "2025-09",
	)
	require.NoError(t, err)

	assert.Equal(t, salary.DefaultHourlyRate, in.HourlyRate)
	assert.Equal(t, 8.0, in.WorkDays[0].Hours)
	assert.Equal(t, 4.0, in.WorkDays[5].Hours)
	assert.Equal(t, salary.DiscountPercentage, in.DiscountType)
	assert.Equal(t, calendar.Month{Year: 2025, Month: time.September}, in.ReferenceMonth)
}

func TestInputFromFlagsDefaults(t *testing.T) {
	setupConfig(t)

	in, err := parseInput(t)
	require.NoError(t, err)
	assert.Len(t, in.WorkDays, len(cfg.WorkDays))
	assert.True(t, in.ReferenceMonth.IsZero())
	assert.Equal(t, salary.DiscountFixed, in.DiscountType)
	assert.Equal(t, 0.0, salary.Compute(in).FinalMonthly)
}

func TestInputFromFlagsErrors(t *testing.T) {
	setupConfig(t)

	_, err := parseInput(t, "--hours", "1,1,1,1,1,1,1")
	assert.Error(t, err)

	_, err = parseInput(t, "--month", "setembro")
	assert.Error(t, err)

	_, err = parseInput(t, "--discount-type", "bonus")
	assert.Error(t, err)
}

func TestExportReportToStdout(t *testing.T) {
	setupConfig(t)

	var buf bytes.Buffer
	path, err := exportReport(&buf, salary.DefaultInput(nil), "json", "-")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Contains(t, buf.String(), `"report_id"`)
}

func TestExportReportDefaultPath(t *testing.T) {
	setupConfig(t)

	path, err := exportReport(&bytes.Buffer{}, salary.DefaultInput(nil), "pdf", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "relatorio-salarial.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExportReportUnknownFormat(t *testing.T) {
	setupConfig(t)

	_, err := exportReport(&bytes.Buffer{}, salary.DefaultInput(nil), "docx", "")
	assert.Error(t, err)
}

func TestRunForm(t *testing.T) {
	setupConfig(t)

	f := form.New(salary.DefaultInput(nil), nil)
	script := strings.Join([]string{
		"1=8", "2=8", "3=8", "4=8", "5=8", "sábado=4",
		"show",
		"bogus",
		"quit",
		"valor=999",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, runForm(strings.NewReader(script), &out, f))

	assert.Contains(t, out.String(), "Salário Mensal Final: R$ 9.900,00")
	assert.Contains(t, out.String(), "Unknown command: bogus")
	assert.Equal(t, salary.DefaultHourlyRate, f.Input().HourlyRate)
}

func TestRunFormMonthAndReset(t *testing.T) {
	setupConfig(t)

	f := form.New(salary.DefaultInput(nil), nil)
	script := "month next\nmonth 2025-09\nmonth next\nvalor=80\nreset\n"

	var out bytes.Buffer
	require.NoError(t, runForm(strings.NewReader(script), &out, f))

	assert.Contains(t, out.String(), "Error: no month selected")
	assert.Contains(t, out.String(), "Mês de Referência: 2025-10")
	assert.Equal(t, calendar.Month{Year: 2025, Month: time.October}, f.Input().ReferenceMonth)
	assert.Equal(t, salary.DefaultHourlyRate, f.Input().HourlyRate)
}

func TestRunFormExport(t *testing.T) {
	setupConfig(t)

	f := form.New(salary.DefaultInput(nil), nil)
	var out bytes.Buffer
	require.NoError(t, runForm(strings.NewReader("1=10\nexport md\n"), &out, f))

	path := filepath.Join(cfg.OutputDir, "relatorio-salarial.md")
	assert.Contains(t, out.String(), "Relatório salvo em "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| Segunda | 10 |")
}

func TestRunFormBareMonthKeepsSelection(t *testing.T) {
	setupConfig(t)

	f := form.New(salary.DefaultInput(nil), nil)
	var out bytes.Buffer
	require.NoError(t, runForm(strings.NewReader("month\nmonth 2025-09\nmonth\n"), &out, f))

	assert.Contains(t, out.String(), "Mês de Referência: nenhum")
	assert.Equal(t, 2, strings.Count(out.String(), "Mês de Referência: 2025-09"))
	assert.Equal(t, calendar.Month{Year: 2025, Month: time.September}, f.Input().ReferenceMonth)

	require.NoError(t, runForm(strings.NewReader("month off\n"), &out, f))
	assert.True(t, f.Input().ReferenceMonth.IsZero())
}

func configCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "config"}
	addConfigFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestRunConfigSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profcalc.yaml")
	loaded, err := config.LoadFrom(path)
	require.NoError(t, err)
	cfg = loaded

	var out bytes.Buffer
	cmd := configCommand(t, "--currency", "US$", "--weeks-per-month", "4.33", "--work-days", "Seg,Ter,Qua", "--format", "markdown")
	require.NoError(t, runConfig(cmd, &out))
	assert.Contains(t, out.String(), "Configuration saved to "+path)

	saved, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "US$", saved.Currency)
	assert.Equal(t, 4.33, saved.WeeksPerMonth)
	assert.Equal(t, []string{"Seg", "Ter", "Qua"}, saved.WorkDays)
	assert.Equal(t, "md", saved.DefaultFormat)
}

func TestRunConfigShowOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profcalc.yaml")
	loaded, err := config.LoadFrom(path)
	require.NoError(t, err)
	cfg = loaded

	var out bytes.Buffer
	require.NoError(t, runConfig(configCommand(t), &out))
	assert.Contains(t, out.String(), "Currency=R$")
	assert.NotContains(t, out.String(), "Configuration saved")
	assert.NoFileExists(t, path)
}

func TestRunConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profcalc.yaml")
	loaded, err := config.LoadFrom(path)
	require.NoError(t, err)
	cfg = loaded

	assert.Error(t, runConfig(configCommand(t, "--timezone", "Mars/Olympus"), &bytes.Buffer{}))
	assert.Error(t, runConfig(configCommand(t, "--format", "docx"), &bytes.Buffer{}))
	assert.NoFileExists(t, path)
}
