package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/profcalc/internal/form"
	"github.com/profcalc/internal/report"
	"github.com/profcalc/internal/salary"
)

const formHelp = `Commands:
  <field>=<value>     edit a field: valor, <dia> or 1-N, extras, desconto, tipo, beneficios, mes
  month [next|prev|YYYY-MM|off]   no argument shows the current month
  show                print the full summary
  reset               restore defaults (keeps the month)
  export [format]     save the report (default format from config)
  quit
`

var formCmd = &cobra.Command{
	Use:     "form",
	Aliases: []string{"f", "i"},
	Short:   "Interactive salary form",
	Long: `Edit the salary fields one at a time and see the result after every change.
Input flags set the starting values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inputFromFlags(cmd)
		if err != nil {
			return err
		}
		f := form.New(in, zap.L().Named("form"))
		return runForm(cmd.InOrStdin(), cmd.OutOrStdout(), f)
	},
}

// runForm reads commands from r until quit or EOF.
func runForm(r io.Reader, w io.Writer, f *form.Form) error {
	fmt.Fprint(w, formHelp)
	fmt.Fprintln(w)
	if err := printSummary(w, f.Input()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	fmt.Fprint(w, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch {
		case line == "":
		case cmd == "quit" || cmd == "exit" || cmd == "q" || cmd == "sair":
			return nil
		case cmd == "help" || cmd == "?":
			fmt.Fprint(w, formHelp)
		case cmd == "show":
			if err := printSummary(w, f.Input()); err != nil {
				return err
			}
		case cmd == "reset":
			f.Reset()
			printFinal(w, f.Result())
		case cmd == "export":
			format := rest
			if format == "" {
				format = cfg.DefaultFormat
			}
			path, err := exportReport(w, f.Input(), format, "")
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
			} else {
				fmt.Fprintf(w, "Relatório salvo em %s\n", path)
			}
		case cmd == "month" || cmd == "mes":
			if rest == "" {
				printMonth(w, f.Input())
				break
			}
			if err := f.SetField("month", rest); err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				break
			}
			printMonth(w, f.Input())
			printFinal(w, f.Result())
		case strings.Contains(line, "="):
			name, value, _ := strings.Cut(line, "=")
			if err := f.SetField(name, value); err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				break
			}
			printFinal(w, f.Result())
		default:
			fmt.Fprintf(w, "Unknown command: %s (type help)\n", cmd)
		}
		fmt.Fprint(w, "> ")
	}
	return scanner.Err()
}

func printFinal(w io.Writer, res salary.Result) {
	fmt.Fprintf(w, "Salário Mensal Final: %s %s\n", currencySymbol(), report.BRL(res.FinalMonthly))
}

func printMonth(w io.Writer, in salary.Input) {
	if in.ReferenceMonth.IsZero() {
		fmt.Fprintln(w, "Mês de Referência: nenhum")
		return
	}
	fmt.Fprintf(w, "Mês de Referência: %s\n", in.ReferenceMonth)
}

func currencySymbol() string {
	if cfg.Currency == "" {
		return report.DefaultCurrency
	}
	return cfg.Currency
}
