// Package report renders a salary summary into downloadable documents. Every
// format is an Exporter that receives the same derived-output snapshot.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/profcalc/internal/salary"
)

const (
	Title           = "Relatório Salarial do Professor"
	Footer          = "Calculadora Salarial para Professores"
	DefaultFileName = "relatorio-salarial"
	DefaultCurrency = "R$"
)

// Report is the snapshot handed to exporters.
type Report struct {
	ID          uuid.UUID
	GeneratedAt time.Time
	Input       salary.Input
	Result      salary.Result
}

// New captures in and res. The input is cloned so later edits do not leak in.
func New(in salary.Input, res salary.Result, now time.Time) *Report {
	return &Report{
		ID:          uuid.New(),
		GeneratedAt: now,
		Input:       in.Clone(),
		Result:      res,
	}
}

// Exporter writes a report in one document format.
type Exporter interface {
	Export(w io.Writer, r *Report) error
	Extension() string
}

type Options struct {
	Currency string
	Location *time.Location
}

func (o Options) currency() string {
	if o.Currency == "" {
		return DefaultCurrency
	}
	return o.Currency
}

// localDate formats t as dd/mm/yyyy in the configured location.
func (o Options) localDate(t time.Time) string {
	if o.Location != nil {
		t = t.In(o.Location)
	}
	return t.Format("02/01/2006")
}

func (o Options) localTimestamp(t time.Time) string {
	if o.Location != nil {
		t = t.In(o.Location)
	}
	return t.Format("02/01/2006 15:04")
}

var exporters = map[string]func(Options) Exporter{
	"pdf":  func(o Options) Exporter { return &pdfExporter{opts: o} },
	"md":   func(o Options) Exporter { return &markdownExporter{opts: o} },
	"html": func(o Options) Exporter { return &htmlExporter{opts: o} },
	"json": func(o Options) Exporter { return &jsonExporter{opts: o} },
	"csv":  func(o Options) Exporter { return &csvExporter{opts: o} },
	"txt":  func(o Options) Exporter { return &textExporter{opts: o} },
}

var aliases = map[string]string{
	"markdown": "md",
	"text":     "txt",
}

// ForFormat returns the exporter registered under name.
func ForFormat(name string, opts Options) (Exporter, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	build, ok := exporters[key]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (use %s)", name, strings.Join(Formats(), ", "))
	}
	return build(opts), nil
}

// Formats lists the registered format names.
func Formats() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
