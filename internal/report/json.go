package report

import (
	"encoding/json"
	"io"

	"github.com/profcalc/internal/salary"
)

type jsonExporter struct {
	opts Options
}

func (e *jsonExporter) Extension() string { return "json" }

type jsonReport struct {
	ReportID    string        `json:"report_id"`
	GeneratedAt string        `json:"generated_at"`
	Currency    string        `json:"currency"`
	Input       salary.Input  `json:"input"`
	Result      salary.Result `json:"result"`
}

// Export writes the raw numbers. NaN and infinite values cannot be encoded as
// JSON numbers and make Export fail.
func (e *jsonExporter) Export(w io.Writer, r *Report) error {
	generated := r.GeneratedAt
	if e.opts.Location != nil {
		generated = generated.In(e.opts.Location)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport{
		ReportID:    r.ID.String(),
		GeneratedAt: generated.Format("2006-01-02T15:04:05Z07:00"),
		Currency:    e.opts.currency(),
		Input:       r.Input,
		Result:      r.Result,
	})
}
