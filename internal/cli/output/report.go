package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/pystyle/pkg/lint"
)

// ViolationRecord is the JSON shape of one reported violation.
type ViolationRecord struct {
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Subject  string `json:"subject,omitempty"`
}

// FailureRecord is the JSON shape of a file that could not be analyzed.
type FailureRecord struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Report is the JSON document written by the check command.
type Report struct {
	Files      int               `json:"files"`
	Violations []ViolationRecord `json:"violations"`
	Failures   []FailureRecord   `json:"failures,omitempty"`
}

// Summary counts what a report contains.
type Summary struct {
	Files      int
	Violations int
	Failures   int
	BySeverity map[lint.Severity]int
}

// Summarize counts violations and failures across results.
func Summarize(results []lint.FileResult) Summary {
	s := Summary{Files: len(results), BySeverity: make(map[lint.Severity]int)}
	for _, res := range results {
		if res.Err != nil {
			s.Failures++
		}
		for _, v := range res.Violations {
			s.Violations++
			s.BySeverity[v.Severity]++
		}
	}
	return s
}

// RenderReport writes analysis results in the renderer's effective mode.
// Failures are written to the error output in text and markdown modes and
// embedded in the document in JSON mode.
func (r *Renderer) RenderReport(results []lint.FileResult) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(NewReport(results))
	case ModeMarkdown:
		r.renderReportMarkdown(results)
	default:
		r.renderReportText(results)
	}
	return nil
}

// NewReport converts results to the JSON report document.
func NewReport(results []lint.FileResult) Report {
	report := Report{Files: len(results), Violations: []ViolationRecord{}}
	for _, res := range results {
		if res.Err != nil {
			report.Failures = append(report.Failures, FailureRecord{Path: res.Path, Error: res.Err.Error()})
		}
		for _, v := range res.Violations {
			report.Violations = append(report.Violations, newViolationRecord(v))
		}
	}
	return report
}

func newViolationRecord(v lint.Violation) ViolationRecord {
	rec := ViolationRecord{
		Path:     v.Path,
		Line:     v.Line,
		Code:     string(v.Code),
		Severity: v.Severity.String(),
		Message:  v.Message(),
		Subject:  v.Subject,
	}
	if rule, ok := lint.GetByID(v.Code); ok {
		rec.Name = rule.Name
	}
	return rec
}

// renderReportText writes one "<path>: Line <n>: <code> <message>" line per
// violation. Styling, when enabled, never changes the visible text.
func (r *Renderer) renderReportText(results []lint.FileResult) {
	styles := r.Styles()
	for _, res := range results {
		if res.Err != nil {
			r.Error(res.Err.Error())
		}
		for _, v := range res.Violations {
			r.Printf("%s: Line %d: %s %s\n",
				styles.Path.Render(v.Path),
				v.Line,
				r.SeverityStyle(v.Severity).Render(string(v.Code)),
				v.Message())
		}
	}
}

func (r *Renderer) renderReportMarkdown(results []lint.FileResult) {
	summary := Summarize(results)

	r.Println(FormatHeader(1, "Style Report"))
	r.Println("")
	r.Println(FormatKeyValue("Files", fmt.Sprintf("%d", summary.Files)))
	r.Println(FormatKeyValue("Violations", fmt.Sprintf("%d", summary.Violations)))
	if summary.Failures > 0 {
		r.Println(FormatKeyValue("Failures", fmt.Sprintf("%d", summary.Failures)))
	}

	for _, res := range results {
		if res.Err != nil {
			r.Error(res.Err.Error())
		}
		if len(res.Violations) == 0 {
			continue
		}
		r.Println("")
		r.Println(FormatHeader(2, "`"+res.Path+"`"))
		r.Println("")
		r.Println("| Line | Code | Severity | Message |")
		r.Println("|-----:|------|----------|---------|")
		for _, v := range res.Violations {
			r.Printf("| %d | %s | %s | %s |\n", v.Line, v.Code, v.Severity, escapeCell(v.Message()))
		}
	}
}

// SeverityStyle returns the style used to highlight a severity.
func (r *Renderer) SeverityStyle(sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return r.styles.Error
	case lint.SeverityWarning:
		return r.styles.Warning
	case lint.SeverityInfo:
		return r.styles.Info
	default:
		return r.styles.Muted
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
