package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"amount": FormatAmount,
	"pct":    FormatPercentage,
	"rate":   FormatRate,
}).Parse(htmlTemplateSource))

// ReportData is the view model shared by the HTML report and the web form.
type ReportData struct {
	Result      *domain.ComparisonResult
	Rows        []RouteRow
	Verdict     string
	Decided     bool
	Assumptions []string
}

// NewReportData builds the view model for a result.
func NewReportData(result *domain.ComparisonResult) ReportData {
	return ReportData{
		Result:      result,
		Rows:        RouteRows(result),
		Verdict:     VerdictText(result.Verdict),
		Decided:     !result.Verdict.IsIndeterminate(),
		Assumptions: GenerateAssumptions(result),
	}
}

func (h HTMLFormatter) Format(result *domain.ComparisonResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, NewReportData(result)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
