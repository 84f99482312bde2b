package server

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/rpgo/pension-fund-comparator/internal/logger"
	"github.com/rpgo/pension-fund-comparator/internal/output"
)

//go:embed templates/form.html.tmpl
var formTemplateSource string

var formTemplate = template.Must(template.New("form").Funcs(template.FuncMap{
	"pct": output.FormatPercentage,
}).Parse(formTemplateSource))

type formField struct {
	Name  string
	Label string
	Value string
	Step  string
}

type formView struct {
	Fields []formField
	Error  string
	Report *output.ReportData
}

// fieldSpec lists the form inputs in display order.
var fieldSpec = []struct {
	name, label, step string
	get               func(domain.InputParameters) string
}{
	{domain.ParamMonthlyContribution, "Monthly contribution", "any", func(p domain.InputParameters) string { return p.MonthlyContribution.String() }},
	{domain.ParamYearsToRetirement, "Years to retirement", "1", func(p domain.InputParameters) string { return strconv.Itoa(p.YearsToRetirement) }},
	{domain.ParamYearsInRetirement, "Years in retirement", "1", func(p domain.InputParameters) string { return strconv.Itoa(p.YearsInRetirement) }},
	{domain.ParamPreRetirementTaxRate, "Income tax rate before retirement (%)", "any", func(p domain.InputParameters) string { return p.PreRetirementTaxRate.String() }},
	{domain.ParamPostRetirementTaxRate, "Income tax rate after retirement (%)", "any", func(p domain.InputParameters) string { return p.PostRetirementTaxRate.String() }},
	{domain.ParamPensionReturn, "NPS annual return (%)", "any", func(p domain.InputParameters) string { return p.PensionReturn.String() }},
	{domain.ParamFundReturnPreRetirement, "Fund return before retirement (%)", "any", func(p domain.InputParameters) string { return p.FundReturnPreRetirement.String() }},
	{domain.ParamFundReturnPostRetirement, "Fund return after retirement (%)", "any", func(p domain.InputParameters) string { return p.FundReturnPostRetirement.String() }},
	{domain.ParamAnnuityRate, "Annuity rate (%)", "any", func(p domain.InputParameters) string { return p.AnnuityRate.String() }},
	{domain.ParamWithdrawalTaxRate, "Capital gains tax on withdrawals (%)", "any", func(p domain.InputParameters) string { return p.WithdrawalTaxRate.String() }},
}

func formFields(p domain.InputParameters) []formField {
	fields := make([]formField, 0, len(fieldSpec))
	for _, f := range fieldSpec {
		fields = append(fields, formField{Name: f.name, Label: f.label, Value: f.get(p), Step: f.step})
	}
	return fields
}

// newFormView echoes the submitted values back so the user can correct them.
func newFormView(values url.Values, result *domain.ComparisonResult, errMsg string) formView {
	fields := make([]formField, 0, len(fieldSpec))
	for _, f := range fieldSpec {
		fields = append(fields, formField{Name: f.name, Label: f.label, Value: values.Get(f.name), Step: f.step})
	}
	v := formView{Fields: fields, Error: errMsg}
	if result != nil {
		report := output.NewReportData(result)
		v.Report = &report
	}
	return v
}

// parseFormParameters reads every field; a missing or malformed value is an
// InputError naming that field.
func parseFormParameters(values url.Values) (domain.InputParameters, error) {
	var p domain.InputParameters
	var err error

	dec := func(name string, dst *decimal.Decimal) {
		if err != nil {
			return
		}
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			err = domain.NewInputError(name, "is required")
			return
		}
		d, perr := decimal.NewFromString(raw)
		if perr != nil {
			err = domain.NewInputError(name, "must be a number")
			return
		}
		*dst = d
	}
	years := func(name string, dst *int) {
		if err != nil {
			return
		}
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			err = domain.NewInputError(name, "is required")
			return
		}
		n, perr := strconv.Atoi(raw)
		if perr != nil {
			err = domain.NewInputError(name, "must be a whole number of years")
			return
		}
		*dst = n
	}

	dec(domain.ParamMonthlyContribution, &p.MonthlyContribution)
	years(domain.ParamYearsToRetirement, &p.YearsToRetirement)
	years(domain.ParamYearsInRetirement, &p.YearsInRetirement)
	dec(domain.ParamPreRetirementTaxRate, &p.PreRetirementTaxRate)
	dec(domain.ParamPostRetirementTaxRate, &p.PostRetirementTaxRate)
	dec(domain.ParamPensionReturn, &p.PensionReturn)
	dec(domain.ParamFundReturnPreRetirement, &p.FundReturnPreRetirement)
	dec(domain.ParamFundReturnPostRetirement, &p.FundReturnPostRetirement)
	dec(domain.ParamAnnuityRate, &p.AnnuityRate)
	dec(domain.ParamWithdrawalTaxRate, &p.WithdrawalTaxRate)
	return p, err
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, status int, view formView) {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, view); err != nil {
		logger.FromContext(r.Context()).Error("rendering form", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
