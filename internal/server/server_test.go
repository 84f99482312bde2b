package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/pension-fund-comparator/internal/calculation"
	"github.com/rpgo/pension-fund-comparator/internal/config"
	"github.com/rpgo/pension-fund-comparator/internal/domain"
)

const scenarioABody = `{
	"monthly_contribution": 100,
	"years_to_retirement": 20,
	"years_in_retirement": 30,
	"pre_retirement_tax_rate": 33,
	"post_retirement_tax_rate": 30,
	"pension_return": 10,
	"fund_return_pre_retirement": 11.5,
	"fund_return_post_retirement": 11.5,
	"annuity_rate": 6,
	"withdrawal_tax_rate": 5
}`

func newTestServer(opts Options) http.Handler {
	if opts.Defaults.YearsToRetirement == 0 {
		opts.Defaults = config.DefaultParameters()
	}
	if opts.MaxHorizonYears == 0 {
		opts.MaxHorizonYears = 60
	}
	return New(calculation.NewProjectionEngine(), opts).Routes()
}

func formValues(p domain.InputParameters) url.Values {
	v := url.Values{}
	for _, f := range formFields(p) {
		v.Set(f.Name, f.Value)
	}
	return v
}

func postForm(h http.Handler, v url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(v.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiError {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHealthz(t *testing.T) {
	h := newTestServer(Options{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestIDIsPropagated(t *testing.T) {
	h := newTestServer(Options{})
	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestProjectionAPI(t *testing.T) {
	h := newTestServer(Options{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projections", strings.NewReader(scenarioABody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result domain.ComparisonResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, domain.OutcomeDecided, result.Verdict.Outcome)
	assert.Equal(t, domain.RouteMutualFund, result.Verdict.Winner)
	assert.InDelta(t, 9.135, result.Verdict.Advantage.InexactFloat64(), 0.001)
	assert.InDelta(t, 75936.88, result.Pension.Corpus.Value.InexactFloat64(), 0.01)
}

func TestProjectionAPIErrors(t *testing.T) {
	h := newTestServer(Options{MaxHorizonYears: 40})

	tests := []struct {
		name      string
		body      string
		code      string
		parameter string
	}{
		{"malformed json", `{"monthly_contribution":`, "invalid_json", ""},
		{"unknown field", `{"monthly_contributions": 100}`, "invalid_json", ""},
		{"negative contribution", strings.Replace(scenarioABody, `"monthly_contribution": 100`, `"monthly_contribution": -1`, 1), "invalid_input", domain.ParamMonthlyContribution},
		{"tax above 100", strings.Replace(scenarioABody, `"withdrawal_tax_rate": 5`, `"withdrawal_tax_rate": 101`, 1), "invalid_input", domain.ParamWithdrawalTaxRate},
		{"zero horizon", strings.Replace(scenarioABody, `"years_in_retirement": 30`, `"years_in_retirement": 0`, 1), "invalid_input", domain.ParamYearsInRetirement},
		{"horizon above cap", strings.Replace(scenarioABody, `"years_in_retirement": 30`, `"years_in_retirement": 41`, 1), "invalid_input", domain.ParamYearsInRetirement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/projections", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			e := decodeError(t, rec)
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, tt.parameter, e.Parameter)
			assert.NotEmpty(t, e.Message)
		})
	}
}

func TestProjectionAPIIndeterminateIsOK(t *testing.T) {
	h := newTestServer(Options{})
	body := strings.Replace(scenarioABody, `"monthly_contribution": 100`, `"monthly_contribution": 0`, 1)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/projections", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.ComparisonResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Verdict.IsIndeterminate())
	assert.Empty(t, result.Verdict.Winner)
}

type failingProjector struct{}

func (failingProjector) Project(context.Context, domain.InputParameters) (*domain.ComparisonResult, error) {
	return nil, errors.New("backend down")
}

func TestProjectionAPIInternalError(t *testing.T) {
	h := New(failingProjector{}, Options{}).Routes()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/projections", strings.NewReader(scenarioABody)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal", decodeError(t, rec).Code)
}

func TestFormDefaults(t *testing.T) {
	h := newTestServer(Options{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, `name="monthly_contribution" value="100"`)
	assert.Contains(t, body, `name="fund_return_pre_retirement" value="11.5"`)
	assert.NotContains(t, body, "Results")
}

func TestFormSubmitRendersResults(t *testing.T) {
	h := newTestServer(Options{})
	rec := postForm(h, formValues(config.DefaultParameters()))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Results")
	assert.Contains(t, body, "75,937")
	assert.Contains(t, body, "61,982")
	assert.Contains(t, body, "Mutual Fund is better by 9.1% in annual post-tax retirement income.")
}

func TestFormSubmitRejectsInvalidInput(t *testing.T) {
	h := newTestServer(Options{MaxHorizonYears: 40})

	tests := []struct {
		name, field, value, want string
	}{
		{"not a number", domain.ParamPensionReturn, "ten", "invalid pension_return: must be a number"},
		{"missing", domain.ParamAnnuityRate, "", "invalid annuity_rate: is required"},
		{"fractional years", domain.ParamYearsToRetirement, "2.5", "invalid years_to_retirement"},
		{"negative tax", domain.ParamPreRetirementTaxRate, "-1", "invalid pre_retirement_tax_rate"},
		{"above cap", domain.ParamYearsToRetirement, "45", "invalid years_to_retirement: must be at most 40 years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := formValues(config.DefaultParameters())
			v.Set(tt.field, tt.value)
			rec := postForm(h, v)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.want)
			assert.NotContains(t, body, "Results")
		})
	}
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(Options{RateLimitRPS: 0.001, RateLimitBurst: 1})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", decodeError(t, rec).Code)

	// health checks bypass the limiter
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParseFormParameters(t *testing.T) {
	p, err := parseFormParameters(formValues(config.DefaultParameters()))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultParameters().CacheKey(), p.CacheKey())
}

func TestListenAndServeShutsDownOnCancel(t *testing.T) {
	srv := New(calculation.NewProjectionEngine(), Options{}).NewHTTPServer("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, ListenAndServe(ctx, srv, 5*time.Second))
}
