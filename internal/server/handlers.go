package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rpgo/pension-fund-comparator/internal/domain"
	"github.com/rpgo/pension-fund-comparator/internal/logger"
)

type apiError struct {
	Code      string `json:"code"`
	Parameter string `json:"parameter,omitempty"`
	Message   string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L.Error("encoding response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, e apiError) {
	writeJSON(w, status, errorResponse{Error: e})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleProjection accepts InputParameters JSON and returns the full
// ComparisonResult. An indeterminate comparison is still a 200.
func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var params domain.InputParameters
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		log.Debug("rejecting request body", "error", err)
		writeJSONError(w, http.StatusBadRequest, apiError{Code: "invalid_json", Message: err.Error()})
		return
	}

	result, err := s.project(r, params)
	if err != nil {
		var inputErr *domain.InputError
		if errors.As(err, &inputErr) {
			writeJSONError(w, http.StatusBadRequest, apiError{Code: "invalid_input", Parameter: inputErr.Parameter, Message: inputErr.Error()})
			return
		}
		log.Error("projection failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, apiError{Code: "internal", Message: "projection failed"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, http.StatusOK, formView{Fields: formFields(s.opts.Defaults)})
}

func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderForm(w, r, http.StatusBadRequest, formView{Fields: formFields(s.opts.Defaults), Error: "could not read the submitted form"})
		return
	}

	params, err := parseFormParameters(r.PostForm)
	if err == nil {
		var result *domain.ComparisonResult
		result, err = s.project(r, params)
		if err == nil {
			s.renderForm(w, r, http.StatusOK, newFormView(r.PostForm, result, ""))
			return
		}
	}

	var inputErr *domain.InputError
	if !errors.As(err, &inputErr) {
		logger.FromContext(r.Context()).Error("projection failed", "error", err)
		s.renderForm(w, r, http.StatusInternalServerError, newFormView(r.PostForm, nil, "The comparison could not be computed."))
		return
	}
	s.renderForm(w, r, http.StatusBadRequest, newFormView(r.PostForm, nil, inputErr.Error()))
}

// project applies the presentation-level horizon cap before calling the
// engine.
func (s *Server) project(r *http.Request, params domain.InputParameters) (*domain.ComparisonResult, error) {
	if limit := s.opts.MaxHorizonYears; limit > 0 {
		if params.YearsToRetirement > limit {
			return nil, domain.NewInputError(domain.ParamYearsToRetirement, fmt.Sprintf("must be at most %d years", limit))
		}
		if params.YearsInRetirement > limit {
			return nil, domain.NewInputError(domain.ParamYearsInRetirement, fmt.Sprintf("must be at most %d years", limit))
		}
	}
	return s.projector.Project(r.Context(), params)
}
