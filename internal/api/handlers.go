// Package api exposes the estimation engines over HTTP. Handlers parse
// the request, delegate to the calculators, and serialize the result;
// no computation happens here.
package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/calculation"
	"github.com/wagekit/wagekit/internal/compare"
	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/reference"
)

// Handler holds the calculators and reference data behind the routes.
type Handler struct {
	Store     *reference.Store
	Pay       *calculation.PayCalculator
	Quarterly *calculation.QuarterlyTaxCalculator
	Benefit   *calculation.BenefitCalculator
	Compare   *compare.Engine
	Logger    calculation.Logger
}

// NewHandler wires a handler over the given reference store.
func NewHandler(store *reference.Store, logger calculation.Logger) *Handler {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	federal := calculation.NewFederalTaxCalculator()
	return &Handler{
		Store:     store,
		Pay:       calculation.NewPayCalculator(federal, store.ShiftDifferentials()),
		Quarterly: calculation.NewQuarterlyTaxCalculator(federal, store.DeductionCatalog(), store.QuarterlyDeadlines()),
		Benefit:   calculation.NewBenefitCalculator(),
		Compare:   compare.NewEngine(store),
		Logger:    logger,
	}
}

// ComputePay handles POST /api/pay.
func (h *Handler) ComputePay(w http.ResponseWriter, r *http.Request) {
	var req PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	scenario := req.toScenario()
	if req.Role != "" {
		role, err := h.Store.Role(req.Role)
		if err != nil {
			h.writeError(w, statusForLookup(err), err.Error())
			return
		}
		scenario = domain.ApplyRole(scenario, role)
	}

	jurisdiction, err := h.Store.Jurisdiction(scenario.StateCode)
	if err != nil {
		h.writeError(w, statusForLookup(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, h.Pay.ComputePay(scenario, jurisdiction))
}

// ComparePay handles POST /api/pay/compare.
func (h *Handler) ComparePay(w http.ResponseWriter, r *http.Request) {
	var req PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.Compare.ComparePay(req.toScenario()))
}

// ComputeQuarterly handles POST /api/quarterly.
func (h *Handler) ComputeQuarterly(w http.ResponseWriter, r *http.Request) {
	var req TaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	scenario := req.toScenario()
	jurisdiction, err := h.Store.Jurisdiction(scenario.StateCode)
	if err != nil {
		h.writeError(w, statusForLookup(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, h.Quarterly.ComputeQuarterlyTax(scenario, jurisdiction))
}

// ComputeBenefit handles POST /api/benefit.
func (h *Handler) ComputeBenefit(w http.ResponseWriter, r *http.Request) {
	var req BenefitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	scenario := req.toScenario()
	profile, err := h.Store.Unemployment(scenario.StateCode)
	if err != nil {
		h.writeError(w, statusForLookup(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, h.Benefit.ComputeBenefit(scenario, profile))
}

// CompareBenefit handles POST /api/benefit/compare.
func (h *Handler) CompareBenefit(w http.ResponseWriter, r *http.Request) {
	var req BenefitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	h.writeJSON(w, http.StatusOK, h.Compare.CompareBenefit(req.toScenario()))
}

// ProjectClaim handles POST /api/benefit/claim.
func (h *Handler) ProjectClaim(w http.ResponseWriter, r *http.Request) {
	var req ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	scenario := req.toScenario()
	profile, err := h.Store.Unemployment(scenario.StateCode)
	if err != nil {
		h.writeError(w, statusForLookup(err), err.Error())
		return
	}

	schedule := make([]decimal.Decimal, len(req.Schedule))
	for i, s := range req.Schedule {
		schedule[i] = domain.ParseAmount(s)
	}

	h.writeJSON(w, http.StatusOK, h.Benefit.ProjectClaim(scenario, profile, schedule))
}

// stateSummary pairs the tax and unemployment profiles for one state.
type stateSummary struct {
	Tax          domain.JurisdictionTaxProfile `json:"tax"`
	Unemployment domain.UnemploymentProfile    `json:"unemployment"`
}

// ListStates handles GET /api/states.
func (h *Handler) ListStates(w http.ResponseWriter, r *http.Request) {
	codes := h.Store.Codes()
	out := make([]domain.JurisdictionTaxProfile, 0, len(codes))
	for _, code := range codes {
		jurisdiction, err := h.Store.Jurisdiction(code)
		if err != nil {
			continue
		}
		out = append(out, jurisdiction)
	}
	h.writeJSON(w, http.StatusOK, out)
}

// GetState handles GET /api/states/{code}.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	jurisdiction, err := h.Store.Jurisdiction(code)
	if err != nil {
		h.writeError(w, statusForLookup(err), err.Error())
		return
	}
	profile, err := h.Store.Unemployment(code)
	if err != nil {
		h.writeError(w, statusForLookup(err), err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, stateSummary{Tax: jurisdiction, Unemployment: profile})
}

// ListDeductions handles GET /api/catalog/deductions.
func (h *Handler) ListDeductions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Store.DeductionCatalog())
}

// ListRoles handles GET /api/catalog/roles.
func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Store.Roles())
}

// ListDeadlines handles GET /api/catalog/deadlines.
func (h *Handler) ListDeadlines(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Store.QuarterlyDeadlines())
}

// Health handles GET /api/healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Errorf("encoding response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{Error: msg})
}

// statusForLookup maps reference lookup failures to HTTP statuses.
func statusForLookup(err error) int {
	if errors.Is(err, reference.ErrUnknownJurisdiction) || errors.Is(err, reference.ErrUnknownCatalogEntry) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
