package http

import (
	"net/http"

	"github.com/agrisense/agrisense/internal/domain"
	"github.com/agrisense/agrisense/internal/service"
	"github.com/agrisense/agrisense/pkg/httpx"
	"github.com/agrisense/agrisense/pkg/slogx"
)

// ReportsHandler serves the read-only report endpoints. Reports never write;
// filters arrive as query parameters and an absent filter means the whole
// population.
type ReportsHandler struct {
	ReportService *service.ReportService
}

type reportResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// WaterUsage godoc
//
//	@Summary	Water usage by block
//	@Tags		Reports
//	@Produce	json
//	@Param		block	query		string	false	"Restrict to one block"
//	@Success	200		{object}	reportResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Security	BearerAuth
//	@Router		/reports/waterUsageByBlock [get]
func (h *ReportsHandler) WaterUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.ReportService.WaterUsageByBlock(r.Context(), r.URL.Query().Get("block"))
	if err != nil {
		slogx.FromContext(r.Context()).Error("water usage report", "error", err)
		httpx.WriteError(w, r, http.StatusBadRequest, "Could not fetch report")
		return
	}

	httpx.WriteJSON(w, r, http.StatusOK, reportResponse{
		Message: "Water usage report fetched successfully",
		Data:    usage,
	})
}

// DiseaseSymptoms godoc
//
//	@Summary	Disease symptom frequency
//	@Tags		Reports
//	@Produce	json
//	@Param		crop	query		string	false	"Restrict to one crop type"
//	@Success	200		{object}	reportResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Security	BearerAuth
//	@Router		/reports/diseaseSymptoms [get]
func (h *ReportsHandler) DiseaseSymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.ReportService.DiseaseSymptoms(r.Context(), r.URL.Query().Get("crop"))
	if err != nil {
		slogx.FromContext(r.Context()).Error("disease symptom report", "error", err)
		httpx.WriteError(w, r, http.StatusBadRequest, "Could not fetch report")
		return
	}

	httpx.WriteJSON(w, r, http.StatusOK, reportResponse{
		Message: "Disease symptom frequency report fetched successfully",
		Data:    symptoms,
	})
}

// Incidents godoc
//
//	@Summary	Incident reports
//	@Tags		Reports
//	@Produce	json
//	@Param		date	query		string	false	"Restrict to one date (YYYY-MM-DD)"
//	@Success	200		{object}	reportResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Security	BearerAuth
//	@Router		/reports/incidents [get]
func (h *ReportsHandler) Incidents(w http.ResponseWriter, r *http.Request) {
	var date *domain.Date
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			httpx.WriteError(w, r, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	incidents, err := h.ReportService.Incidents(r.Context(), date)
	if err != nil {
		slogx.FromContext(r.Context()).Error("incident report", "error", err)
		httpx.WriteError(w, r, http.StatusBadRequest, "Could not fetch report")
		return
	}

	httpx.WriteJSON(w, r, http.StatusOK, reportResponse{
		Message: "Incident reports fetched successfully",
		Data:    incidents,
	})
}
