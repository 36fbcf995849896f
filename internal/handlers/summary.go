package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"takatrack/internal/models"
	"takatrack/internal/services"
)

type SummaryHandler struct {
	summaryService services.SummaryService
}

func NewSummaryHandler(summaryService services.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// HandleMonthlySummary handles GET /api/reports/summary
// @Summary Monthly financial summary
// @Description Totals, savings rate, category breakdown and the parallel
// figures with projected recurring obligations folded in.
// @Tags reports
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to current"
// @Success 200 {object} models.MonthlySummary
// @Failure 400 {string} string "Bad request"
// @Router /reports/summary [get]
func (h *SummaryHandler) HandleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = models.MonthKey(time.Now().UTC())
	}
	if err := models.ValidateMonth(month); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.summaryService.MonthlySummary(r.Context(), userID(r), month)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(summary)
}
