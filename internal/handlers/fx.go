package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"takatrack/internal/models"
	"takatrack/internal/services"
)

type FXHandler struct {
	fxService services.FXService
}

func NewFXHandler(fxService services.FXService) *FXHandler {
	return &FXHandler{fxService: fxService}
}

// HandleRates handles GET and PUT /api/rates
// @Summary List or set monthly exchange rates
// @Description GET returns the rates visible to the caller for a month, user
// overrides included. PUT stores a rate; a rate with "global" scope applies to
// every user without an override for that month.
// @Tags rates
// @Accept json
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to current"
// @Success 200 {array} models.ExchangeRate
// @Failure 400 {string} string "Bad request"
// @Router /rates [get]
func (h *FXHandler) HandleRates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		month := r.URL.Query().Get("month")
		if month == "" {
			month = models.MonthKey(time.Now().UTC())
		}
		rates, err := h.fxService.ListRates(r.Context(), userID(r), month)
		if err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(rates)

	case http.MethodPut, http.MethodPost:
		var rate models.ExchangeRate
		if err := json.NewDecoder(r.Body).Decode(&rate); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		// The scope query parameter pins the rate to the calling user instead
		// of the global table.
		rate.UserID = ""
		if r.URL.Query().Get("scope") == models.RateScopeUser {
			rate.UserID = userID(r)
		}
		if err := h.fxService.UpsertRate(r.Context(), &rate); err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(rate)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
