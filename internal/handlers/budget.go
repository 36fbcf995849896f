package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"takatrack/internal/models"
	"takatrack/internal/services"
)

type BudgetHandler struct {
	budgetService services.BudgetService
}

func NewBudgetHandler(budgetService services.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// HandleBudgets handles GET and PUT /api/budgets
// @Summary Budget statuses and upsert
// @Description GET returns per-category consumption for a month. PUT sets the
// budget for one (category, month) pair, replacing any existing amount.
// @Tags budgets
// @Accept json
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to current"
// @Success 200 {array} models.BudgetStatus
// @Failure 400 {string} string "Bad request"
// @Router /budgets [get]
func (h *BudgetHandler) HandleBudgets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		month := r.URL.Query().Get("month")
		if month == "" {
			month = models.MonthKey(time.Now().UTC())
		}
		statuses, err := h.budgetService.Statuses(r.Context(), userID(r), month)
		if err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(statuses)

	case http.MethodPut, http.MethodPost:
		var budget models.Budget
		if err := json.NewDecoder(r.Body).Decode(&budget); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		budget.UserID = userID(r)
		if err := h.budgetService.Upsert(r.Context(), &budget); err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(budget)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleBudget handles DELETE /api/budgets/{id}
func (h *BudgetHandler) HandleBudget(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Budget ID is required", http.StatusBadRequest)
		return
	}
	if err := h.budgetService.Delete(r.Context(), userID(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
