package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"takatrack/internal/models"
	"takatrack/internal/services"
)

type IncomeHandler struct {
	incomeService services.IncomeService
}

func NewIncomeHandler(incomeService services.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// HandleIncomes handles GET and POST /api/incomes
// @Summary List or create income entries
// @Tags incomes
// @Accept json
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to current"
// @Success 200 {array} models.Income
// @Success 201 {object} models.Income
// @Failure 400 {string} string "Bad request"
// @Router /incomes [get]
func (h *IncomeHandler) HandleIncomes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		month := r.URL.Query().Get("month")
		if month == "" {
			month = models.MonthKey(time.Now().UTC())
		}
		incomes, err := h.incomeService.ListForMonth(r.Context(), userID(r), month)
		if err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(incomes)

	case http.MethodPost:
		var income models.Income
		if err := json.NewDecoder(r.Body).Decode(&income); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		income.UserID = userID(r)
		if err := h.incomeService.Create(r.Context(), &income); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(income)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleIncome handles DELETE /api/incomes/{id}
func (h *IncomeHandler) HandleIncome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Income ID is required", http.StatusBadRequest)
		return
	}
	if err := h.incomeService.Delete(r.Context(), userID(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
