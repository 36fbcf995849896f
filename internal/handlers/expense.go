package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"takatrack/internal/models"
	"takatrack/internal/services"
)

type ExpenseHandler struct {
	expenseService services.ExpenseService
}

func NewExpenseHandler(expenseService services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// HandleExpenses handles GET and POST /api/expenses
// @Summary List or create expenses
// @Description List expenses for a month, or record a new expense. Foreign
// amounts are converted to the base currency at creation time; a missing
// exchange rate rejects the request.
// @Tags expenses
// @Accept json
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to current"
// @Success 200 {array} models.Expense
// @Success 201 {object} models.Expense
// @Failure 400 {string} string "Bad request"
// @Failure 422 {string} string "Missing exchange rate"
// @Router /expenses [get]
func (h *ExpenseHandler) HandleExpenses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		month := r.URL.Query().Get("month")
		if month == "" {
			month = models.MonthKey(time.Now().UTC())
		}
		expenses, err := h.expenseService.ListForMonth(r.Context(), userID(r), month)
		if err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(expenses)

	case http.MethodPost:
		var expense models.Expense
		if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		expense.UserID = userID(r)
		if err := h.expenseService.Create(r.Context(), &expense); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(expense)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleExpense handles GET, PUT and DELETE /api/expenses/{id}
func (h *ExpenseHandler) HandleExpense(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Expense ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		expense, err := h.expenseService.Get(r.Context(), userID(r), id)
		if err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(expense)

	case http.MethodPut:
		var expense models.Expense
		if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		expense.ID = id
		expense.UserID = userID(r)
		if err := h.expenseService.Update(r.Context(), &expense); err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(expense)

	case http.MethodDelete:
		if err := h.expenseService.Delete(r.Context(), userID(r), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
