package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"takatrack/internal/models"
	"takatrack/internal/services"
)

type RecurringHandler struct {
	recurringService services.RecurringService
}

func NewRecurringHandler(recurringService services.RecurringService) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// HandleRecurring handles GET and POST /api/recurring
// @Summary List or create recurring obligations
// @Tags recurring
// @Accept json
// @Produce json
// @Success 200 {array} models.RecurringExpense
// @Success 201 {object} models.RecurringExpense
// @Failure 400 {string} string "Bad request"
// @Router /recurring [get]
func (h *RecurringHandler) HandleRecurring(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		recs, err := h.recurringService.List(r.Context(), userID(r))
		if err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(recs)

	case http.MethodPost:
		var rec models.RecurringExpense
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		rec.UserID = userID(r)
		if err := h.recurringService.Create(r.Context(), &rec); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rec)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleRecurringByID handles PUT /api/recurring/{id}
func (h *RecurringHandler) HandleRecurringByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Recurring expense ID is required", http.StatusBadRequest)
		return
	}

	var rec models.RecurringExpense
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	rec.ID = id
	rec.UserID = userID(r)
	if err := h.recurringService.Update(r.Context(), &rec); err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(rec)
}

// HandleProcess handles POST /api/recurring/process
// @Summary Materialize due recurring charges
// @Description Runs the scheduled materializer for the current month. Each
// active obligation produces at most one realized expense per month; repeat
// calls are no-ops.
// @Tags recurring
// @Produce json
// @Success 200 {object} map[string]int
// @Router /recurring/process [post]
func (h *RecurringHandler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	processed, err := h.recurringService.ProcessDue(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]int{"processed": processed})
}
