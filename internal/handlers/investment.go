package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"takatrack/internal/models"
	"takatrack/internal/money"
	"takatrack/internal/services"
)

type InvestmentHandler struct {
	investmentService services.InvestmentService
}

func NewInvestmentHandler(investmentService services.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

type sellRequest struct {
	Proceeds money.Money `json:"proceeds"`
	Currency string      `json:"currency"`
	SaleDate string      `json:"sale_date"`
}

type valuationRequest struct {
	CurrentValue money.Money `json:"current_value"`
}

// HandleInvestments handles GET and POST /api/investments
// @Summary List or create investment positions
// @Tags investments
// @Accept json
// @Produce json
// @Success 200 {array} models.Investment
// @Success 201 {object} models.Investment
// @Failure 400 {string} string "Bad request"
// @Router /investments [get]
func (h *InvestmentHandler) HandleInvestments(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		invs, err := h.investmentService.List(r.Context(), userID(r))
		if err != nil {
			writeError(w, err)
			return
		}
		json.NewEncoder(w).Encode(invs)

	case http.MethodPost:
		var inv models.Investment
		if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		inv.UserID = userID(r)
		if err := h.investmentService.Create(r.Context(), &inv); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(inv)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleInvestmentByID handles GET /api/investments/{id}
func (h *InvestmentHandler) HandleInvestmentByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Investment ID is required", http.StatusBadRequest)
		return
	}
	inv, err := h.investmentService.Get(r.Context(), userID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(inv)
}

// HandleValuation handles PUT /api/investments/{id}/valuation
// @Summary Record a manual valuation for a position
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {string} string "OK"
// @Failure 404 {string} string "Investment not found"
// @Router /investments/{id}/valuation [put]
func (h *InvestmentHandler) HandleValuation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(r)["id"]
	var req valuationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.investmentService.UpdateValuation(r.Context(), userID(r), id, req.CurrentValue); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleSell handles POST /api/investments/{id}/sell
// @Summary Sell a buy position
// @Description Creates the linked sell record with the realized gain fixed at
// sale time and flips the position to sold. Selling an already sold position
// returns 409; a missing exchange rate for foreign proceeds returns 422.
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Success 201 {object} models.Investment
// @Failure 409 {string} string "Position already sold"
// @Failure 422 {string} string "Missing exchange rate"
// @Router /investments/{id}/sell [post]
func (h *InvestmentHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(r)["id"]
	var req sellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Currency == "" {
		req.Currency = money.BaseCurrency
	}
	saleDate := time.Now().UTC()
	if req.SaleDate != "" {
		parsed, err := time.Parse("2006-01-02", req.SaleDate)
		if err != nil {
			http.Error(w, "sale_date must be in YYYY-MM-DD format", http.StatusBadRequest)
			return
		}
		saleDate = parsed
	}

	sell, err := h.investmentService.Sell(r.Context(), userID(r), id, req.Proceeds, req.Currency, saleDate)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sell)
}

// HandleReturns handles POST /api/investments/returns
func (h *InvestmentHandler) HandleReturns(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var ret models.InvestmentReturn
	if err := json.NewDecoder(r.Body).Decode(&ret); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	ret.UserID = userID(r)
	if err := h.investmentService.RecordReturn(r.Context(), &ret); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ret)
}

// HandlePortfolio handles GET /api/investments/portfolio
// @Summary Portfolio summary
// @Description Invested, current value, realized and unrealized gain, and
// cumulative returns, portfolio-wide and per investment type.
// @Tags investments
// @Produce json
// @Success 200 {object} models.PortfolioSummary
// @Router /investments/portfolio [get]
func (h *InvestmentHandler) HandlePortfolio(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := h.investmentService.Portfolio(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	json.NewEncoder(w).Encode(summary)
}
