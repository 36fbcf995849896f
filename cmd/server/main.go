package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"takatrack/internal/db"
	"takatrack/internal/handlers"
	"takatrack/internal/logger"
	"takatrack/internal/repositories"
	"takatrack/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	// Database connection
	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		zlog.Fatal("Database health check failed", zap.Error(err))
	}
	if err := database.Migrate(); err != nil {
		zlog.Fatal("Database migration failed", zap.Error(err))
	}
	zlog.Info("Database connection established",
		zap.String("host", config.Host), zap.String("name", config.Name))

	// Repositories
	incomeRepo := repositories.NewIncomeRepository(database)
	expenseRepo := repositories.NewExpenseRepository(database)
	budgetRepo := repositories.NewBudgetRepository(database)
	recurringRepo := repositories.NewRecurringRepository(database)
	rateRepo := repositories.NewExchangeRateRepository(database)
	investmentRepo := repositories.NewInvestmentRepository(database)

	// Services
	fxService := services.NewFXService(rateRepo)
	incomeService := services.NewIncomeService(incomeRepo)
	expenseService := services.NewExpenseService(expenseRepo, fxService)
	budgetService := services.NewBudgetService(budgetRepo, expenseRepo)
	recurringService := services.NewRecurringService(recurringRepo, fxService, zlog)
	summaryService := services.NewSummaryService(
		incomeRepo, expenseRepo, recurringRepo, fxService,
		services.DefaultEstimatePolicy(), zlog)
	investmentService := services.NewInvestmentService(investmentRepo, fxService)

	// Handlers
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	recurringHandler := handlers.NewRecurringHandler(recurringService)
	fxHandler := handlers.NewFXHandler(fxService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)

	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "takatrack",
		})
	})

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/incomes", incomeHandler.HandleIncomes)
	api.HandleFunc("/incomes/{id}", incomeHandler.HandleIncome)

	api.HandleFunc("/expenses", expenseHandler.HandleExpenses)
	api.HandleFunc("/expenses/{id}", expenseHandler.HandleExpense)

	api.HandleFunc("/budgets", budgetHandler.HandleBudgets)
	api.HandleFunc("/budgets/{id}", budgetHandler.HandleBudget)

	api.HandleFunc("/recurring", recurringHandler.HandleRecurring)
	api.HandleFunc("/recurring/process", recurringHandler.HandleProcess)
	api.HandleFunc("/recurring/{id}", recurringHandler.HandleRecurringByID)

	api.HandleFunc("/rates", fxHandler.HandleRates)

	api.HandleFunc("/reports/summary", summaryHandler.HandleMonthlySummary)

	api.HandleFunc("/investments", investmentHandler.HandleInvestments)
	api.HandleFunc("/investments/portfolio", investmentHandler.HandlePortfolio)
	api.HandleFunc("/investments/returns", investmentHandler.HandleReturns)
	api.HandleFunc("/investments/{id}", investmentHandler.HandleInvestmentByID)
	api.HandleFunc("/investments/{id}/valuation", investmentHandler.HandleValuation)
	api.HandleFunc("/investments/{id}/sell", investmentHandler.HandleSell)

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	zlog.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, corsHandler(router)); err != nil {
		zlog.Fatal("Server exited", zap.Error(err))
	}
}
