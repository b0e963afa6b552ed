package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-sari-pos/internal/handler"
	"go-sari-pos/internal/middleware"
	"go-sari-pos/internal/model"
	"go-sari-pos/internal/repository"
	"go-sari-pos/internal/service"
	"go-sari-pos/internal/ws"
	"go-sari-pos/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Product{},
		&model.Sale{},
		&model.ServiceTransaction{},
		&model.Credit{},
		&model.Expense{},
		&model.Liability{},
		&model.InventorySnapshot{},
		&model.ActivityLog{},
		&model.User{},
	)

	// 3. Seed the admin account
	seedAdmin(db)

	// 4. WebSocket hub for the live activity feed
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	txRepo := repository.NewServiceTransactionRepo(db)
	creditRepo := repository.NewCreditRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	liabilityRepo := repository.NewLiabilityRepo(db)
	snapshotRepo := repository.NewSnapshotRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	userRepo := repository.NewUserRepo(db)

	activityService := service.NewActivityService(activityRepo, wsHub)
	invService := service.NewInventoryService(productRepo, snapshotRepo, activityService)
	posService := service.NewPOSService(productRepo, saleRepo, db, activityService)
	agentService := service.NewAgentService(txRepo, db, activityService)
	creditService := service.NewCreditService(creditRepo, productRepo, saleRepo, txRepo, db, activityService)
	expenseService := service.NewExpenseService(expenseRepo, activityService)
	liabilityService := service.NewLiabilityService(liabilityRepo, activityService)
	reportService := service.NewReportService(saleRepo, txRepo, expenseRepo)
	authService := service.NewAuthService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(invService)
	saleHandler := handler.NewSaleHandler(posService)
	agentHandler := handler.NewAgentHandler(agentService)
	creditHandler := handler.NewCreditHandler(creditService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	liabilityHandler := handler.NewLiabilityHandler(liabilityService)
	reportHandler := handler.NewReportHandler(reportService)
	snapshotHandler := handler.NewSnapshotHandler(invService)
	activityHandler := handler.NewActivityHandler(activityService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Sari-Sari POS v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Products
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	// Retail sales
	protected.Post("/sales/checkout", saleHandler.Checkout)
	protected.Get("/sales", saleHandler.GetSales)

	// Sub-agent transactions (load / e-wallet / bills)
	protected.Post("/agent/transactions", agentHandler.RecordTransaction)
	protected.Get("/agent/transactions", agentHandler.GetTransactions)

	// Utang ledger
	protected.Post("/credits", creditHandler.GrantCredit)
	protected.Get("/credits", creditHandler.GetCredits)
	protected.Get("/credits/total-unpaid", creditHandler.GetTotalUnpaid)
	protected.Post("/credits/:id/pay", creditHandler.MarkAsPaid)
	protected.Post("/credits/:id/unpay", creditHandler.Unmark)
	protected.Get("/customers", creditHandler.GetCustomers)

	// Gastos
	protected.Post("/expenses", expenseHandler.AddExpense)
	protected.Get("/expenses", expenseHandler.GetExpenses)
	protected.Delete("/expenses/:id", expenseHandler.DeleteExpense)

	// Liabilities (utang ng tindahan)
	protected.Post("/liabilities", liabilityHandler.AddLiability)
	protected.Get("/liabilities", liabilityHandler.GetLiabilities)
	protected.Get("/liabilities/total-unpaid", liabilityHandler.GetTotalUnpaid)
	protected.Post("/liabilities/:id/status", liabilityHandler.UpdateStatus)

	// Reports + exports
	protected.Get("/reports/profit", reportHandler.GetProfitStatement)
	protected.Get("/reports/profit/export", reportHandler.ExportProfitStatement)
	protected.Get("/reports/sales", reportHandler.GetSalesSummary)
	protected.Get("/reports/services/:service", reportHandler.GetServiceSummary)
	protected.Get("/reports/sales/export", saleHandler.ExportSales)
	protected.Get("/reports/transactions/export", agentHandler.ExportTransactions)
	protected.Get("/reports/expenses/export", expenseHandler.ExportExpenses)

	// Inventory snapshots
	protected.Post("/snapshots", snapshotHandler.CreateSnapshot)
	protected.Get("/snapshots", snapshotHandler.GetSnapshots)
	protected.Get("/snapshots/:id", snapshotHandler.GetSnapshot)

	// Activity log
	protected.Get("/activity", activityHandler.GetRecent)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin account if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@tindahan.local"
	}

	_, err := userRepo.FindByEmail(email)
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Warning: Failed to check for admin user: %v", err)
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Store Administrator",
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", email)
	}
}
