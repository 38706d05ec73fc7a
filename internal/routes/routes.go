package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/beanflow-api/internal/audit"
	"github.com/BruksfildServices01/beanflow-api/internal/config"
	"github.com/BruksfildServices01/beanflow-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/beanflow-api/internal/infra/repository"
	"github.com/BruksfildServices01/beanflow-api/internal/middleware"
	"github.com/BruksfildServices01/beanflow-api/internal/superset"
	ucInvoice "github.com/BruksfildServices01/beanflow-api/internal/usecase/invoice"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	// Collections answer on both "/x" and "/x/" without redirecting.
	r.RedirectTrailingSlash = false

	metrics := middleware.NewMetrics()

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(metrics.Middleware())
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	quoteRepo := infraRepo.NewQuoteGormRepository(db)
	invoiceRepo := infraRepo.NewInvoiceGormRepository(db)
	taskRepo := infraRepo.NewTaskGormRepository(db)

	supersetClient := superset.NewClient(superset.Config{
		BaseURL:  cfg.SupersetURL,
		Username: cfg.SupersetUser,
		Password: cfg.SupersetPass,
		Guest: superset.GuestUser{
			Username:  cfg.SupersetGuestUsername,
			FirstName: cfg.SupersetGuestFirstName,
			LastName:  cfg.SupersetGuestLastName,
		},
		Timeout: cfg.SupersetTimeout,
	})

	// One "today" per request, in the configured zone.
	today := ucInvoice.ZoneClock(cfg.Timezone)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(clientRepo, auditDispatcher)
	quoteHandler := handlers.NewQuoteHandler(quoteRepo, auditDispatcher)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceRepo, today, auditDispatcher)
	taskHandler := handlers.NewTaskHandler(taskRepo, auditDispatcher)
	supersetHandler := handlers.NewSupersetHandler(supersetClient, log)

	// ======================================================
	// 🩺 PUBLIC
	// ======================================================
	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// 🔐 API
	// ======================================================
	api := r.Group("")
	api.Use(middleware.AuthMiddleware(cfg))

	clientes := api.Group("/clientes")
	{
		clientes.GET("", clientHandler.List)
		clientes.GET("/", clientHandler.List)
		clientes.GET("/:id", clientHandler.Get)
		clientes.POST("", clientHandler.Create)
		clientes.POST("/", clientHandler.Create)
		clientes.PUT("/:id", clientHandler.Update)
		clientes.DELETE("/:id", clientHandler.Delete)
	}

	cotacoes := api.Group("/cotacoes")
	{
		cotacoes.GET("", quoteHandler.List)
		cotacoes.GET("/", quoteHandler.List)
		cotacoes.GET("/:id", quoteHandler.Get)
		cotacoes.POST("", quoteHandler.Create)
		cotacoes.POST("/", quoteHandler.Create)
		cotacoes.PUT("/:id", quoteHandler.Update)
		cotacoes.DELETE("/:id", quoteHandler.Delete)
	}

	boletos := api.Group("/boletos")
	{
		boletos.GET("", invoiceHandler.List)
		boletos.GET("/", invoiceHandler.List)
		boletos.GET("/:id", invoiceHandler.Get)
		boletos.POST("", invoiceHandler.Create)
		boletos.POST("/", invoiceHandler.Create)
		boletos.PUT("/:id", invoiceHandler.Update)
		boletos.DELETE("/:id", invoiceHandler.Delete)
	}

	// Tasks cannot be edited.
	tarefas := api.Group("/tarefas")
	{
		tarefas.GET("", taskHandler.List)
		tarefas.GET("/", taskHandler.List)
		tarefas.GET("/:id", taskHandler.Get)
		tarefas.POST("", taskHandler.Create)
		tarefas.POST("/", taskHandler.Create)
		tarefas.DELETE("/:id", taskHandler.Delete)
	}

	api.GET("/api/superset-token/:dashboardId", supersetHandler.GuestToken)
}
