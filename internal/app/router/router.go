package router

import (
	"context"
	"time"

	"loanlink/loan_marketplace/configs"
	"loanlink/loan_marketplace/internal/app/handlers"
	"loanlink/loan_marketplace/internal/app/middleware"
	"loanlink/loan_marketplace/internal/pkg/cache"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/db"
	"loanlink/loan_marketplace/internal/pkg/events"
	"loanlink/loan_marketplace/internal/pkg/gcs"
	"loanlink/loan_marketplace/internal/pkg/notification"
	"loanlink/loan_marketplace/internal/pkg/payments"
	"loanlink/loan_marketplace/internal/pkg/pubsub"
	"loanlink/loan_marketplace/internal/pkg/services"
	"loanlink/loan_marketplace/internal/pkg/store"
	"loanlink/loan_marketplace/internal/pkg/store/repository"
	"loanlink/loan_marketplace/internal/pkg/utils/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

// Dependencies carries the externally owned clients the router wires into
// handlers. Any of them may be nil; the affected feature degrades instead of
// taking the whole service down.
type Dependencies struct {
	MDB           *db.MongoDB
	WorkerPool    *worker.WorkerPool
	RedisClient   *redis.Client
	KafkaProducer *events.Producer
	PubSub        *pubsub.PubSubPublisher
	GCSUploader   gcs.GcsInterface
	Capabilities  middleware.CapabilityChecker
}

func SetupRouter(deps Dependencies) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	var productCache *cache.ProductCache
	if deps.RedisClient != nil {
		redisAdapter := repository.NewRedisStoreAdapter(deps.RedisClient)
		productCache = cache.NewProductCache(redisAdapter, time.Duration(configs.PRODUCT_CACHE_TTL_SECONDS)*time.Second)
	}

	checker := deps.Capabilities
	if checker == nil {
		checker = middleware.AllowAllChecker{}
	}

	// Repositories
	loanProductsRepo := store.NewLoanProductsRepository(deps.MDB)
	loanApplicationsRepo := store.NewLoanApplicationsRepository(deps.MDB)
	usersRepo := store.NewUsersRepository(deps.MDB)

	notificationService := notification.NewNotificationService(deps.PubSub)

	// Services
	loanProductService := services.NewLoanProductService(loanProductsRepo, productCache)
	loanApplicationService := services.NewLoanApplicationService(loanApplicationsRepo, deps.KafkaProducer, notificationService, deps.WorkerPool)
	userService := services.NewUserService(usersRepo)
	reportService := services.NewReportService(loanApplicationsRepo, deps.GCSUploader, configs.REPORT_FOR_LAST_X_HOURS)
	sftpService := services.NewSftpService()
	importService := services.NewProductImportService(sftpService, loanProductsRepo, productCache)
	paymentGateway := payments.NewStripeGateway(configs.STRIPE_SECRET_KEY, configs.PAYMENT_CURRENCY)

	// Handlers
	loanProductsHandler := handlers.NewLoanProductsHandler(loanProductService)
	loanApplicationsHandler := handlers.NewLoanApplicationsHandler(loanApplicationService)
	usersHandler := handlers.NewUsersHandler(userService)
	paymentsHandler := handlers.NewPaymentsHandler(paymentGateway)
	reportsHandler := handlers.NewReportsHandler(reportService, importService)
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		return deps.MDB.Healthy(ctx)
	})

	// Loan products
	r.GET("/loans", loanProductsHandler.ListLoanProducts)
	r.GET("/loans/:id", loanProductsHandler.GetLoanProduct)
	r.POST("/loans", middleware.RequireCapability(checker, consts.CapabilityManageProducts), loanProductsHandler.CreateLoanProduct)
	r.PATCH("/loans/:id", middleware.RequireCapability(checker, consts.CapabilityManageProducts), loanProductsHandler.UpdateLoanProduct)
	r.DELETE("/loans/:id", middleware.RequireCapability(checker, consts.CapabilityManageProducts), loanProductsHandler.DeleteLoanProduct)
	r.POST("/loans/import", middleware.RequireCapability(checker, consts.CapabilityManageProducts), reportsHandler.ImportLoanProducts)

	// Loan applications
	r.POST("/apply-loan", loanApplicationsHandler.ApplyLoan)
	r.GET("/loan-applications", loanApplicationsHandler.ListLoanApplications)
	r.GET("/loan-applications/pending", loanApplicationsHandler.ListPendingApplications)
	r.GET("/loan-applications/user/:email", loanApplicationsHandler.ListApplicationsByUser)
	r.GET("/loan-applications/:id", loanApplicationsHandler.GetLoanApplication)
	r.PATCH("/loan-applications/:id/status", middleware.RequireCapability(checker, consts.CapabilityDecide), loanApplicationsHandler.UpdateApplicationStatus)
	r.PATCH("/loan-applications/:id/payment", loanApplicationsHandler.RecordPayment)
	r.DELETE("/loan-applications/:id", loanApplicationsHandler.DeleteLoanApplication)

	// Users
	r.PUT("/users", usersHandler.SignIn)
	r.GET("/users", middleware.RequireCapability(checker, consts.CapabilityManageUsers), usersHandler.ListUsers)
	r.GET("/users/:email", usersHandler.GetUser)
	r.GET("/users/:email/role", usersHandler.GetUserRole)
	r.PATCH("/users/:email/role", middleware.RequireCapability(checker, consts.CapabilityManageUsers), usersHandler.UpdateUserRole)
	r.DELETE("/users/:email", middleware.RequireCapability(checker, consts.CapabilityManageUsers), usersHandler.DeleteUser)

	// Payments
	r.POST("/create-payment-intent", paymentsHandler.CreatePaymentIntent)

	// Reports
	r.GET("/reports/applications", middleware.RequireCapability(checker, consts.CapabilityViewReports), reportsHandler.GenerateApplicationsReport)

	r.GET("/health", healthHandler.Health)

	return r
}
