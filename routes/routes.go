package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"elegance-backend/config"
	"elegance-backend/controllers"
	"elegance-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires middleware and all API routes
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(config.PerformanceLogger())

	r.Use(secure.New(secure.Config{
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		FrameDeny:          true,
	}))

	allowedOrigins := []string{"http://localhost:5173"}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := controllers.NewAuthController(db)
	brand := controllers.NewBrandController(db)
	category := controllers.NewCategoryController(db)
	service := controllers.NewServiceController(db)
	employee := controllers.NewEmployeeController(db)
	tempCustomer := controllers.NewTempCustomerController(db)
	tempOrderLog := controllers.NewTempOrderLogController(db)
	invoice := controllers.NewInvoiceController(db)
	expense := controllers.NewExpenseController(db)
	customer := controllers.NewCustomerController(db)
	plan := controllers.NewPlanController(db)
	payment := controllers.NewPaymentController(db)
	stock := controllers.NewStockController(db)
	dashboard := controllers.NewDashboardController(db)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Welcome to the backend",
		})
	})

	minute := time.Minute
	api := r.Group("/api/v1")

	// users
	users := api.Group("/users")
	{
		users.POST("/created-user",
			utils.RateLimiter(5, minute), utils.AuthMiddleware(), utils.AdminOnly(), auth.Register)
		users.POST("/auth-user-login", utils.RateLimiter(5, minute), auth.Login)
		users.GET("/auth-manage-token", auth.RefreshToken)
		users.GET("", utils.AuthMiddleware(), utils.AdminOnly(), auth.GetUsers)
		users.GET("/user/:id", utils.AuthMiddleware(), utils.AdminOnly(), auth.GetUser)
		users.PATCH("/password-change-by-authority/:id",
			utils.AuthMiddleware(), utils.AdminOnly(), auth.ChangePasswordByAuthority)
		users.DELETE("/delete-user-by-authority/:id",
			utils.AuthMiddleware(), utils.AdminOnly(), auth.DeleteUserByAuthority)
		users.PATCH("/edit-user-info", utils.AuthMiddleware(), auth.UpdateUser)
	}

	// brand
	brands := api.Group("/brands", utils.AuthMiddleware())
	{
		brands.GET("/brand-info", brand.GetBrand)
		brands.PATCH("/edit-brand-info", utils.AdminOnly(), brand.UpdateBrand)
	}

	// categories
	categories := api.Group("/categories", utils.AuthMiddleware())
	{
		categories.POST("/category-create", utils.RateLimiter(20, minute), category.CreateCategory)
		categories.GET("", category.GetCategories)
		categories.DELETE("/delete/:categoryId", category.DeleteCategory)
	}

	// services
	services := api.Group("/services", utils.AuthMiddleware())
	{
		services.POST("/service-create", utils.RateLimiter(15, minute), service.CreateService)
		services.GET("", service.GetServices)
		services.DELETE("/delete/:serviceId", service.DeleteService)
	}

	// employees
	employees := api.Group("/employees", utils.AuthMiddleware())
	{
		employees.POST("/employee-create", utils.RateLimiter(10, minute), employee.CreateEmployee)
		employees.POST("/employee-advance-salary/:employeeId", employee.AddAdvanceSalary)
		employees.GET("", employee.GetEmployees)
		employees.GET("/employee/:employeeId", employee.GetEmployee)
		employees.DELETE("/delete/:employeeId", employee.RemoveEmployee)
		employees.DELETE("/delete-advance-salary/:employeeId", employee.RemoveAdvanceSalary)
	}

	// temporary customers: gated behind an active subscription
	tempCustomers := api.Group("/temp-customers", utils.AuthMiddleware(), utils.SubscriptionGate(db))
	{
		tempCustomers.POST("/temp-customer-create",
			utils.RateLimiter(30, minute), tempCustomer.CreateTempCustomer)
		tempCustomers.GET("", tempCustomer.GetTempCustomers)
		tempCustomers.GET("/get-single/:id", tempCustomer.GetTempCustomer)
		tempCustomers.DELETE("/delete/:tempId", tempCustomer.DeleteTempCustomer)
		tempCustomers.PATCH("/marked-as-paid/:tempId", tempCustomer.MarkAsPaid)
	}

	// temporary order logs
	tempOrders := api.Group("/temp-orders-log", utils.AuthMiddleware(), utils.SubscriptionGate(db))
	{
		tempOrders.POST("/temp-order-log-create",
			utils.RateLimiter(100, minute), tempOrderLog.CreateTempOrderLog)
		tempOrders.GET("/temp-order/:tempCustomerId", tempOrderLog.GetOrderLogsByTempCustomer)
		tempOrders.PATCH("/temp-order-quantity-change/:tempOrderLogId", tempOrderLog.ChangeQuantity)
		tempOrders.DELETE("/temp-order-delete/:id", tempOrderLog.DeleteOrderLog)
	}

	// sold invoices
	soldInvoices := api.Group("/sold-invoices", utils.AuthMiddleware(), utils.SubscriptionGate(db))
	{
		soldInvoices.POST("/sold-invoice-create",
			utils.RateLimiter(20, minute), invoice.CreateSoldInvoice)
		soldInvoices.GET("/sold-invoice/:id", invoice.GetInvoice)
		soldInvoices.GET("", invoice.GetInvoicesByDate)
	}

	// expenses
	expenses := api.Group("/expenses", utils.AuthMiddleware())
	{
		expenses.POST("/add-expense", utils.RateLimiter(50, minute), expense.AddExpense)
		expenses.GET("", expense.GetExpensesByDate)
		expenses.DELETE("/delete-expense/:expenseId", expense.RemoveExpense)
	}

	// customers
	customers := api.Group("/customers", utils.AuthMiddleware())
	{
		customers.GET("", customer.GetCustomers)
		customers.GET("/customer-info/:customerId", customer.GetCustomer)
	}

	// plans: listing is public, selection needs a logged in user
	plans := api.Group("/plans")
	{
		plans.GET("", plan.GetPlans)
		plans.GET("/plan/:id", plan.GetPlan)
		plans.PATCH("/select-plan/:id", utils.AuthMiddleware(), plan.SelectPlan)
	}

	// payments
	payments := api.Group("/payments", utils.AuthMiddleware())
	{
		payments.GET("", payment.GetPayments)
		payments.PATCH("/increase-subscription/:transactionId", utils.AdminOnly(), payment.IncreaseSubscription)
		payments.PATCH("/reject-payment", utils.AdminOnly(), payment.RejectPayment)
	}

	// stock
	stocks := api.Group("/stocks", utils.AuthMiddleware())
	{
		stocks.POST("/addItem", stock.AddProduct)
		stocks.GET("", stock.GetItems)
		stocks.PATCH("/increase-stock/:id", utils.AdminOnly(), stock.IncreaseStock)
		stocks.PATCH("/decrease-stock/:id", utils.AdminOnly(), stock.DecreaseStock)
	}

	// dashboard
	api.GET("/dashboard/overview", utils.AuthMiddleware(), dashboard.GetOverview)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondWithError(c, http.StatusNotFound, "Route not found")
	})

	return r
}
