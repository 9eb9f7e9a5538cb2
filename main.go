package main

import (
	"fmt"
	"log"
	"os"

	"elegance-backend/config"
	"elegance-backend/models"
	"elegance-backend/routes"
	"elegance-backend/services"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Plan{},
		&models.PaymentRecord{},
		&models.Category{},
		&models.Service{},
		&models.Employee{},
		&models.AdvanceSalary{},
		&models.Customer{},
		&models.TempCustomer{},
		&models.TempOrderLog{},
		&models.SoldInvoice{},
		&models.StockItem{},
		&models.Expense{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seedBrand(db)

	reminder := services.NewSubscriptionReminderService(db)
	reminder.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db)
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedBrand creates the single brand row on first boot
func seedBrand(db *gorm.DB) {
	var count int64
	db.Model(&models.Brand{}).Count(&count)
	if count > 0 {
		return
	}

	name := os.Getenv("BRAND_NAME")
	if name == "" {
		name = "Elegance Makeover"
	}

	brand := models.Brand{
		BrandID: utils.GenerateSecureToken(8),
		Name:    name,
		Mobile:  os.Getenv("BRAND_MOBILE"),
		Address: os.Getenv("BRAND_ADDRESS"),
	}
	if err := db.Create(&brand).Error; err != nil {
		log.Printf("Failed to seed brand: %v", err)
		return
	}
	log.Printf("Seeded brand %s (%s)", brand.Name, brand.BrandID)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
