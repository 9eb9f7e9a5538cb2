package controllers

import (
	"net/http"
	"time"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetOverview aggregates today's activity plus directory totals for the
// landing screen
func (dc *DashboardController) GetOverview(c *gin.Context) {
	now := time.Now()
	dayStart := utils.BeginningOfDay(now)
	dayEnd := utils.EndOfDay(now)

	var todaysRevenue float64
	if err := dc.DB.Model(&models.SoldInvoice{}).
		Where("created_at BETWEEN ? AND ?", dayStart, dayEnd).
		Select("COALESCE(SUM(total_bill), 0)").Scan(&todaysRevenue).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute revenue")
		return
	}

	var todaysExpenses float64
	if err := dc.DB.Model(&models.Expense{}).
		Where("created_at BETWEEN ? AND ?", dayStart, dayEnd).
		Select("COALESCE(SUM(total_bill), 0)").Scan(&todaysExpenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute expenses")
		return
	}

	var todaysInvoices int64
	dc.DB.Model(&models.SoldInvoice{}).
		Where("created_at BETWEEN ? AND ?", dayStart, dayEnd).Count(&todaysInvoices)

	var openSessions int64
	dc.DB.Model(&models.TempCustomer{}).Count(&openSessions)

	var totalCustomers int64
	dc.DB.Model(&models.Customer{}).Count(&totalCustomers)

	var totalEmployees int64
	dc.DB.Model(&models.Employee{}).Count(&totalEmployees)

	var stockItems int64
	dc.DB.Model(&models.StockItem{}).Count(&stockItems)

	var outOfStock int64
	dc.DB.Model(&models.StockItem{}).Where("stock = 0").Count(&outOfStock)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data retrieved successfully",
		"data": gin.H{
			"todaysRevenue":  todaysRevenue,
			"todaysExpenses": todaysExpenses,
			"todaysInvoices": todaysInvoices,
			"openSessions":   openSessions,
			"totalCustomers": totalCustomers,
			"totalEmployees": totalEmployees,
			"stockItems":     stockItems,
			"outOfStock":     outOfStock,
		},
	})
}
