package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetCustomers lists the permanent directory with purchase history joined
// on the customer's mobile number
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	query := cc.DB.Model(&models.Customer{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var count int64
	query.Count(&count)

	query = query.Preload("Purchased").Order("name asc")
	if limit > 0 {
		query = query.Limit(limit).Offset((page - 1) * limit)
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Data retrieved successfully",
		"data_found": count,
		"pagination": utils.NewPagination(count, page, limit),
		"data":       customers,
	})
}

// GetCustomer fetches one directory entry with purchases, newest first
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customerID := c.Param("customerId")

	var customer models.Customer
	if err := cc.DB.Preload("Purchased", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at desc")
	}).Where("customer_id = ?", customerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer retrieved successfully",
		"data":    customer,
	})
}
