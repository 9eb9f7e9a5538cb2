// controllers/service.go
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

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

type CreateServiceInput struct {
	ServiceName string  `json:"service_name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
}

// CreateService adds a catalog entry; (name, category) pairs are unique
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceName, err := utils.ValidateLength(input.ServiceName, "Service name", 1, 500)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.Service
	if err := sc.DB.Where("service_name = ? AND category = ?", serviceName, input.Category).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Service already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	service := models.Service{
		ServiceID:   utils.GenerateSecureToken(16),
		ServiceName: serviceName,
		Price:       input.Price,
		Category:    input.Category,
	}

	if err := sc.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Something went wrong. Try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service created successfully",
	})
}

// GetServices lists the catalog with search, category filter, price sort and
// pagination
func (sc *ServiceController) GetServices(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")
	sortPrice := c.Query("sortPrice")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	query := sc.DB.Model(&models.Service{})
	if search != "" {
		query = query.Where("LOWER(service_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(category))
	}

	var count int64
	query.Count(&count)

	switch sortPrice {
	case "high":
		query = query.Order("price desc")
	case "low":
		query = query.Order("price asc")
	default:
		query = query.Order("service_name asc")
	}

	if limit > 0 {
		query = query.Limit(limit).Offset((page - 1) * limit)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Data retrieved successfully",
		"data_found": count,
		"pagination": utils.NewPagination(count, page, limit),
		"data":       services,
	})
}

// DeleteService removes a catalog entry. Order logs keep their snapshots.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	serviceID := c.Param("serviceId")

	result := sc.DB.Where("service_id = ?", serviceID).Delete(&models.Service{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Deleted successfully",
	})
}
