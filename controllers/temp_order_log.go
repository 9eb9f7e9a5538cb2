package controllers

import (
	"errors"
	"net/http"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TempOrderLogController struct {
	DB *gorm.DB
}

func NewTempOrderLogController(db *gorm.DB) *TempOrderLogController {
	return &TempOrderLogController{DB: db}
}

type CreateTempOrderLogInput struct {
	TempCustomerID string `json:"temp_customer_id" binding:"required"`
	ServiceID      string `json:"service_id" binding:"required"`
}

// ChangeQuantityInput carries exactly one of increase/decrease
type ChangeQuantityInput struct {
	Increase bool `json:"increase"`
	Decrease bool `json:"decrease"`
}

// CreateTempOrderLog attaches a catalog service to an open visit. The service
// name, price and category are copied onto the line so later catalog edits
// cannot rewrite an in-progress order.
func (oc *TempOrderLogController) CreateTempOrderLog(c *gin.Context) {
	var input CreateTempOrderLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var tempCustomer models.TempCustomer
	if err := oc.DB.Where("temp_customer_id = ?", input.TempCustomerID).First(&tempCustomer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Temporary customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var service models.Service
	if err := oc.DB.Where("service_id = ?", input.ServiceID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Re-adding the same service is a conflict, never a quantity merge
	var existing models.TempOrderLog
	if err := oc.DB.Where("temp_customer_id = ? AND service_id = ?",
		input.TempCustomerID, input.ServiceID).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Order already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	orderLog := models.TempOrderLog{
		TempOrderLogID: utils.GenerateSecureToken(16),
		TempCustomerID: tempCustomer.TempCustomerID,
		ServiceID:      service.ServiceID,
		ServiceName:    service.ServiceName,
		Price:          service.Price,
		Category:       service.Category,
		ServedBy:       tempCustomer.ServedBy,
		Quantity:       1,
	}

	if err := oc.DB.Create(&orderLog).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Something went wrong. Try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Temporary order log created successfully",
	})
}

// GetOrderLogsByTempCustomer lists a visit's lines sorted by service name
func (oc *TempOrderLogController) GetOrderLogsByTempCustomer(c *gin.Context) {
	tempCustomerID := c.Param("tempCustomerId")

	var orderLogs []models.TempOrderLog
	if err := oc.DB.Where("temp_customer_id = ?", tempCustomerID).
		Order("service_name asc").Find(&orderLogs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve order logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data retrieved successfully",
		"data":    orderLogs,
	})
}

// ChangeQuantity bumps a line's quantity. Decreasing below 1 fails; removing
// a line entirely goes through DeleteOrderLog instead.
func (oc *TempOrderLogController) ChangeQuantity(c *gin.Context) {
	tempOrderLogID := c.Param("tempOrderLogId")

	var input ChangeQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var orderLog models.TempOrderLog
	if err := oc.DB.Where("temp_order_log_id = ?", tempOrderLogID).First(&orderLog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invalid request")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	newQuantity := orderLog.Quantity
	if input.Increase {
		newQuantity++
	} else if input.Decrease {
		if newQuantity <= 1 {
			utils.RespondWithError(c, http.StatusBadRequest, "Quantity cannot be less than 1")
			return
		}
		newQuantity--
	}

	if err := oc.DB.Model(&orderLog).Update("quantity", newQuantity).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update quantity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Quantity updated successfully",
		"data": gin.H{
			"tempOrderLogId": tempOrderLogID,
			"newQuantity":    newQuantity,
		},
	})
}

// DeleteOrderLog removes a single line from a visit
func (oc *TempOrderLogController) DeleteOrderLog(c *gin.Context) {
	id := c.Param("id")

	var orderLog models.TempOrderLog
	if err := oc.DB.Where("temp_order_log_id = ?", id).First(&orderLog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	result := oc.DB.Where("temp_order_log_id = ?", id).Delete(&models.TempOrderLog{})
	if result.Error != nil || result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete the item. Please try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Deleted successfully",
	})
}
