package controllers

import (
	"errors"
	"net/http"
	"strings"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TempCustomerController struct {
	DB *gorm.DB
}

func NewTempCustomerController(db *gorm.DB) *TempCustomerController {
	return &TempCustomerController{DB: db}
}

// CreateTempCustomerInput defines the expected JSON structure for opening a visit
type CreateTempCustomerInput struct {
	Name     string `json:"name" binding:"required"`
	Mobile   string `json:"mobile"`
	ServedBy string `json:"served_by" binding:"required"`
}

// CreateTempCustomer opens a walk-in visit. When the mobile number is new,
// the permanent customer directory gains a record as a side effect.
func (tc *TempCustomerController) CreateTempCustomer(c *gin.Context) {
	var input CreateTempCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name, err := utils.ValidateLength(input.Name, "Name", 1, 50)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	servedBy, err := utils.ValidateLength(input.ServedBy, "Served by", 1, 50)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	// served_by must resolve to a real employee by name
	var employee models.Employee
	if err := tc.DB.Where("name = ?", servedBy).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Mobile != "" {
		if !utils.ValidateMobile(input.Mobile) {
			utils.RespondWithError(c, http.StatusBadRequest, "Mobile number must be a valid 11 digit number")
			return
		}

		// A mobile may only belong to one open visit at a time
		var existing models.TempCustomer
		if err := tc.DB.Where("mobile = ?", input.Mobile).First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Mobile number already exists in temporary customers")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	token := utils.GenerateSecureToken(8)
	tempCustomer := models.TempCustomer{
		TempCustomerID: token,
		Name:           name,
		Mobile:         input.Mobile,
		ServedBy:       employee.Name,
		Paid:           false,
	}

	customerExists := false
	if input.Mobile != "" {
		var count int64
		tc.DB.Model(&models.Customer{}).Where("mobile = ?", input.Mobile).Count(&count)
		customerExists = count > 0
	}

	tx := tc.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&tempCustomer).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create temporary customer")
		return
	}

	if input.Mobile != "" && !customerExists {
		customer := models.Customer{
			CustomerID: token,
			Name:       name,
			Mobile:     input.Mobile,
		}
		if err := tx.Create(&customer).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add customer to directory")
			return
		}
	}

	tx.Commit()

	message := "Temporary customer created and added to customer directory successfully"
	if customerExists || input.Mobile == "" {
		message = "Temporary customer created, customer already exists in the directory"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// GetTempCustomers lists open visits, oldest first
func (tc *TempCustomerController) GetTempCustomers(c *gin.Context) {
	search := c.Query("search")

	query := tc.DB.Model(&models.TempCustomer{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var tempCustomers []models.TempCustomer
	if err := query.Order("created_at asc").Find(&tempCustomers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve temporary customers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data retrieved successfully",
		"data":    tempCustomers,
	})
}

// GetTempCustomer fetches a single open visit by token
func (tc *TempCustomerController) GetTempCustomer(c *gin.Context) {
	id := c.Param("id")

	var tempCustomer models.TempCustomer
	if err := tc.DB.Where("temp_customer_id = ?", id).First(&tempCustomer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Temporary customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data retrieved successfully",
		"data":    tempCustomer,
	})
}

// MarkAsPaid toggles the paid flag. Nothing downstream enforces
// paid-before-invoice; the flag is display state for the counter.
func (tc *TempCustomerController) MarkAsPaid(c *gin.Context) {
	tempID := c.Param("tempId")

	var tempCustomer models.TempCustomer
	if err := tc.DB.Where("temp_customer_id = ?", tempID).First(&tempCustomer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Temporary customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	newPaid := !tempCustomer.Paid
	if err := tc.DB.Model(&tempCustomer).Update("paid", newPaid).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update paid status")
		return
	}

	message := "Successfully marked as unpaid"
	if newPaid {
		message = "Successfully marked as paid"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// DeleteTempCustomer cancels a visit: order logs first, then the visit itself
func (tc *TempCustomerController) DeleteTempCustomer(c *gin.Context) {
	tempID := c.Param("tempId")

	var tempCustomer models.TempCustomer
	if err := tc.DB.Where("temp_customer_id = ?", tempID).First(&tempCustomer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Temporary customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var logCount int64
	tc.DB.Model(&models.TempOrderLog{}).Where("temp_customer_id = ?", tempID).Count(&logCount)

	tx := tc.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if logCount > 0 {
		result := tx.Where("temp_customer_id = ?", tempID).Delete(&models.TempOrderLog{})
		if result.Error != nil || result.RowsAffected == 0 {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete associated order logs")
			return
		}
	}

	result := tx.Where("temp_customer_id = ?", tempID).Delete(&models.TempCustomer{})
	if result.Error != nil || result.RowsAffected == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete temporary customer")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Temporary customer and associated logs (if any) deleted successfully",
	})
}
