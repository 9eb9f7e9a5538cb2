// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

// CreateSoldInvoiceInput defines the finalize request. The owning visit is an
// explicit required field; it is never inferred from the items list.
type CreateSoldInvoiceInput struct {
	TempCustomerID string               `json:"temp_customer_id" binding:"required"`
	CustomerName   string               `json:"customer_name" binding:"required"`
	CustomerMobile string               `json:"customer_mobile"`
	ServedBy       string               `json:"served_by" binding:"required"`
	TotalBill      float64              `json:"total_bill" binding:"required"`
	TotalDiscount  float64              `json:"total_discount" binding:"min=0"`
	Items          []models.InvoiceItem `json:"items" binding:"required,min=1"`
}

// CreateSoldInvoice finalizes a visit: the invoice row is written and the
// visit plus its order logs are deleted, all inside one transaction. A
// cascade step touching zero rows rolls everything back, so an invoice only
// exists when the staging records are gone.
func (ic *InvoiceController) CreateSoldInvoice(c *gin.Context) {
	var input CreateSoldInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CustomerMobile != "" && !utils.ValidateMobile(input.CustomerMobile) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid mobile number format")
		return
	}

	invoice := models.SoldInvoice{
		InvoiceID:      utils.GenerateSecureToken(16),
		CustomerName:   input.CustomerName,
		CustomerMobile: input.CustomerMobile,
		ServedBy:       input.ServedBy,
		Items:          input.Items,
		TotalBill:      input.TotalBill,
		TotalDiscount:  input.TotalDiscount,
	}

	tx := ic.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Invoice creation failed")
		return
	}

	removeLogs := tx.Where("temp_customer_id = ?", input.TempCustomerID).Delete(&models.TempOrderLog{})
	if removeLogs.Error != nil || removeLogs.RowsAffected == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete temporary order logs")
		return
	}

	removeCustomer := tx.Where("temp_customer_id = ?", input.TempCustomerID).Delete(&models.TempCustomer{})
	if removeCustomer.Error != nil || removeCustomer.RowsAffected == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete temporary customer")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Invoice created successfully and related data deleted",
		"data":    invoice.InvoiceID,
	})
}

// GetInvoice fetches an invoice by token
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	id := c.Param("id")

	var invoice models.SoldInvoice
	if err := ic.DB.Where("invoice_id = ?", id).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Invoice retrieved successfully",
		"data":    invoice,
	})
}

// GetInvoicesByDate lists invoices filtered by ?date, ?month or a
// ?startDate/?endDate range
func (ic *InvoiceController) GetInvoicesByDate(c *gin.Context) {
	window, err := utils.ResolveDateWindow(
		c.Query("date"), c.Query("month"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := ic.DB.Model(&models.SoldInvoice{})
	if window.Filtered {
		query = query.Where("created_at >= ? AND created_at <= ?", window.Start, window.End)
	}

	var invoices []models.SoldInvoice
	if err := query.Order("created_at desc").Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Invoices retrieved successfully",
		"data":    invoices,
	})
}
