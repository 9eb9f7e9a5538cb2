package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

type IncreaseSubscriptionInput struct {
	Days int `json:"days"`
}

type RejectPaymentInput struct {
	TransactionID  string `json:"transactionId" binding:"required"`
	DeclinedReason string `json:"declinedReason" binding:"required"`
}

// IncreaseSubscription confirms a pending payment: the brand's end time
// moves to max(current end, now) + days, normalized to the end of that day,
// and the payment flips to success in the same transaction.
func (pc *PaymentController) IncreaseSubscription(c *gin.Context) {
	transactionID := c.Param("transactionId")

	var input IncreaseSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Days <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "'days' is required and must be a positive number")
		return
	}

	var payment models.PaymentRecord
	if err := pc.DB.Where("transaction_id = ?", transactionID).First(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	var brand models.Brand
	if err := pc.DB.Where("brand_id = ?", payment.BrandID).First(&brand).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Brand not found")
		return
	}

	// Extending before expiry keeps the remaining days
	base := time.Now()
	if brand.SubscriptionEndTime != nil && brand.SubscriptionEndTime.After(base) {
		base = *brand.SubscriptionEndTime
	}
	newEndTime := utils.EndOfDay(base.AddDate(0, 0, input.Days))

	tx := pc.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&brand).Update("subscription_end_time", newEndTime).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to update subscription end date")
		return
	}

	if err := tx.Model(&payment).Update("status", models.PaymentSuccess).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment status")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subscription increased successfully",
	})
}

// RejectPayment marks a payment rejected with a normalized reason; the
// subscription end time is untouched
func (pc *PaymentController) RejectPayment(c *gin.Context) {
	var input RejectPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "'declinedReason' is required and must be a string")
		return
	}

	var payment models.PaymentRecord
	if err := pc.DB.Where("transaction_id = ?", input.TransactionID).First(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	reason := strings.ToLower(strings.TrimSpace(input.DeclinedReason))
	if err := pc.DB.Model(&payment).Updates(map[string]interface{}{
		"status":          models.PaymentRejected,
		"declined_reason": reason,
	}).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to update payment status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment rejected successfully",
	})
}

// GetPayments lists the brand's payment history with the days left on the
// subscription
func (pc *PaymentController) GetPayments(c *gin.Context) {
	brandID, _ := c.Get("brandId")

	var payments []models.PaymentRecord
	if err := pc.DB.Where("brand_id = ?", fmt.Sprint(brandID)).
		Order("created_at desc").Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	var brand models.Brand
	var endTime *time.Time
	remainingDays := 0
	if err := pc.DB.Where("brand_id = ?", fmt.Sprint(brandID)).First(&brand).Error; err == nil {
		endTime = brand.SubscriptionEndTime
		if endTime != nil {
			if days := int(math.Ceil(time.Until(*endTime).Hours() / 24)); days > 0 {
				remainingDays = days
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data retrieved successfully",
		"data":    payments,
		"subscriptionInfo": gin.H{
			"remainingDays": remainingDays,
			"endDate":       endTime,
		},
	})
}
