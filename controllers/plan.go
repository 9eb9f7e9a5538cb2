package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanController struct {
	DB *gorm.DB
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{DB: db}
}

type SelectPlanInput struct {
	TransactionID   string `json:"transactionId" binding:"required"`
	SelectedAccount string `json:"selectedAccount"`
	Method          string `json:"method"`
}

// GetPlans lists subscription plans, cheapest first
func (pc *PlanController) GetPlans(c *gin.Context) {
	var plans []models.Plan
	if err := pc.DB.Order("price asc").Find(&plans).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve plans")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Plans retrieved successfully",
		"data":    plans,
	})
}

// GetPlan fetches a single plan by token
func (pc *PlanController) GetPlan(c *gin.Context) {
	id := c.Param("id")

	var plan models.Plan
	if err := pc.DB.Where("plan_id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Plan retrieved successfully",
		"data":    plan,
	})
}

// SelectPlan opens a pending payment for a plan. Selecting the already
// selected plan again is a no-op on brand state; the caller just waits for
// confirmation. Activation itself happens on the payment side.
func (pc *PlanController) SelectPlan(c *gin.Context) {
	id := c.Param("id")
	brandID, _ := c.Get("brandId")

	var input SelectPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var plan models.Plan
	if err := pc.DB.Where("plan_id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var brand models.Brand
	if err := pc.DB.Where("brand_id = ?", fmt.Sprint(brandID)).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Brand not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Transaction ids are single-use
	var existingTx models.PaymentRecord
	if err := pc.DB.Where("transaction_id = ?", input.TransactionID).First(&existingTx).Error; err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "This transaction ID has already been used")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	record := models.PaymentRecord{
		BrandID:       brand.BrandID,
		TransactionID: input.TransactionID,
		Account:       input.SelectedAccount,
		Method:        input.Method,
		Amount:        plan.Price,
		Status:        models.PaymentPending,
	}
	if err := pc.DB.Create(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}

	if brand.SelectedPlanID == plan.PlanID {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Please wait for the authority confirmation",
		})
		return
	}

	if err := pc.DB.Model(&brand).Updates(map[string]interface{}{
		"selected_plan_id":   plan.PlanID,
		"selected_plan_name": plan.PlanName,
	}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update the brand with the selected plan")
		return
	}

	var updated models.Brand
	pc.DB.Where("brand_id = ?", brand.BrandID).First(&updated)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Plan selected successfully",
		"data":    updated,
	})
}
