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

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

type AddExpenseInput struct {
	Title     string  `json:"title" binding:"required"`
	TotalBill float64 `json:"total_bill" binding:"required"`
}

// AddExpense records a direct cash outflow. Stock restocking and advance
// salaries book their expenses through their own controllers.
func (ec *ExpenseController) AddExpense(c *gin.Context) {
	var input AddExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Title is required")
		return
	}

	expense := models.Expense{
		ExpenseID: utils.GenerateSecureToken(16),
		Title:     title,
		TotalBill: input.TotalBill,
	}

	if err := ec.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Expense creation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense created successfully",
	})
}

// GetExpensesByDate lists expenses with the same date filters as invoices
func (ec *ExpenseController) GetExpensesByDate(c *gin.Context) {
	window, err := utils.ResolveDateWindow(
		c.Query("date"), c.Query("month"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := ec.DB.Model(&models.Expense{})
	if window.Filtered {
		query = query.Where("created_at >= ? AND created_at <= ?", window.Start, window.End)
	}

	var expenses []models.Expense
	if err := query.Order("created_at desc").Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expenses retrieved successfully",
		"data":    expenses,
	})
}

// RemoveExpense deletes an expense by token
func (ec *ExpenseController) RemoveExpense(c *gin.Context) {
	expenseID := c.Param("expenseId")

	var expense models.Expense
	if err := ec.DB.Where("expense_id = ?", expenseID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	result := ec.DB.Where("expense_id = ?", expenseID).Delete(&models.Expense{})
	if result.Error != nil || result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusInternalServerError, "Something went wrong, try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Expense removed successfully",
	})
}
