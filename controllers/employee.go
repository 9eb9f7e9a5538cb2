package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

type CreateEmployeeInput struct {
	Name          string  `json:"name" binding:"required"`
	Designation   string  `json:"designation" binding:"required"`
	Mobile        string  `json:"mobile" binding:"required"`
	MonthlySalary float64 `json:"monthly_salary" binding:"required"`
}

type AddAdvanceSalaryInput struct {
	PayableAmount float64 `json:"payable_amount" binding:"required"`
}

// CreateEmployee registers a staff member
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var input CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name, err := utils.ValidateLength(input.Name, "Name", 1, 50)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	designation, err := utils.ValidateLength(input.Designation, "Designation", 1, 50)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !utils.ValidateMobile(input.Mobile) {
		utils.RespondWithError(c, http.StatusBadRequest, "Mobile number must be a valid 11 digit number")
		return
	}

	employee := models.Employee{
		EmployeeID:    utils.GenerateSecureToken(12),
		Name:          name,
		Designation:   designation,
		Mobile:        input.Mobile,
		MonthlySalary: input.MonthlySalary,
	}

	if err := ec.DB.Create(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Something went wrong. Try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee created successfully",
	})
}

// GetEmployees lists staff with their advance salaries
func (ec *EmployeeController) GetEmployees(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	query := ec.DB.Model(&models.Employee{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var count int64
	query.Count(&count)

	query = query.Preload("AdvanceSalaries").Order("name asc")
	if limit > 0 {
		query = query.Limit(limit).Offset((page - 1) * limit)
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Data retrieved successfully",
		"data_found": count,
		"pagination": utils.NewPagination(count, page, limit),
		"data":       employees,
	})
}

// GetEmployee fetches one staff member with advances, oldest first
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	var employee models.Employee
	if err := ec.DB.Preload("AdvanceSalaries", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at asc")
	}).Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee retrieved successfully",
		"data":    employee,
	})
}

// RemoveEmployee deletes a staff member; any advance salaries go first, and
// a failed cascade aborts the employee delete.
func (ec *EmployeeController) RemoveEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	var advanceCount int64
	ec.DB.Model(&models.AdvanceSalary{}).Where("employee_id = ?", employeeID).Count(&advanceCount)

	tx := ec.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if advanceCount > 0 {
		result := tx.Where("employee_id = ?", employeeID).Delete(&models.AdvanceSalary{})
		if result.Error != nil || result.RowsAffected == 0 {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest,
				"Advance salaries found, but failed to remove them. Employee removal aborted.")
			return
		}
	}

	result := tx.Where("employee_id = ?", employeeID).Delete(&models.Employee{})
	if result.Error != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove employee")
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		return
	}

	tx.Commit()

	message := "Successfully removed employee (no advance salaries found)."
	if advanceCount > 0 {
		message = "Successfully removed employee and associated advance salaries."
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// AddAdvanceSalary books an advance and its expense in one transaction
func (ec *EmployeeController) AddAdvanceSalary(c *gin.Context) {
	employeeID := c.Param("employeeId")
	userID, _ := c.Get("userId")

	var input AddAdvanceSalaryInput
	if err := c.ShouldBindJSON(&input); err != nil || input.PayableAmount <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Payable amount must be greater than 0")
		return
	}

	var employee models.Employee
	if err := ec.DB.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := ec.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	advance := models.AdvanceSalary{
		EmployeeID:    employeeID,
		AdvanceSalary: input.PayableAmount,
		CreatedBy:     fmt.Sprint(userID),
	}
	if err := tx.Create(&advance).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	expense := models.Expense{
		ExpenseID:  utils.GenerateSecureToken(16),
		EmployeeID: employeeID,
		Title:      employee.Name + " " + employee.Mobile + " (Advance)",
		TotalBill:  input.PayableAmount,
	}
	if err := tx.Create(&expense).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Expense creation failed")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Added successfully",
	})
}

// RemoveAdvanceSalary deletes an employee's advance and its derived expense
// together
func (ec *EmployeeController) RemoveAdvanceSalary(c *gin.Context) {
	employeeID := c.Param("employeeId")

	var advance models.AdvanceSalary
	if err := ec.DB.Where("employee_id = ?", employeeID).First(&advance).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "No advance salary found for the employee")
		return
	}

	var expense models.Expense
	if err := ec.DB.Where("employee_id = ?", employeeID).First(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "No expense found for the employee")
		return
	}

	tx := ec.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	advanceResult := tx.Where("id = ?", advance.ID).Delete(&models.AdvanceSalary{})
	expenseResult := tx.Where("id = ?", expense.ID).Delete(&models.Expense{})
	if advanceResult.Error != nil || expenseResult.Error != nil ||
		advanceResult.RowsAffected == 0 || expenseResult.RowsAffected == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError,
			"Failed to delete advance salary or expense")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee advance and expenses removed successfully",
	})
}
