package controllers

import (
	"net/http"
	"testing"

	"elegance-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAdvanceSalaryBooksExpense(t *testing.T) {
	db := setupTestDB(t)
	employee := seedEmployee(t, db, "Mim")
	ec := NewEmployeeController(db)

	w := performJSON(t, ec.AddAdvanceSalary, http.MethodPost, "/employees/employee-advance-salary/x",
		gin.H{"payable_amount": 500}, gin.Params{{Key: "employeeId", Value: employee.EmployeeID}},
		map[string]interface{}{"userId": "admin-token"})
	require.Equal(t, http.StatusOK, w.Code)

	var advance models.AdvanceSalary
	require.NoError(t, db.Where("employee_id = ?", employee.EmployeeID).First(&advance).Error)
	assert.Equal(t, 500.0, advance.AdvanceSalary)
	assert.Equal(t, "admin-token", advance.CreatedBy)

	var expense models.Expense
	require.NoError(t, db.Where("employee_id = ?", employee.EmployeeID).First(&expense).Error)
	assert.Equal(t, employee.Name+" "+employee.Mobile+" (Advance)", expense.Title)
	assert.Equal(t, 500.0, expense.TotalBill)
}

func TestAddAdvanceSalaryRejectsNonPositiveAmount(t *testing.T) {
	db := setupTestDB(t)
	employee := seedEmployee(t, db, "Mim")
	ec := NewEmployeeController(db)

	w := performJSON(t, ec.AddAdvanceSalary, http.MethodPost, "/employees/employee-advance-salary/x",
		gin.H{"payable_amount": -100}, gin.Params{{Key: "employeeId", Value: employee.EmployeeID}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddAdvanceSalaryUnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	ec := NewEmployeeController(db)

	w := performJSON(t, ec.AddAdvanceSalary, http.MethodPost, "/employees/employee-advance-salary/x",
		gin.H{"payable_amount": 500}, gin.Params{{Key: "employeeId", Value: "missing"}}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Employee not found", decodeBody(t, w)["message"])
}

func TestRemoveAdvanceSalaryDeletesBothSides(t *testing.T) {
	db := setupTestDB(t)
	employee := seedEmployee(t, db, "Mim")
	ec := NewEmployeeController(db)

	w := performJSON(t, ec.AddAdvanceSalary, http.MethodPost, "/employees/employee-advance-salary/x",
		gin.H{"payable_amount": 500}, gin.Params{{Key: "employeeId", Value: employee.EmployeeID}}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, ec.RemoveAdvanceSalary, http.MethodDelete, "/employees/delete-advance-salary/x",
		nil, gin.Params{{Key: "employeeId", Value: employee.EmployeeID}}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var advanceCount, expenseCount int64
	db.Model(&models.AdvanceSalary{}).Where("employee_id = ?", employee.EmployeeID).Count(&advanceCount)
	db.Model(&models.Expense{}).Where("employee_id = ?", employee.EmployeeID).Count(&expenseCount)
	assert.EqualValues(t, 0, advanceCount)
	assert.EqualValues(t, 0, expenseCount)
}

func TestRemoveAdvanceSalaryWithoutAdvance(t *testing.T) {
	db := setupTestDB(t)
	employee := seedEmployee(t, db, "Mim")
	ec := NewEmployeeController(db)

	w := performJSON(t, ec.RemoveAdvanceSalary, http.MethodDelete, "/employees/delete-advance-salary/x",
		nil, gin.Params{{Key: "employeeId", Value: employee.EmployeeID}}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveEmployeeCascadesAdvances(t *testing.T) {
	db := setupTestDB(t)
	employee := seedEmployee(t, db, "Mim")
	ec := NewEmployeeController(db)

	w := performJSON(t, ec.AddAdvanceSalary, http.MethodPost, "/employees/employee-advance-salary/x",
		gin.H{"payable_amount": 500}, gin.Params{{Key: "employeeId", Value: employee.EmployeeID}}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, ec.RemoveEmployee, http.MethodDelete, "/employees/delete/x",
		nil, gin.Params{{Key: "employeeId", Value: employee.EmployeeID}}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Successfully removed employee and associated advance salaries.",
		decodeBody(t, w)["message"])

	var employeeCount, advanceCount int64
	db.Model(&models.Employee{}).Count(&employeeCount)
	db.Model(&models.AdvanceSalary{}).Count(&advanceCount)
	assert.EqualValues(t, 0, employeeCount)
	assert.EqualValues(t, 0, advanceCount)
}

func TestRemoveEmployeeUnknown(t *testing.T) {
	db := setupTestDB(t)
	ec := NewEmployeeController(db)

	w := performJSON(t, ec.RemoveEmployee, http.MethodDelete, "/employees/delete/x",
		nil, gin.Params{{Key: "employeeId", Value: "missing"}}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
