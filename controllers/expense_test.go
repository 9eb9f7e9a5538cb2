package controllers

import (
	"net/http"
	"testing"
	"time"

	"elegance-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndRemoveExpense(t *testing.T) {
	db := setupTestDB(t)
	ec := NewExpenseController(db)

	w := performJSON(t, ec.AddExpense, http.MethodPost, "/expenses/add-expense",
		gin.H{"title": "  Electricity bill  ", "total_bill": 1200}, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var expense models.Expense
	require.NoError(t, db.First(&expense).Error)
	assert.Equal(t, "Electricity bill", expense.Title)
	assert.Equal(t, 1200.0, expense.TotalBill)

	w = performJSON(t, ec.RemoveExpense, http.MethodDelete, "/expenses/delete-expense/x",
		nil, gin.Params{{Key: "expenseId", Value: expense.ExpenseID}}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Expense{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRemoveExpenseNotFound(t *testing.T) {
	db := setupTestDB(t)
	ec := NewExpenseController(db)

	w := performJSON(t, ec.RemoveExpense, http.MethodDelete, "/expenses/delete-expense/x",
		nil, gin.Params{{Key: "expenseId", Value: "missing"}}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetExpensesByDateWindow(t *testing.T) {
	db := setupTestDB(t)
	ec := NewExpenseController(db)

	w := performJSON(t, ec.AddExpense, http.MethodPost, "/expenses/add-expense",
		gin.H{"title": "Electricity bill", "total_bill": 1200}, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	today := time.Now().Format("2006-01-02")
	w = performJSON(t, ec.GetExpensesByDate, http.MethodGet, "/expenses?date="+today, nil, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 1)

	w = performJSON(t, ec.GetExpensesByDate, http.MethodGet, "/expenses?date=2000-01-01", nil, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 0)
}
