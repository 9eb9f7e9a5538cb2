package controllers

import (
	"net/http"
	"testing"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedStockItem(t *testing.T, db *gorm.DB, title string, price float64, stock int) models.StockItem {
	t.Helper()
	item := models.StockItem{
		StockID:       utils.GenerateSecureToken(16),
		Title:         title,
		Price:         price,
		Stock:         stock,
		TotalIncrease: stock,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestAddProductDuplicateTitlePrice(t *testing.T) {
	db := setupTestDB(t)
	sc := NewStockController(db)

	w := performJSON(t, sc.AddProduct, http.MethodPost, "/stocks/addItem",
		gin.H{"title": "Shampoo", "price": 450}, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// same title and price is a duplicate
	w = performJSON(t, sc.AddProduct, http.MethodPost, "/stocks/addItem",
		gin.H{"title": "Shampoo", "price": 450}, nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Item already exists", decodeBody(t, w)["message"])

	// same title at a different price is a distinct item
	w = performJSON(t, sc.AddProduct, http.MethodPost, "/stocks/addItem",
		gin.H{"title": "Shampoo", "price": 550}, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.StockItem{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestAddProductRejectsNonPositivePrice(t *testing.T) {
	db := setupTestDB(t)
	sc := NewStockController(db)

	w := performJSON(t, sc.AddProduct, http.MethodPost, "/stocks/addItem",
		gin.H{"title": "Shampoo", "price": -5}, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIncreaseStockBooksExpense(t *testing.T) {
	db := setupTestDB(t)
	item := seedStockItem(t, db, "Shampoo", 450, 0)
	sc := NewStockController(db)

	w := performJSON(t, sc.IncreaseStock, http.MethodPatch, "/stocks/increase-stock/x",
		gin.H{"quantity": 5}, gin.Params{{Key: "id", Value: item.StockID}}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.StockItem
	require.NoError(t, db.Where("stock_id = ?", item.StockID).First(&reloaded).Error)
	assert.Equal(t, 5, reloaded.Stock)
	assert.Equal(t, 5, reloaded.TotalIncrease)

	var expense models.Expense
	require.NoError(t, db.Where("title = ?", "Shampoo").First(&expense).Error)
	assert.Equal(t, 450.0*5, expense.TotalBill)
}

func TestDecreaseStockInsufficient(t *testing.T) {
	db := setupTestDB(t)
	item := seedStockItem(t, db, "Shampoo", 450, 5)
	sc := NewStockController(db)

	w := performJSON(t, sc.DecreaseStock, http.MethodPatch, "/stocks/decrease-stock/x",
		gin.H{"quantity": 10}, gin.Params{{Key: "id", Value: item.StockID}}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Insufficient stock to decrease", decodeBody(t, w)["message"])

	var reloaded models.StockItem
	require.NoError(t, db.Where("stock_id = ?", item.StockID).First(&reloaded).Error)
	assert.Equal(t, 5, reloaded.Stock)
	assert.Equal(t, 0, reloaded.TotalDecrease)
}

func TestDecreaseStockRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	item := seedStockItem(t, db, "Shampoo", 450, 5)
	sc := NewStockController(db)

	w := performJSON(t, sc.DecreaseStock, http.MethodPatch, "/stocks/decrease-stock/x",
		gin.H{"quantity": 5}, gin.Params{{Key: "id", Value: item.StockID}}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.StockItem
	require.NoError(t, db.Where("stock_id = ?", item.StockID).First(&reloaded).Error)
	assert.Equal(t, 0, reloaded.Stock)
	assert.Equal(t, 5, reloaded.TotalDecrease)
	// counters stay reconciled with the running total
	assert.Equal(t, reloaded.Stock, reloaded.TotalIncrease-reloaded.TotalDecrease)
}

func TestIncreaseStockUnknownItem(t *testing.T) {
	db := setupTestDB(t)
	sc := NewStockController(db)

	w := performJSON(t, sc.IncreaseStock, http.MethodPatch, "/stocks/increase-stock/x",
		gin.H{"quantity": 5}, gin.Params{{Key: "id", Value: "missing"}}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
