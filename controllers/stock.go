package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StockController struct {
	DB *gorm.DB
}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{DB: db}
}

type AddProductInput struct {
	Title string  `json:"title" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

type StockQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// AddProduct registers a product at zero stock
func (sc *StockController) AddProduct(c *gin.Context) {
	var input AddProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Price <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must be a positive number")
		return
	}

	var existing models.StockItem
	if err := sc.DB.Where("title = ? AND price = ?", input.Title, input.Price).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Item already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	item := models.StockItem{
		StockID: utils.GenerateSecureToken(16),
		Title:   input.Title,
		Price:   input.Price,
	}

	if err := sc.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "New stock added successfully",
	})
}

// GetItems lists stock, searchable by title, sorted by title
func (sc *StockController) GetItems(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	query := sc.DB.Model(&models.StockItem{})
	if search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var count int64
	query.Count(&count)

	query = query.Order("title asc")
	if limit > 0 {
		query = query.Limit(limit).Offset((page - 1) * limit)
	}

	var items []models.StockItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve stock")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Data retrieved successfully",
		"data_found": count,
		"pagination": utils.NewPagination(count, page, limit),
		"data":       items,
	})
}

// IncreaseStock raises the running total and the lifetime increase counter,
// and books the restocking cost as an expense in the same transaction.
func (sc *StockController) IncreaseStock(c *gin.Context) {
	id := c.Param("id")

	var input StockQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Quantity must be a positive number")
		return
	}

	var item models.StockItem
	if err := sc.DB.Where("stock_id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := sc.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&models.StockItem{}).Where("stock_id = ?", id).
		Updates(map[string]interface{}{
			"stock":          gorm.Expr("stock + ?", input.Quantity),
			"total_increase": gorm.Expr("total_increase + ?", input.Quantity),
		}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Stock update failed")
		return
	}

	expense := models.Expense{
		ExpenseID: utils.GenerateSecureToken(16),
		Title:     item.Title,
		TotalBill: item.Price * float64(input.Quantity),
	}
	if err := tx.Create(&expense).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stock increased successfully",
	})
}

// DecreaseStock lowers the running total; the total can never go negative
func (sc *StockController) DecreaseStock(c *gin.Context) {
	id := c.Param("id")

	var input StockQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Quantity must be a positive number")
		return
	}

	var item models.StockItem
	if err := sc.DB.Where("stock_id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if item.Stock < input.Quantity {
		utils.RespondWithError(c, http.StatusBadRequest, "Insufficient stock to decrease")
		return
	}

	if err := sc.DB.Model(&models.StockItem{}).Where("stock_id = ?", id).
		Updates(map[string]interface{}{
			"stock":          gorm.Expr("stock - ?", input.Quantity),
			"total_decrease": gorm.Expr("total_decrease + ?", input.Quantity),
		}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Stock update failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stock decreased successfully",
	})
}
