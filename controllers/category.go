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

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

type CreateCategoryInput struct {
	Category string `json:"category" binding:"required"`
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category, err := utils.ValidateLength(input.Category, "Category name", 1, 300)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.Category
	if err := cc.DB.Where("category = ?", category).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Category name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newCategory := models.Category{
		CategoryID: utils.GenerateSecureToken(8),
		Category:   category,
		CreatedBy:  fmt.Sprint(userID),
	}

	if err := cc.DB.Create(&newCategory).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Something went wrong. Try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Created successfully",
	})
}

func (cc *CategoryController) GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("category asc").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data retrieved successfully",
		"data":    categories,
	})
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("categoryId")

	result := cc.DB.Where("category_id = ?", categoryID).Delete(&models.Category{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Deleted successfully",
	})
}
