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

type BrandController struct {
	DB *gorm.DB
}

func NewBrandController(db *gorm.DB) *BrandController {
	return &BrandController{DB: db}
}

type UpdateBrandInput struct {
	Name    *string `json:"name"`
	Mobile  *string `json:"mobile"`
	Address *string `json:"address"`
}

// GetBrand returns the brand the caller's token is scoped to
func (bc *BrandController) GetBrand(c *gin.Context) {
	brandID, _ := c.Get("brandId")

	var brand models.Brand
	if err := bc.DB.Where("brand_id = ?", fmt.Sprint(brandID)).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Brand not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Brand retrieved successfully",
		"data":    brand,
	})
}

// UpdateBrand edits brand profile fields when provided (admin only)
func (bc *BrandController) UpdateBrand(c *gin.Context) {
	brandID, _ := c.Get("brandId")

	var input UpdateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var brand models.Brand
	if err := bc.DB.Where("brand_id = ?", fmt.Sprint(brandID)).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Brand not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name, err := utils.ValidateLength(*input.Name, "Brand name", 1, 100)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		updates["name"] = name
	}
	if input.Mobile != nil {
		if !utils.ValidateMobile(*input.Mobile) {
			utils.RespondWithError(c, http.StatusBadRequest, "Mobile number must be a valid 11 digit number")
			return
		}
		updates["mobile"] = *input.Mobile
	}
	if input.Address != nil {
		address, err := utils.ValidateLength(*input.Address, "Address", 1, 300)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		updates["address"] = address
	}

	if len(updates) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Nothing to update")
		return
	}

	if err := bc.DB.Model(&brand).Updates(updates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update brand")
		return
	}

	var updated models.Brand
	bc.DB.Where("brand_id = ?", brand.BrandID).First(&updated)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Brand updated successfully",
		"data":    updated,
	})
}
