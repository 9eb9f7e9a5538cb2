package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin user"`
}

type LoginInput struct {
	UsernameOrMobile string `json:"usernameOrMobile" binding:"required"`
	Password         string `json:"password" binding:"required"`
}

type UpdateUserInput struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Mobile   *string `json:"mobile"`
}

type ChangePasswordInput struct {
	Password string `json:"password" binding:"required"`
}

func normalizePassword(password string) (string, error) {
	trimmed := strings.ReplaceAll(password, " ", "")
	if len(trimmed) < 6 || len(trimmed) > 30 {
		return "", errors.New("Password must be between 6 and 30 characters")
	}
	return trimmed, nil
}

// Register creates a user; only admins can reach this route
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name, err := utils.ValidateLength(input.Name, "Name", 3, 30)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	username, err := utils.ValidateLength(input.Username, "Username", 3, 30)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	username = strings.ToLower(username)
	if !utils.ValidateMobile(input.Mobile) {
		utils.RespondWithError(c, http.StatusBadRequest, "Mobile number must be a valid 11 digit number")
		return
	}
	password, err := normalizePassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	if err := ac.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Username already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if err := ac.DB.Where("mobile = ?", input.Mobile).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Mobile already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		UserID:   utils.GenerateSecureToken(16),
		Name:     name,
		Username: username,
		Mobile:   input.Mobile,
		Password: password, // hashed in BeforeCreate hook
		Role:     input.Role,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "User creation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User registered successfully",
	})
}

// Login authenticates by username or mobile and hands out an access token
// plus an httpOnly refresh cookie
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Username or mobile and password are required")
		return
	}

	identifier := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input.UsernameOrMobile), " ", ""))
	if len(identifier) < 3 || len(identifier) > 30 {
		utils.RespondWithError(c, http.StatusBadRequest, "Username or mobile should be valid")
		return
	}
	if _, err := normalizePassword(input.Password); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ? OR mobile = ?", identifier, identifier).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid username or mobile. Not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	if user.BannedUser {
		utils.RespondWithError(c, http.StatusUnauthorized, "You are banned. Please contact authority")
		return
	}

	var brand models.Brand
	if err := ac.DB.First(&brand).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Brand not found")
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.UserID, user.Role, brand.BrandID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(user.UserID, user.Role, brand.BrandID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("refreshToken", refreshToken, 7*24*60*60, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in successfully",
		"data": gin.H{
			"user":  user,
			"brand": brand,
		},
		"accessToken": accessToken,
	})
}

// RefreshToken exchanges a valid refresh cookie for a fresh access token
func (ac *AuthController) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie("refreshToken")
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Refresh token not found. Login first")
		return
	}

	claims, err := utils.ParseToken(refreshToken, os.Getenv("JWT_REFRESH_SECRET"))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid refresh token. Please login")
		return
	}

	userID, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	brandID, _ := claims["brandId"].(string)

	accessToken, err := utils.GenerateAccessToken(userID, role, brandID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "New access token generated successfully",
		"accessToken": accessToken,
	})
}

// GetUsers lists all users (admin only)
func (ac *AuthController) GetUsers(c *gin.Context) {
	var users []models.User
	if err := ac.DB.Order("created_at asc").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Users retrieved successfully",
		"data":    users,
	})
}

// GetUser fetches one user by token (admin only)
func (ac *AuthController) GetUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := ac.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// UpdateUser edits the caller's own profile fields when provided
func (ac *AuthController) UpdateUser(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := ac.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.Name != nil {
		name, err := utils.ValidateLength(*input.Name, "Name", 3, 30)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		user.Name = name
	}
	if input.Username != nil {
		username, err := utils.ValidateLength(*input.Username, "Username", 3, 30)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		username = strings.ToLower(username)
		if username != user.Username {
			var existing models.User
			if err := ac.DB.Where("username = ?", username).First(&existing).Error; err == nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Username already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		user.Username = username
	}
	if input.Mobile != nil {
		if !utils.ValidateMobile(*input.Mobile) {
			utils.RespondWithError(c, http.StatusBadRequest, "Mobile number must be a valid 11 digit number")
			return
		}
		if *input.Mobile != user.Mobile {
			var existing models.User
			if err := ac.DB.Where("mobile = ?", *input.Mobile).First(&existing).Error; err == nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Mobile already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		user.Mobile = *input.Mobile
	}

	if err := ac.DB.Model(&user).Updates(map[string]interface{}{
		"name":     user.Name,
		"username": user.Username,
		"mobile":   user.Mobile,
	}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"data":    user,
	})
}

// ChangePasswordByAuthority lets an admin reset another user's password
func (ac *AuthController) ChangePasswordByAuthority(c *gin.Context) {
	id := c.Param("id")

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Password is required")
		return
	}

	password, err := normalizePassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := ac.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	if err := ac.DB.Model(&user).Update("password", hashed).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}

// DeleteUserByAuthority removes a user by token (admin only)
func (ac *AuthController) DeleteUserByAuthority(c *gin.Context) {
	id := c.Param("id")

	result := ac.DB.Where("user_id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User removed successfully",
	})
}
