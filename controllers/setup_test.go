package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"elegance-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Plan{},
		&models.PaymentRecord{},
		&models.Category{},
		&models.Service{},
		&models.Employee{},
		&models.AdvanceSalary{},
		&models.Customer{},
		&models.TempCustomer{},
		&models.TempOrderLog{},
		&models.SoldInvoice{},
		&models.StockItem{},
		&models.Expense{},
	))

	return db
}

// performJSON invokes a handler directly with a JSON request body, optional
// route params and context keys normally set by the auth middleware
func performJSON(t *testing.T, handler gin.HandlerFunc, method, path string,
	body interface{}, params gin.Params, keys map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params
	for k, v := range keys {
		c.Set(k, v)
	}

	handler(c)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
