package controllers

import (
	"net/http"
	"testing"
	"time"

	"elegance-backend/models"
	"elegance-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSoldInvoiceClearsStaging(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db)
	require.NoError(t, db.Create(&models.TempOrderLog{
		TempOrderLogID: utils.GenerateSecureToken(16),
		TempCustomerID: session.TempCustomerID,
		ServiceID:      "svc-1",
		ServiceName:    "Hair Cut",
		Price:          300,
		Quantity:       2,
	}).Error)
	ic := NewInvoiceController(db)

	w := performJSON(t, ic.CreateSoldInvoice, http.MethodPost, "/sold-invoices/sold-invoice-create",
		gin.H{
			"temp_customer_id": session.TempCustomerID,
			"customer_name":    session.Name,
			"customer_mobile":  "01712345678",
			"served_by":        session.ServedBy,
			"total_bill":       600,
			"total_discount":   50,
			"items": []gin.H{{
				"service_id":   "svc-1",
				"service_name": "Hair Cut",
				"price":        300,
				"category":     "Hair",
				"quantity":     2,
			}},
		}, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	invoiceID, _ := body["data"].(string)
	require.NotEmpty(t, invoiceID)

	var invoice models.SoldInvoice
	require.NoError(t, db.Where("invoice_id = ?", invoiceID).First(&invoice).Error)
	assert.Equal(t, 600.0, invoice.TotalBill)
	assert.Equal(t, 50.0, invoice.TotalDiscount)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "Hair Cut", invoice.Items[0].ServiceName)
	assert.Equal(t, 2, invoice.Items[0].Quantity)

	var logCount, sessionCount int64
	db.Model(&models.TempOrderLog{}).Count(&logCount)
	db.Model(&models.TempCustomer{}).Count(&sessionCount)
	assert.EqualValues(t, 0, logCount)
	assert.EqualValues(t, 0, sessionCount)
}

func TestCreateSoldInvoiceRequiresItems(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db)
	ic := NewInvoiceController(db)

	w := performJSON(t, ic.CreateSoldInvoice, http.MethodPost, "/sold-invoices/sold-invoice-create",
		gin.H{
			"temp_customer_id": session.TempCustomerID,
			"customer_name":    session.Name,
			"served_by":        session.ServedBy,
			"total_bill":       600,
			"items":            []gin.H{},
		}, nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// nothing written, nothing deleted
	var invoiceCount, sessionCount int64
	db.Model(&models.SoldInvoice{}).Count(&invoiceCount)
	db.Model(&models.TempCustomer{}).Count(&sessionCount)
	assert.EqualValues(t, 0, invoiceCount)
	assert.EqualValues(t, 1, sessionCount)
}

func TestCreateSoldInvoiceWithoutStagedLogsRollsBack(t *testing.T) {
	db := setupTestDB(t)
	session := seedSession(t, db)
	ic := NewInvoiceController(db)

	w := performJSON(t, ic.CreateSoldInvoice, http.MethodPost, "/sold-invoices/sold-invoice-create",
		gin.H{
			"temp_customer_id": session.TempCustomerID,
			"customer_name":    session.Name,
			"served_by":        session.ServedBy,
			"total_bill":       600,
			"items": []gin.H{{
				"service_id":   "svc-1",
				"service_name": "Hair Cut",
				"price":        300,
				"quantity":     1,
			}},
		}, nil, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to delete temporary order logs", decodeBody(t, w)["message"])

	var invoiceCount, sessionCount int64
	db.Model(&models.SoldInvoice{}).Count(&invoiceCount)
	db.Model(&models.TempCustomer{}).Count(&sessionCount)
	assert.EqualValues(t, 0, invoiceCount)
	assert.EqualValues(t, 1, sessionCount)
}

func TestGetInvoiceNotFound(t *testing.T) {
	db := setupTestDB(t)
	ic := NewInvoiceController(db)

	w := performJSON(t, ic.GetInvoice, http.MethodGet, "/sold-invoices/sold-invoice/x",
		nil, gin.Params{{Key: "id", Value: "missing"}}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInvoicesByDateWindow(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.SoldInvoice{
		InvoiceID:    utils.GenerateSecureToken(16),
		CustomerName: "Nusrat",
		ServedBy:     "Mim",
		Items:        models.InvoiceItems{{ServiceID: "svc-1", ServiceName: "Hair Cut", Price: 300, Quantity: 1}},
		TotalBill:    300,
	}).Error)
	ic := NewInvoiceController(db)

	today := time.Now().Format("2006-01-02")
	w := performJSON(t, ic.GetInvoicesByDate, http.MethodGet, "/sold-invoices?date="+today, nil, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["data"], 1)

	w = performJSON(t, ic.GetInvoicesByDate, http.MethodGet, "/sold-invoices?date=2000-01-01", nil, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Len(t, body["data"], 0)

	w = performJSON(t, ic.GetInvoicesByDate, http.MethodGet, "/sold-invoices?date=bogus", nil, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
