package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bizedge/bizedge_backend/internal/apperrors"
	"github.com/bizedge/bizedge_backend/internal/core/domain"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *mockServices
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
}

func (suite *InvoiceHandlerTestSuite) postJSON(url string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validInvoiceBody() gin.H {
	return gin.H{
		"type":       "sale",
		"number":     "INV-001",
		"party_id":   "66cf2a9e8b9d4c0001a1b2c3",
		"party_name": "Acme Traders",
		"items": []gin.H{
			{
				"product_id": "66cf2a9e8b9d4c0001a1b2d1",
				"name":       "Copper Wire 2mm",
				"qty":        3,
				"price":      249.50,
				"total":      748.50,
			},
		},
		"subtotal": 748.50,
		"total":    748.50,
		"mode":     "cash",
	}
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	expectedID := "66cf2a9e8b9d4c0001a1b2e1"
	suite.mocks.invoice.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(r dto.CreateInvoiceRequest) bool {
		return r.Number == "INV-001" && len(r.Items) == 1 && r.Items[0].Qty == 3
	})).Return(expectedID, nil).Once()

	w := suite.postJSON("/api/invoices", validInvoiceBody())

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CreateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expectedID, resp.ID)
	suite.mocks.invoice.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_EmptyItemsAccepted() {
	body := validInvoiceBody()
	body["items"] = []gin.H{}

	suite.mocks.invoice.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(r dto.CreateInvoiceRequest) bool {
		return len(r.Items) == 0
	})).Return("66cf2a9e8b9d4c0001a1b2e2", nil).Once()

	w := suite.postJSON("/api/invoices", body)

	suite.Equal(http.StatusOK, w.Code)
	suite.mocks.invoice.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_MissingNumber() {
	body := validInvoiceBody()
	delete(body, "number")

	w := suite.postJSON("/api/invoices", body)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp dto.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Detail, 1)
	suite.Equal("number", resp.Detail[0].Field)
	suite.Equal("required", resp.Detail[0].Rule)
	suite.mocks.invoice.AssertNotCalled(suite.T(), "CreateInvoice")
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_ItemQtyMustBePositive() {
	body := validInvoiceBody()
	body["items"] = []gin.H{
		{
			"product_id": "66cf2a9e8b9d4c0001a1b2d1",
			"name":       "Copper Wire 2mm",
			"qty":        0,
			"price":      249.50,
			"total":      0,
		},
	}

	w := suite.postJSON("/api/invoices", body)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var resp dto.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Detail, 1)
	suite.Equal("qty", resp.Detail[0].Field)
	suite.Equal("required", resp.Detail[0].Rule)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_DatabaseUnavailable() {
	svcErr := fmt.Errorf("failed to create invoice: %w", apperrors.ErrDBUnavailable)
	suite.mocks.invoice.On("CreateInvoice", mock.Anything, mock.AnythingOfType("dto.CreateInvoiceRequest")).
		Return("", svcErr).Once()

	w := suite.postJSON("/api/invoices", validInvoiceBody())

	suite.Equal(http.StatusServiceUnavailable, w.Code)

	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Database not available", resp.Detail)
	suite.mocks.invoice.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_Success() {
	expected := []domain.Invoice{
		{
			ID:     "66cf2a9e8b9d4c0001a1b2e1",
			Type:   domain.InvoiceSale,
			Number: "INV-001",
			Items:  []domain.InvoiceItem{{ProductID: "66cf2a9e8b9d4c0001a1b2d1", Qty: 3}},
			Total:  748.50,
			Mode:   domain.ModeCash,
		},
	}
	suite.mocks.invoice.On("ListInvoices", mock.Anything).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/invoices", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("sale", resp[0].Type)
	suite.Len(resp[0].Items, 1)
	suite.mocks.invoice.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestInvoiceHandler(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
