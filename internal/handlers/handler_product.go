package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizedge/bizedge_backend/internal/core/ports/services"
	"github.com/bizedge/bizedge_backend/internal/dto"
	"github.com/bizedge/bizedge_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to products.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
	}
}

// createProduct godoc
// @Summary Create a new product
// @Description Creates an inventory item; stock is only ever changed afterwards by invoice posting
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 200 {object} dto.CreateResponse
// @Failure 422 {object} dto.ValidationErrorResponse "Validation error"
// @Failure 503 {object} dto.ErrorResponse "Database not available"
// @Router /api/products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	id, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create product")
		return
	}

	logger.Info("Product created successfully", slog.String("product_id", id))
	c.JSON(http.StatusOK, dto.CreateResponse{ID: id})
}

// listProducts godoc
// @Summary List all products
// @Description Retrieves every stored product with its string identifier
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 503 {object} dto.ErrorResponse "Database not available"
// @Router /api/products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list products")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponseSlice(products))
}
