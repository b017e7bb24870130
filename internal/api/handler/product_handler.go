package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargotrack/cargo-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product records.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:            req.Name,
		ProductType:     req.ProductType,
		Validity:        req.Validity,
		PhoneNumber:     req.PhoneNumber,
		ProductMaterial: req.ProductMaterial,
	}
}

// Create handles POST /api/products.
//
// @Summary      Create a product record
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Create(c.Request().Context(), toProductInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productResponse{
		Message: "Product added successfully",
		Product: created,
	})
}

// List handles GET /api/products.
//
// @Summary      List all product records
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

// Update handles PUT /api/products/:id — a full five-field replace.
//
// @Summary      Update a product record
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product identifier"
// @Param        body  body      productRequest  true  "Replacement fields"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toProductInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{
		Message: "Product updated successfully",
		Product: updated,
	})
}

// Delete handles DELETE /api/products/:id. The removal is permanent; the
// response carries a confirmation only, not the deleted record.
//
// @Summary      Delete a product record
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Product identifier"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
