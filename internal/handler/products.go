package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Whillz7/BizFinTrackr/internal/dto"
	"github.com/Whillz7/BizFinTrackr/internal/middleware"
	"github.com/Whillz7/BizFinTrackr/internal/service"
)

type ProductsHandler struct{ svc service.CatalogService }

func NewProductsHandler(svc service.CatalogService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateProduct(c.Request.Context(), middleware.GetPrincipal(c), req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetProduct(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.ListProducts(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Restock(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.RestockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Restock(c.Request.Context(), middleware.GetPrincipal(c), id, req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Sell(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.SellRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Sell(c.Request.Context(), middleware.GetPrincipal(c), id, req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteProduct(c.Request.Context(), middleware.GetPrincipal(c), id); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) InventoryHistory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	resp, err := h.svc.InventoryHistory(c.Request.Context(), middleware.GetPrincipal(c), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
