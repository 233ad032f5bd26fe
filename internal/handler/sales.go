package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Whillz7/BizFinTrackr/internal/middleware"
	"github.com/Whillz7/BizFinTrackr/internal/service"
)

type SalesHandler struct{ svc service.CatalogService }

func NewSalesHandler(svc service.CatalogService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

func (h *SalesHandler) List(c *gin.Context) {
	resp, err := h.svc.ListSales(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
