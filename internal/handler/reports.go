package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Whillz7/BizFinTrackr/internal/apierror"
	"github.com/Whillz7/BizFinTrackr/internal/dto"
	"github.com/Whillz7/BizFinTrackr/internal/middleware"
	"github.com/Whillz7/BizFinTrackr/internal/service"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func bindFilter(c *gin.Context) (dto.ReportFilter, bool) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return filter, false
	}
	return filter, true
}

func (h *ReportsHandler) Summary(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.Summarize(c.Request.Context(), middleware.GetPrincipal(c), filter)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) SalesByProduct(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.SalesByProduct(c.Request.Context(), middleware.GetPrincipal(c), filter)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) ExpensesByCategory(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.ExpensesByCategory(c.Request.Context(), middleware.GetPrincipal(c), filter)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) RecentActivity(c *gin.Context) {
	resp, err := h.svc.RecentActivity(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
