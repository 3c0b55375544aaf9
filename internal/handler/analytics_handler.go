package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/report"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/service"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/service/serviceutils"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) GlobalHandler(c echo.Context) error {
	rep, err := h.svc.GlobalReport(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to compute analytics", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Analytics computed successfully", rep)
}

func (h *AnalyticsHandler) DepartmentHandler(c echo.Context) error {
	name := c.Param("department")
	rep, err := h.svc.DepartmentReport(c.Request().Context(), name)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to compute department analytics", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Department analytics computed successfully", rep)
}

func (h *AnalyticsHandler) ExportHandler(c echo.Context) error {
	rep, err := h.svc.GlobalReport(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to compute analytics", err)
	}

	workbook, err := report.BuildWorkbook(rep)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate Excel report", err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="hr_analytics_report.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(workbook)))

	_, err = c.Response().Write(workbook)
	return err
}
