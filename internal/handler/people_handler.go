package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/service"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/service/serviceutils"
)

type PeopleHandler struct {
	svc *service.PeopleService
}

func NewPeopleHandler(svc *service.PeopleService) *PeopleHandler {
	return &PeopleHandler{svc: svc}
}

func (h *PeopleHandler) AddEmployeeHandler(c echo.Context) error {
	var req NewEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	employee := domain.Employee{
		Name:        req.Name,
		Age:         req.Age,
		Department:  req.Department,
		Role:        req.Role,
		Salary:      req.Salary,
		JoiningYear: req.JoiningYear,
		Gender:      req.Gender,
	}

	id, err := h.svc.AddEmployee(c.Request().Context(), &employee)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to add employee", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Employee added successfully", AddEmployeeResponse{EmployeeID: id})
}

func (h *PeopleHandler) AddPerformanceHandler(c echo.Context) error {
	var req NewPerformanceRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	record := domain.Performance{
		EmployeeID:        req.EmployeeID,
		Rating:            req.Rating,
		ProjectsCompleted: req.ProjectsCompleted,
		AvgDailyHours:     req.AvgDailyHours,
		Attrition:         req.Attrition,
		Reason:            req.Reason,
	}

	if err := h.svc.AddPerformance(c.Request().Context(), &record); err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to add performance record", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Performance record added successfully", nil)
}
