package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/service/serviceutils"
)

type PredictHandler struct {
	classifier domain.Classifier
}

func NewPredictHandler(classifier domain.Classifier) *PredictHandler {
	return &PredictHandler{classifier: classifier}
}

func (h *PredictHandler) PredictHandler(c echo.Context) error {
	var features domain.FeatureVector
	if err := c.Bind(&features); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	prediction, err := h.classifier.Predict(c.Request().Context(), &features)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Prediction failed", err)
	}

	return c.JSON(http.StatusOK, prediction)
}
