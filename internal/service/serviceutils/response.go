package serviceutils

import (
	"github.com/labstack/echo/v4"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/logger"
)

// Envelope is the uniform JSON response body.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ResponseSuccess writes a success envelope.
func ResponseSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{Message: message, Data: data})
}

// ResponseError logs err and writes a failure envelope.
func ResponseError(c echo.Context, status int, message string, err error) error {
	env := Envelope{Message: message}
	if err != nil {
		logger.Error(c.Request().Context(), message, err)
		env.Error = err.Error()
	}
	return c.JSON(status, env)
}
