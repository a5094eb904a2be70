package routes

import (
	"net/http"

	"github.com/everkept/memoria/backend/internal/server/middleware"
	"github.com/everkept/memoria/backend/pkg/kinship"

	"github.com/labstack/echo/v4"
)

// CreateConnectionHandler links a single memorial to another one
func CreateConnectionHandler(c echo.Context) error {
	type createConnectionBody struct {
		TargetID     string `json:"target_id" validate:"required"`
		Relationship string `json:"relationship" validate:"required"`
	}

	type createConnectionResponse struct {
		Message    string          `json:"message"`
		Reciprocal string          `json:"reciprocal,omitempty"`
		Outcome    kinship.Outcome `json:"outcome,omitempty"`
	}

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, createConnectionResponse{
			Message: "Missing memorial id",
		})
	}

	data := new(createConnectionBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createConnectionResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createConnectionResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	linker := c.(*middleware.AppContext).App.Linker

	repair, err := linker.Link(ctx, id, data.TargetID, data.Relationship)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, createConnectionResponse{
			Message: "Connection failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, createConnectionResponse{
		Message:    "Connection created successfully",
		Reciprocal: repair.Relationship,
		Outcome:    repair.Outcome,
	})
}
