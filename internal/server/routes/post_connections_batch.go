package routes

import (
	"net/http"

	"github.com/everkept/memoria/backend/internal/server/middleware"
	"github.com/everkept/memoria/backend/pkg/kinship"
	"github.com/everkept/memoria/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// CreateConnectionBatchHandler links a batch of connection triples
// synchronously and reports the per-triple outcomes.
func CreateConnectionBatchHandler(c echo.Context) error {
	type createBatchBody struct {
		Connections []kinship.Connection `json:"connections" validate:"required,min=1,dive"`
	}

	type createBatchResponse struct {
		Message string                     `json:"message"`
		Results []kinship.ConnectionResult `json:"results,omitempty"`
	}

	data := new(createBatchBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createBatchResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createBatchResponse{
			Message: "Invalid request body",
		})
	}
	if len(data.Connections) > store.MaxBatchSize {
		return c.JSON(http.StatusBadRequest, createBatchResponse{
			Message: "Too many connections in one batch",
		})
	}

	ctx := c.Request().Context()
	linker := c.(*middleware.AppContext).App.Linker

	results := linker.LinkBatch(ctx, data.Connections)

	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}

	message := "All connections created successfully"
	if failed > 0 {
		message = "Some connections failed"
	}

	return c.JSON(http.StatusOK, createBatchResponse{
		Message: message,
		Results: results,
	})
}
