package routes

import (
	"encoding/json"
	"net/http"

	"github.com/everkept/memoria/backend/internal/queue"
	"github.com/everkept/memoria/backend/internal/server/middleware"
	"github.com/everkept/memoria/backend/internal/util"
	"github.com/everkept/memoria/backend/pkg/kinship"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ImportConnectionsHandler enqueues a connection batch for asynchronous
// processing by the worker. Large imports go through here so the request
// returns immediately.
func ImportConnectionsHandler(c echo.Context) error {
	type importConnectionsBody struct {
		Connections []kinship.Connection `json:"connections" validate:"required,min=1,dive"`
	}

	type importConnectionsResponse struct {
		Message       string `json:"message"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}

	data := new(importConnectionsBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, importConnectionsResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, importConnectionsResponse{
			Message: "Invalid request body",
		})
	}

	correlationID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, importConnectionsResponse{
			Message: "Internal server error",
		})
	}

	body, err := json.Marshal(queue.ConnectBatchMsg{
		CorrelationID: correlationID,
		Connections:   data.Connections,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, importConnectionsResponse{
			Message: "Internal server error",
		})
	}

	ch := c.(*middleware.AppContext).App.Queue
	err = util.RetryErr(3, func() error {
		return queue.PublishFIFO(ch, queue.ConnectQueue, body)
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, importConnectionsResponse{
			Message: "Failed to enqueue import",
		})
	}

	return c.JSON(http.StatusAccepted, importConnectionsResponse{
		Message:       "Import enqueued",
		CorrelationID: correlationID,
	})
}
