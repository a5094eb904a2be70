package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/everkept/memoria/backend/internal/queue"
	"github.com/everkept/memoria/backend/internal/server/middleware"
	"github.com/everkept/memoria/backend/internal/util"

	"github.com/labstack/echo/v4"
)

// TriggerCleanupHandler enqueues a store-wide relatives cleanup job.
func TriggerCleanupHandler(c echo.Context) error {
	type triggerCleanupBody struct {
		StartAfterID string `json:"start_after_id"`
	}

	type triggerCleanupResponse struct {
		Message string `json:"message"`
	}

	data := new(triggerCleanupBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, triggerCleanupResponse{
			Message: "Invalid request body",
		})
	}

	appCtx := c.(*middleware.AppContext)
	user := appCtx.User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, triggerCleanupResponse{
			Message: "Unauthorized",
		})
	}

	body, err := json.Marshal(queue.CleanupMsg{
		RequestedBy:  strconv.FormatInt(user.UserID, 10),
		StartAfterID: data.StartAfterID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, triggerCleanupResponse{
			Message: "Internal server error",
		})
	}

	err = util.RetryErr(3, func() error {
		return queue.PublishFIFO(appCtx.App.Queue, queue.CleanupQueue, body)
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, triggerCleanupResponse{
			Message: "Failed to enqueue cleanup",
		})
	}

	return c.JSON(http.StatusAccepted, triggerCleanupResponse{
		Message: "Cleanup enqueued",
	})
}
