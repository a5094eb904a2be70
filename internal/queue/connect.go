package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/everkept/memoria/backend/pkg/kinship"
	"github.com/everkept/memoria/backend/pkg/logger"
)

// ProcessConnectMessage applies a batch of connection triples. Triples fail
// independently; a triple's failure is logged and reported, never fatal to
// its siblings, so the message is acked as long as the payload decodes.
func ProcessConnectMessage(ctx context.Context, linker *kinship.Linker, body string) error {
	var msg ConnectBatchMsg
	if err := json.Unmarshal([]byte(body), &msg); err != nil {
		return fmt.Errorf("failed to decode connect message: %w", err)
	}
	if len(msg.Connections) == 0 {
		logger.Warn("[Queue] Connect message with no connections", "correlation_id", msg.CorrelationID)
		return nil
	}

	results := linker.LinkBatch(ctx, msg.Connections)

	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}

	logger.Info("[Queue] Connect batch processed",
		"correlation_id", msg.CorrelationID,
		"total", len(results),
		"failed", failed,
	)
	return nil
}
