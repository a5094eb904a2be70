package queue

import "github.com/everkept/memoria/backend/pkg/kinship"

// ConnectBatchMsg is the payload on ConnectQueue: a batch of relationship
// triples to apply, typically produced by an import flow.
type ConnectBatchMsg struct {
	CorrelationID string               `json:"correlation_id,omitempty"`
	Connections   []kinship.Connection `json:"connections"`
}

// CleanupMsg is the payload on CleanupQueue. StartAfterID allows resuming a
// partially completed pass.
type CleanupMsg struct {
	RequestedBy  string `json:"requested_by,omitempty"`
	StartAfterID string `json:"start_after_id,omitempty"`
}
