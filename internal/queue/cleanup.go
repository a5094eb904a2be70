package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/everkept/memoria/backend/internal/util"
	"github.com/everkept/memoria/backend/pkg/kinship"
	"github.com/everkept/memoria/backend/pkg/leaselock"
	"github.com/everkept/memoria/backend/pkg/logger"
	"github.com/everkept/memoria/backend/pkg/store"
)

const cleanupLockKey = "relatives_cleanup"

const cleanupPageSize = 100

// ProcessCleanupMessage rewrites every memorial's relatives to canonical
// labels and removes duplicate edges, paging through the whole store. The
// pass runs under a lease lock so only one worker sweeps at a time; a
// concurrently held lock completes the message without work.
func ProcessCleanupMessage(
	ctx context.Context,
	st store.MemorialStore,
	resolver *kinship.Resolver,
	locks *leaselock.Client,
	body string,
) error {
	var msg CleanupMsg
	if err := json.Unmarshal([]byte(body), &msg); err != nil {
		return fmt.Errorf("failed to decode cleanup message: %w", err)
	}

	err := locks.WithLease(ctx, cleanupLockKey, 10*time.Minute, func(ctx context.Context) error {
		return runCleanup(ctx, st, resolver, msg.StartAfterID)
	})
	if errors.Is(err, leaselock.ErrBusy) {
		logger.Info("[Queue] Cleanup already running elsewhere, skipping")
		return nil
	}
	return err
}

func runCleanup(ctx context.Context, st store.MemorialStore, resolver *kinship.Resolver, afterID string) error {
	scanned := 0
	rewritten := 0

	for {
		ids, err := st.ListMemorialIDs(ctx, afterID, cleanupPageSize)
		if err != nil {
			return fmt.Errorf("failed to list memorials after %q: %w", afterID, err)
		}
		if len(ids) == 0 {
			break
		}
		afterID = ids[len(ids)-1]

		for _, id := range ids {
			scanned++

			err := util.RetryErrWithContext(ctx, 3, func(ctx context.Context) error {
				m, err := st.GetMemorial(ctx, id)
				if err != nil {
					return err
				}

				cleaned := resolver.CleanupRelatives(m.Relatives)
				if reflect.DeepEqual(cleaned, m.Relatives) {
					return nil
				}

				if err := st.UpdateRelatives(ctx, m.ID, cleaned, m.Version); err != nil {
					return err
				}
				rewritten++
				return nil
			})
			if err != nil {
				// A single bad record should not stop the sweep.
				logger.Error("[Queue] Cleanup failed for memorial", "id", id, "err", err)
			}
		}
	}

	logger.Info("[Queue] Cleanup pass finished", "scanned", scanned, "rewritten", rewritten)
	return nil
}
