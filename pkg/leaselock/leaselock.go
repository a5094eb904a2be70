// Package leaselock provides a Postgres-backed lease lock used to keep
// store-wide maintenance jobs single-flight across workers. A lease is held
// in the job_locks table with a token and TTL and renewed in the background
// until released.
package leaselock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrBusy is returned when the lock is held by someone else.
var ErrBusy = errors.New("lease lock busy")

// ErrLost is returned when a renewal finds the lease gone.
var ErrLost = errors.New("lease lock lost")

type dbConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Client acquires leases against one database.
type Client struct {
	db dbConn
}

// Lease is one held lock. Context is canceled when the lease is lost or
// released; long jobs should run under it.
type Lease struct {
	Key     string
	Token   string
	Context context.Context

	client   *Client
	cancel   context.CancelCauseFunc
	stopOnce sync.Once
	stopCh   chan struct{}
}

// New creates a lease lock client over a connection pool.
func New(pool *pgxpool.Pool) *Client {
	return &Client{db: pool}
}

// WithLease runs fn while holding the named lock, releasing it afterward.
// Returns ErrBusy without running fn when the lock is already held.
func (c *Client) WithLease(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) error {
	lease, err := c.Acquire(ctx, key, ttl)
	if err != nil {
		return err
	}
	defer func() {
		_ = lease.Release(context.Background())
	}()
	return fn(lease.Context)
}

// Acquire takes the named lock or returns ErrBusy. The lease renews itself
// every ttl/2 until released; a failed renewal cancels the lease context.
func (c *Client) Acquire(ctx context.Context, key string, ttl time.Duration) (*Lease, error) {
	if key == "" {
		return nil, errors.New("lease lock key is empty")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	token, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	var returnedKey string
	err = c.db.QueryRow(ctx, tryAcquireSQL, key, token, ttl.Milliseconds()).Scan(&returnedKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBusy
	}
	if err != nil {
		return nil, err
	}

	leaseCtx, cancel := context.WithCancelCause(ctx)
	l := &Lease{
		Key:     key,
		Token:   token,
		Context: leaseCtx,
		client:  c,
		cancel:  cancel,
		stopCh:  make(chan struct{}),
	}

	go l.renewLoop(ttl)

	return l, nil
}

// Release drops the lease and stops renewal. Safe to call more than once.
func (l *Lease) Release(ctx context.Context) error {
	l.stopOnce.Do(func() {
		close(l.stopCh)
		l.cancel(context.Canceled)
	})

	_, err := l.client.db.Exec(ctx, releaseSQL, l.Key, l.Token)
	return err
}

func (l *Lease) renewLoop(ttl time.Duration) {
	t := time.NewTicker(max(ttl/2, time.Second))
	defer t.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-l.Context.Done():
			return
		case <-t.C:
			if err := l.renewOnce(ttl); err != nil {
				l.cancel(err)
				return
			}
		}
	}
}

func (l *Lease) renewOnce(ttl time.Duration) error {
	renewCtx, cancel := context.WithTimeout(l.Context, 15*time.Second)
	defer cancel()

	var returnedKey string
	err := l.client.db.QueryRow(renewCtx, renewSQL, l.Key, l.Token, ttl.Milliseconds()).Scan(&returnedKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrLost
	}
	return err
}

const tryAcquireSQL = `
INSERT INTO job_locks (key, token, expires_at)
VALUES ($1, $2, now() + ($3::bigint * interval '1 millisecond'))
ON CONFLICT (key) DO UPDATE
SET token      = EXCLUDED.token,
    expires_at = EXCLUDED.expires_at
WHERE job_locks.expires_at < now()
   OR job_locks.token = EXCLUDED.token
RETURNING key;
`

const renewSQL = `
UPDATE job_locks
SET expires_at = now() + ($3::bigint * interval '1 millisecond')
WHERE key = $1 AND token = $2
RETURNING key;
`

const releaseSQL = `
DELETE FROM job_locks
WHERE key = $1 AND token = $2;
`
