package nats

import (
	"context"
	"sync/atomic"

	"github.com/jackc/puddle/v2"
)

// PoolStats is a snapshot of ClientPool counters.
type PoolStats struct {
	TotalClients     int32
	IdleClients      int32
	ActiveClients    int32
	AcquireCount     uint64
	AcquireWaitCount uint64
	CreatedClients   uint64
	DestroyedClients uint64
}

// ClientPool keeps a bounded set of connected Clients. A single Client is
// bound to one execution context at a time (it does not self-synchronize),
// so applications publishing from many goroutines acquire a client per
// operation instead of sharing one.
type ClientPool struct {
	pool             *puddle.Pool[*Client]
	createdClients   atomic.Int64
	destroyedClients atomic.Int64
}

// NewClientPool builds a pool of at most maxSize clients. The constructor
// must return a connected Client; it typically runs NewClient + Connect,
// dialing through whatever breaker the Config carries.
func NewClientPool(constructor func(ctx context.Context) (*Client, error), maxSize int32) (*ClientPool, error) {
	p := &ClientPool{}

	pool, err := puddle.NewPool(&puddle.Config[*Client]{
		Constructor: func(ctx context.Context) (*Client, error) {
			client, err := constructor(ctx)
			if err == nil {
				p.createdClients.Add(1)
			}
			return client, err
		},
		Destructor: func(c *Client) {
			p.destroyedClients.Add(1)
			_ = c.Close()
		},
		MaxSize: maxSize,
	})
	if err != nil {
		return nil, err
	}
	p.pool = pool
	return p, nil
}

// With runs fn with a pooled client. The client returns to the pool when fn
// returns nil and is destroyed otherwise, since an error may have left the
// connection in an unknown state.
func (p *ClientPool) With(ctx context.Context, fn func(c *Client) error) error {
	res, err := p.pool.Acquire(ctx)
	if err != nil {
		if err == puddle.ErrClosedPool {
			return ErrPoolClosed
		}
		return err
	}

	if err := fn(res.Value()); err != nil {
		res.Destroy()
		return err
	}
	res.Release()
	return nil
}

// Publish sends payload to subject through any pooled client.
func (p *ClientPool) Publish(ctx context.Context, subject, replyTo string, payload []byte) error {
	return p.With(ctx, func(c *Client) error {
		return c.Publish(subject, replyTo, payload)
	})
}

// Stats returns a snapshot of the pool counters.
func (p *ClientPool) Stats() PoolStats {
	s := p.pool.Stat()
	return PoolStats{
		TotalClients:     s.TotalResources(),
		IdleClients:      s.IdleResources(),
		ActiveClients:    s.AcquiredResources(),
		AcquireCount:     uint64(s.AcquireCount()),
		AcquireWaitCount: uint64(s.EmptyAcquireCount()),
		CreatedClients:   uint64(p.createdClients.Load()),
		DestroyedClients: uint64(p.destroyedClients.Load()),
	}
}

// Close destroys all pooled clients and rejects further acquires.
func (p *ClientPool) Close() {
	p.pool.Close()
}
