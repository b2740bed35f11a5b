package nats

import (
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
)

// DialBreaker guards connect attempts so a dead server is not hammered by
// every reconnecting client.
type DialBreaker interface {
	Execute(addr string, dial func() error) error
}

// NewDialBreaker returns a DialBreaker keeping one circuit per server
// address. The circuit opens once at least 3 attempts were made and 60% of
// them failed.
func NewDialBreaker(maxRequests uint32, interval, timeout time.Duration) DialBreaker {
	return &dialBreaker{
		breakers: make(map[string]*gobreaker.CircuitBreaker[bool]),
		settings: func(addr string) gobreaker.Settings {
			return gobreaker.Settings{
				Name:        addr,
				MaxRequests: maxRequests,
				Interval:    interval,
				Timeout:     timeout,
				ReadyToTrip: func(counts gobreaker.Counts) bool {
					failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
					return counts.Requests >= 3 && failureRatio >= 0.6
				},
			}
		},
	}
}

type dialBreaker struct {
	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[bool]
	settings func(addr string) gobreaker.Settings
}

func (d *dialBreaker) Execute(addr string, dial func() error) error {
	d.mu.Lock()
	cb, ok := d.breakers[addr]
	if !ok {
		cb = gobreaker.NewCircuitBreaker[bool](d.settings(addr))
		d.breakers[addr] = cb
	}
	d.mu.Unlock()

	_, err := cb.Execute(func() (bool, error) {
		return true, dial()
	})
	return err
}
