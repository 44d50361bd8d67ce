package asyncclient

import (
	"context"
	"sync"
)

// Pending is a call that settles exactly once, either with a Result or an
// error. Awaiting it from several goroutines is safe.
type Pending struct {
	once sync.Once
	done chan struct{}

	result *Result
	err    error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func settledPending(res *Result) *Pending {
	p := newPending()
	p.settle(res, nil)
	return p
}

// settle reports false when p had already settled; the late outcome is dropped
func (p *Pending) settle(res *Result, err error) bool {
	settled := false
	p.once.Do(func() {
		p.result = res
		p.err = err
		settled = true
		close(p.done)
	})
	return settled
}

func (p *Pending) Done() <-chan struct{} {
	return p.done
}

func (p *Pending) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Await blocks until p settles or ctx ends. Giving up on ctx does not stop
// the underlying call.
func (p *Pending) Await(ctx context.Context) (*Result, error) {
	select {
	case <-p.done:
		return p.result, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Pending) Wait() (*Result, error) {
	<-p.done
	return p.result, p.err
}
