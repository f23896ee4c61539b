// Package keyworker runs password stretching and key wrapping on one
// dedicated goroutine. At most one request is in flight; secret inputs are
// owned by the worker once submitted and wiped when it is done with them.
package keyworker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/common"
	"github.com/dmitrijs2005/zkkeeper/internal/cryptox"
	"github.com/dmitrijs2005/zkkeeper/internal/logging"
	"github.com/google/uuid"
)

// DefaultTimeout bounds how long a caller waits for one request.
const DefaultTimeout = 60 * time.Second

var (
	ErrBusy    = errors.New("key worker busy")
	ErrTimeout = errors.New("key worker timed out")
	ErrClosed  = errors.New("key worker closed")
)

type Op string

const (
	OpDeriveCredentials Op = "derive_credentials"
	OpDeriveRecovery    Op = "derive_recovery"
	OpWrapKey           Op = "wrap_key"
	OpUnwrapKey         Op = "unwrap_key"
	OpBenchmark         Op = "benchmark"
)

// Request is one unit of work. Which fields are read depends on Op:
//
//	OpDeriveCredentials  Password, Salt, Mode
//	OpDeriveRecovery     RecoverySecret
//	OpWrapKey            KEK, MasterKey, AAD
//	OpUnwrapKey          KEK, Envelope, AAD
//	OpBenchmark          Password, Salt, Mode
//
// Password, RecoverySecret and KEK are wiped by the worker. MasterKey and
// Envelope are only read.
type Request struct {
	ID             string
	Op             Op
	Password       []byte
	Salt           []byte
	Mode           cryptox.KDFMode
	RecoverySecret []byte
	KEK            *cryptox.KEK
	MasterKey      []byte
	Envelope       *cryptox.Envelope
	AAD            []byte
}

// Response carries the result of a Request with the same ID.
type Response struct {
	ID        string
	Keys      *cryptox.PasswordKeys
	Recovery  *cryptox.RecoveryKeys
	Envelope  *cryptox.Envelope
	MasterKey []byte
	Elapsed   time.Duration
	Err       error
}

// Wipe zeroes every secret the response holds.
func (r *Response) Wipe() {
	if r.Keys != nil {
		r.Keys.Wipe()
	}
	if r.Recovery != nil {
		r.Recovery.Wipe()
	}
	common.WipeByteArray(r.MasterKey)
}

type call struct {
	req   Request
	reply chan Response

	mu        sync.Mutex
	abandoned bool
}

// Worker is the single-goroutine key actor.
type Worker struct {
	kdf      *cryptox.KDF
	timeout  time.Duration
	log      logging.Logger
	requests chan *call
	busy     atomic.Bool

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	// hook runs before each request; tests use it to hold the worker.
	hook func(Request)
}

// New starts a worker. timeout <= 0 means DefaultTimeout.
func New(kdf *cryptox.KDF, timeout time.Duration, log logging.Logger) *Worker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	w := &Worker{
		kdf:      kdf,
		timeout:  timeout,
		log:      log.With("module", "key_worker"),
		requests: make(chan *call),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w
}

// Close stops the worker after the in-flight request, if any, completes.
func (w *Worker) Close() {
	w.closeOnce.Do(func() { close(w.done) })
	w.wg.Wait()
}

// Busy reports whether a request is being processed.
func (w *Worker) Busy() bool {
	return w.busy.Load()
}

// Submit hands req to the worker and waits for its response. A second Submit
// while one is in flight fails with ErrBusy. When the wait exceeds the
// timeout or ctx ends first, the worker still finishes the request and wipes
// the result nobody will read.
func (w *Worker) Submit(ctx context.Context, req Request) (*Response, error) {
	if !w.busy.CompareAndSwap(false, true) {
		wipeRequest(&req)
		return nil, ErrBusy
	}

	req.ID = uuid.NewString()
	c := &call{req: req, reply: make(chan Response, 1)}

	select {
	case w.requests <- c:
	case <-w.done:
		w.busy.Store(false)
		wipeRequest(&req)
		return nil, ErrClosed
	}

	timer := time.NewTimer(w.timeout)
	defer timer.Stop()

	select {
	case resp := <-c.reply:
		if resp.ID != req.ID {
			resp.Wipe()
			return nil, fmt.Errorf("key worker: response %s for request %s", resp.ID, req.ID)
		}
		if resp.Err != nil {
			return nil, resp.Err
		}
		return &resp, nil
	case <-timer.C:
		c.abandon()
		return nil, ErrTimeout
	case <-ctx.Done():
		c.abandon()
		return nil, ctx.Err()
	}
}

// abandon makes sure a late response is wiped instead of delivered.
func (c *call) abandon() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.abandoned = true
	select {
	case resp := <-c.reply:
		resp.Wipe()
	default:
	}
}

func (c *call) deliver(resp Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.abandoned {
		resp.Wipe()
		return
	}
	c.reply <- resp
}

func (w *Worker) loop() {
	defer w.wg.Done()
	for {
		select {
		case c := <-w.requests:
			resp := w.handle(c.req)
			w.busy.Store(false)
			c.deliver(resp)
		case <-w.done:
			return
		}
	}
}

func (w *Worker) handle(req Request) (resp Response) {
	resp.ID = req.ID
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			resp.Wipe()
			resp = Response{ID: req.ID, Err: fmt.Errorf("key worker: %s panicked: %v", req.Op, r)}
		}
		wipeRequest(&req)
		w.log.Debug(context.Background(), "request done", "id", req.ID, "op", string(req.Op), "duration", time.Since(start), "failed", resp.Err != nil)
	}()

	if w.hook != nil {
		w.hook(req)
	}

	switch req.Op {
	case OpDeriveCredentials:
		resp.Keys, resp.Err = w.deriveCredentials(req.Password, req.Salt, req.Mode)
	case OpDeriveRecovery:
		resp.Recovery, resp.Err = cryptox.DeriveRecoveryKeys(req.RecoverySecret)
	case OpWrapKey:
		resp.Envelope, resp.Err = req.KEK.Wrap(req.MasterKey, req.AAD)
	case OpUnwrapKey:
		resp.MasterKey, resp.Err = req.KEK.Unwrap(req.Envelope, req.AAD)
	case OpBenchmark:
		resp.Elapsed, resp.Err = w.kdf.Benchmark(req.Password, req.Salt, req.Mode)
	default:
		resp.Err = fmt.Errorf("key worker: unknown op %q", req.Op)
	}
	return resp
}

func (w *Worker) deriveCredentials(password, salt []byte, mode cryptox.KDFMode) (*cryptox.PasswordKeys, error) {
	base, err := w.kdf.DeriveBaseKey(password, salt, mode)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(base)
	return cryptox.DerivePasswordKeys(base)
}

func wipeRequest(req *Request) {
	common.WipeAll(req.Password, req.RecoverySecret)
	req.KEK.Wipe()
}
