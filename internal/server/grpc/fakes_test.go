package grpc

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophworker/internal/logging"
	"github.com/dmitrijs2005/gophworker/internal/server/services"
)

type provisionCall struct {
	authenticated bool
	req           services.CreateWorkerRequest
}

type fakeProvisioner struct {
	mu     sync.Mutex
	calls  []provisionCall
	result *services.CreateWorkerResult
	err    error
}

func (f *fakeProvisioner) CreateWorkerAccount(ctx context.Context, callerAuthenticated bool, req services.CreateWorkerRequest) (*services.CreateWorkerResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, provisionCall{authenticated: callerAuthenticated, req: req})
	return f.result, f.err
}

func (f *fakeProvisioner) lastCall() provisionCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

// ---- helpers ----

func newServer(p provisioner) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, p, "k", 0)
}

var nopLog = logging.Nop{}
