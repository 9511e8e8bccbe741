package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func envelope(t *testing.T, v any) *service.APIResponse {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	return &service.APIResponse{Success: true, Data: raw}
}

type apiCall struct {
	Method   string
	Endpoint string
	Body     any
	Opts     service.RequestOptions
}

// fakeAPI is a scripted APIClient. Responses and errors are keyed by
// "METHOD endpoint"; every issued call is recorded.
type fakeAPI struct {
	mu        sync.Mutex
	calls     []apiCall
	responses map[string]*service.APIResponse
	errs      map[string]error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		responses: map[string]*service.APIResponse{},
		errs:      map[string]error{},
	}
}

func (f *fakeAPI) stub(method, endpoint string, resp *service.APIResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+endpoint] = resp
}

func (f *fakeAPI) fail(method, endpoint string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[method+" "+endpoint] = err
}

func (f *fakeAPI) callsTo(method, endpoint string) []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []apiCall
	for _, call := range f.calls {
		if call.Method == method && call.Endpoint == endpoint {
			matched = append(matched, call)
		}
	}

	return matched
}

func (f *fakeAPI) do(method, endpoint string, body any, opts []service.RequestOption) (*service.APIResponse, error) {
	options := service.RequestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	f.mu.Lock()
	f.calls = append(f.calls, apiCall{Method: method, Endpoint: endpoint, Body: body, Opts: options})
	key := method + " " + endpoint
	err := f.errs[key]
	resp := f.responses[key]
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("fakeAPI: no stub for %s", key)
	}

	return resp, nil
}

func (f *fakeAPI) Get(_ context.Context, endpoint string, opts ...service.RequestOption) (*service.APIResponse, error) {
	return f.do("GET", endpoint, nil, opts)
}

func (f *fakeAPI) Post(_ context.Context, endpoint string, body any, opts ...service.RequestOption) (*service.APIResponse, error) {
	return f.do("POST", endpoint, body, opts)
}

func (f *fakeAPI) Put(_ context.Context, endpoint string, body any, opts ...service.RequestOption) (*service.APIResponse, error) {
	return f.do("PUT", endpoint, body, opts)
}

func (f *fakeAPI) Patch(_ context.Context, endpoint string, body any, opts ...service.RequestOption) (*service.APIResponse, error) {
	return f.do("PATCH", endpoint, body, opts)
}

func (f *fakeAPI) Delete(_ context.Context, endpoint string, body any, opts ...service.RequestOption) (*service.APIResponse, error) {
	return f.do("DELETE", endpoint, body, opts)
}

type memCartStore struct {
	mu    sync.Mutex
	carts map[string]*entity.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]*entity.Cart{}}
}

func (m *memCartStore) Load(_ context.Context, sessionID string) (*entity.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cart, ok := m.carts[sessionID]; ok {
		return cart.Clone(), nil
	}

	return &entity.Cart{}, nil
}

func (m *memCartStore) Save(_ context.Context, sessionID string, cart *entity.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[sessionID] = cart.Clone()

	return nil
}

func (m *memCartStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)

	return nil
}
