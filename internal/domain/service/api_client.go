package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	domainerrors "storefront/internal/domain/errors"
)

// APIResponse is the backend's uniform response envelope.
type APIResponse struct {
	Success bool                      `json:"success"`
	Data    json.RawMessage           `json:"data,omitempty"`
	Message string                    `json:"message,omitempty"`
	Errors  []domainerrors.FieldError `json:"errors,omitempty"`
}

// Decode unmarshals the envelope's data payload into v.
func (r *APIResponse) Decode(v any) error {
	if len(r.Data) == 0 {
		return errors.New("empty response data")
	}

	return errors.Wrap(json.Unmarshal(r.Data, v), "decode response data")
}

// RequestOptions controls how a single backend call is issued.
type RequestOptions struct {
	// NoAuth skips attaching the session's access token. Only public,
	// pre-authentication calls (login, register, catalog) set it; it also
	// exempts the call from the global 401-redirect handling.
	NoAuth bool

	// Params are query string parameters.
	Params map[string]string

	// Form and Files switch the request to multipart form data, used for
	// image uploads. JSON serialization is bypassed entirely.
	Form  map[string]string
	Files []FileUpload
}

// FileUpload is one file part of a multipart request.
type FileUpload struct {
	Field   string
	Name    string
	Content io.Reader
}

// RequestOption mutates RequestOptions.
type RequestOption func(*RequestOptions)

// WithNoAuth marks the call as public.
func WithNoAuth() RequestOption {
	return func(o *RequestOptions) { o.NoAuth = true }
}

// WithParams sets query string parameters.
func WithParams(params map[string]string) RequestOption {
	return func(o *RequestOptions) { o.Params = params }
}

// WithForm sets multipart form fields.
func WithForm(form map[string]string) RequestOption {
	return func(o *RequestOptions) { o.Form = form }
}

// WithFile attaches a file part, switching the request to multipart.
func WithFile(field, name string, content io.Reader) RequestOption {
	return func(o *RequestOptions) {
		o.Files = append(o.Files, FileUpload{Field: field, Name: name, Content: content})
	}
}

// APIClient is the single HTTP wrapper every backend interaction goes
// through. Non-2xx responses surface as AppError values from the fixed
// taxonomy; a 401 on an authenticated call is always ErrSessionExpired and
// the call never yields a usable response. No retries, no backoff.
type APIClient interface {
	Get(ctx context.Context, endpoint string, opts ...RequestOption) (*APIResponse, error)
	Post(ctx context.Context, endpoint string, body any, opts ...RequestOption) (*APIResponse, error)
	Put(ctx context.Context, endpoint string, body any, opts ...RequestOption) (*APIResponse, error)
	Patch(ctx context.Context, endpoint string, body any, opts ...RequestOption) (*APIResponse, error)
	Delete(ctx context.Context, endpoint string, body any, opts ...RequestOption) (*APIResponse, error)
}

type accessTokenKey struct{}

// WithAccessToken returns a context carrying the session's access token.
// The HTTP middleware sets it from the token cookie; the client forwards it
// on every authenticated call.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext returns the access token, or "" for anonymous.
func AccessTokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(accessTokenKey{}).(string); ok {
		return token
	}

	return ""
}
