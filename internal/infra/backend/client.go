// Package backend implements the API client for the remote REST backend.
// Every catalog, cart, order, user, feedback and notification interaction
// goes through this single wrapper.
package backend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// AccessTokenCookie is the name of the HTTP-only cookie that carries the
// backend-issued access token between browser, web tier and backend.
const AccessTokenCookie = "access_token"

type restyClient struct {
	http   *resty.Client
	logger *slog.Logger
}

// New creates the backend API client. A single failed call surfaces
// immediately to its caller; there are no retries and no backoff.
func New(cfg *config.Config, logger *slog.Logger) service.APIClient {
	httpClient := resty.New().
		SetBaseURL(cfg.Backend.BaseURL).
		SetTimeout(cfg.Backend.Timeout).
		SetHeader("Accept", "application/json")

	return &restyClient{
		http:   httpClient,
		logger: logger,
	}
}

func (c *restyClient) Get(ctx context.Context, endpoint string, opts ...service.RequestOption) (*service.APIResponse, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, opts)
}

func (c *restyClient) Post(ctx context.Context, endpoint string, body any, opts ...service.RequestOption) (*service.APIResponse, error) {
	return c.do(ctx, http.MethodPost, endpoint, body, opts)
}

func (c *restyClient) Put(ctx context.Context, endpoint string, body any, opts ...service.RequestOption) (*service.APIResponse, error) {
	return c.do(ctx, http.MethodPut, endpoint, body, opts)
}

func (c *restyClient) Patch(ctx context.Context, endpoint string, body any, opts ...service.RequestOption) (*service.APIResponse, error) {
	return c.do(ctx, http.MethodPatch, endpoint, body, opts)
}

func (c *restyClient) Delete(ctx context.Context, endpoint string, body any, opts ...service.RequestOption) (*service.APIResponse, error) {
	return c.do(ctx, http.MethodDelete, endpoint, body, opts)
}

func (c *restyClient) do(ctx context.Context, method, endpoint string, body any, opts []service.RequestOption) (*service.APIResponse, error) {
	options := &service.RequestOptions{}
	for _, opt := range opts {
		opt(options)
	}

	req := c.http.R().SetContext(ctx)

	if !options.NoAuth {
		if token := service.AccessTokenFromContext(ctx); token != "" {
			req.SetCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
		}
	}

	if len(options.Params) > 0 {
		req.SetQueryParams(options.Params)
	}

	switch {
	case len(options.Files) > 0 || len(options.Form) > 0:
		// Multipart passes through untouched, no JSON serialization.
		if len(options.Form) > 0 {
			req.SetFormData(options.Form)
		}
		for _, f := range options.Files {
			req.SetFileReader(f.Field, f.Name, f.Content)
		}
	case body != nil:
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		c.logger.Warn("backend unreachable",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrBackendUnreachable.WithDetails(err.Error())
	}

	// The 401 invariant: an authenticated call the backend rejects never
	// yields a result, the session is terminally expired. Public calls keep
	// their own 401 semantics (e.g. login failure).
	if resp.StatusCode() == http.StatusUnauthorized && !options.NoAuth {
		return nil, domainerrors.ErrSessionExpired
	}

	envelope := &service.APIResponse{}
	if unmarshalErr := json.Unmarshal(resp.Body(), envelope); unmarshalErr != nil && resp.IsError() {
		// Unparseable error body falls back to the generic message.
		return nil, domainerrors.NewBackendError(resp.StatusCode(), "")
	}

	if resp.IsError() {
		if len(envelope.Errors) > 0 {
			return nil, domainerrors.NewValidationError(envelope.Errors)
		}

		return nil, domainerrors.NewBackendError(resp.StatusCode(), envelope.Message)
	}

	if !envelope.Success {
		// 2xx with an unsuccessful envelope is still a business failure.
		return nil, domainerrors.NewBackendError(http.StatusBadRequest, envelope.Message)
	}

	return envelope, nil
}
