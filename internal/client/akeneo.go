package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"akeneo/endpoints/internal/config"
	"akeneo/endpoints/internal/domain"
	"akeneo/endpoints/internal/endpoint"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

var ErrNoEndpoint = errors.New("no endpoint for model")

// RequestBuilder addresses PIM API requests. Requests are returned
// unsent; executing them is up to the caller.
type RequestBuilder interface {
	Collection(ctx context.Context, resourceType domain.ResourceType, parentCode string) (*resty.Request, error)
	Resource(ctx context.Context, method string, model domain.Model) (*resty.Request, error)
	Codes(ctx context.Context, method string, resourceType domain.ResourceType, codes ...string) (*resty.Request, error)
	Page(ctx context.Context, resourceType domain.ResourceType, pagination endpoint.Pagination) (*resty.Request, error)
	Options(ctx context.Context, attributeCode string, pagination endpoint.Pagination) (*resty.Request, error)
	URL(path string) string
}

type requestBuilder struct {
	config     config.AkeneoConfig
	baseURL    string
	httpClient *resty.Client
	resolver   endpoint.EndpointResolver
	logger     *log.Entry
}

func NewRequestBuilder(cfg config.AkeneoConfig, resolver endpoint.EndpointResolver) RequestBuilder {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &requestBuilder{
		config:     cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: client,
		resolver:   resolver,
		logger:     log.WithField("component", "request_builder"),
	}
}

// Collection addresses a GET on the collection of a resource type.
func (b *requestBuilder) Collection(ctx context.Context, resourceType domain.ResourceType, parentCode string) (*resty.Request, error) {
	path, err := b.resolver.ForResourceType(resourceType, parentCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve collection of %s: %w", resourceType, err)
	}
	return b.newRequest(ctx, http.MethodGet, path), nil
}

// Resource addresses method on a single model instance.
func (b *requestBuilder) Resource(ctx context.Context, method string, model domain.Model) (*resty.Request, error) {
	path, ok := b.resolver.ForResource(model)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoEndpoint, model)
	}
	return b.newRequest(ctx, method, path), nil
}

// Codes addresses method on the instance identified by codes.
func (b *requestBuilder) Codes(ctx context.Context, method string, resourceType domain.ResourceType, codes ...string) (*resty.Request, error) {
	path, err := b.resolver.ForResourceCodes(resourceType, codes...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s %v: %w", resourceType, codes, err)
	}
	return b.newRequest(ctx, method, path), nil
}

// Page addresses a GET on one page of a resource collection. Zero fields of
// pagination fall back to page 1 and the configured page limit.
func (b *requestBuilder) Page(ctx context.Context, resourceType domain.ResourceType, pagination endpoint.Pagination) (*resty.Request, error) {
	path, err := b.resolver.ForPagination(resourceType, b.withDefaults(pagination))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve page of %s: %w", resourceType, err)
	}
	return b.newRequest(ctx, http.MethodGet, path), nil
}

// Options addresses a GET on one page of the options of an attribute.
func (b *requestBuilder) Options(ctx context.Context, attributeCode string, pagination endpoint.Pagination) (*resty.Request, error) {
	path, err := b.resolver.ForResourceType(domain.ResourceTypeAttributeOption, attributeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve options of %s: %w", attributeCode, err)
	}

	pagination = b.withDefaults(pagination)
	req := b.newRequest(ctx, http.MethodGet, path)
	req.SetQueryParams(map[string]string{
		"page":       strconv.Itoa(pagination.Page),
		"limit":      strconv.Itoa(pagination.Limit),
		"with_count": strconv.FormatBool(pagination.WithCount),
	})
	return req, nil
}

// URL joins the base URL and a resolved path.
func (b *requestBuilder) URL(path string) string {
	return b.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (b *requestBuilder) withDefaults(pagination endpoint.Pagination) endpoint.Pagination {
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.Limit < 1 {
		pagination.Limit = b.config.PageLimit
	}
	return pagination
}

func (b *requestBuilder) newRequest(ctx context.Context, method, path string) *resty.Request {
	req := b.httpClient.R().SetContext(ctx)
	req.Method = method
	req.URL = b.URL(path)

	b.logger.Debugf("Addressed %s %s", req.Method, req.URL)
	return req
}
