package endpoint

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"akeneo/endpoints/internal/domain"

	log "github.com/sirupsen/logrus"
)

type EndpointResolver interface {
	ForResourceType(resourceType domain.ResourceType, parentCode string) (string, error)
	ForResource(model domain.Model) (string, bool)
	ForResourceCodes(resourceType domain.ResourceType, codes ...string) (string, error)
	ForPagination(resourceType domain.ResourceType, pagination Pagination) (string, error)
	ForPaginationWithParent(resourceType domain.ResourceType, parentCode string, pagination Pagination) (string, error)
}

type Option func(*Resolver)

func WithLogger(logger *log.Entry) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// Resolver maps PIM resource types and instances to REST paths.
// It is safe for concurrent use.
type Resolver struct {
	endpoints Endpoints
	logger    *log.Entry

	// domain.ResourceType -> endpoint prefix, written once per type
	typeToEndpoint sync.Map
}

var _ EndpointResolver = (*Resolver)(nil)

func NewResolver(endpoints Endpoints, opts ...Option) *Resolver {
	r := &Resolver{
		endpoints: endpoints,
		logger:    log.WithField("component", "endpoint_resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ForResourceType returns the collection path of a resource type.
// Attribute options live under their attribute, so parentCode is only used
// for domain.ResourceTypeAttributeOption.
func (r *Resolver) ForResourceType(resourceType domain.ResourceType, parentCode string) (string, error) {
	endpoint, err := r.resourceEndpoint(resourceType)
	if err != nil {
		return "", err
	}

	if resourceType == domain.ResourceTypeAttributeOption {
		return fmt.Sprintf("%s/%s/options", endpoint, parentCode), nil
	}
	return endpoint, nil
}

// MustForResourceType is like ForResourceType but panics on an unsupported
// resource type.
func (r *Resolver) MustForResourceType(resourceType domain.ResourceType, parentCode string) string {
	endpoint, err := r.ForResourceType(resourceType, parentCode)
	if err != nil {
		panic(err)
	}
	return endpoint
}

// ForResource returns the path of a single instance. The boolean is false
// when model is nil or not one of the five known variants.
func (r *Resolver) ForResource(model domain.Model) (string, bool) {
	var segments []string

	switch m := model.(type) {
	case *domain.Product:
		if m != nil {
			segments = []string{m.Identifier}
		}
	case *domain.Attribute:
		if m != nil {
			segments = []string{m.Code}
		}
	case *domain.AttributeOption:
		if m != nil {
			segments = []string{m.Attribute, "option", m.Code}
		}
	case *domain.Family:
		if m != nil {
			segments = []string{m.Code}
		}
	case *domain.Category:
		if m != nil {
			segments = []string{m.Code}
		}
	}

	if segments == nil {
		r.logger.Debugf("No endpoint for model of type %T", model)
		return "", false
	}

	endpoint, err := r.resourceEndpoint(model.ResourceType())
	if err != nil {
		r.logger.Debugf("No endpoint for model of type %T: %v", model, err)
		return "", false
	}

	return endpoint + "/" + strings.Join(segments, "/"), true
}

// ForResourceCodes formats the instance path of a resource type from
// positional codes: one code for most types, the attribute code and the
// option code for attribute options.
func (r *Resolver) ForResourceCodes(resourceType domain.ResourceType, codes ...string) (string, error) {
	format, placeholders, err := r.resourceFormat(resourceType)
	if err != nil {
		return "", err
	}

	if len(codes) != placeholders {
		return "", fmt.Errorf("%w: %s expects %d code(s), got %d",
			ErrFormatMismatch, resourceType, placeholders, len(codes))
	}

	oldnew := make([]string, 0, 2*len(codes))
	for i, code := range codes {
		oldnew = append(oldnew, placeholder(i), code)
	}

	return strings.NewReplacer(oldnew...).Replace(format), nil
}

// ForPagination returns the collection path of a resource type with page,
// limit and with_count query parameters.
func (r *Resolver) ForPagination(resourceType domain.ResourceType, pagination Pagination) (string, error) {
	endpoint, err := r.ForResourceType(resourceType, "")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s?page=%d&limit=%d&with_count=%t",
		endpoint, pagination.Page, pagination.Limit, pagination.WithCount), nil
}

// ForPaginationWithParent produces the same path as ForPagination.
// parentCode is not applied to the collection path.
func (r *Resolver) ForPaginationWithParent(resourceType domain.ResourceType, parentCode string, pagination Pagination) (string, error) {
	return r.ForPagination(resourceType, pagination)
}

// CacheSize returns the number of resource types whose endpoint has been resolved.
func (r *Resolver) CacheSize() int {
	size := 0
	r.typeToEndpoint.Range(func(_, _ any) bool {
		size++
		return true
	})
	return size
}

func (r *Resolver) resourceFormat(resourceType domain.ResourceType) (string, int, error) {
	format, err := r.resourceTypeFormat(resourceType)
	if err != nil {
		return "", 0, err
	}

	if resourceType == domain.ResourceTypeAttributeOption {
		return format + "/" + placeholder(1), 2, nil
	}
	return format + "/" + placeholder(0), 1, nil
}

func (r *Resolver) resourceTypeFormat(resourceType domain.ResourceType) (string, error) {
	endpoint, err := r.resourceEndpoint(resourceType)
	if err != nil {
		return "", err
	}

	if resourceType == domain.ResourceTypeAttributeOption {
		return endpoint + "/" + placeholder(0) + "/options", nil
	}
	return endpoint, nil
}

func (r *Resolver) resourceEndpoint(resourceType domain.ResourceType) (string, error) {
	if endpoint, ok := r.typeToEndpoint.Load(resourceType); ok {
		return endpoint.(string), nil
	}

	endpoint, err := r.lookupEndpoint(resourceType)
	if err != nil {
		return "", err
	}

	actual, loaded := r.typeToEndpoint.LoadOrStore(resourceType, endpoint)
	if !loaded {
		r.logger.Debugf("Cached endpoint %q for resource type %s", endpoint, resourceType)
	}
	return actual.(string), nil
}

// lookupEndpoint checks the resource types in a fixed order; the first
// match wins.
func (r *Resolver) lookupEndpoint(resourceType domain.ResourceType) (string, error) {
	switch resourceType {
	case domain.ResourceTypeProduct:
		return r.endpoints.Products, nil
	case domain.ResourceTypeAttribute:
		return r.endpoints.Attributes, nil
	case domain.ResourceTypeFamily:
		return r.endpoints.Families, nil
	case domain.ResourceTypeCategory:
		return r.endpoints.Categories, nil
	case domain.ResourceTypeAttributeOption:
		return r.endpoints.Attributes, nil
	}

	return "", fmt.Errorf("%w: unable to find API endpoint for type %q", ErrUnsupportedResourceType, resourceType)
}

func placeholder(i int) string {
	return "{" + strconv.Itoa(i) + "}"
}
