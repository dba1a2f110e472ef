package endpoint

import "akeneo/endpoints/internal/domain"

// TypeEndpoint is ForResourceType keyed by the model type T.
func TypeEndpoint[T domain.Model](r EndpointResolver, parentCode string) (string, error) {
	return r.ForResourceType(domain.ResourceTypeOf[T](), parentCode)
}

// FormattedEndpoint is ForResourceCodes keyed by the model type T.
func FormattedEndpoint[T domain.Model](r EndpointResolver, codes ...string) (string, error) {
	return r.ForResourceCodes(domain.ResourceTypeOf[T](), codes...)
}

// PaginatedEndpoint is ForPagination keyed by the model type T.
func PaginatedEndpoint[T domain.Model](r EndpointResolver, pagination Pagination) (string, error) {
	return r.ForPagination(domain.ResourceTypeOf[T](), pagination)
}

// PaginatedEndpointWithParent is ForPaginationWithParent keyed by the model type T.
func PaginatedEndpointWithParent[T domain.Model](r EndpointResolver, parentCode string, pagination Pagination) (string, error) {
	return r.ForPaginationWithParent(domain.ResourceTypeOf[T](), parentCode, pagination)
}
