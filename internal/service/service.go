package service

import (
	"context"
	"fmt"

	"akeneo/endpoints/internal/client"
	"akeneo/endpoints/internal/domain"
	"akeneo/endpoints/internal/endpoint"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// CollectionEndpoint is the resolved collection path and URL of one resource type.
type CollectionEndpoint struct {
	ResourceType domain.ResourceType
	Path         string
	URL          string
}

type Service struct {
	resolver endpoint.EndpointResolver
	requests client.RequestBuilder
}

func NewService(resolver endpoint.EndpointResolver, requests client.RequestBuilder) *Service {
	return &Service{
		resolver: resolver,
		requests: requests,
	}
}

// CollectionEndpoints resolves the collection endpoint of every resource
// type concurrently. Attribute options are resolved under parentCode and
// skipped when it is empty. Results follow domain.ResourceTypes order.
func (s *Service) CollectionEndpoints(ctx context.Context, parentCode string) ([]CollectionEndpoint, error) {
	results := make([]*CollectionEndpoint, len(domain.ResourceTypes))

	errGroup, ctx := errgroup.WithContext(ctx)

	for i, resourceType := range domain.ResourceTypes {
		if resourceType == domain.ResourceTypeAttributeOption && parentCode == "" {
			log.Debugf("Skipping %s: no parent attribute code", resourceType.GetResourceName())
			continue
		}

		i, resourceType := i, resourceType
		errGroup.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path, err := s.resolver.ForResourceType(resourceType, parentCode)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", resourceType, err)
			}

			results[i] = &CollectionEndpoint{
				ResourceType: resourceType,
				Path:         path,
				URL:          s.requests.URL(path),
			}
			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}

	endpoints := make([]CollectionEndpoint, 0, len(results))
	for _, result := range results {
		if result != nil {
			endpoints = append(endpoints, *result)
		}
	}

	log.Debugf("Resolved %d collection endpoints", len(endpoints))
	return endpoints, nil
}
