// Package tagindex queries the AWS Resource Groups Tagging API, the
// cross-service index that returns every resource carrying at least one tag.
package tagindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/rs/zerolog"

	"github.com/louhi-io/louhi/types"
)

// pageSize is the record count requested per GetResources page
const pageSize = 100

// ClientProvider returns a tagging client bound to one region
type ClientProvider func(ctx context.Context, region string) (resourcegroupstaggingapi.GetResourcesAPIClient, error)

// Scanner paginates the tag index for one region at a time
type Scanner struct {
	clients ClientProvider
	logger  zerolog.Logger
}

// NewScanner builds a scanner over the given client provider
func NewScanner(clients ClientProvider, logger zerolog.Logger) *Scanner {
	return &Scanner{clients: clients, logger: logger}
}

// Scan pulls every page of tagged resources for the region. The caller
// treats an error as "zero tagged resources plus a diagnostic"; nothing here
// is fatal to the overall run.
func (s *Scanner) Scan(ctx context.Context, region string) ([]types.TaggedResource, error) {
	client, err := s.clients(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to build tagging client for %s: %w", region, err)
	}

	paginator := resourcegroupstaggingapi.NewGetResourcesPaginator(client, &resourcegroupstaggingapi.GetResourcesInput{
		ResourcesPerPage: aws.Int32(pageSize),
	})

	var resources []types.TaggedResource
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tagged resources in %s: %w", region, err)
		}
		for _, mapping := range page.ResourceTagMappingList {
			record := types.TaggedResource{ARN: aws.ToString(mapping.ResourceARN)}
			if len(mapping.Tags) > 0 {
				record.Tags = make(map[string]string, len(mapping.Tags))
				for _, tag := range mapping.Tags {
					record.Tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
				}
			}
			resources = append(resources, record)
		}
	}

	byService := GroupByService(resources)
	s.logger.Info().
		Str("region", region).
		Int("tagged_resources", len(resources)).
		Int("services", len(byService)).
		Msg("tag index scan complete")
	for service, arns := range byService {
		s.logger.Debug().
			Str("region", region).
			Str("service", service).
			Int("tagged_resources", len(arns)).
			Msg("tagged resources by service")
	}

	return resources, nil
}

// GroupByService buckets ARNs by their owning service segment. Used for the
// progress report only; the persisted result keeps the flat ARN list.
func GroupByService(resources []types.TaggedResource) map[string][]string {
	byService := make(map[string][]string)
	for _, r := range resources {
		service := ServiceFromARN(r.ARN)
		byService[service] = append(byService[service], r.ARN)
	}
	return byService
}

// ServiceFromARN extracts the service segment of an ARN
// (arn:partition:service:region:account:resource)
func ServiceFromARN(arn string) string {
	parts := strings.Split(arn, ":")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}
