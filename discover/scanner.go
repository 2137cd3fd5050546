package discover

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/louhi-io/louhi/types"
)

// ServiceScanner runs classify, invoke, extract for one (service, region)
// pair. Operations are processed sequentially; concurrency lives one level
// up, at the service fan-out.
type ServiceScanner struct {
	classifier *Classifier
	invoker    Invoker
	logger     zerolog.Logger
}

// NewServiceScanner builds a scanner
func NewServiceScanner(classifier *Classifier, invoker Invoker, logger zerolog.Logger) *ServiceScanner {
	return &ServiceScanner{
		classifier: classifier,
		invoker:    invoker,
		logger:     logger,
	}
}

// Scan invokes every classified operation of the client and accumulates
// non-empty extraction results. It never fails: expected skips are silent,
// everything else becomes a diagnostic plus zero findings for that operation.
func (s *ServiceScanner) Scan(ctx context.Context, client ServiceClient, region string) types.ServiceScanResult {
	service := client.ServiceName()
	result := types.ServiceScanResult{}

	for _, operation := range s.classifier.ListingOperations(client.Operations()) {
		raw, invokeErr := s.invoker.Invoke(ctx, client, operation)
		if invokeErr != nil {
			if invokeErr.ExpectedSkip() {
				continue
			}
			s.logger.Warn().
				Str("service", service).
				Str("operation", operation).
				Str("region", region).
				Str("kind", invokeErr.Kind.String()).
				Err(invokeErr.Err).
				Msg("operation failed")
			continue
		}

		bag := ExtractResources(raw)
		if len(bag) == 0 {
			continue
		}
		result[operation] = bag
		s.logger.Info().
			Str("service", service).
			Str("operation", operation).
			Str("region", region).
			Int("resources", bag.Count()).
			Msg("resources found")
	}

	return result
}
