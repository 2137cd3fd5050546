// Package awsx binds the discovery engine to AWS: it builds region-bound
// service clients over aws-sdk-go-v2, classifies SDK failures into the
// engine's closed error kinds, and provides the credential preflight and
// region enumeration collaborators.
package awsx

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"

	"github.com/louhi-io/louhi/catalog"
	"github.com/louhi-io/louhi/discover"
	"github.com/louhi-io/louhi/tagindex"
)

// Factory builds region-bound service clients. One aws.Config is loaded and
// cached per region; typed SDK clients are constructed on demand.
type Factory struct {
	catalog *catalog.Catalog

	mu      sync.Mutex
	configs map[string]aws.Config
}

// NewFactory builds a factory over the given service catalog
func NewFactory(cat *catalog.Catalog) *Factory {
	return &Factory{
		catalog: cat,
		configs: make(map[string]aws.Config),
	}
}

// Services returns the sorted service namespaces the factory can scan
func (f *Factory) Services() []string {
	return f.catalog.Services()
}

// Client returns a service client bound to (service, region). The operation
// set comes from the catalog; zero-argument invocation goes through the
// service's call table.
func (f *Factory) Client(ctx context.Context, service, region string) (discover.ServiceClient, error) {
	operations := f.catalog.Operations(service)
	if operations == nil {
		return nil, fmt.Errorf("unknown service %q", service)
	}

	cfg, err := f.regionConfig(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for %s: %w", region, err)
	}

	calls := callTableFor(service, cfg)
	if calls == nil {
		return nil, fmt.Errorf("no client available for service %q", service)
	}

	return &serviceClient{
		service:    service,
		region:     region,
		operations: operations,
		calls:      calls,
	}, nil
}

// TaggingClients returns a region-bound tagging client provider for the tag
// index scanner
func (f *Factory) TaggingClients() tagindex.ClientProvider {
	return func(ctx context.Context, region string) (resourcegroupstaggingapi.GetResourcesAPIClient, error) {
		cfg, err := f.regionConfig(ctx, region)
		if err != nil {
			return nil, err
		}
		return resourcegroupstaggingapi.NewFromConfig(cfg), nil
	}
}

func (f *Factory) regionConfig(ctx context.Context, region string) (aws.Config, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cfg, ok := f.configs[region]; ok {
		return cfg, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return aws.Config{}, err
	}
	f.configs[region] = cfg
	return cfg, nil
}

// callTableFor returns the zero-argument call table for a service. The
// tables live in per-domain files alongside this one.
func callTableFor(service string, cfg aws.Config) map[string]invokeFn {
	switch service {
	case "ec2":
		return ec2Calls(cfg)
	case "autoscaling":
		return autoscalingCalls(cfg)
	case "lambda":
		return lambdaCalls(cfg)
	case "eks":
		return eksCalls(cfg)
	case "ecs":
		return ecsCalls(cfg)
	case "rds":
		return rdsCalls(cfg)
	case "dynamodb":
		return dynamodbCalls(cfg)
	case "redshift":
		return redshiftCalls(cfg)
	case "memorydb":
		return memorydbCalls(cfg)
	case "elasticloadbalancingv2":
		return elbv2Calls(cfg)
	case "route53":
		return route53Calls(cfg)
	case "s3":
		return s3Calls(cfg)
	case "ecr":
		return ecrCalls(cfg)
	case "iam":
		return iamCalls(cfg)
	case "kms":
		return kmsCalls(cfg)
	case "sqs":
		return sqsCalls(cfg)
	case "cloudtrail":
		return cloudtrailCalls(cfg)
	case "cloudwatchlogs":
		return cloudwatchlogsCalls(cfg)
	default:
		return nil
	}
}
