package awsx

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/rs/zerolog"
)

// regionSeed is the region used for the region enumeration call itself
const regionSeed = "us-east-1"

// defaultRegions is the fallback when region enumeration fails
var defaultRegions = []string{"us-east-1", "us-east-2", "us-west-1", "us-west-2", "eu-west-1"}

// DescribeRegionsAPI is the EC2 surface region enumeration needs
type DescribeRegionsAPI interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// RegionEnumerator produces the ordered region list for a scan
type RegionEnumerator struct {
	client DescribeRegionsAPI
	logger zerolog.Logger
}

// NewRegionEnumerator builds an enumerator over an EC2 client
func NewRegionEnumerator(client DescribeRegionsAPI, logger zerolog.Logger) *RegionEnumerator {
	return &RegionEnumerator{client: client, logger: logger}
}

// NewRegionEnumeratorFromEnv builds an enumerator from the default
// credential chain
func NewRegionEnumeratorFromEnv(ctx context.Context, logger zerolog.Logger) (*RegionEnumerator, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(regionSeed))
	if err != nil {
		return nil, err
	}
	return NewRegionEnumerator(ec2.NewFromConfig(cfg), logger), nil
}

// Regions returns every enabled region, sorted for a stable scan order.
// Enumeration failure falls back to the default region set with a
// diagnostic.
func (r *RegionEnumerator) Regions(ctx context.Context) []string {
	out, err := r.client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		r.logger.Warn().Err(err).Strs("fallback", defaultRegions).Msg("region enumeration failed, using defaults")
		return append([]string(nil), defaultRegions...)
	}

	regions := make([]string, 0, len(out.Regions))
	for _, region := range out.Regions {
		regions = append(regions, aws.ToString(region.RegionName))
	}
	sort.Strings(regions)
	return regions
}
