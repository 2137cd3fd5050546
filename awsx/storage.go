package awsx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func s3Calls(cfg aws.Config) map[string]invokeFn {
	c := s3.NewFromConfig(cfg)
	return map[string]invokeFn{
		// Denylisted by default; callable when the denylist is overridden
		"ListBuckets": func(ctx context.Context) (any, error) {
			return c.ListBuckets(ctx, &s3.ListBucketsInput{})
		},
	}
}

func ecrCalls(cfg aws.Config) map[string]invokeFn {
	c := ecr.NewFromConfig(cfg)
	return map[string]invokeFn{
		"DescribeRepositories": func(ctx context.Context) (any, error) {
			return c.DescribeRepositories(ctx, &ecr.DescribeRepositoriesInput{})
		},
		"DescribeRegistry": func(ctx context.Context) (any, error) {
			return c.DescribeRegistry(ctx, &ecr.DescribeRegistryInput{})
		},
	}
}
