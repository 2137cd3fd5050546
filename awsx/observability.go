package awsx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

func cloudtrailCalls(cfg aws.Config) map[string]invokeFn {
	c := cloudtrail.NewFromConfig(cfg)
	return map[string]invokeFn{
		"DescribeTrails": func(ctx context.Context) (any, error) {
			return c.DescribeTrails(ctx, &cloudtrail.DescribeTrailsInput{})
		},
		"ListTrails": func(ctx context.Context) (any, error) {
			return c.ListTrails(ctx, &cloudtrail.ListTrailsInput{})
		},
		"ListPublicKeys": func(ctx context.Context) (any, error) {
			return c.ListPublicKeys(ctx, &cloudtrail.ListPublicKeysInput{})
		},
		"ListEventDataStores": func(ctx context.Context) (any, error) {
			return c.ListEventDataStores(ctx, &cloudtrail.ListEventDataStoresInput{})
		},
		"ListChannels": func(ctx context.Context) (any, error) {
			return c.ListChannels(ctx, &cloudtrail.ListChannelsInput{})
		},
	}
}

func cloudwatchlogsCalls(cfg aws.Config) map[string]invokeFn {
	c := cloudwatchlogs.NewFromConfig(cfg)
	return map[string]invokeFn{
		"DescribeLogGroups": func(ctx context.Context) (any, error) {
			return c.DescribeLogGroups(ctx, &cloudwatchlogs.DescribeLogGroupsInput{})
		},
		"DescribeDestinations": func(ctx context.Context) (any, error) {
			return c.DescribeDestinations(ctx, &cloudwatchlogs.DescribeDestinationsInput{})
		},
		"DescribeExportTasks": func(ctx context.Context) (any, error) {
			return c.DescribeExportTasks(ctx, &cloudwatchlogs.DescribeExportTasksInput{})
		},
		"DescribeMetricFilters": func(ctx context.Context) (any, error) {
			return c.DescribeMetricFilters(ctx, &cloudwatchlogs.DescribeMetricFiltersInput{})
		},
		"DescribeQueries": func(ctx context.Context) (any, error) {
			return c.DescribeQueries(ctx, &cloudwatchlogs.DescribeQueriesInput{})
		},
		"DescribeResourcePolicies": func(ctx context.Context) (any, error) {
			return c.DescribeResourcePolicies(ctx, &cloudwatchlogs.DescribeResourcePoliciesInput{})
		},
	}
}

func sqsCalls(cfg aws.Config) map[string]invokeFn {
	c := sqs.NewFromConfig(cfg)
	return map[string]invokeFn{
		"ListQueues": func(ctx context.Context) (any, error) {
			return c.ListQueues(ctx, &sqs.ListQueuesInput{})
		},
	}
}
