package awsx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/memorydb"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
)

func rdsCalls(cfg aws.Config) map[string]invokeFn {
	c := rds.NewFromConfig(cfg)
	return map[string]invokeFn{
		"DescribeDBInstances": func(ctx context.Context) (any, error) {
			return c.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{})
		},
		"DescribeDBClusters": func(ctx context.Context) (any, error) {
			return c.DescribeDBClusters(ctx, &rds.DescribeDBClustersInput{})
		},
		"DescribeDBSnapshots": func(ctx context.Context) (any, error) {
			return c.DescribeDBSnapshots(ctx, &rds.DescribeDBSnapshotsInput{})
		},
		"DescribeDBClusterSnapshots": func(ctx context.Context) (any, error) {
			return c.DescribeDBClusterSnapshots(ctx, &rds.DescribeDBClusterSnapshotsInput{})
		},
		"DescribeDBSubnetGroups": func(ctx context.Context) (any, error) {
			return c.DescribeDBSubnetGroups(ctx, &rds.DescribeDBSubnetGroupsInput{})
		},
		"DescribeDBParameterGroups": func(ctx context.Context) (any, error) {
			return c.DescribeDBParameterGroups(ctx, &rds.DescribeDBParameterGroupsInput{})
		},
		"DescribeEventSubscriptions": func(ctx context.Context) (any, error) {
			return c.DescribeEventSubscriptions(ctx, &rds.DescribeEventSubscriptionsInput{})
		},
		"DescribeGlobalClusters": func(ctx context.Context) (any, error) {
			return c.DescribeGlobalClusters(ctx, &rds.DescribeGlobalClustersInput{})
		},
		"DescribeOptionGroups": func(ctx context.Context) (any, error) {
			return c.DescribeOptionGroups(ctx, &rds.DescribeOptionGroupsInput{})
		},
	}
}

func dynamodbCalls(cfg aws.Config) map[string]invokeFn {
	c := dynamodb.NewFromConfig(cfg)
	return map[string]invokeFn{
		"ListTables": func(ctx context.Context) (any, error) {
			return c.ListTables(ctx, &dynamodb.ListTablesInput{})
		},
		"ListBackups": func(ctx context.Context) (any, error) {
			return c.ListBackups(ctx, &dynamodb.ListBackupsInput{})
		},
		"ListGlobalTables": func(ctx context.Context) (any, error) {
			return c.ListGlobalTables(ctx, &dynamodb.ListGlobalTablesInput{})
		},
		"DescribeLimits": func(ctx context.Context) (any, error) {
			return c.DescribeLimits(ctx, &dynamodb.DescribeLimitsInput{})
		},
		"DescribeEndpoints": func(ctx context.Context) (any, error) {
			return c.DescribeEndpoints(ctx, &dynamodb.DescribeEndpointsInput{})
		},
	}
}

func redshiftCalls(cfg aws.Config) map[string]invokeFn {
	c := redshift.NewFromConfig(cfg)
	return map[string]invokeFn{
		"DescribeClusters": func(ctx context.Context) (any, error) {
			return c.DescribeClusters(ctx, &redshift.DescribeClustersInput{})
		},
		"DescribeClusterSnapshots": func(ctx context.Context) (any, error) {
			return c.DescribeClusterSnapshots(ctx, &redshift.DescribeClusterSnapshotsInput{})
		},
		"DescribeClusterSubnetGroups": func(ctx context.Context) (any, error) {
			return c.DescribeClusterSubnetGroups(ctx, &redshift.DescribeClusterSubnetGroupsInput{})
		},
		"DescribeClusterParameterGroups": func(ctx context.Context) (any, error) {
			return c.DescribeClusterParameterGroups(ctx, &redshift.DescribeClusterParameterGroupsInput{})
		},
		"DescribeEventSubscriptions": func(ctx context.Context) (any, error) {
			return c.DescribeEventSubscriptions(ctx, &redshift.DescribeEventSubscriptionsInput{})
		},
		"DescribeSnapshotCopyGrants": func(ctx context.Context) (any, error) {
			return c.DescribeSnapshotCopyGrants(ctx, &redshift.DescribeSnapshotCopyGrantsInput{})
		},
	}
}

func memorydbCalls(cfg aws.Config) map[string]invokeFn {
	c := memorydb.NewFromConfig(cfg)
	return map[string]invokeFn{
		"DescribeClusters": func(ctx context.Context) (any, error) {
			return c.DescribeClusters(ctx, &memorydb.DescribeClustersInput{})
		},
		"DescribeSnapshots": func(ctx context.Context) (any, error) {
			return c.DescribeSnapshots(ctx, &memorydb.DescribeSnapshotsInput{})
		},
		"DescribeSubnetGroups": func(ctx context.Context) (any, error) {
			return c.DescribeSubnetGroups(ctx, &memorydb.DescribeSubnetGroupsInput{})
		},
		"DescribeACLs": func(ctx context.Context) (any, error) {
			return c.DescribeACLs(ctx, &memorydb.DescribeACLsInput{})
		},
		"DescribeParameterGroups": func(ctx context.Context) (any, error) {
			return c.DescribeParameterGroups(ctx, &memorydb.DescribeParameterGroupsInput{})
		},
		"DescribeUsers": func(ctx context.Context) (any, error) {
			return c.DescribeUsers(ctx, &memorydb.DescribeUsersInput{})
		},
	}
}
