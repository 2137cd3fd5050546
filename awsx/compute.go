package awsx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

func ec2Calls(cfg aws.Config) map[string]invokeFn {
	c := ec2.NewFromConfig(cfg)
	return map[string]invokeFn{
		"DescribeInstances": func(ctx context.Context) (any, error) {
			return c.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
		},
		"DescribeVolumes": func(ctx context.Context) (any, error) {
			return c.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{})
		},
		"DescribeVpcs": func(ctx context.Context) (any, error) {
			return c.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{})
		},
		"DescribeSubnets": func(ctx context.Context) (any, error) {
			return c.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{})
		},
		"DescribeSecurityGroups": func(ctx context.Context) (any, error) {
			return c.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{})
		},
		"DescribeAddresses": func(ctx context.Context) (any, error) {
			return c.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
		},
		"DescribeNatGateways": func(ctx context.Context) (any, error) {
			return c.DescribeNatGateways(ctx, &ec2.DescribeNatGatewaysInput{})
		},
		"DescribeKeyPairs": func(ctx context.Context) (any, error) {
			return c.DescribeKeyPairs(ctx, &ec2.DescribeKeyPairsInput{})
		},
		"DescribeInternetGateways": func(ctx context.Context) (any, error) {
			return c.DescribeInternetGateways(ctx, &ec2.DescribeInternetGatewaysInput{})
		},
		"DescribeRouteTables": func(ctx context.Context) (any, error) {
			return c.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{})
		},
		"DescribeNetworkInterfaces": func(ctx context.Context) (any, error) {
			return c.DescribeNetworkInterfaces(ctx, &ec2.DescribeNetworkInterfacesInput{})
		},
		"DescribeVpcEndpoints": func(ctx context.Context) (any, error) {
			return c.DescribeVpcEndpoints(ctx, &ec2.DescribeVpcEndpointsInput{})
		},
		"DescribeAvailabilityZones": func(ctx context.Context) (any, error) {
			return c.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{})
		},
		// Bare calls return every public snapshot and image, so these two are
		// scoped to the account
		"DescribeSnapshots": func(ctx context.Context) (any, error) {
			return c.DescribeSnapshots(ctx, &ec2.DescribeSnapshotsInput{OwnerIds: []string{"self"}})
		},
		"DescribeImages": func(ctx context.Context) (any, error) {
			return c.DescribeImages(ctx, &ec2.DescribeImagesInput{Owners: []string{"self"}})
		},
	}
}

func autoscalingCalls(cfg aws.Config) map[string]invokeFn {
	c := autoscaling.NewFromConfig(cfg)
	return map[string]invokeFn{
		"DescribeAutoScalingGroups": func(ctx context.Context) (any, error) {
			return c.DescribeAutoScalingGroups(ctx, &autoscaling.DescribeAutoScalingGroupsInput{})
		},
		"DescribeAutoScalingInstances": func(ctx context.Context) (any, error) {
			return c.DescribeAutoScalingInstances(ctx, &autoscaling.DescribeAutoScalingInstancesInput{})
		},
		"DescribeLaunchConfigurations": func(ctx context.Context) (any, error) {
			return c.DescribeLaunchConfigurations(ctx, &autoscaling.DescribeLaunchConfigurationsInput{})
		},
		"DescribePolicies": func(ctx context.Context) (any, error) {
			return c.DescribePolicies(ctx, &autoscaling.DescribePoliciesInput{})
		},
		"DescribeScalingActivities": func(ctx context.Context) (any, error) {
			return c.DescribeScalingActivities(ctx, &autoscaling.DescribeScalingActivitiesInput{})
		},
		"DescribeScheduledActions": func(ctx context.Context) (any, error) {
			return c.DescribeScheduledActions(ctx, &autoscaling.DescribeScheduledActionsInput{})
		},
	}
}

func lambdaCalls(cfg aws.Config) map[string]invokeFn {
	c := lambda.NewFromConfig(cfg)
	return map[string]invokeFn{
		"ListFunctions": func(ctx context.Context) (any, error) {
			return c.ListFunctions(ctx, &lambda.ListFunctionsInput{})
		},
		"ListLayers": func(ctx context.Context) (any, error) {
			return c.ListLayers(ctx, &lambda.ListLayersInput{})
		},
		"ListEventSourceMappings": func(ctx context.Context) (any, error) {
			return c.ListEventSourceMappings(ctx, &lambda.ListEventSourceMappingsInput{})
		},
		"ListCodeSigningConfigs": func(ctx context.Context) (any, error) {
			return c.ListCodeSigningConfigs(ctx, &lambda.ListCodeSigningConfigsInput{})
		},
	}
}

func eksCalls(cfg aws.Config) map[string]invokeFn {
	c := eks.NewFromConfig(cfg)
	return map[string]invokeFn{
		"ListClusters": func(ctx context.Context) (any, error) {
			return c.ListClusters(ctx, &eks.ListClustersInput{})
		},
		"DescribeAddonVersions": func(ctx context.Context) (any, error) {
			return c.DescribeAddonVersions(ctx, &eks.DescribeAddonVersionsInput{})
		},
	}
}

func ecsCalls(cfg aws.Config) map[string]invokeFn {
	c := ecs.NewFromConfig(cfg)
	return map[string]invokeFn{
		"ListClusters": func(ctx context.Context) (any, error) {
			return c.ListClusters(ctx, &ecs.ListClustersInput{})
		},
		"ListTaskDefinitions": func(ctx context.Context) (any, error) {
			return c.ListTaskDefinitions(ctx, &ecs.ListTaskDefinitionsInput{})
		},
		"ListTaskDefinitionFamilies": func(ctx context.Context) (any, error) {
			return c.ListTaskDefinitionFamilies(ctx, &ecs.ListTaskDefinitionFamiliesInput{})
		},
		"ListAccountSettings": func(ctx context.Context) (any, error) {
			return c.ListAccountSettings(ctx, &ecs.ListAccountSettingsInput{})
		},
		"ListServices": func(ctx context.Context) (any, error) {
			return c.ListServices(ctx, &ecs.ListServicesInput{})
		},
		"DescribeClusters": func(ctx context.Context) (any, error) {
			return c.DescribeClusters(ctx, &ecs.DescribeClustersInput{})
		},
	}
}
