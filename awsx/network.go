package awsx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/route53"
)

func elbv2Calls(cfg aws.Config) map[string]invokeFn {
	c := elasticloadbalancingv2.NewFromConfig(cfg)
	return map[string]invokeFn{
		"DescribeLoadBalancers": func(ctx context.Context) (any, error) {
			return c.DescribeLoadBalancers(ctx, &elasticloadbalancingv2.DescribeLoadBalancersInput{})
		},
		"DescribeTargetGroups": func(ctx context.Context) (any, error) {
			return c.DescribeTargetGroups(ctx, &elasticloadbalancingv2.DescribeTargetGroupsInput{})
		},
		"DescribeAccountLimits": func(ctx context.Context) (any, error) {
			return c.DescribeAccountLimits(ctx, &elasticloadbalancingv2.DescribeAccountLimitsInput{})
		},
	}
}

func route53Calls(cfg aws.Config) map[string]invokeFn {
	c := route53.NewFromConfig(cfg)
	return map[string]invokeFn{
		"ListHostedZones": func(ctx context.Context) (any, error) {
			return c.ListHostedZones(ctx, &route53.ListHostedZonesInput{})
		},
		"ListHostedZonesByName": func(ctx context.Context) (any, error) {
			return c.ListHostedZonesByName(ctx, &route53.ListHostedZonesByNameInput{})
		},
		"ListHealthChecks": func(ctx context.Context) (any, error) {
			return c.ListHealthChecks(ctx, &route53.ListHealthChecksInput{})
		},
		"ListGeoLocations": func(ctx context.Context) (any, error) {
			return c.ListGeoLocations(ctx, &route53.ListGeoLocationsInput{})
		},
		"ListReusableDelegationSets": func(ctx context.Context) (any, error) {
			return c.ListReusableDelegationSets(ctx, &route53.ListReusableDelegationSetsInput{})
		},
		"ListQueryLoggingConfigs": func(ctx context.Context) (any, error) {
			return c.ListQueryLoggingConfigs(ctx, &route53.ListQueryLoggingConfigsInput{})
		},
		"ListTrafficPolicies": func(ctx context.Context) (any, error) {
			return c.ListTrafficPolicies(ctx, &route53.ListTrafficPoliciesInput{})
		},
	}
}
