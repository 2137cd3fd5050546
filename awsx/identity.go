package awsx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/kms"
)

func iamCalls(cfg aws.Config) map[string]invokeFn {
	c := iam.NewFromConfig(cfg)
	return map[string]invokeFn{
		"ListUsers": func(ctx context.Context) (any, error) {
			return c.ListUsers(ctx, &iam.ListUsersInput{})
		},
		"ListRoles": func(ctx context.Context) (any, error) {
			return c.ListRoles(ctx, &iam.ListRolesInput{})
		},
		"ListGroups": func(ctx context.Context) (any, error) {
			return c.ListGroups(ctx, &iam.ListGroupsInput{})
		},
		"ListPolicies": func(ctx context.Context) (any, error) {
			return c.ListPolicies(ctx, &iam.ListPoliciesInput{})
		},
		"ListInstanceProfiles": func(ctx context.Context) (any, error) {
			return c.ListInstanceProfiles(ctx, &iam.ListInstanceProfilesInput{})
		},
		"ListOpenIDConnectProviders": func(ctx context.Context) (any, error) {
			return c.ListOpenIDConnectProviders(ctx, &iam.ListOpenIDConnectProvidersInput{})
		},
		"ListSAMLProviders": func(ctx context.Context) (any, error) {
			return c.ListSAMLProviders(ctx, &iam.ListSAMLProvidersInput{})
		},
		"ListServerCertificates": func(ctx context.Context) (any, error) {
			return c.ListServerCertificates(ctx, &iam.ListServerCertificatesInput{})
		},
		"ListAccountAliases": func(ctx context.Context) (any, error) {
			return c.ListAccountAliases(ctx, &iam.ListAccountAliasesInput{})
		},
		"ListMFADevices": func(ctx context.Context) (any, error) {
			return c.ListMFADevices(ctx, &iam.ListMFADevicesInput{})
		},
		"ListAccessKeys": func(ctx context.Context) (any, error) {
			return c.ListAccessKeys(ctx, &iam.ListAccessKeysInput{})
		},
	}
}

func kmsCalls(cfg aws.Config) map[string]invokeFn {
	c := kms.NewFromConfig(cfg)
	return map[string]invokeFn{
		"ListKeys": func(ctx context.Context) (any, error) {
			return c.ListKeys(ctx, &kms.ListKeysInput{})
		},
		"ListAliases": func(ctx context.Context) (any, error) {
			return c.ListAliases(ctx, &kms.ListAliasesInput{})
		},
	}
}
