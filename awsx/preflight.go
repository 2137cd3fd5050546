package awsx

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// CallerIdentityAPI is the STS surface the preflight needs
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Preflight validates that usable credentials are configured before any
// scanning begins
type Preflight struct {
	client CallerIdentityAPI
}

// NewPreflight builds a preflight check over an STS client
func NewPreflight(client CallerIdentityAPI) *Preflight {
	return &Preflight{client: client}
}

// NewPreflightFromEnv builds a preflight check from the default credential
// chain
func NewPreflightFromEnv(ctx context.Context) (*Preflight, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewPreflight(sts.NewFromConfig(cfg)), nil
}

// Check returns the caller's ARN, or an error when credentials are missing
// or unusable. The coordinator must not start on error.
func (p *Preflight) Check(ctx context.Context) (string, error) {
	out, err := p.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("AWS credentials not valid or insufficient permissions: %w", err)
	}
	return aws.ToString(out.Arn), nil
}
