package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// LambdaInvoker invokes AWS Lambda functions with request/response semantics.
// It performs a single attempt per call: SDK retries are disabled so the relay's
// one-request-one-invocation contract holds, and no timeout is imposed beyond
// the caller's context.
type LambdaInvoker struct {
	client *awslambda.Client
}

// NewLambdaInvoker creates a Lambda invoker using the default AWS credential chain
func NewLambdaInvoker(ctx context.Context, region string) (*LambdaInvoker, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMaxAttempts(1),
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &LambdaInvoker{client: awslambda.NewFromConfig(cfg)}, nil
}

// Invoke calls the named function synchronously and returns its raw output payload.
// A function-level failure (the service accepted the call but the function errored)
// is reported as an error carrying the function's own error document.
func (i *LambdaInvoker) Invoke(ctx context.Context, functionName string, payload []byte) ([]byte, error) {
	out, err := i.client.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName:   aws.String(functionName),
		InvocationType: lambdatypes.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return nil, err
	}

	if out.FunctionError != nil {
		return nil, fmt.Errorf("function %s failed (%s): %s", functionName, *out.FunctionError, string(out.Payload))
	}

	return out.Payload, nil
}
