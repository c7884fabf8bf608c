package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

// Client is the process-wide DynamoDB handle. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	id       string
	region   string
	dynamodb *dynamodb.Client
}

// NewClient builds a handle for region using a static access key pair.
// It performs no I/O; network failures surface on first use.
func NewClient(
	region string,
	accessKey string,
	secretKey string,
	optFns ...func(*dynamodb.Options),
) (
	*Client,
	error,
) {
	if err := validateCredentials(accessKey, secretKey); err != nil {
		return nil, err
	}
	if err := ValidateRegion(region); err != nil {
		return nil, err
	}
	dynamoClient := dynamodb.New(dynamodb.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}, optFns...)
	return newClient(region, dynamoClient), nil
}

// NewClientFromDefaultChain builds a handle whose credentials come from the
// SDK default chain (environment, shared config, instance or task role).
// Credentials are only retrieved on first use.
func NewClientFromDefaultChain(
	ctx context.Context,
	region string,
	optFns ...func(*dynamodb.Options),
) (
	*Client,
	error,
) {
	if err := ValidateRegion(region); err != nil {
		return nil, err
	}
	cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load default config: %v", ErrConfiguration, err)
	}
	return newClient(region, dynamodb.NewFromConfig(cfg, optFns...)), nil
}

func newClient(region string, dynamoClient *dynamodb.Client) *Client {
	return &Client{
		id:       uuid.NewString(),
		region:   region,
		dynamodb: dynamoClient,
	}
}

// WithEndpoint points the handle at a non-AWS endpoint such as DynamoDB
// Local.
func WithEndpoint(url string) func(*dynamodb.Options) {
	return func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(url)
	}
}

func (client *Client) ID() string {
	return client.id
}

func (client *Client) Region() string {
	return client.region
}

func (client *Client) DynamoDB() *dynamodb.Client {
	return client.dynamodb
}

func validateCredentials(accessKey, secretKey string) error {
	if err := validateKey("access key", accessKey); err != nil {
		return err
	}
	return validateKey("secret key", secretKey)
}

func validateKey(name, value string) error {
	switch {
	case strings.TrimSpace(value) == "":
		return fmt.Errorf("%w: %s is empty", ErrConfiguration, name)
	case strings.ContainsAny(value, " \t\r\n"):
		return fmt.Errorf("%w: %s contains whitespace", ErrConfiguration, name)
	case strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}"):
		return fmt.Errorf("%w: %s is an unresolved placeholder %s", ErrConfiguration, name, value)
	}
	return nil
}
