package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/nebulamart/userservice/internal/config"
	"github.com/nebulamart/userservice/pkg/logging"
	"go.uber.org/zap"
)

// Factory builds handles from runtime-resolved configuration.
type Factory struct {
	cfg    config.DynamoDB
	optFns []func(*dynamodb.Options)
}

func NewFactory(cfg config.DynamoDB, optFns ...func(*dynamodb.Options)) *Factory {
	return &Factory{
		cfg:    cfg,
		optFns: optFns,
	}
}

// CreateClient returns a new independent handle on every call.
func (f *Factory) CreateClient(ctx context.Context) (*Client, error) {
	optFns := make([]func(*dynamodb.Options), 0, len(f.optFns)+1)
	if f.cfg.Endpoint != "" {
		optFns = append(optFns, WithEndpoint(f.cfg.Endpoint))
	}
	optFns = append(optFns, f.optFns...)

	if f.cfg.CredentialMode == config.CredentialModeChain {
		client, err := NewClientFromDefaultChain(ctx, f.cfg.Region, optFns...)
		if err != nil {
			return nil, err
		}
		logging.Info("dynamodb client created",
			zap.String("client_id", client.ID()),
			zap.String("region", client.Region()),
			zap.String("credential_mode", string(f.cfg.CredentialMode)),
		)
		return client, nil
	}

	if f.cfg.Credentials == nil {
		return nil, fmt.Errorf("%w: no credential source for mode %q", ErrConfiguration, f.cfg.CredentialMode)
	}
	creds, err := f.cfg.Credentials.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve credentials: %v", ErrConfiguration, err)
	}
	client, err := NewClient(f.cfg.Region, creds.AccessKeyID, creds.SecretAccessKey, optFns...)
	if err != nil {
		return nil, err
	}
	if f.cfg.CredentialMode == config.CredentialModeStatic {
		logging.Warn("dynamodb client uses static credentials from config file")
	}
	logging.Info("dynamodb client created",
		zap.String("client_id", client.ID()),
		zap.String("region", client.Region()),
		zap.String("credential_mode", string(f.cfg.CredentialMode)),
		zap.String("access_key", creds.MaskedAccessKey()),
	)
	return client, nil
}
