package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type CredentialMode string

const (
	// CredentialModeEnv reads AWS_ACCESS_KEY and AWS_SECRET_KEY at startup.
	CredentialModeEnv CredentialMode = "env"
	// CredentialModeStatic uses literal keys from the config file. Local
	// profile only.
	CredentialModeStatic CredentialMode = "static"
	// CredentialModeChain defers to the SDK default credential chain
	// (environment, shared config, instance or task role).
	CredentialModeChain CredentialMode = "chain"
)

func ParseCredentialMode(s string) (CredentialMode, error) {
	switch mode := CredentialMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case CredentialModeEnv, CredentialModeStatic, CredentialModeChain:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: unknown credential mode %q", ErrInvalidConfig, s)
	}
}

type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// MaskedAccessKey keeps the last four characters for log output.
func (c Credentials) MaskedAccessKey() string {
	if len(c.AccessKeyID) <= 4 {
		return strings.Repeat("*", len(c.AccessKeyID))
	}
	return strings.Repeat("*", len(c.AccessKeyID)-4) + c.AccessKeyID[len(c.AccessKeyID)-4:]
}

// CredentialSource resolves an access key pair at call time.
type CredentialSource interface {
	Resolve(ctx context.Context) (Credentials, error)
}

type envCredentials struct {
	v *viper.Viper
}

// NewEnvCredentials reads AWS_ACCESS_KEY and AWS_SECRET_KEY from v, which
// covers both the OS environment and merged env files.
func NewEnvCredentials(v *viper.Viper) CredentialSource {
	return &envCredentials{v: v}
}

func (s *envCredentials) Resolve(ctx context.Context) (Credentials, error) {
	if err := ctx.Err(); err != nil {
		return Credentials{}, err
	}
	return Credentials{
		AccessKeyID:     s.v.GetString("AWS_ACCESS_KEY"),
		SecretAccessKey: s.v.GetString("AWS_SECRET_KEY"),
	}, nil
}

type staticCredentials struct {
	creds Credentials
}

func NewStaticCredentials(accessKey, secretKey string) CredentialSource {
	return &staticCredentials{
		creds: Credentials{
			AccessKeyID:     accessKey,
			SecretAccessKey: secretKey,
		},
	}
}

func (s *staticCredentials) Resolve(ctx context.Context) (Credentials, error) {
	return s.creds, nil
}
