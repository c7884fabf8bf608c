package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProfileProduction = "production"
	ProfileLocal      = "local"

	DefaultRegion = "us-east-1"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port        string
	IdleTimeout time.Duration
	Profile     string
	LogLevel    string

	DynamoDB DynamoDB
}

type DynamoDB struct {
	Region         string
	Endpoint       string
	CredentialMode CredentialMode
	Tables         []string

	// Nil in CredentialModeChain.
	Credentials CredentialSource
}

// Options controls where Load looks for configuration.
type Options struct {
	ConfigPaths []string
	EnvFiles    []string
}

func DefaultOptions() Options {
	return Options{
		ConfigPaths: []string{"./configs/server", "."},
		EnvFiles: []string{
			"./configs/aws/base.env",
			"./configs/aws/dynamodb.env",
		},
	}
}

// NewConfig loads configuration from the default locations and panics on
// failure.
func NewConfig() Config {
	cfg, err := Load(DefaultOptions())
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}
	return cfg
}

func Load(opts Options) (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("profile", ProfileProduction)
	v.SetDefault("log.level", "info")
	v.SetDefault("AWS_REGION", DefaultRegion)
	v.SetDefault("DYNAMODB_CREDENTIALS", string(CredentialModeEnv))
	v.SetDefault("DYNAMODB_ALLOW_STATIC_CREDENTIALS", false)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range opts.ConfigPaths {
		v.AddConfigPath(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	if err := loadEnvFiles(v, opts.EnvFiles); err != nil {
		return Config{}, err
	}

	var config Config
	config.Port = v.GetString("server.port")
	idleTimeout, err := time.ParseDuration(v.GetString("server.idleTimeout"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: server.idleTimeout: %v", ErrInvalidConfig, err)
	}
	config.IdleTimeout = idleTimeout
	config.Profile = v.GetString("profile")
	config.LogLevel = v.GetString("log.level")

	config.DynamoDB.Region = v.GetString("AWS_REGION")
	config.DynamoDB.Endpoint = v.GetString("DYNAMODB_ENDPOINT")
	config.DynamoDB.Tables = splitList(v.GetStringSlice("dynamodb.tables"))

	mode, err := ParseCredentialMode(v.GetString("DYNAMODB_CREDENTIALS"))
	if err != nil {
		return Config{}, err
	}
	config.DynamoDB.CredentialMode = mode

	switch mode {
	case CredentialModeEnv:
		config.DynamoDB.Credentials = NewEnvCredentials(v)
	case CredentialModeStatic:
		if config.Profile != ProfileLocal || !v.GetBool("DYNAMODB_ALLOW_STATIC_CREDENTIALS") {
			return Config{}, fmt.Errorf(
				"%w: static credentials require profile %q and DYNAMODB_ALLOW_STATIC_CREDENTIALS=true",
				ErrInvalidConfig,
				ProfileLocal,
			)
		}
		config.DynamoDB.Credentials = NewStaticCredentials(
			v.GetString("dynamodb.staticAccessKey"),
			v.GetString("dynamodb.staticSecretKey"),
		)
	}

	return config, nil
}

// Missing env files are skipped; OS environment always wins.
func loadEnvFiles(v *viper.Viper, filenames []string) error {
	for _, file := range filenames {
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			continue
		}
		v.SetConfigFile(file)
		v.SetConfigType("env")

		if err := v.MergeInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Env values arrive as one comma separated string.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
