package config

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	FromAddress     string `mapstructure:"from_address"`
	FromName        string `mapstructure:"from_name"`
}

func DefaultSESConfig() *SESConfig {
	return &SESConfig{
		Region:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		FromAddress:     getEnvOrDefault("SES_FROM_ADDRESS", "no-reply@rentdesk.io"),
		FromName:        getEnvOrDefault("SES_FROM_NAME", "RentDesk"),
	}
}

// GetClient builds an SES client. Explicit credentials win when present;
// otherwise the default chain (env, shared config, instance role) applies.
func (c *SESConfig) GetClient() (*ses.Client, error) {
	var awsOpts []func(*config.LoadOptions) error

	if c.Region != "" {
		awsOpts = append(awsOpts, config.WithRegion(c.Region))
	}

	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		awsOpts = append(awsOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), awsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return ses.NewFromConfig(cfg), nil
}
