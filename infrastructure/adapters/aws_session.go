package adapters

import (
	"voice-translator-lambda/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
)

func NewAwsSession(awsConfig *config.AwsConfig, s3Config *config.S3Config) (*session.Session, error) {
	awsCfg := aws.NewConfig().WithRegion(awsConfig.Region)
	if awsConfig.Endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(awsConfig.Endpoint)
	}
	if s3Config != nil && s3Config.ForcePathStyle {
		awsCfg = awsCfg.WithS3ForcePathStyle(true)
	}

	return session.NewSessionWithOptions(session.Options{
		Config:            *awsCfg,
		SharedConfigState: session.SharedConfigEnable,
	})
}
