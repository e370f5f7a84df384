package storage

import (
	"FreshTrack-API/internal/utils"
	"context"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"io"
	"log"
)

type AwsS3 struct {
	Client *s3.Client
}

func NewAwsS3() AwsS3 {
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(utils.GetConfig("AWS_S3_REGION")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Printf("Error loading AWS config: %s\n", err)
		return AwsS3{}
	}

	return AwsS3{Client: s3.NewFromConfig(cfg)}
}

// DownloadFile fetches an object and returns its raw bytes.
func (a AwsS3) DownloadFile(ctx context.Context, bucket string, key string) ([]byte, error) {
	output, err := a.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer output.Body.Close()

	return io.ReadAll(output.Body)
}
