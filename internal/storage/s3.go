package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service presigns avatar objects stored in Amazon S3 (or compatible APIs).
type S3Service struct {
	presigner *s3.PresignClient
}

func NewS3Service(client *s3.Client) *S3Service {
	return &S3Service{
		presigner: s3.NewPresignClient(client),
	}
}

func (s *S3Service) ResolveAvatarURL(ctx context.Context, location string, expires time.Duration) (string, error) {
	if !strings.HasPrefix(location, "s3://") {
		return location, nil
	}

	bucket, key, err := splitS3Location(location)
	if err != nil {
		return "", err
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("presign avatar %s: %w", location, err)
	}
	return req.URL, nil
}

var _ Service = (*S3Service)(nil)

func splitS3Location(location string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(location, "s3://")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid s3 location %q", location)
	}
	return parts[0], strings.TrimPrefix(parts[1], "/"), nil
}
