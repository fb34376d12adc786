// utils/artwork.go
package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var artworkClient *s3.Client
var artworkBucket string
var cdnBaseURL string

// ArtworkStoreEnabled reports whether InitArtworkStore ran successfully.
func ArtworkStoreEnabled() bool { return artworkClient != nil }

// InitArtworkStore configures the S3-compatible (R2) client used for card
// artwork. Returns (false, nil) when the bucket env vars are absent — the
// artwork endpoints are simply not registered in that case.
func InitArtworkStore() (bool, error) {
	accountID := os.Getenv("CLOUDFLARE_ACCOUNT_ID")
	accessKeyID := os.Getenv("R2_ACCESS_KEY_ID")
	accessKeySecret := os.Getenv("R2_ACCESS_KEY_SECRET")
	artworkBucket = os.Getenv("R2_BUCKET_NAME")
	if accountID == "" || accessKeyID == "" || accessKeySecret == "" || artworkBucket == "" {
		return false, nil
	}

	cdnBaseURL = os.Getenv("CDN_BASE_URL")
	if cdnBaseURL == "" {
		cdnBaseURL = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID, accessKeySecret, "",
		)),
		config.WithEndpointResolver(aws.EndpointResolverFunc(
			func(service, region string) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID),
				}, nil
			}),
		),
	)
	if err != nil {
		return false, fmt.Errorf("failed to load artwork store config: %w", err)
	}

	artworkClient = s3.NewFromConfig(cfg)
	return true, nil
}

// UploadArtwork uploads a multipart image to the artwork bucket and returns
// the public CDN URL. key is the object key (e.g. "cards/moonlit-fortress-ab12cd34.png").
func UploadArtwork(fileHeader *multipart.FileHeader, key string) (string, error) {
	if artworkClient == nil {
		return "", fmt.Errorf("artwork store is not configured")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	_, err = artworkClient.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(artworkBucket),
		Key:         aws.String(key),
		Body:        buf,
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload artwork: %w", err)
	}

	return fmt.Sprintf("%s/%s", cdnBaseURL, key), nil
}
