package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"wrstats/pkg/database/models"
)

// ChampionsKey is the object holding the latest catalog drop.
const ChampionsKey = "champions/latest.json"

// StatsKey is the object holding the stats drop of a day.
func StatsKey(day time.Time) string {
	return "stats/" + day.Format(models.DateLayout) + ".json"
}

// Source opens the drops left by the scraper.
type Source interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// ObjectGetter is the subset of the S3 client used to read the drops.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// BucketSource reads the drops from a S3 bucket.
type BucketSource struct {
	client ObjectGetter
	bucket string
}

func NewBucketSource(client ObjectGetter, bucket string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket}
}

func (s *BucketSource) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from bucket %s: %w", key, s.bucket, err)
	}
	return out.Body, nil
}

// DirSource reads the drops from a local directory with the bucket layout.
type DirSource struct {
	Dir string
}

func (s *DirSource) Open(_ context.Context, key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Dir, filepath.FromSlash(key)))
}
