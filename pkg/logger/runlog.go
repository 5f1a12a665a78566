package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// ObjectUploader is the subset of the S3 client used to archive the run logs.
type ObjectUploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// RunLog keeps the log of a single job run in a temporary file.
type RunLog struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
	Logger   zerolog.Logger
}

// Create the run log with a temporary file.
// Lines go both to out and to the file.
func NewRunLog(out io.Writer, level, job string) (*RunLog, error) {
	f, err := os.CreateTemp("", "run-"+job+"-*.log")
	if err != nil {
		return nil, err
	}

	rl := &RunLog{
		logFile:  f,
		filePath: f.Name(),
	}

	rl.Logger = NewWithWriter(zerolog.MultiLevelWriter(out, &lockedWriter{rl: rl}), level).
		With().
		Str("job", job).
		Logger()

	return rl, nil
}

// Path of the underlying file.
func (l *RunLog) Path() string {
	return l.filePath
}

// Contents returns everything written so far.
func (l *RunLog) Contents() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.logFile.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	defer l.logFile.Seek(0, io.SeekEnd)

	return io.ReadAll(l.logFile)
}

// Upload the log to a s3 bucket and truncate the file.
func (l *RunLog) UploadToS3Bucket(ctx context.Context, client ObjectUploader, bucket, objectKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.logFile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(objectKey),
		Body:        l.logFile,
		ContentType: aws.String("application/x-ndjson"),
		ACL:         types.ObjectCannedACLPrivate,
	})
	if err != nil {
		l.logFile.Seek(0, io.SeekEnd)
		return fmt.Errorf("failed to upload %s to S3 bucket: %w", objectKey, err)
	}

	// Clean the file after sending.
	if err := l.logFile.Truncate(0); err != nil {
		return err
	}
	_, err = l.logFile.Seek(0, io.SeekStart)
	return err
}

// Close removes the temporary file.
func (l *RunLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Close()
	return os.Remove(l.filePath)
}

type lockedWriter struct {
	rl *RunLog
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.rl.mu.Lock()
	defer w.rl.mu.Unlock()
	return w.rl.logFile.Write(p)
}
