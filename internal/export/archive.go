package export

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"go-event-form/pkg/utils"
)

func objectName(filename string) string {
	return fmt.Sprintf("%s-%s", uuid.New().String(), filepath.Base(filename))
}

// LocalArchive writes exports under <dir>/<session>/<uuid>-<filename>
type LocalArchive struct {
	out *utils.OutputManager
}

// NewLocalArchive prepares dir for archived exports
func NewLocalArchive(dir string) (*LocalArchive, error) {
	om := utils.NewOutputManager(dir)
	if err := om.EnsureOutputDirExists(); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &LocalArchive{out: om}, nil
}

func (a *LocalArchive) Archive(_ context.Context, sessionID, filename string, body []byte) (string, error) {
	if a.out.GetFileType(filename) == "unknown" {
		return "", fmt.Errorf("refusing to archive %q: not a csv or excel file", filename)
	}
	return a.out.WriteFile(sessionID, objectName(filename), body)
}

// PutObjectAPI is the part of the S3 client the archive needs
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive uploads exports to s3://<bucket>/<prefix>/<session>/<uuid>-<filename>
type S3Archive struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Archive loads the default AWS credential chain for region
func NewS3Archive(ctx context.Context, region, bucket, prefix string) (*S3Archive, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 archive: bucket is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewS3ArchiveWithClient(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// NewS3ArchiveWithClient uses an existing client
func NewS3ArchiveWithClient(client PutObjectAPI, bucket, prefix string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket, prefix: prefix}
}

func (a *S3Archive) Archive(ctx context.Context, sessionID, filename string, body []byte) (string, error) {
	key := path.Join(a.prefix, sessionID, objectName(filename))

	contentType := defaultContentType(strings.TrimPrefix(strings.ToLower(path.Ext(filename)), "."))

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
