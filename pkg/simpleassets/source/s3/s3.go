package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/tendant/simple-assets/pkg/simpleassets"
)

// Config options for the S3 source
type Config struct {
	Region          string // AWS region
	Bucket          string // S3 bucket name
	AccessKeyID     string // AWS access key ID
	SecretAccessKey string // AWS secret access key
	Endpoint        string // Optional custom endpoint for S3-compatible services
	UsePathStyle    bool   // Use path-style addressing (default: false)
	KeyPrefix       string // Optional key prefix all asset paths resolve under
}

// Source is an S3-compatible read-only implementation of the
// simpleassets.Source interface. It works against AWS S3 and
// compatible services such as MinIO.
type Source struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
}

// New creates a new S3-compatible asset source.
func New(config Config) (*Source, error) {
	if config.Bucket == "" {
		return nil, errors.New("bucket name is required")
	}

	if config.Region == "" {
		config.Region = "us-east-1"
	}

	// Set up AWS config
	var awsCfg aws.Config
	var err error

	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		// Use provided credentials
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(config.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				config.AccessKeyID,
				config.SecretAccessKey,
				"",
			)),
		)
	} else {
		// Use default credential chain
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(config.Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Configure S3 client options
	var s3Options []func(*s3.Options)

	// Custom endpoint for S3-compatible services (MinIO, etc.)
	if config.Endpoint != "" {
		s3Options = append(s3Options, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(config.Endpoint)
			o.UsePathStyle = config.UsePathStyle
		})
	}

	return &Source{
		client:    s3.NewFromConfig(awsCfg, s3Options...),
		bucket:    config.Bucket,
		keyPrefix: strings.Trim(config.KeyPrefix, "/"),
	}, nil
}

// List returns the object names directly under dir, one delimiter
// level deep.
func (s *Source) List(ctx context.Context, dir string) ([]string, error) {
	prefix := s.key(dir)
	if prefix != "" {
		prefix += "/"
	}

	input := &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	}

	var names []string
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &simpleassets.SourceError{
				Source: "s3",
				Path:   dir,
				Op:     "list",
				Err:    err,
			}
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			if name == "" {
				continue
			}
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return nil, &simpleassets.SourceError{
			Source: "s3",
			Path:   dir,
			Op:     "list",
			Err:    simpleassets.ErrDirNotFound,
		}
	}
	return names, nil
}

// ReadFile returns the contents of an object.
func (s *Source) ReadFile(ctx context.Context, p string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
	})
	if err != nil {
		wrapped := err
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			wrapped = simpleassets.ErrFileNotFound
		}
		return nil, &simpleassets.SourceError{
			Source: "s3",
			Path:   p,
			Op:     "read",
			Err:    wrapped,
		}
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, &simpleassets.SourceError{
			Source: "s3",
			Path:   p,
			Op:     "read",
			Err:    err,
		}
	}
	return data, nil
}

// key maps a slash-separated asset path to its object key under the
// configured prefix.
func (s *Source) key(p string) string {
	p = strings.Trim(path.Clean(p), "/")
	if p == "." {
		p = ""
	}
	if s.keyPrefix == "" {
		return p
	}
	if p == "" {
		return s.keyPrefix
	}
	return s.keyPrefix + "/" + p
}
