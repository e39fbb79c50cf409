package s3source

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/datamill-io/s3-source/filesource"
	"github.com/datamill-io/s3-source/macro"
)

// Check verifies that the resolved connection properties can reach the
// configured bucket. It lists at most one key and reads no object
// data; the run-time data path stays with the file-reading framework.
// The configuration must be fully concrete.
func (s *Source) Check(ctx context.Context) error {
	for name, value := range map[string]string{
		"path":                   s.conf.Path,
		"region":                 s.conf.Region,
		"access_id":              s.conf.AccessID,
		"access_key":             s.conf.AccessKey,
		"file_system_properties": s.conf.FileSystemProperties,
	} {
		if macro.IsDeferred(value) {
			return &filesource.ConfigError{
				Field:  name,
				Reason: "cannot check connectivity with an unresolved placeholder",
			}
		}
	}

	properties, err := s.FileSystemProperties()
	if err != nil {
		return err
	}
	bucket, err := bucketFromPath(s.conf.Path)
	if err != nil {
		return err
	}

	cfg := aws.NewConfig().WithRegion(s.conf.Region)
	if accessKey, ok := properties[s3aAccessKey]; ok {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(accessKey, properties[s3aSecretKey], ""))
	}
	if endpoint, ok := properties[s3aEndpoint]; ok {
		cfg = cfg.WithEndpoint(endpoint)
	}

	awsSession, err := session.NewSession(cfg)
	if err != nil {
		return fmt.Errorf("session.NewSession(): %w", err)
	}
	if _, err := s3.New(awsSession).ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		MaxKeys: aws.Int64(1),
	}); err != nil {
		return fmt.Errorf("listing bucket %q: %w", bucket, err)
	}
	return nil
}

func bucketFromPath(path string) (string, error) {
	rest := strings.TrimPrefix(path, pathScheme)
	if rest == path {
		return "", &filesource.ConfigError{Field: "path", Reason: "the path must start with s3a:// for the S3A filesystem"}
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", &filesource.ConfigError{Field: "path", Reason: "the path does not name a bucket"}
	}
	return rest, nil
}
