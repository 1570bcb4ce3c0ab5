/*
 * Copyright (c) DataOps Cloud, Inc.
 */

package migrate

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/sirupsen/logrus"
)

// uploadArtifacts pushes every file under dir to the s3://bucket/prefix
// destination, preserving file names. Credentials and region come from
// the standard AWS environment and shared configuration.
func uploadArtifacts(dir, uploadURI string) error {
	bucket, prefix, err := parseS3URI(uploadURI)
	if err != nil {
		return err
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return fmt.Errorf("could not create AWS session: %w", err)
	}
	uploader := s3manager.NewUploader(sess)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read output directory %s: %w", dir, err)
	}

	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		localPath := filepath.Join(dir, entry.Name())
		body, err := os.Open(localPath)
		if err != nil {
			return fmt.Errorf("could not open %s: %w", localPath, err)
		}
		key := path.Join(prefix, entry.Name())
		_, err = uploader.Upload(&s3manager.UploadInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Body:   body,
		})
		body.Close()
		if err != nil {
			return fmt.Errorf("could not upload %s to s3://%s/%s: %w",
				entry.Name(), bucket, key, err)
		}
		logrus.Debugf("Uploaded %s to s3://%s/%s\n", entry.Name(), bucket, key)
		uploaded++
	}
	if uploaded == 0 {
		return fmt.Errorf("no artifacts found under %s to upload", dir)
	}
	return nil
}

// parseS3URI splits s3://bucket/prefix into bucket and prefix
func parseS3URI(uri string) (bucket, prefix string, err error) {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "s3" || parsed.Host == "" {
		return "", "", fmt.Errorf("upload uri %q is not a valid s3://bucket/prefix uri", uri)
	}
	return parsed.Host, strings.TrimPrefix(parsed.Path, "/"), nil
}
