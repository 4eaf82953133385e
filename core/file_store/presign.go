package file_store

import (
	"context"
	"net/url"
	"time"

	"github.com/carevault/docgate/core/errors"
)

// urlExpiry is the fixed lifetime of every presigned URL the gateway
// issues.
const urlExpiry = 3600 * time.Second

// PresignUpload issues a time-limited signed PUT URL for the given key.
func PresignUpload(ctx context.Context, key string) (string, error) {
	cfg := GetStorageConfig()

	uploadURL, err := cfg.Client.PresignedPutObject(ctx, cfg.Bucket, key, urlExpiry)
	if err != nil {
		return "", errors.Newf(errors.ErrPresignFailed, "failed to presign upload for key '%s': %v", key, err)
	}
	return uploadURL.String(), nil
}

// PresignDownload issues a time-limited signed GET URL for the given key.
func PresignDownload(ctx context.Context, key string) (string, error) {
	cfg := GetStorageConfig()

	downloadURL, err := cfg.Client.PresignedGetObject(ctx, cfg.Bucket, key, urlExpiry, url.Values{})
	if err != nil {
		return "", errors.Newf(errors.ErrPresignFailed, "failed to presign download for key '%s': %v", key, err)
	}
	return downloadURL.String(), nil
}
