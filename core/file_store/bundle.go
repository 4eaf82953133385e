package file_store

import (
	"context"
	"io"

	"github.com/bytedance/sonic"
	"github.com/minio/minio-go/v7"

	"github.com/carevault/docgate/core/errors"
)

// BundleFragment is one extracted-text fragment of a stored document.
type BundleFragment struct {
	ExtractedText string `json:"extractedText"`
}

// DocumentBundle is the JSON document the client stores per uploaded
// file: every extraction result appended to dataSet in order.
type DocumentBundle struct {
	DataSet []BundleFragment `json:"dataSet"`
}

// Fragments returns the extracted texts in stored order.
func (b *DocumentBundle) Fragments() []string {
	fragments := make([]string, len(b.DataSet))
	for i, item := range b.DataSet {
		fragments[i] = item.ExtractedText
	}
	return fragments
}

// FetchBundle reads and decodes the document bundle stored under key.
// A missing object maps to ErrObjectNotFound.
func FetchBundle(ctx context.Context, key string) (*DocumentBundle, error) {
	cfg := GetStorageConfig()

	object, err := cfg.Client.GetObject(ctx, cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Newf(errors.ErrInternalError, "failed to get object '%s': %v", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		// GetObject is lazy; a missing key only surfaces on read.
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, errors.Newf(errors.ErrObjectNotFound, "no stored object for key '%s'", key)
		}
		return nil, errors.Newf(errors.ErrInternalError, "failed to read object '%s': %v", key, err)
	}

	return ParseBundle(data)
}

// ParseBundle decodes a stored bundle payload.
func ParseBundle(data []byte) (*DocumentBundle, error) {
	var bundle DocumentBundle
	if err := sonic.Unmarshal(data, &bundle); err != nil {
		return nil, errors.Newf(errors.ErrBundleDecode, "failed to decode document bundle: %v", err)
	}
	return &bundle, nil
}
