package file_store

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/carevault/docgate/core/errors"
)

// StorageConfig holds the shared object storage client. The gateway
// never moves object bytes itself; it only issues presigned URLs and
// reads stored bundles.
type StorageConfig struct {
	Client *minio.Client
	Bucket string
}

var storageConfig StorageConfig

// InitStorage 初始化存储系统
//
// Builds the S3 client from the `storage` config section and ensures
// the bucket exists.
func InitStorage(ctx context.Context) error {
	endpoint := g.Cfg().MustGet(ctx, "storage.endpoint", "").String()
	accessKey := g.Cfg().MustGet(ctx, "storage.accessKey", "").String()
	secretKey := g.Cfg().MustGet(ctx, "storage.secretKey", "").String()
	bucket := g.Cfg().MustGet(ctx, "storage.bucket", "ai-storage").String()
	ssl := g.Cfg().MustGet(ctx, "storage.ssl", true).Bool()

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: ssl,
	})
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to create storage client: %v", err)
	}

	storageConfig = StorageConfig{
		Client: client,
		Bucket: bucket,
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to check if bucket exists: %v", err)
	}
	if exists {
		g.Log().Infof(ctx, "Bucket '%s' already exists, skipping creation", bucket)
		return nil
	}

	err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: ""})
	if err != nil {
		return errors.Newf(errors.ErrInternalError, "failed to create bucket: %v", err)
	}

	g.Log().Infof(ctx, "Created bucket '%s'", bucket)
	return nil
}

// GetStorageConfig 获取存储配置
func GetStorageConfig() *StorageConfig {
	return &storageConfig
}
