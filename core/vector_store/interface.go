package vector_store

import (
	"context"
)

// VectorStoreType 向量数据库类型
type VectorStoreType string

const (
	VectorStoreTypeMilvus VectorStoreType = "milvus"
	// 未来可以扩展其他类型
	// VectorStoreTypeChroma VectorStoreType = "chroma"
	// VectorStoreTypeWeaviate VectorStoreType = "weaviate"
)

// RecordMetadata is stored alongside each vector and returned with
// every query match.
type RecordMetadata struct {
	UserID        string `json:"userId"`
	ExtractedText string `json:"extractedText"`
}

// VectorRecord is one namespaced entry of the index. The invariant
// Namespace == Metadata.UserID scopes every record to exactly one
// user's namespace.
type VectorRecord struct {
	ID        string
	Vector    []float64
	Namespace string
	Metadata  RecordMetadata
}

// Match is one query result, ordered by descending similarity score.
type Match struct {
	ID       string
	Score    float32
	Metadata RecordMetadata
}

// QueryOptions restricts a top-K similarity search to one namespace.
type QueryOptions struct {
	TopK      int
	Namespace string
}

// VectorStoreConfig 向量数据库配置
type VectorStoreConfig struct {
	Type       VectorStoreType
	Client     interface{} // 客户端实例
	Collection string
	Dim        int
}

// VectorStore is the namespaced similarity index consumed by the
// orchestrator. Upserting an existing id replaces the stored record;
// querying a namespace with zero records returns an empty match slice,
// never an error.
type VectorStore interface {
	Upsert(ctx context.Context, record VectorRecord) (string, error)
	Query(ctx context.Context, vector []float64, opts QueryOptions) ([]Match, error)
}
