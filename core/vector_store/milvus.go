package vector_store

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/index"
	"github.com/milvus-io/milvus/client/v2/milvusclient"

	"github.com/carevault/docgate/core/errors"
	milvusModel "github.com/carevault/docgate/internal/model/milvus"
)

// MilvusStore Milvus向量数据库实现
//
// One collection holds every record; namespaces map to partitions so a
// query never sees another user's vectors.
type MilvusStore struct {
	client     *milvusclient.Client
	collection string
	dim        int
}

// InitializeMilvusStore connects to Milvus using the `milvus` config
// section and ensures the passage collection exists.
func InitializeMilvusStore(ctx context.Context) (VectorStore, error) {
	address := g.Cfg().MustGet(ctx, "milvus.address", "").String()
	database := g.Cfg().MustGet(ctx, "milvus.database", "default").String()
	collection := g.Cfg().MustGet(ctx, "milvus.collection", "passages").String()
	dim := g.Cfg().MustGet(ctx, "milvus.dim", 1024).Int()

	if address == "" {
		return nil, errors.Newf(errors.ErrVectorStoreInit, "milvus.address is required but not found in config file")
	}

	g.Log().Infof(ctx, "Connecting to Milvus at: %s, database: %s, collection: %s", address, database, collection)

	client, err := milvusclient.New(ctx, &milvusclient.ClientConfig{
		Address: address,
		DBName:  database,
	})
	if err != nil {
		return nil, errors.Newf(errors.ErrVectorStoreInit, "failed to create milvus client (address: %s, database: %s): %v", address, database, err)
	}

	store, err := NewVectorStore(&VectorStoreConfig{
		Type:       VectorStoreTypeMilvus,
		Client:     client,
		Collection: collection,
		Dim:        dim,
	})
	if err != nil {
		return nil, err
	}

	if err := store.(*MilvusStore).ensureCollection(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// NewMilvusStore 创建Milvus向量存储实例
func NewMilvusStore(config *VectorStoreConfig) (VectorStore, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	client, ok := config.Client.(*milvusclient.Client)
	if !ok {
		return nil, fmt.Errorf("client must be *milvusclient.Client")
	}

	if config.Collection == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	dim := config.Dim
	if dim <= 0 {
		dim = 1024
	}

	return &MilvusStore{
		client:     client,
		collection: config.Collection,
		dim:        dim,
	}, nil
}

// ensureCollection creates and loads the passage collection on first use.
func (m *MilvusStore) ensureCollection(ctx context.Context) error {
	has, err := m.client.HasCollection(ctx, milvusclient.NewHasCollectionOption(m.collection))
	if err != nil {
		return errors.Newf(errors.ErrVectorStoreInit, "failed to check if collection exists: %v", err)
	}
	if has {
		g.Log().Infof(ctx, "Collection '%s' already exists, skipping creation", m.collection)
		return nil
	}

	dimStr := fmt.Sprintf("%d", m.dim)
	collSchema := &entity.Schema{
		CollectionName: m.collection,
		Description:    "Per-user extracted text passages and their vectors",
		AutoID:         false,
		Fields:         milvusModel.GetStandardCollectionFields(dimStr),
	}

	err = m.client.CreateCollection(ctx, milvusclient.NewCreateCollectionOption(m.collection, collSchema).WithIndexOptions(
		milvusclient.NewCreateIndexOption(m.collection, "vector", index.NewHNSWIndex(entity.COSINE, 64, 128))))
	if err != nil {
		return errors.Newf(errors.ErrVectorStoreInit, "failed to create Milvus collection: %v", err)
	}

	_, err = m.client.LoadCollection(ctx, milvusclient.NewLoadCollectionOption(m.collection))
	if err != nil {
		return errors.Newf(errors.ErrVectorStoreInit, "failed to load Milvus collection: %v", err)
	}

	g.Log().Infof(ctx, "Collection '%s' created with dimension %d, index built and loaded", m.collection, m.dim)
	return nil
}

// ensurePartition creates the namespace partition on first ingest.
func (m *MilvusStore) ensurePartition(ctx context.Context, partition string) error {
	has, err := m.client.HasPartition(ctx, milvusclient.NewHasPartitionOption(m.collection, partition))
	if err != nil {
		return fmt.Errorf("failed to check if partition exists: %w", err)
	}
	if has {
		return nil
	}

	err = m.client.CreatePartition(ctx, milvusclient.NewCreatePartitionOption(m.collection, partition))
	if err != nil {
		return fmt.Errorf("failed to create partition '%s': %w", partition, err)
	}

	g.Log().Infof(ctx, "Partition '%s' created in collection '%s'", partition, m.collection)
	return nil
}

// Upsert writes one record into its namespace partition. Re-upserting
// an existing id replaces the stored record, it does not duplicate it.
func (m *MilvusStore) Upsert(ctx context.Context, record VectorRecord) (string, error) {
	if record.Namespace == "" {
		return "", errors.Newf(errors.ErrInvalidParameter, "record namespace cannot be empty")
	}
	if record.Metadata.UserID != record.Namespace {
		return "", errors.Newf(errors.ErrInvalidParameter,
			"record namespace (%s) must equal metadata userId (%s)", record.Namespace, record.Metadata.UserID)
	}
	if record.ID == "" {
		return "", errors.Newf(errors.ErrInvalidParameter, "record id cannot be empty")
	}

	partition := partitionName(record.Namespace)
	if err := m.ensurePartition(ctx, partition); err != nil {
		return "", errors.Newf(errors.ErrVectorInsert, "%v", err)
	}

	metaBytes, err := sonic.Marshal(record.Metadata)
	if err != nil {
		return "", errors.Newf(errors.ErrVectorInsert, "failed to marshal metadata: %v", err)
	}

	columns := []column.Column{
		column.NewColumnVarChar("id", []string{record.ID}),
		column.NewColumnVarChar("text", []string{truncateString(record.Metadata.ExtractedText, 65535)}),
		column.NewColumnFloatVector("vector", m.dim, [][]float32{float64ToFloat32(record.Vector)}),
		column.NewColumnVarChar("namespace", []string{record.Namespace}),
		column.NewColumnJSONBytes("metadata", [][]byte{metaBytes}),
	}

	upsertOpt := milvusclient.NewColumnBasedInsertOption(m.collection, columns...).WithPartition(partition)
	result, err := m.client.Upsert(ctx, upsertOpt)
	if err != nil {
		return "", errors.Newf(errors.ErrVectorInsert, "failed to upsert vector: %v", err)
	}

	g.Log().Infof(ctx, "Upserted %d vector(s) into collection '%s', partition '%s'", result.UpsertCount, m.collection, partition)
	return record.ID, nil
}

// Query runs a top-K similarity search strictly inside one namespace.
// A namespace that never saw an ingest yields an empty match slice.
func (m *MilvusStore) Query(ctx context.Context, vector []float64, opts QueryOptions) ([]Match, error) {
	if opts.Namespace == "" {
		return nil, errors.Newf(errors.ErrInvalidParameter, "query namespace cannot be empty")
	}
	topK := opts.TopK
	if topK <= 0 {
		topK = 1
	}

	partition := partitionName(opts.Namespace)
	has, err := m.client.HasPartition(ctx, milvusclient.NewHasPartitionOption(m.collection, partition))
	if err != nil {
		return nil, errors.Newf(errors.ErrVectorSearch, "failed to check if partition exists: %v", err)
	}
	if !has {
		return []Match{}, nil
	}

	entityVectors := []entity.Vector{entity.FloatVector(float64ToFloat32(vector))}

	searchOpt := milvusclient.NewSearchOption(m.collection, topK, entityVectors).
		WithANNSField("vector").
		WithOutputFields("id", "text", "metadata").
		WithPartitions(partition).
		WithFilter(namespaceFilter(opts.Namespace)).
		WithConsistencyLevel(entity.ClBounded)

	results, err := m.client.Search(ctx, searchOpt)
	if err != nil {
		return nil, errors.Newf(errors.ErrVectorSearch, "search has error: %v", err)
	}

	if len(results) == 0 {
		return []Match{}, nil
	}

	return convertResultsToMatches(results[0].Fields, results[0].Scores)
}

// convertResultsToMatches 转换搜索结果
func convertResultsToMatches(columns []column.Column, scores []float32) ([]Match, error) {
	if len(columns) == 0 {
		return []Match{}, nil
	}

	numMatches := columns[0].Len()
	matches := make([]Match, numMatches)
	texts := make([]string, numMatches)

	for i := 0; i < numMatches && i < len(scores); i++ {
		matches[i].Score = scores[i]
	}

	for _, col := range columns {
		switch col.Name() {
		case "id":
			for i := 0; i < col.Len(); i++ {
				val, err := col.Get(i)
				if err != nil {
					return nil, fmt.Errorf("failed to get id: %w", err)
				}
				if str, ok := val.(string); ok {
					matches[i].ID = str
				}
			}
		case "text":
			for i := 0; i < col.Len(); i++ {
				val, err := col.Get(i)
				if err != nil {
					return nil, fmt.Errorf("failed to get text: %w", err)
				}
				if str, ok := val.(string); ok {
					texts[i] = str
				}
			}
		case "metadata":
			for i := 0; i < col.Len(); i++ {
				val, err := col.Get(i)
				if err != nil || val == nil {
					continue
				}

				var meta RecordMetadata
				switch v := val.(type) {
				case string:
					if err := sonic.Unmarshal([]byte(v), &meta); err == nil {
						matches[i].Metadata = meta
					}
				case []byte:
					if err := sonic.Unmarshal(v, &meta); err == nil {
						matches[i].Metadata = meta
					}
				}
			}
		}
	}

	// text 列兜底：老数据的 metadata 可能缺 extractedText
	for i := range matches {
		if matches[i].Metadata.ExtractedText == "" {
			matches[i].Metadata.ExtractedText = texts[i]
		}
	}

	return matches, nil
}

// namespaceFilter scopes a search to the exact namespace value stored
// with each record. Partition names are lossy (distinct namespaces can
// sanitize to the same partition), so the scalar field is the isolation
// authority.
func namespaceFilter(namespace string) string {
	return fmt.Sprintf("namespace == %q", namespace)
}

// partitionName maps a namespace (user id) to a valid Milvus partition
// name. Milvus only allows letters, digits and underscores.
func partitionName(namespace string) string {
	out := make([]rune, 0, len(namespace)+3)
	out = append(out, 'n', 's', '_')
	for _, r := range namespace {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// truncateString cuts s to at most maxLen bytes without splitting a
// multi-byte rune at the boundary.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func float64ToFloat32(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}
