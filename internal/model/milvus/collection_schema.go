package milvus

import (
	"github.com/milvus-io/milvus/client/v2/entity"
)

// CollectionSchema is the schema of the gateway's single passage
// collection. Namespacing is done with one partition per user, so the
// namespace value is kept as a scalar field for output only.
type CollectionSchema struct {
	// Id is the caller-supplied record id (primary key, upsert target)
	Id string `milvus:"id,varchar,256,primary_key"`

	// Text is the extracted text of the passage
	Text string `milvus:"text,varchar,65535"`

	// Vector is the embedding vector of the passage
	Vector []float32 `milvus:"vector,float_vector,1024"`

	// Namespace is the owning user's id
	Namespace string `milvus:"namespace,varchar,256"`

	// Metadata stores additional information as JSON
	Metadata string `milvus:"metadata,json"`
}

// GetFields returns the Milvus field definitions for the passage
// collection with the given vector dimension.
func (CollectionSchema) GetFields(dim string) []*entity.Field {
	return []*entity.Field{
		{
			Name:        "id",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "256"},
			PrimaryKey:  true,
			AutoID:      false,
			Description: "Record unique ID (primary key)",
		},
		{
			Name:        "text",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "65535"},
			Description: "Extracted passage text",
		},
		{
			Name:        "vector",
			DataType:    entity.FieldTypeFloatVector,
			TypeParams:  map[string]string{"dim": dim},
			Description: "Passage embedding vector",
		},
		{
			Name:        "namespace",
			DataType:    entity.FieldTypeVarChar,
			TypeParams:  map[string]string{"max_length": "256"},
			Description: "Owning user id (partition key value)",
		},
		{
			Name:        "metadata",
			DataType:    entity.FieldTypeJSON,
			Description: "Additional metadata (JSON)",
		},
	}
}

// GetStandardCollectionFields is a helper function to get the passage
// collection fields.
func GetStandardCollectionFields(dim string) []*entity.Field {
	return CollectionSchema{}.GetFields(dim)
}
