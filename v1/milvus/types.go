package milvus

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ConsistencyLevel selects the read consistency of query and search calls.
type ConsistencyLevel string

const (
	ConsistencyStrong     ConsistencyLevel = "Strong"
	ConsistencyBounded    ConsistencyLevel = "Bounded"
	ConsistencySession    ConsistencyLevel = "Session"
	ConsistencyEventually ConsistencyLevel = "Eventually"
)

// Validate rejects levels Milvus does not know.
func (l ConsistencyLevel) Validate() error {
	return validation.Validate(string(l),
		validation.In(string(ConsistencyStrong), string(ConsistencyBounded),
			string(ConsistencySession), string(ConsistencyEventually)))
}

// Entity is one row, keyed by field name.
type Entity map[string]any

// CollectionSchema is the full schema passed to collections.create.
// Pointer fields left nil are omitted from the wire.
type CollectionSchema struct {
	AutoID             *bool         `json:"autoId,omitempty"`
	EnableDynamicField *bool         `json:"enableDynamicField,omitempty"`
	Fields             []FieldSchema `json:"fields"`
}

// FieldSchema describes one collection field.
//
//	milvus.FieldSchema{
//	    FieldName:         "vector",
//	    DataType:          "FloatVector",
//	    ElementTypeParams: map[string]any{"dim": 768},
//	}
type FieldSchema struct {
	FieldName         string         `json:"fieldName"`
	DataType          string         `json:"dataType"`
	ElementDataType   *string        `json:"elementDataType,omitempty"`
	IsPrimary         *bool          `json:"isPrimary,omitempty"`
	IsPartitionKey    *bool          `json:"isPartitionKey,omitempty"`
	Nullable          *bool          `json:"nullable,omitempty"`
	DefaultValue      any            `json:"defaultValue,omitempty"`
	Description       *string        `json:"description,omitempty"`
	ElementTypeParams map[string]any `json:"elementTypeParams,omitempty"`
}

// Validate checks the parts of a field Milvus needs before it can answer.
func (f FieldSchema) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FieldName, validation.Required),
		validation.Field(&f.DataType, validation.Required),
	)
}

// IndexParam declares an index built at collection creation.
type IndexParam struct {
	FieldName   string         `json:"fieldName"`
	IndexName   *string        `json:"indexName,omitempty"`
	MetricType  string         `json:"metricType"`
	IndexType   *string        `json:"indexType,omitempty"`
	IndexConfig map[string]any `json:"params,omitempty"`
}

// SearchSubRequest is one ANN branch of a hybrid search.
type SearchSubRequest struct {
	Data          []any          `json:"data"`
	AnnsField     string         `json:"annsField"`
	Filter        *string        `json:"filter,omitempty"`
	Limit         int            `json:"limit"`
	Offset        *int           `json:"offset,omitempty"`
	GroupingField *string        `json:"groupingField,omitempty"`
	MetricType    *string        `json:"metricType,omitempty"`
	Params        map[string]any `json:"params,omitempty"`
}

// Validate checks the sub request has something to search with.
func (s SearchSubRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Data, validation.Required),
		validation.Field(&s.AnnsField, validation.Required),
		validation.Field(&s.Limit, validation.Required, validation.Min(1)),
	)
}

// Rerank merges the results of the sub requests of a hybrid search.
type Rerank struct {
	Strategy string         `json:"strategy"`
	Params   map[string]any `json:"params,omitempty"`
}

// RRFRanker returns reciprocal rank fusion with smoothing constant k.
func RRFRanker(k int) Rerank {
	return Rerank{Strategy: "rrf", Params: map[string]any{"k": k}}
}

// WeightedRanker returns a weighted score fusion, one weight per sub request.
func WeightedRanker(weights ...float64) Rerank {
	return Rerank{Strategy: "weighted", Params: map[string]any{"weights": weights}}
}

// Validate requires a strategy.
func (r Rerank) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Strategy, validation.Required),
	)
}

// String returns a pointer to s, for optional fields.
func String(s string) *string { return &s }

// Int returns a pointer to i, for optional fields.
func Int(i int) *int { return &i }

// Bool returns a pointer to b, for optional fields.
func Bool(b bool) *bool { return &b }

// FloatVectors packs query vectors for the data field of a search.
func FloatVectors(vectors ...[]float32) []any {
	out := make([]any, len(vectors))
	for i, v := range vectors {
		out[i] = v
	}
	return out
}

// DBOptions selects a non-default database. A nil *DBOptions or nil DBName
// targets the server default.
type DBOptions struct {
	DBName *string
}

func (o *DBOptions) dbName() *string {
	if o == nil {
		return nil
	}
	return o.DBName
}

// CreateCollectionOptions carries the optional arguments of collections.create.
// Either Dimension (quick setup) or Schema (custom setup) is normally set.
type CreateCollectionOptions struct {
	DBName           *string
	Dimension        *int
	MetricType       *string
	IDType           *string
	AutoID           *bool
	PrimaryFieldName *string
	VectorFieldName  *string
	Description      *string
	Schema           *CollectionSchema
	IndexParams      []IndexParam
	Params           map[string]any
}

// Validate checks the dimension is positive and the nested schema and indexes.
func (o CreateCollectionOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Dimension, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&o.Schema),
		validation.Field(&o.IndexParams),
	)
}

// Validate requires at least one field.
func (s CollectionSchema) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Fields, validation.Required),
	)
}

// Validate requires the field name and metric.
func (p IndexParam) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FieldName, validation.Required),
		validation.Field(&p.MetricType, validation.Required),
	)
}

// RenameCollectionOptions carries the optional arguments of collections.rename.
type RenameCollectionOptions struct {
	DBName    *string
	NewDBName *string
}

// LoadStateOptions carries the optional arguments of collections.get_load_state.
type LoadStateOptions struct {
	DBName         *string
	PartitionNames []string
}

// WriteOptions carries the optional arguments of insert, upsert and delete.
type WriteOptions struct {
	DBName        *string
	PartitionName *string
}

// GetOptions carries the optional arguments of entities.get.
type GetOptions struct {
	DBName         *string
	OutputFields   []string
	PartitionNames []string
}

// QueryOptions carries the optional arguments of entities.query.
type QueryOptions struct {
	DBName           *string
	OutputFields     []string
	PartitionNames   []string
	Limit            *int
	Offset           *int
	ConsistencyLevel *ConsistencyLevel
}

// Validate checks the paging values and the consistency level.
func (o QueryOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Limit, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&o.Offset, validation.Min(0)),
		validation.Field(&o.ConsistencyLevel),
	)
}

// SearchOptions carries the optional arguments of entities.search.
type SearchOptions struct {
	DBName           *string
	Filter           *string
	Limit            *int
	Offset           *int
	GroupingField    *string
	OutputFields     []string
	SearchParams     map[string]any
	PartitionNames   []string
	ConsistencyLevel *ConsistencyLevel
}

// Validate checks the paging values and the consistency level.
func (o SearchOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Limit, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&o.Offset, validation.Min(0)),
		validation.Field(&o.ConsistencyLevel),
	)
}

// HybridSearchOptions carries the optional arguments of entities.hybrid_search.
type HybridSearchOptions struct {
	DBName           *string
	PartitionNames   []string
	OutputFields     []string
	ConsistencyLevel *ConsistencyLevel
}

// Validate checks the consistency level.
func (o HybridSearchOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.ConsistencyLevel),
	)
}
