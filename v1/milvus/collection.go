package milvus

import (
	"context"
)

// CollectionEndpoint groups the /collections operations.
type CollectionEndpoint struct {
	sender Sender
}

// NewCollectionEndpoint returns the collection operations on top of any Sender.
func NewCollectionEndpoint(sender Sender) *CollectionEndpoint {
	return &CollectionEndpoint{sender: sender}
}

// Create creates a collection. With only Dimension set Milvus runs its quick
// setup; with Schema and IndexParams it builds exactly what is described.
//
// Example:
//
//	resp, err := client.Collection().Create(ctx, "docs", &milvus.CreateCollectionOptions{
//	    Schema: &milvus.CollectionSchema{
//	        Fields: []milvus.FieldSchema{
//	            {FieldName: "id", DataType: "Int64", IsPrimary: milvus.Bool(true)},
//	            {FieldName: "vector", DataType: "FloatVector", ElementTypeParams: map[string]any{"dim": 768}},
//	        },
//	    },
//	})
func (e *CollectionEndpoint) Create(ctx context.Context, collectionName string, opts *CreateCollectionOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	if err := validateOptions("options", opts); err != nil {
		return nil, err
	}

	params := Params{"collectionName": collectionName}
	if opts != nil {
		params["dbName"] = opts.DBName
		params["dimension"] = opts.Dimension
		params["metricType"] = opts.MetricType
		params["idType"] = opts.IDType
		params["autoID"] = opts.AutoID
		params["primaryFieldName"] = opts.PrimaryFieldName
		params["vectorFieldName"] = opts.VectorFieldName
		params["description"] = opts.Description
		params["schema"] = opts.Schema
		params["indexParams"] = opts.IndexParams
		params["params"] = opts.Params
	}
	return call(ctx, e.sender, OpCreateCollection, params)
}

// Drop removes a collection and all of its data.
func (e *CollectionEndpoint) Drop(ctx context.Context, collectionName string, db *DBOptions) (*Response, error) {
	return e.byName(ctx, OpDropCollection, collectionName, db)
}

// Describe returns the schema and settings of a collection.
func (e *CollectionEndpoint) Describe(ctx context.Context, collectionName string, db *DBOptions) (*Response, error) {
	return e.byName(ctx, OpDescribeCollection, collectionName, db)
}

// List returns the collection names of a database. Without a database the
// body is the empty object.
func (e *CollectionEndpoint) List(ctx context.Context, db *DBOptions) (*Response, error) {
	return call(ctx, e.sender, OpListCollections, Params{"dbName": db.dbName()})
}

// Has reports through data.has whether a collection exists.
func (e *CollectionEndpoint) Has(ctx context.Context, collectionName string, db *DBOptions) (*Response, error) {
	return e.byName(ctx, OpHasCollection, collectionName, db)
}

// Rename renames a collection, optionally moving it to another database.
func (e *CollectionEndpoint) Rename(ctx context.Context, collectionName, newCollectionName string, opts *RenameCollectionOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName, "newCollectionName", newCollectionName); err != nil {
		return nil, err
	}
	params := Params{
		"collectionName":    collectionName,
		"newCollectionName": newCollectionName,
	}
	if opts != nil {
		params["dbName"] = opts.DBName
		params["newDbName"] = opts.NewDBName
	}
	return call(ctx, e.sender, OpRenameCollection, params)
}

// GetStats returns the row count of a collection.
func (e *CollectionEndpoint) GetStats(ctx context.Context, collectionName string, db *DBOptions) (*Response, error) {
	return e.byName(ctx, OpGetCollectionStats, collectionName, db)
}

// GetLoadState returns the load state of a collection or some of its partitions.
func (e *CollectionEndpoint) GetLoadState(ctx context.Context, collectionName string, opts *LoadStateOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	params := Params{"collectionName": collectionName}
	if opts != nil {
		params["dbName"] = opts.DBName
		params["partitionNames"] = opts.PartitionNames
	}
	return call(ctx, e.sender, OpGetCollectionLoadState, params)
}

// Load loads a collection into memory for search and query.
func (e *CollectionEndpoint) Load(ctx context.Context, collectionName string, db *DBOptions) (*Response, error) {
	return e.byName(ctx, OpLoadCollection, collectionName, db)
}

// Release releases a collection from memory.
func (e *CollectionEndpoint) Release(ctx context.Context, collectionName string, db *DBOptions) (*Response, error) {
	return e.byName(ctx, OpReleaseCollection, collectionName, db)
}

// RefreshLoad reloads a loaded collection after fields were added.
func (e *CollectionEndpoint) RefreshLoad(ctx context.Context, collectionName string, db *DBOptions) (*Response, error) {
	return e.byName(ctx, OpRefreshLoad, collectionName, db)
}

// Flush seals the growing segments of a collection.
func (e *CollectionEndpoint) Flush(ctx context.Context, collectionName string, db *DBOptions) (*Response, error) {
	return e.byName(ctx, OpFlushCollection, collectionName, db)
}

// Compact merges small segments of a collection.
func (e *CollectionEndpoint) Compact(ctx context.Context, collectionName string, db *DBOptions) (*Response, error) {
	return e.byName(ctx, OpCompactCollection, collectionName, db)
}

// AlterProperties sets collection properties such as "collection.ttl.seconds".
func (e *CollectionEndpoint) AlterProperties(ctx context.Context, collectionName string, properties map[string]any, db *DBOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	if err := requireValue("properties", properties); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, OpAlterCollectionProperties, Params{
		"collectionName": collectionName,
		"properties":     properties,
		"dbName":         db.dbName(),
	})
}

// DropProperties resets collection properties to their defaults.
func (e *CollectionEndpoint) DropProperties(ctx context.Context, collectionName string, propertyKeys []string, db *DBOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	if err := requireValue("propertyKeys", propertyKeys); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, OpDropCollectionProperties, Params{
		"collectionName": collectionName,
		"propertyKeys":   propertyKeys,
		"dbName":         db.dbName(),
	})
}

// AddField adds a nullable field to an existing collection.
func (e *CollectionEndpoint) AddField(ctx context.Context, collectionName string, schema FieldSchema, db *DBOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	if err := validateOptions("schema", &schema); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, OpAddField, Params{
		"collectionName": collectionName,
		"schema":         schema,
		"dbName":         db.dbName(),
	})
}

// AlterFieldProperties changes parameters of one field, e.g. max_length.
func (e *CollectionEndpoint) AlterFieldProperties(ctx context.Context, collectionName, fieldName string, fieldParams map[string]any, db *DBOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName, "fieldName", fieldName); err != nil {
		return nil, err
	}
	if err := requireValue("fieldParams", fieldParams); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, OpAlterFieldProperties, Params{
		"collectionName": collectionName,
		"fieldName":      fieldName,
		"fieldParams":    fieldParams,
		"dbName":         db.dbName(),
	})
}

func (e *CollectionEndpoint) byName(ctx context.Context, op OperationName, collectionName string, db *DBOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, op, Params{
		"collectionName": collectionName,
		"dbName":         db.dbName(),
	})
}
