package milvus

import (
	"context"
)

// VectorEndpoint groups the /entities operations.
type VectorEndpoint struct {
	sender Sender
}

// NewVectorEndpoint returns the entity operations on top of any Sender.
func NewVectorEndpoint(sender Sender) *VectorEndpoint {
	return &VectorEndpoint{sender: sender}
}

// Insert writes rows into a collection.
//
// Example:
//
//	resp, err := client.Vector().Insert(ctx, "docs", []milvus.Entity{
//	    {"id": 1, "vector": []float32{0.1, 0.2}, "title": "first"},
//	}, nil)
//	ids := resp.JSON("data.insertIds")
func (e *VectorEndpoint) Insert(ctx context.Context, collectionName string, data []Entity, opts *WriteOptions) (*Response, error) {
	return e.write(ctx, OpInsert, collectionName, data, opts)
}

// Upsert inserts rows or replaces rows with the same primary key.
func (e *VectorEndpoint) Upsert(ctx context.Context, collectionName string, data []Entity, opts *WriteOptions) (*Response, error) {
	return e.write(ctx, OpUpsert, collectionName, data, opts)
}

func (e *VectorEndpoint) write(ctx context.Context, op OperationName, collectionName string, data []Entity, opts *WriteOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	if err := requireValue("data", data); err != nil {
		return nil, err
	}
	params := Params{"collectionName": collectionName, "data": data}
	if opts != nil {
		params["dbName"] = opts.DBName
		params["partitionName"] = opts.PartitionName
	}
	return call(ctx, e.sender, op, params)
}

// Delete removes the rows matching a boolean filter expression, e.g. "id in [1, 2]".
// An empty filter is sent as-is and matches every row.
func (e *VectorEndpoint) Delete(ctx context.Context, collectionName, filter string, opts *WriteOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	params := Params{"collectionName": collectionName, "filter": filter}
	if opts != nil {
		params["dbName"] = opts.DBName
		params["partitionName"] = opts.PartitionName
	}
	return call(ctx, e.sender, OpDelete, params)
}

// Get fetches rows by primary key. id may be a single key or a slice of keys;
// a single key is sent as a one-element list.
func (e *VectorEndpoint) Get(ctx context.Context, collectionName string, id any, opts *GetOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	ids, err := idList(id)
	if err != nil {
		return nil, err
	}
	params := Params{"collectionName": collectionName, "id": ids}
	if opts != nil {
		params["dbName"] = opts.DBName
		params["outputFields"] = opts.OutputFields
		params["partitionNames"] = opts.PartitionNames
	}
	return call(ctx, e.sender, OpGet, params)
}

// Query returns the rows matching a scalar filter expression. An empty filter
// is sent as-is and means no filter; the server then needs a limit.
func (e *VectorEndpoint) Query(ctx context.Context, collectionName, filter string, opts *QueryOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	if err := validateOptions("options", opts); err != nil {
		return nil, err
	}
	params := Params{"collectionName": collectionName, "filter": filter}
	if opts != nil {
		params["dbName"] = opts.DBName
		params["outputFields"] = opts.OutputFields
		params["partitionNames"] = opts.PartitionNames
		params["limit"] = opts.Limit
		params["offset"] = opts.Offset
		params["consistencyLevel"] = opts.ConsistencyLevel
	}
	return call(ctx, e.sender, OpQuery, params)
}

// Search runs an approximate nearest neighbour search on annsField with the
// given query vectors.
//
// Example:
//
//	resp, err := client.Vector().Search(ctx, "docs",
//	    milvus.FloatVectors([]float32{0.1, 0.2}), "vector",
//	    &milvus.SearchOptions{Limit: milvus.Int(5), OutputFields: []string{"title"}})
func (e *VectorEndpoint) Search(ctx context.Context, collectionName string, data []any, annsField string, opts *SearchOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName, "annsField", annsField); err != nil {
		return nil, err
	}
	if err := requireValue("data", data); err != nil {
		return nil, err
	}
	if err := validateOptions("options", opts); err != nil {
		return nil, err
	}
	params := Params{"collectionName": collectionName, "data": data, "annsField": annsField}
	if opts != nil {
		params["dbName"] = opts.DBName
		params["filter"] = opts.Filter
		params["limit"] = opts.Limit
		params["offset"] = opts.Offset
		params["groupingField"] = opts.GroupingField
		params["outputFields"] = opts.OutputFields
		params["searchParams"] = opts.SearchParams
		params["partitionNames"] = opts.PartitionNames
		params["consistencyLevel"] = opts.ConsistencyLevel
	}
	return call(ctx, e.sender, OpSearch, params)
}

// HybridSearch runs several ANN searches and merges them with rerank.
func (e *VectorEndpoint) HybridSearch(ctx context.Context, collectionName string, search []SearchSubRequest, rerank Rerank, limit int, opts *HybridSearchOptions) (*Response, error) {
	if err := requireNames("collectionName", collectionName); err != nil {
		return nil, err
	}
	if err := requireValue("search", search); err != nil {
		return nil, err
	}
	for _, sub := range search {
		if err := validateOptions("search", &sub); err != nil {
			return nil, err
		}
	}
	if err := validateOptions("rerank", &rerank); err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, invalidArgument("limit", errNotPositive)
	}
	if err := validateOptions("options", opts); err != nil {
		return nil, err
	}

	params := Params{
		"collectionName": collectionName,
		"search":         search,
		"rerank":         rerank,
		"limit":          limit,
	}
	if opts != nil {
		params["dbName"] = opts.DBName
		params["partitionNames"] = opts.PartitionNames
		params["outputFields"] = opts.OutputFields
		params["consistencyLevel"] = opts.ConsistencyLevel
	}
	return call(ctx, e.sender, OpHybridSearch, params)
}
