package milvus

import (
	"net/http"
	"slices"
)

const apiPrefix = "/v2/vectordb"

// OperationName identifies one REST endpoint, e.g. "collections.create".
type OperationName string

// Operation describes one endpoint: how to reach it and which body fields it
// accepts. Fields lists every accepted key in wire order; Required is the
// subset that must be present.
type Operation struct {
	Name     OperationName
	Method   string
	Path     string
	Fields   []string
	Required []string
}

// Collections.
const (
	OpCreateCollection          OperationName = "collections.create"
	OpDropCollection            OperationName = "collections.drop"
	OpDescribeCollection        OperationName = "collections.describe"
	OpListCollections           OperationName = "collections.list"
	OpHasCollection             OperationName = "collections.has"
	OpRenameCollection          OperationName = "collections.rename"
	OpGetCollectionStats        OperationName = "collections.get_stats"
	OpGetCollectionLoadState    OperationName = "collections.get_load_state"
	OpLoadCollection            OperationName = "collections.load"
	OpReleaseCollection         OperationName = "collections.release"
	OpRefreshLoad               OperationName = "collections.refresh_load"
	OpFlushCollection           OperationName = "collections.flush"
	OpCompactCollection         OperationName = "collections.compact"
	OpAlterCollectionProperties OperationName = "collections.alter_properties"
	OpDropCollectionProperties  OperationName = "collections.drop_properties"
	OpAddField                  OperationName = "collections.fields.add"
	OpAlterFieldProperties      OperationName = "collections.fields.alter_properties"
)

// Entities.
const (
	OpInsert       OperationName = "entities.insert"
	OpUpsert       OperationName = "entities.upsert"
	OpDelete       OperationName = "entities.delete"
	OpGet          OperationName = "entities.get"
	OpQuery        OperationName = "entities.query"
	OpSearch       OperationName = "entities.search"
	OpHybridSearch OperationName = "entities.hybrid_search"
)

// Roles.
const (
	OpListRoles         OperationName = "roles.list"
	OpDescribeRole      OperationName = "roles.describe"
	OpCreateRole        OperationName = "roles.create"
	OpDropRole          OperationName = "roles.drop"
	OpGrantPrivilege    OperationName = "roles.grant_privilege"
	OpRevokePrivilege   OperationName = "roles.revoke_privilege"
	OpGrantPrivilegeV2  OperationName = "roles.grant_privilege_v2"
	OpRevokePrivilegeV2 OperationName = "roles.revoke_privilege_v2"
)

// Users.
const (
	OpListUsers      OperationName = "users.list"
	OpDescribeUser   OperationName = "users.describe"
	OpCreateUser     OperationName = "users.create"
	OpDropUser       OperationName = "users.drop"
	OpGrantRole      OperationName = "users.grant_role"
	OpRevokeRole     OperationName = "users.revoke_role"
	OpUpdatePassword OperationName = "users.update_password"
)

// operations is the endpoint table. Every request the client sends is built
// from one of these entries by NewRequest.
var operations = buildOperationTable([]Operation{
	// collections
	post(OpCreateCollection, "/collections/create",
		fields("collectionName", "dbName", "dimension", "metricType", "idType", "autoID",
			"primaryFieldName", "vectorFieldName", "description", "schema", "indexParams", "params"),
		"collectionName"),
	post(OpDropCollection, "/collections/drop", fields("collectionName", "dbName"), "collectionName"),
	post(OpDescribeCollection, "/collections/describe", fields("collectionName", "dbName"), "collectionName"),
	post(OpListCollections, "/collections/list", fields("dbName")),
	post(OpHasCollection, "/collections/has", fields("dbName", "collectionName"), "collectionName"),
	post(OpRenameCollection, "/collections/rename",
		fields("dbName", "collectionName", "newDbName", "newCollectionName"),
		"collectionName", "newCollectionName"),
	post(OpGetCollectionStats, "/collections/get_stats", fields("dbName", "collectionName"), "collectionName"),
	post(OpGetCollectionLoadState, "/collections/get_load_state",
		fields("dbName", "collectionName", "partitionNames"), "collectionName"),
	post(OpLoadCollection, "/collections/load", fields("dbName", "collectionName"), "collectionName"),
	post(OpReleaseCollection, "/collections/release", fields("dbName", "collectionName"), "collectionName"),
	post(OpRefreshLoad, "/collections/refresh_load", fields("dbName", "collectionName"), "collectionName"),
	post(OpFlushCollection, "/collections/flush", fields("dbName", "collectionName"), "collectionName"),
	post(OpCompactCollection, "/collections/compact", fields("dbName", "collectionName"), "collectionName"),
	post(OpAlterCollectionProperties, "/collections/alter_properties",
		fields("dbName", "collectionName", "properties"), "collectionName", "properties"),
	post(OpDropCollectionProperties, "/collections/drop_properties",
		fields("dbName", "collectionName", "propertyKeys"), "collectionName", "propertyKeys"),
	post(OpAddField, "/collections/fields/add",
		fields("dbName", "collectionName", "schema"), "collectionName", "schema"),
	post(OpAlterFieldProperties, "/collections/fields/alter_properties",
		fields("dbName", "collectionName", "fieldName", "fieldParams"), "collectionName", "fieldName", "fieldParams"),

	// entities
	post(OpInsert, "/entities/insert",
		fields("collectionName", "data", "partitionName", "dbName"), "collectionName", "data"),
	post(OpUpsert, "/entities/upsert",
		fields("collectionName", "data", "dbName", "partitionName"), "collectionName", "data"),
	post(OpDelete, "/entities/delete",
		fields("collectionName", "filter", "partitionName", "dbName"), "collectionName", "filter"),
	post(OpGet, "/entities/get",
		fields("collectionName", "id", "outputFields", "partitionNames", "dbName"), "collectionName", "id"),
	post(OpQuery, "/entities/query",
		fields("collectionName", "filter", "dbName", "outputFields", "partitionNames", "limit", "offset", "consistencyLevel"),
		"collectionName", "filter"),
	post(OpSearch, "/entities/search",
		fields("collectionName", "data", "annsField", "dbName", "filter", "limit", "offset", "groupingField",
			"outputFields", "searchParams", "partitionNames", "consistencyLevel"),
		"collectionName", "data", "annsField"),
	post(OpHybridSearch, "/entities/hybrid_search",
		fields("collectionName", "search", "rerank", "limit", "dbName", "partitionNames", "outputFields", "consistencyLevel"),
		"collectionName", "search", "rerank", "limit"),

	// roles
	post(OpListRoles, "/roles/list", nil),
	post(OpDescribeRole, "/roles/describe", fields("roleName"), "roleName"),
	post(OpCreateRole, "/roles/create", fields("roleName"), "roleName"),
	post(OpDropRole, "/roles/drop", fields("roleName"), "roleName"),
	post(OpGrantPrivilege, "/roles/grant_privilege",
		fields("roleName", "objectType", "objectName", "privilege"),
		"roleName", "objectType", "objectName", "privilege"),
	post(OpRevokePrivilege, "/roles/revoke_privilege",
		fields("roleName", "objectType", "objectName", "privilege"),
		"roleName", "objectType", "objectName", "privilege"),
	post(OpGrantPrivilegeV2, "/roles/grant_privilege_v2",
		fields("roleName", "privilege", "collectionName", "dbName"), "roleName", "privilege", "collectionName"),
	post(OpRevokePrivilegeV2, "/roles/revoke_privilege_v2",
		fields("roleName", "privilege", "collectionName", "dbName"), "roleName", "privilege", "collectionName"),

	// users
	post(OpListUsers, "/users/list", nil),
	post(OpDescribeUser, "/users/describe", fields("userName"), "userName"),
	post(OpCreateUser, "/users/create", fields("userName", "password"), "userName", "password"),
	post(OpDropUser, "/users/drop", fields("userName"), "userName"),
	post(OpGrantRole, "/users/grant_role", fields("userName", "roleName"), "userName", "roleName"),
	post(OpRevokeRole, "/users/revoke_role", fields("userName", "roleName"), "userName", "roleName"),
	post(OpUpdatePassword, "/users/update_password",
		fields("userName", "password", "newPassword"), "userName", "password", "newPassword"),
})

// LookupOperation returns a copy of the table entry for name.
func LookupOperation(name OperationName) (Operation, bool) {
	op, ok := operations[name]
	if !ok {
		return Operation{}, false
	}
	return op.clone(), true
}

// Operations returns a copy of the endpoint table. Changing the result does
// not affect requests built by this package.
func Operations() map[OperationName]Operation {
	out := make(map[OperationName]Operation, len(operations))
	for name, op := range operations {
		out[name] = op.clone()
	}
	return out
}

func (op Operation) clone() Operation {
	op.Fields = slices.Clone(op.Fields)
	op.Required = slices.Clone(op.Required)
	return op
}

func post(name OperationName, path string, fieldOrder []string, required ...string) Operation {
	return Operation{
		Name:     name,
		Method:   http.MethodPost,
		Path:     apiPrefix + path,
		Fields:   fieldOrder,
		Required: required,
	}
}

func fields(names ...string) []string { return names }

func buildOperationTable(ops []Operation) map[OperationName]Operation {
	table := make(map[OperationName]Operation, len(ops))
	for _, op := range ops {
		if _, dup := table[op.Name]; dup {
			panic("milvus: duplicate operation " + string(op.Name))
		}
		table[op.Name] = op
	}
	return table
}
