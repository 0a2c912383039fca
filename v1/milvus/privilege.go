package milvus

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Privilege is a privilege or built-in privilege group accepted by the v2
// grant and revoke endpoints.
type Privilege string

// Built-in privilege groups.
const (
	PrivilegeCollectionReadOnly  Privilege = "CollectionReadOnly"
	PrivilegeCollectionReadWrite Privilege = "CollectionReadWrite"
	PrivilegeCollectionAdmin     Privilege = "CollectionAdmin"
	PrivilegeDatabaseReadOnly    Privilege = "DatabaseReadOnly"
	PrivilegeDatabaseReadWrite   Privilege = "DatabaseReadWrite"
	PrivilegeDatabaseAdmin       Privilege = "DatabaseAdmin"
	PrivilegeClusterReadOnly     Privilege = "ClusterReadOnly"
	PrivilegeClusterReadWrite    Privilege = "ClusterReadWrite"
	PrivilegeClusterAdmin        Privilege = "ClusterAdmin"
)

// Individual privileges.
const (
	PrivilegeAll                Privilege = "All"
	PrivilegeQuery              Privilege = "Query"
	PrivilegeSearch             Privilege = "Search"
	PrivilegeInsert             Privilege = "Insert"
	PrivilegeUpsert             Privilege = "Upsert"
	PrivilegeDelete             Privilege = "Delete"
	PrivilegeLoad               Privilege = "Load"
	PrivilegeRelease            Privilege = "Release"
	PrivilegeFlush              Privilege = "Flush"
	PrivilegeCompaction         Privilege = "Compaction"
	PrivilegeGetLoadState       Privilege = "GetLoadState"
	PrivilegeGetStatistics      Privilege = "GetStatistics"
	PrivilegeDescribeCollection Privilege = "DescribeCollection"
	PrivilegeShowCollections    Privilege = "ShowCollections"
	PrivilegeCreateCollection   Privilege = "CreateCollection"
	PrivilegeDropCollection     Privilege = "DropCollection"
	PrivilegeRenameCollection   Privilege = "RenameCollection"
	PrivilegeCreateIndex        Privilege = "CreateIndex"
	PrivilegeDropIndex          Privilege = "DropIndex"
	PrivilegeIndexDetail        Privilege = "IndexDetail"
	PrivilegeCreateOwnership    Privilege = "CreateOwnership"
	PrivilegeDropOwnership      Privilege = "DropOwnership"
	PrivilegeSelectOwnership    Privilege = "SelectOwnership"
	PrivilegeManageOwnership    Privilege = "ManageOwnership"
	PrivilegeUpdateUser         Privilege = "UpdateUser"
	PrivilegeSelectUser         Privilege = "SelectUser"
)

var knownPrivileges = privilegeValues(
	PrivilegeCollectionReadOnly, PrivilegeCollectionReadWrite, PrivilegeCollectionAdmin,
	PrivilegeDatabaseReadOnly, PrivilegeDatabaseReadWrite, PrivilegeDatabaseAdmin,
	PrivilegeClusterReadOnly, PrivilegeClusterReadWrite, PrivilegeClusterAdmin,
	PrivilegeAll, PrivilegeQuery, PrivilegeSearch, PrivilegeInsert, PrivilegeUpsert,
	PrivilegeDelete, PrivilegeLoad, PrivilegeRelease, PrivilegeFlush, PrivilegeCompaction,
	PrivilegeGetLoadState, PrivilegeGetStatistics, PrivilegeDescribeCollection,
	PrivilegeShowCollections, PrivilegeCreateCollection, PrivilegeDropCollection,
	PrivilegeRenameCollection, PrivilegeCreateIndex, PrivilegeDropIndex, PrivilegeIndexDetail,
	PrivilegeCreateOwnership, PrivilegeDropOwnership, PrivilegeSelectOwnership,
	PrivilegeManageOwnership, PrivilegeUpdateUser, PrivilegeSelectUser,
)

func privilegeValues(ps ...Privilege) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

// Validate rejects empty and unknown privileges.
func (p Privilege) Validate() error {
	return validation.Validate(string(p), validation.Required, validation.In(knownPrivileges...))
}
