package milvus

import (
	"context"
)

// RoleEndpoint groups the /roles operations.
type RoleEndpoint struct {
	sender Sender
}

// NewRoleEndpoint returns the role operations on top of any Sender.
func NewRoleEndpoint(sender Sender) *RoleEndpoint {
	return &RoleEndpoint{sender: sender}
}

// List returns all role names.
func (e *RoleEndpoint) List(ctx context.Context) (*Response, error) {
	return call(ctx, e.sender, OpListRoles, nil)
}

// Describe returns the privileges granted to a role.
func (e *RoleEndpoint) Describe(ctx context.Context, roleName string) (*Response, error) {
	return e.byName(ctx, OpDescribeRole, roleName)
}

// Create creates a role.
func (e *RoleEndpoint) Create(ctx context.Context, roleName string) (*Response, error) {
	return e.byName(ctx, OpCreateRole, roleName)
}

// Drop removes a role. Milvus refuses while privileges are still granted.
func (e *RoleEndpoint) Drop(ctx context.Context, roleName string) (*Response, error) {
	return e.byName(ctx, OpDropRole, roleName)
}

// GrantPrivilege grants a privilege on an object, e.g. ("Collection", "docs", "Search").
// The values are passed through as given.
func (e *RoleEndpoint) GrantPrivilege(ctx context.Context, roleName, objectType, objectName, privilege string) (*Response, error) {
	return e.privilege(ctx, OpGrantPrivilege, roleName, objectType, objectName, privilege)
}

// RevokePrivilege revokes a privilege granted by GrantPrivilege.
func (e *RoleEndpoint) RevokePrivilege(ctx context.Context, roleName, objectType, objectName, privilege string) (*Response, error) {
	return e.privilege(ctx, OpRevokePrivilege, roleName, objectType, objectName, privilege)
}

// GrantPrivilegeV2 grants a privilege or privilege group on a collection.
// collectionName "*" means every collection of the database.
//
// Example:
//
//	resp, err := client.Role().GrantPrivilegeV2(ctx, "reader",
//	    milvus.PrivilegeCollectionReadOnly, "*", nil)
func (e *RoleEndpoint) GrantPrivilegeV2(ctx context.Context, roleName string, privilege Privilege, collectionName string, db *DBOptions) (*Response, error) {
	return e.privilegeV2(ctx, OpGrantPrivilegeV2, roleName, privilege, collectionName, db)
}

// RevokePrivilegeV2 revokes a privilege granted by GrantPrivilegeV2.
func (e *RoleEndpoint) RevokePrivilegeV2(ctx context.Context, roleName string, privilege Privilege, collectionName string, db *DBOptions) (*Response, error) {
	return e.privilegeV2(ctx, OpRevokePrivilegeV2, roleName, privilege, collectionName, db)
}

func (e *RoleEndpoint) byName(ctx context.Context, op OperationName, roleName string) (*Response, error) {
	if err := requireNames("roleName", roleName); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, op, Params{"roleName": roleName})
}

func (e *RoleEndpoint) privilege(ctx context.Context, op OperationName, roleName, objectType, objectName, privilege string) (*Response, error) {
	if err := requireNames(
		"roleName", roleName,
		"objectType", objectType,
		"objectName", objectName,
		"privilege", privilege,
	); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, op, Params{
		"roleName":   roleName,
		"objectType": objectType,
		"objectName": objectName,
		"privilege":  privilege,
	})
}

func (e *RoleEndpoint) privilegeV2(ctx context.Context, op OperationName, roleName string, privilege Privilege, collectionName string, db *DBOptions) (*Response, error) {
	if err := requireNames("roleName", roleName, "collectionName", collectionName); err != nil {
		return nil, err
	}
	if err := privilege.Validate(); err != nil {
		return nil, invalidArgument("privilege", err)
	}
	return call(ctx, e.sender, op, Params{
		"roleName":       roleName,
		"privilege":      string(privilege),
		"collectionName": collectionName,
		"dbName":         db.dbName(),
	})
}
