package milvus

import (
	"context"
)

// UserEndpoint groups the /users operations.
type UserEndpoint struct {
	sender Sender
}

// NewUserEndpoint returns the user operations on top of any Sender.
func NewUserEndpoint(sender Sender) *UserEndpoint {
	return &UserEndpoint{sender: sender}
}

// List returns all user names.
func (e *UserEndpoint) List(ctx context.Context) (*Response, error) {
	return call(ctx, e.sender, OpListUsers, nil)
}

// Describe returns the roles of a user.
func (e *UserEndpoint) Describe(ctx context.Context, userName string) (*Response, error) {
	return e.byName(ctx, OpDescribeUser, userName)
}

// Create creates a user with a password.
func (e *UserEndpoint) Create(ctx context.Context, userName, password string) (*Response, error) {
	if err := requireNames("userName", userName, "password", password); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, OpCreateUser, Params{"userName": userName, "password": password})
}

// Drop removes a user.
func (e *UserEndpoint) Drop(ctx context.Context, userName string) (*Response, error) {
	return e.byName(ctx, OpDropUser, userName)
}

// GrantRole assigns a role to a user.
func (e *UserEndpoint) GrantRole(ctx context.Context, userName, roleName string) (*Response, error) {
	return e.role(ctx, OpGrantRole, userName, roleName)
}

// RevokeRole removes a role from a user.
func (e *UserEndpoint) RevokeRole(ctx context.Context, userName, roleName string) (*Response, error) {
	return e.role(ctx, OpRevokeRole, userName, roleName)
}

// UpdatePassword replaces the password of a user. The current password is
// required by the server.
func (e *UserEndpoint) UpdatePassword(ctx context.Context, userName, password, newPassword string) (*Response, error) {
	if err := requireNames("userName", userName, "password", password, "newPassword", newPassword); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, OpUpdatePassword, Params{
		"userName":    userName,
		"password":    password,
		"newPassword": newPassword,
	})
}

func (e *UserEndpoint) byName(ctx context.Context, op OperationName, userName string) (*Response, error) {
	if err := requireNames("userName", userName); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, op, Params{"userName": userName})
}

func (e *UserEndpoint) role(ctx context.Context, op OperationName, userName, roleName string) (*Response, error) {
	if err := requireNames("userName", userName, "roleName", roleName); err != nil {
		return nil, err
	}
	return call(ctx, e.sender, op, Params{"userName": userName, "roleName": roleName})
}
