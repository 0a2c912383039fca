package milvus

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_BasicOperations(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0,"data":[]}`)
	client := newTestClient(t, fs)
	ctx := context.Background()

	_, err := client.Role().List(ctx)
	require.NoError(t, err)
	got := fs.Last(t)
	assert.Equal(t, "/v2/vectordb/roles/list", got.Path)
	assert.Equal(t, "{}", got.Body)

	for path, call := range map[string]func() (*Response, error){
		"/v2/vectordb/roles/describe": func() (*Response, error) { return client.Role().Describe(ctx, "reader") },
		"/v2/vectordb/roles/create":   func() (*Response, error) { return client.Role().Create(ctx, "reader") },
		"/v2/vectordb/roles/drop":     func() (*Response, error) { return client.Role().Drop(ctx, "reader") },
	} {
		_, err := call()
		require.NoError(t, err, path)
		got := fs.Last(t)
		assert.Equal(t, path, got.Path)
		assert.Equal(t, `{"roleName":"reader"}`, got.Body)
	}

	_, err = client.Role().Create(ctx, "")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRole_GrantAndRevokePrivilege(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	client := newTestClient(t, fs)
	ctx := context.Background()

	_, err := client.Role().GrantPrivilege(ctx, "reader", "Collection", "docs", "Search")
	require.NoError(t, err)
	got := fs.Last(t)
	assert.Equal(t, "/v2/vectordb/roles/grant_privilege", got.Path)
	assert.Equal(t, `{"roleName":"reader","objectType":"Collection","objectName":"docs","privilege":"Search"}`, got.Body)

	_, err = client.Role().RevokePrivilege(ctx, "reader", "Collection", "docs", "Search")
	require.NoError(t, err)
	assert.Equal(t, "/v2/vectordb/roles/revoke_privilege", fs.Last(t).Path)

	_, err = client.Role().GrantPrivilege(ctx, "reader", "", "docs", "Search")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRole_PrivilegeV2(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	client := newTestClient(t, fs)
	ctx := context.Background()

	_, err := client.Role().GrantPrivilegeV2(ctx, "admin", PrivilegeDatabaseAdmin, "*", nil)
	require.NoError(t, err)
	got := fs.Last(t)
	assert.Equal(t, "/v2/vectordb/roles/grant_privilege_v2", got.Path)
	assert.Equal(t, `{"roleName":"admin","privilege":"DatabaseAdmin","collectionName":"*"}`, got.Body)

	_, err = client.Role().RevokePrivilegeV2(ctx, "admin", PrivilegeDatabaseAdmin, "*", &DBOptions{DBName: String("default")})
	require.NoError(t, err)
	got = fs.Last(t)
	assert.Equal(t, "/v2/vectordb/roles/revoke_privilege_v2", got.Path)
	assert.Equal(t, `{"roleName":"admin","privilege":"DatabaseAdmin","collectionName":"*","dbName":"default"}`, got.Body)
}

func TestRole_PrivilegeV2RejectsUnknownPrivilege(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"code":0}`)
	client := newTestClient(t, fs)

	_, err := client.Role().GrantPrivilegeV2(context.Background(), "admin", Privilege("Everything"), "*", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Empty(t, fs.Requests())
}

func TestPrivilege_Validate(t *testing.T) {
	assert.NoError(t, PrivilegeCollectionReadOnly.Validate())
	assert.NoError(t, PrivilegeSearch.Validate())
	assert.Error(t, Privilege("").Validate())
	assert.Error(t, Privilege("search").Validate())
}
