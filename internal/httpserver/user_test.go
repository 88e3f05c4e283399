package httpserver

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/dummyjson/internal/models"
)

type usersEnvelope struct {
	Users []models.User `json:"users"`
	Total int           `json:"total"`
}

func TestUsersList_SortAndSearch(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := decode[usersEnvelope](t, env.do(http.MethodGet, "/users?sortBy=age&order=desc&limit=5", nil))
	require.Len(t, resp.Users, 5)
	for i := 1; i < len(resp.Users); i++ {
		assert.GreaterOrEqual(t, resp.Users[i-1].Age, resp.Users[i].Age)
	}

	first := env.Catalog.Users()[0]
	resp = decode[usersEnvelope](t, env.do(http.MethodGet, "/users/search?q="+url.QueryEscape(first.Username), nil))
	require.NotZero(t, resp.Total)
	assert.Equal(t, first.ID, resp.Users[0].ID)
}

func TestFilterUsers(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	first := env.Catalog.Users()[0]
	rec := env.do(http.MethodGet, "/users/filter?key=hair.color&value="+url.QueryEscape(first.Hair.Color)+"&limit=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[usersEnvelope](t, rec)
	require.NotZero(t, resp.Total)
	for _, u := range resp.Users {
		assert.Equal(t, first.Hair.Color, u.Hair.Color)
	}

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/users/filter?value=x", nil).Code)
}

func TestUserOwnedResources(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	cart := env.Catalog.Carts()[0]
	rec := env.do(http.MethodGet, "/users/"+itoa(cart.UserID)+"/carts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotZero(t, decode[cartsEnvelope](t, rec).Total)

	for _, suffix := range []string{"carts", "posts", "todos"} {
		assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/users/9999/"+suffix, nil).Code, suffix)
		assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/users/1/"+suffix, nil).Code, suffix)
	}
}

func TestUserWrites(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/users/add", map[string]any{"firstName": "Muhammad", "age": 250})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, env.Catalog.NextUserID(), decode[models.User](t, rec).ID)

	rec = env.do(http.MethodPatch, "/users/2", map[string]any{"lastName": "Owais"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Owais", decode[models.User](t, rec).LastName)

	rec = env.do(http.MethodDelete, "/users/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode[map[string]any](t, rec)["isDeleted"])

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/users/9999", nil).Code)
}
