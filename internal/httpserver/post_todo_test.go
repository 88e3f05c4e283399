package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/dummyjson/internal/models"
)

type postsEnvelope struct {
	Posts []models.Post `json:"posts"`
	Total int           `json:"total"`
}

type todosEnvelope struct {
	Todos []models.Todo `json:"todos"`
	Total int           `json:"total"`
}

func TestPosts(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := decode[postsEnvelope](t, env.do(http.MethodGet, "/posts", nil))
	assert.Equal(t, 150, resp.Total)
	assert.Len(t, resp.Posts, 30)

	owner := resp.Posts[0].UserID
	byUser := decode[postsEnvelope](t, env.do(http.MethodGet, "/posts/user/"+itoa(owner), nil))
	assert.Equal(t, len(env.Catalog.PostsByUser(owner)), byUser.Total)

	rec := env.do(http.MethodPost, "/posts/add", map[string]any{"title": "I am in love with someone.", "userId": 5})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 151, decode[models.Post](t, rec).ID)

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/posts/add", map[string]any{"title": "x"}).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodPut, "/posts/1", map[string]any{"title": "new"}).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, "/posts/999", nil).Code)
}

func TestTodos(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/todos/random", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, env.Catalog.Todos()[0].ID, decode[models.Todo](t, rec).ID)

	rec = env.do(http.MethodGet, "/todos/1?select=completed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[map[string]any](t, rec)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "completed")

	resp := decode[todosEnvelope](t, env.do(http.MethodGet, "/todos?limit=0", nil))
	assert.Len(t, resp.Todos, 150)

	rec = env.do(http.MethodPost, "/todos/add", map[string]any{"todo": "Use DummyJSON", "completed": false, "userId": 5})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 151, decode[models.Todo](t, rec).ID)

	assert.Equal(t, http.StatusOK, env.do(http.MethodPatch, "/todos/1", map[string]any{"completed": true}).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodDelete, "/todos/1", nil).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/todos/user/1", nil).Code)
}
