package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/dummyjson/internal/query"
	"github.com/Skotchmaster/dummyjson/internal/service"
	"github.com/Skotchmaster/dummyjson/internal/transport"
	"github.com/Skotchmaster/dummyjson/pkg/logging"
)

type UserHTTP struct {
	Svc   *service.UserService
	Carts *service.CartService
	Posts *service.PostService
	Todos *service.TodoService
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	page := h.Svc.List(c.Request().Context(), listOptions(c))
	return c.JSON(http.StatusOK, transport.NewUsersResponse(page))
}

func (h *UserHTTP) SearchUsers(c echo.Context) error {
	page := h.Svc.Search(c.Request().Context(), listOptions(c))
	return c.JSON(http.StatusOK, transport.NewUsersResponse(page))
}

func (h *UserHTTP) FilterUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.filter_users")

	page, err := h.Svc.Filter(ctx, c.QueryParam("key"), c.QueryParam("value"), listOptions(c))
	if err != nil {
		return fail(l, "filter_users_failed", err)
	}
	return c.JSON(http.StatusOK, transport.NewUsersResponse(page))
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "get_user_failed", err)
	}

	user, err := h.Svc.Get(ctx, id, selection(c))
	if err != nil {
		return fail(l, "get_user_failed", err)
	}
	return c.JSON(http.StatusOK, user)
}

// owned resolves the user in the path first so an unknown user is a 404
// rather than an empty list.
func (h *UserHTTP) owned(c echo.Context, event string, read func(userID int, opts query.Options) service.Page, wrap func(service.Page) any) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user."+event)

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, event+"_failed", err)
	}
	if err := h.Svc.EnsureUser(ctx, id); err != nil {
		return fail(l, event+"_failed", err)
	}
	return c.JSON(http.StatusOK, wrap(read(id, listOptions(c))))
}

func (h *UserHTTP) GetUserCarts(c echo.Context) error {
	ctx := c.Request().Context()
	return h.owned(c, "get_user_carts",
		func(id int, opts query.Options) service.Page { return h.Carts.ByUser(ctx, id, opts) },
		func(p service.Page) any { return transport.NewCartsResponse(p) })
}

func (h *UserHTTP) GetUserPosts(c echo.Context) error {
	ctx := c.Request().Context()
	return h.owned(c, "get_user_posts",
		func(id int, opts query.Options) service.Page { return h.Posts.ByUser(ctx, id, opts) },
		func(p service.Page) any { return transport.NewPostsResponse(p) })
}

func (h *UserHTTP) GetUserTodos(c echo.Context) error {
	ctx := c.Request().Context()
	return h.owned(c, "get_user_todos",
		func(id int, opts query.Options) service.Page { return h.Todos.ByUser(ctx, id, opts) },
		func(p service.Page) any { return transport.NewTodosResponse(p) })
}

func (h *UserHTTP) AddUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.add_user")

	body, err := bindMap(c)
	if err != nil {
		return badBody(l, "add_user_failed", err)
	}

	user, err := h.Svc.Add(ctx, body)
	if err != nil {
		return fail(l, "add_user_failed", err)
	}

	l.Info("add_user_success", "id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_user")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "update_user_failed", err)
	}
	body, err := bindMap(c)
	if err != nil {
		return badBody(l, "update_user_failed", err)
	}

	user, err := h.Svc.Update(ctx, id, body)
	if err != nil {
		return fail(l, "update_user_failed", err)
	}

	l.Info("update_user_success", "id", id)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_user")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "delete_user_failed", err)
	}

	deleted, err := h.Svc.Delete(ctx, id)
	if err != nil {
		return fail(l, "delete_user_failed", err)
	}

	l.Info("delete_user_success", "id", id)
	return c.JSON(http.StatusOK, deleted)
}
