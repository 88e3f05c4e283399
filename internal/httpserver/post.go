package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/dummyjson/internal/service"
	"github.com/Skotchmaster/dummyjson/internal/transport"
	"github.com/Skotchmaster/dummyjson/pkg/logging"
)

type PostHTTP struct {
	Svc *service.PostService
}

func (h *PostHTTP) GetPosts(c echo.Context) error {
	page := h.Svc.List(c.Request().Context(), listOptions(c))
	return c.JSON(http.StatusOK, transport.NewPostsResponse(page))
}

func (h *PostHTTP) SearchPosts(c echo.Context) error {
	page := h.Svc.Search(c.Request().Context(), listOptions(c))
	return c.JSON(http.StatusOK, transport.NewPostsResponse(page))
}

func (h *PostHTTP) GetPostsByUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "post.get_posts_by_user")

	userID, err := parseID(c, "id")
	if err != nil {
		return badID(l, "get_posts_by_user_failed", err)
	}
	return c.JSON(http.StatusOK, transport.NewPostsResponse(h.Svc.ByUser(ctx, userID, listOptions(c))))
}

func (h *PostHTTP) GetPost(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "post.get_post")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "get_post_failed", err)
	}

	post, err := h.Svc.Get(ctx, id, selection(c))
	if err != nil {
		return fail(l, "get_post_failed", err)
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHTTP) AddPost(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "post.add_post")

	body, err := bindMap(c)
	if err != nil {
		return badBody(l, "add_post_failed", err)
	}

	post, err := h.Svc.Add(ctx, body)
	if err != nil {
		return fail(l, "add_post_failed", err)
	}

	l.Info("add_post_success", "id", post.ID)
	return c.JSON(http.StatusCreated, post)
}

func (h *PostHTTP) UpdatePost(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "post.update_post")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "update_post_failed", err)
	}
	body, err := bindMap(c)
	if err != nil {
		return badBody(l, "update_post_failed", err)
	}

	post, err := h.Svc.Update(ctx, id, body)
	if err != nil {
		return fail(l, "update_post_failed", err)
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHTTP) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "post.delete_post")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "delete_post_failed", err)
	}

	deleted, err := h.Svc.Delete(ctx, id)
	if err != nil {
		return fail(l, "delete_post_failed", err)
	}
	return c.JSON(http.StatusOK, deleted)
}
