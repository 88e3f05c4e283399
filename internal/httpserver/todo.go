package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/dummyjson/internal/service"
	"github.com/Skotchmaster/dummyjson/internal/transport"
	"github.com/Skotchmaster/dummyjson/pkg/logging"
)

type TodoHTTP struct {
	Svc *service.TodoService
}

func (h *TodoHTTP) GetTodos(c echo.Context) error {
	page := h.Svc.List(c.Request().Context(), listOptions(c))
	return c.JSON(http.StatusOK, transport.NewTodosResponse(page))
}

func (h *TodoHTTP) GetRandomTodo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.get_random_todo")

	todo, err := h.Svc.Random(ctx)
	if err != nil {
		return fail(l, "get_random_todo_failed", err)
	}
	return c.JSON(http.StatusOK, todo)
}

func (h *TodoHTTP) GetTodosByUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.get_todos_by_user")

	userID, err := parseID(c, "id")
	if err != nil {
		return badID(l, "get_todos_by_user_failed", err)
	}
	return c.JSON(http.StatusOK, transport.NewTodosResponse(h.Svc.ByUser(ctx, userID, listOptions(c))))
}

func (h *TodoHTTP) GetTodo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.get_todo")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "get_todo_failed", err)
	}

	todo, err := h.Svc.Get(ctx, id, selection(c))
	if err != nil {
		return fail(l, "get_todo_failed", err)
	}
	return c.JSON(http.StatusOK, todo)
}

func (h *TodoHTTP) AddTodo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.add_todo")

	body, err := bindMap(c)
	if err != nil {
		return badBody(l, "add_todo_failed", err)
	}

	todo, err := h.Svc.Add(ctx, body)
	if err != nil {
		return fail(l, "add_todo_failed", err)
	}

	l.Info("add_todo_success", "id", todo.ID)
	return c.JSON(http.StatusCreated, todo)
}

func (h *TodoHTTP) UpdateTodo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.update_todo")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "update_todo_failed", err)
	}
	body, err := bindMap(c)
	if err != nil {
		return badBody(l, "update_todo_failed", err)
	}

	todo, err := h.Svc.Update(ctx, id, body)
	if err != nil {
		return fail(l, "update_todo_failed", err)
	}
	return c.JSON(http.StatusOK, todo)
}

func (h *TodoHTTP) DeleteTodo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "todo.delete_todo")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "delete_todo_failed", err)
	}

	deleted, err := h.Svc.Delete(ctx, id)
	if err != nil {
		return fail(l, "delete_todo_failed", err)
	}
	return c.JSON(http.StatusOK, deleted)
}
