package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/dummyjson/internal/service"
	"github.com/Skotchmaster/dummyjson/internal/transport"
	"github.com/Skotchmaster/dummyjson/pkg/logging"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCarts(c echo.Context) error {
	page := h.Svc.List(c.Request().Context(), listOptions(c))
	return c.JSON(http.StatusOK, transport.NewCartsResponse(page))
}

func (h *CartHTTP) GetCartsByUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_carts_by_user")

	userID, err := parseID(c, "id")
	if err != nil {
		return badID(l, "get_carts_by_user_failed", err)
	}

	page := h.Svc.ByUser(ctx, userID, listOptions(c))
	return c.JSON(http.StatusOK, transport.NewCartsResponse(page))
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "get_cart_failed", err)
	}

	cart, err := h.Svc.Get(ctx, id, selection(c))
	if err != nil {
		return fail(l, "get_cart_failed", err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) AddCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_cart")

	var req transport.AddCartRequest
	if err := bindBody(c, &req); err != nil {
		return badBody(l, "add_cart_failed", err)
	}

	cart, err := h.Svc.Add(ctx, req.Input())
	if err != nil {
		return fail(l, "add_cart_failed", err)
	}

	l.Info("add_cart_success", "id", cart.ID, "user_id", cart.UserID)
	return c.JSON(http.StatusCreated, cart)
}

func (h *CartHTTP) UpdateCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_cart")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "update_cart_failed", err)
	}
	var req transport.UpdateCartRequest
	if err := bindBody(c, &req); err != nil {
		return badBody(l, "update_cart_failed", err)
	}

	cart, err := h.Svc.Update(ctx, id, req.Input())
	if err != nil {
		return fail(l, "update_cart_failed", err)
	}

	l.Info("update_cart_success", "id", id, "merge", req.Merge)
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) DeleteCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete_cart")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "delete_cart_failed", err)
	}

	deleted, err := h.Svc.Delete(ctx, id)
	if err != nil {
		return fail(l, "delete_cart_failed", err)
	}

	l.Info("delete_cart_success", "id", id)
	return c.JSON(http.StatusOK, deleted)
}
