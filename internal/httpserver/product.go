package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/dummyjson/internal/service"
	"github.com/Skotchmaster/dummyjson/internal/transport"
	"github.com/Skotchmaster/dummyjson/pkg/logging"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	page := h.Svc.List(ctx, listOptions(c))
	return c.JSON(http.StatusOK, transport.NewProductsResponse(page))
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	page := h.Svc.Search(ctx, listOptions(c))
	return c.JSON(http.StatusOK, transport.NewProductsResponse(page))
}

func (h *ProductHTTP) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.Categories(c.Request().Context()))
}

func (h *ProductHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	page := h.Svc.ByCategory(ctx, c.Param("name"), listOptions(c))
	return c.JSON(http.StatusOK, transport.NewProductsResponse(page))
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "get_product_failed", err)
	}

	product, err := h.Svc.Get(ctx, id, selection(c))
	if err != nil {
		return fail(l, "get_product_failed", err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) AddProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.add_product")

	body, err := bindMap(c)
	if err != nil {
		return badBody(l, "add_product_failed", err)
	}

	product, err := h.Svc.Add(ctx, body)
	if err != nil {
		return fail(l, "add_product_failed", err)
	}

	l.Info("add_product_success", "id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "update_product_failed", err)
	}
	body, err := bindMap(c)
	if err != nil {
		return badBody(l, "update_product_failed", err)
	}

	product, err := h.Svc.Update(ctx, id, body)
	if err != nil {
		return fail(l, "update_product_failed", err)
	}

	l.Info("update_product_success", "id", id)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c, "id")
	if err != nil {
		return badID(l, "delete_product_failed", err)
	}

	deleted, err := h.Svc.Delete(ctx, id)
	if err != nil {
		return fail(l, "delete_product_failed", err)
	}

	l.Info("delete_product_success", "id", id)
	return c.JSON(http.StatusOK, deleted)
}
