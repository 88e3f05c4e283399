package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "github.com/Skotchmaster/dummyjson/pkg/middleware/auth"
)

type Deps struct {
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	UserHandler    *UserHTTP
	PostHandler    *PostHTTP
	TodoHandler    *TodoHTTP
	AuthHandler    *AuthHTTP
	JWTSecret      []byte
	// Ready reports whether the service can take traffic. Nil means always.
	Ready func() bool
}

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil && !d.Ready() {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	authMW := middleware.NewJWTMiddleware(d.JWTSecret)

	e.POST("/auth/login", d.AuthHandler.Login)

	mount(e, d, authMW)

	protected := e.Group("/auth", authMW.RequireAuth)
	protected.GET("/me", d.AuthHandler.Me)
	mount(protected, d, authMW)
}

func mount(r router, d *Deps, authMW *middleware.JWTMiddleware) {
	r.GET("/products", d.ProductHandler.GetProducts)
	r.GET("/products/search", d.ProductHandler.SearchProducts)
	r.GET("/products/categories", d.ProductHandler.GetCategories)
	r.GET("/products/category/:name", d.ProductHandler.GetCategory)
	r.GET("/products/:id", d.ProductHandler.GetProduct)
	r.POST("/products/add", d.ProductHandler.AddProduct)
	r.PUT("/products/:id", d.ProductHandler.UpdateProduct)
	r.PATCH("/products/:id", d.ProductHandler.UpdateProduct)
	r.DELETE("/products/:id", d.ProductHandler.DeleteProduct)

	r.GET("/carts", d.CartHandler.GetCarts)
	r.GET("/carts/user/:id", d.CartHandler.GetCartsByUser)
	r.GET("/carts/:id", d.CartHandler.GetCart)
	r.POST("/carts/add", d.CartHandler.AddCart)
	r.PUT("/carts/:id", d.CartHandler.UpdateCart)
	r.PATCH("/carts/:id", d.CartHandler.UpdateCart)
	r.DELETE("/carts/:id", d.CartHandler.DeleteCart)

	r.GET("/users", d.UserHandler.GetUsers)
	r.GET("/users/search", d.UserHandler.SearchUsers)
	r.GET("/users/filter", d.UserHandler.FilterUsers)
	r.GET("/users/me", d.AuthHandler.Me, authMW.RequireAuth)
	r.GET("/users/:id", d.UserHandler.GetUser)
	r.GET("/users/:id/carts", d.UserHandler.GetUserCarts)
	r.GET("/users/:id/posts", d.UserHandler.GetUserPosts)
	r.GET("/users/:id/todos", d.UserHandler.GetUserTodos)
	r.POST("/users/add", d.UserHandler.AddUser)
	r.PUT("/users/:id", d.UserHandler.UpdateUser)
	r.PATCH("/users/:id", d.UserHandler.UpdateUser)
	r.DELETE("/users/:id", d.UserHandler.DeleteUser)

	r.GET("/posts", d.PostHandler.GetPosts)
	r.GET("/posts/search", d.PostHandler.SearchPosts)
	r.GET("/posts/user/:id", d.PostHandler.GetPostsByUser)
	r.GET("/posts/:id", d.PostHandler.GetPost)
	r.POST("/posts/add", d.PostHandler.AddPost)
	r.PUT("/posts/:id", d.PostHandler.UpdatePost)
	r.PATCH("/posts/:id", d.PostHandler.UpdatePost)
	r.DELETE("/posts/:id", d.PostHandler.DeletePost)

	r.GET("/todos", d.TodoHandler.GetTodos)
	r.GET("/todos/random", d.TodoHandler.GetRandomTodo)
	r.GET("/todos/user/:id", d.TodoHandler.GetTodosByUser)
	r.GET("/todos/:id", d.TodoHandler.GetTodo)
	r.POST("/todos/add", d.TodoHandler.AddTodo)
	r.PUT("/todos/:id", d.TodoHandler.UpdateTodo)
	r.PATCH("/todos/:id", d.TodoHandler.UpdateTodo)
	r.DELETE("/todos/:id", d.TodoHandler.DeleteTodo)
}
