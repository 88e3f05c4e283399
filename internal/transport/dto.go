package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Skotchmaster/dummyjson/internal/service"
)

// FlexInt accepts both 3 and "3".
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("not an integer: %q", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

type CartLineRequest struct {
	ID       FlexInt `json:"id"`
	Quantity FlexInt `json:"quantity"`
}

type AddCartRequest struct {
	UserID   FlexInt           `json:"userId"`
	Products []CartLineRequest `json:"products"`
}

type UpdateCartRequest struct {
	Merge    bool              `json:"merge"`
	Products []CartLineRequest `json:"products"`
	UserID   *FlexInt          `json:"userId"`
}

func cartLines(in []CartLineRequest) []service.CartLine {
	if in == nil {
		return nil
	}
	out := make([]service.CartLine, len(in))
	for i, l := range in {
		out[i] = service.CartLine{ID: int(l.ID), Quantity: int(l.Quantity)}
	}
	return out
}

func (r AddCartRequest) Input() service.AddCartInput {
	return service.AddCartInput{UserID: int(r.UserID), Products: cartLines(r.Products)}
}

func (r UpdateCartRequest) Input() service.UpdateCartInput {
	in := service.UpdateCartInput{Merge: r.Merge, Products: cartLines(r.Products)}
	if r.UserID != nil {
		id := int(*r.UserID)
		in.UserID = &id
	}
	return in
}

type LoginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins"`
}

type LoginResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
	Token     string `json:"token"`
}

func NewLoginResponse(s service.Session) LoginResponse {
	return LoginResponse{
		ID:        s.User.ID,
		Username:  s.User.Username,
		Email:     s.User.Email,
		FirstName: s.User.FirstName,
		LastName:  s.User.LastName,
		Gender:    s.User.Gender,
		Image:     s.User.Image,
		Token:     s.Token,
	}
}

type ProductsResponse struct {
	Products []any `json:"products"`
	Total    int   `json:"total"`
	Skip     int   `json:"skip"`
	Limit    int   `json:"limit"`
}

type CartsResponse struct {
	Carts []any `json:"carts"`
	Total int   `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

type UsersResponse struct {
	Users []any `json:"users"`
	Total int   `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

type PostsResponse struct {
	Posts []any `json:"posts"`
	Total int   `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

type TodosResponse struct {
	Todos []any `json:"todos"`
	Total int   `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

func NewProductsResponse(p service.Page) ProductsResponse {
	return ProductsResponse{Products: p.Items, Total: p.Total, Skip: p.Skip, Limit: p.Limit}
}

func NewCartsResponse(p service.Page) CartsResponse {
	return CartsResponse{Carts: p.Items, Total: p.Total, Skip: p.Skip, Limit: p.Limit}
}

func NewUsersResponse(p service.Page) UsersResponse {
	return UsersResponse{Users: p.Items, Total: p.Total, Skip: p.Skip, Limit: p.Limit}
}

func NewPostsResponse(p service.Page) PostsResponse {
	return PostsResponse{Posts: p.Items, Total: p.Total, Skip: p.Skip, Limit: p.Limit}
}

func NewTodosResponse(p service.Page) TodosResponse {
	return TodosResponse{Todos: p.Items, Total: p.Total, Skip: p.Skip, Limit: p.Limit}
}
