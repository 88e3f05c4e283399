package repo

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"slices"

	"github.com/Skotchmaster/dummyjson/internal/models"
)

//go:embed data/*.json
var embedded embed.FS

// Embedded returns the dataset shipped with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

type Dataset struct {
	Products []models.Product
	Carts    []models.Cart
	Users    []models.User
	Posts    []models.Post
	Todos    []models.Todo
}

type cloner[T any] interface {
	Clone() T
}

// collection is a read-only slice with id and owner indexes built once.
type collection[T cloner[T]] struct {
	items   []T
	byID    map[int]int
	byOwner map[int][]int
	maxID   int
}

func newCollection[T cloner[T]](items []T, id func(T) int, owner func(T) int) collection[T] {
	c := collection[T]{
		items: items,
		byID:  make(map[int]int, len(items)),
	}
	if owner != nil {
		c.byOwner = make(map[int][]int)
	}
	for i, it := range items {
		c.byID[id(it)] = i
		c.maxID = max(c.maxID, id(it))
		if owner != nil {
			c.byOwner[owner(it)] = append(c.byOwner[owner(it)], i)
		}
	}
	return c
}

func (c collection[T]) all() []T {
	return c.items[:len(c.items):len(c.items)]
}

func (c collection[T]) get(id int) (T, bool) {
	i, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i].Clone(), true
}

func (c collection[T]) pick(idx []int) []T {
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.items[i])
	}
	return out
}

func (c collection[T]) owned(userID int) []T {
	return c.pick(c.byOwner[userID])
}

// Catalog holds every collection in memory. It is never modified after
// construction, so it is safe for concurrent readers. Slices returned by the
// list accessors share elements with the catalog and must be treated as
// read-only; single-record accessors return deep copies.
type Catalog struct {
	products collection[models.Product]
	carts    collection[models.Cart]
	users    collection[models.User]
	posts    collection[models.Post]
	todos    collection[models.Todo]

	byCategory map[string][]int
	categories []string
	byUsername map[string]int
}

func NewCatalog(d Dataset) *Catalog {
	c := &Catalog{
		products: newCollection(d.Products, func(p models.Product) int { return p.ID }, nil),
		carts:    newCollection(d.Carts, func(c models.Cart) int { return c.ID }, func(c models.Cart) int { return c.UserID }),
		users:    newCollection(d.Users, func(u models.User) int { return u.ID }, nil),
		posts:    newCollection(d.Posts, func(p models.Post) int { return p.ID }, func(p models.Post) int { return p.UserID }),
		todos:    newCollection(d.Todos, func(t models.Todo) int { return t.ID }, func(t models.Todo) int { return t.UserID }),

		byCategory: make(map[string][]int),
		byUsername: make(map[string]int, len(d.Users)),
	}

	for i, p := range d.Products {
		if _, seen := c.byCategory[p.Category]; !seen {
			c.categories = append(c.categories, p.Category)
		}
		c.byCategory[p.Category] = append(c.byCategory[p.Category], i)
	}
	slices.Sort(c.categories)

	for _, u := range d.Users {
		c.byUsername[u.Username] = u.ID
	}
	return c
}

// LoadCatalog reads products.json, carts.json, users.json, posts.json and
// todos.json from fsys.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	var d Dataset
	files := []struct {
		name string
		dst  any
	}{
		{"products.json", &d.Products},
		{"carts.json", &d.Carts},
		{"users.json", &d.Users},
		{"posts.json", &d.Posts},
		{"todos.json", &d.Todos},
	}
	for _, f := range files {
		raw, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}
	return NewCatalog(d), nil
}

func (c *Catalog) Products() []models.Product { return c.products.all() }

func (c *Catalog) Product(id int) (models.Product, bool) { return c.products.get(id) }

func (c *Catalog) NextProductID() int { return c.products.maxID + 1 }

// ProductsByCategory matches the category name exactly.
func (c *Catalog) ProductsByCategory(name string) []models.Product {
	return c.products.pick(c.byCategory[name])
}

func (c *Catalog) Categories() []string { return slices.Clone(c.categories) }

func (c *Catalog) Carts() []models.Cart { return c.carts.all() }

func (c *Catalog) Cart(id int) (models.Cart, bool) { return c.carts.get(id) }

func (c *Catalog) CartsByUser(userID int) []models.Cart { return c.carts.owned(userID) }

func (c *Catalog) NextCartID() int { return c.carts.maxID + 1 }

func (c *Catalog) Users() []models.User { return c.users.all() }

func (c *Catalog) User(id int) (models.User, bool) { return c.users.get(id) }

func (c *Catalog) UserByUsername(username string) (models.User, bool) {
	id, ok := c.byUsername[username]
	if !ok {
		return models.User{}, false
	}
	return c.users.get(id)
}

func (c *Catalog) NextUserID() int { return c.users.maxID + 1 }

func (c *Catalog) Posts() []models.Post { return c.posts.all() }

func (c *Catalog) Post(id int) (models.Post, bool) { return c.posts.get(id) }

func (c *Catalog) PostsByUser(userID int) []models.Post { return c.posts.owned(userID) }

func (c *Catalog) NextPostID() int { return c.posts.maxID + 1 }

func (c *Catalog) Todos() []models.Todo { return c.todos.all() }

func (c *Catalog) Todo(id int) (models.Todo, bool) { return c.todos.get(id) }

func (c *Catalog) TodosByUser(userID int) []models.Todo { return c.todos.owned(userID) }

func (c *Catalog) NextTodoID() int { return c.todos.maxID + 1 }
