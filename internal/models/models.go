package models

import (
	"slices"
	"time"
)

type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

func (p Product) Clone() Product {
	p.Images = slices.Clone(p.Images)
	return p
}

type CartProduct struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Price              float64 `json:"price"`
	Quantity           int     `json:"quantity"`
	Total              float64 `json:"total"`
	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountedPrice    float64 `json:"discountedPrice"`
	Thumbnail          string  `json:"thumbnail"`
}

type Cart struct {
	ID              int           `json:"id"`
	Products        []CartProduct `json:"products"`
	Total           float64       `json:"total"`
	DiscountedTotal float64       `json:"discountedTotal"`
	UserID          int           `json:"userId"`
	TotalProducts   int           `json:"totalProducts"`
	TotalQuantity   int           `json:"totalQuantity"`
}

func (c Cart) Clone() Cart {
	c.Products = slices.Clone(c.Products)
	return c
}

type Hair struct {
	Color string `json:"color"`
	Type  string `json:"type"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Address struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	Coordinates Coordinates `json:"coordinates"`
	PostalCode  string      `json:"postalCode"`
	State       string      `json:"state"`
}

type Bank struct {
	CardExpire string `json:"cardExpire"`
	CardNumber string `json:"cardNumber"`
	CardType   string `json:"cardType"`
	Currency   string `json:"currency"`
	IBAN       string `json:"iban"`
}

type Company struct {
	Address    Address `json:"address"`
	Department string  `json:"department"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
}

type User struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	MaidenName string  `json:"maidenName"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	BirthDate  string  `json:"birthDate"`
	Image      string  `json:"image"`
	BloodGroup string  `json:"bloodGroup"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	EyeColor   string  `json:"eyeColor"`
	Hair       Hair    `json:"hair"`
	Domain     string  `json:"domain"`
	IP         string  `json:"ip"`
	Address    Address `json:"address"`
	MacAddress string  `json:"macAddress"`
	University string  `json:"university"`
	Bank       Bank    `json:"bank"`
	Company    Company `json:"company"`
	EIN        string  `json:"ein"`
	SSN        string  `json:"ssn"`
	UserAgent  string  `json:"userAgent"`
}

// Clone is a plain copy: every nested field is a value.
func (u User) Clone() User { return u }

type Post struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	UserID    int      `json:"userId"`
	Tags      []string `json:"tags"`
	Reactions int      `json:"reactions"`
}

func (p Post) Clone() Post {
	p.Tags = slices.Clone(p.Tags)
	return p
}

type Todo struct {
	ID        int    `json:"id"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

func (t Todo) Clone() Todo { return t }

// RequestLog is a persisted access log line.
type RequestLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID  string    `gorm:"index"                    json:"requestId"`
	Method     string    `gorm:"not null"                 json:"method"`
	Route      string    `json:"route"`
	Path       string    `gorm:"not null"                 json:"path"`
	Status     int       `gorm:"index"                    json:"status"`
	DurationMS int64     `json:"durationMs"`
	RemoteIP   string    `json:"remoteIp"`
	UserAgent  string    `json:"userAgent"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (RequestLog) TableName() string {
	return "request_logs"
}
