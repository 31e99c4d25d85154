// Package model contains the BSON document shapes stored in MongoDB.
package model

// Collection names in the water-drops database.
const (
	ProductsCollection = "products"
	ReviewsCollection  = "reviews"
	OrdersCollection   = "orders"
	UsersCollection    = "users"
)
