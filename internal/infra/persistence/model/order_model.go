package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderModel is the document stored in the 'orders' collection.
// Upserted status updates produce documents holding only ID and OrderStatus.
type OrderModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email,omitempty"`
	Name        string             `bson:"name,omitempty"`
	ProductID   string             `bson:"productId,omitempty"`
	Address     string             `bson:"address,omitempty"`
	Phone       string             `bson:"phone,omitempty"`
	OrderStatus string             `bson:"orderStatus"`
}
