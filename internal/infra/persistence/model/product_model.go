package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProductModel is the document stored in the 'products' collection.
type ProductModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"img,omitempty"`
	Rating      float64            `bson:"rating,omitempty"`
}
