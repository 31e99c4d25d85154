package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ReviewModel is the document stored in the 'reviews' collection.
type ReviewModel struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Email   string             `bson:"email,omitempty"`
	Rating  int                `bson:"rating"`
	Comment string             `bson:"comment"`
}
