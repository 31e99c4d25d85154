package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserModel is the document stored in the 'users' collection.
type UserModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	DisplayName string             `bson:"displayName,omitempty"`
	Role        string             `bson:"role,omitempty"`
}
