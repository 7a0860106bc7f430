package catalog

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("food not found")
	ErrInvalidID = errors.New("invalid food id")
)

type Food struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	FoodOrigin  string             `json:"foodOrigin" bson:"foodOrigin"`
	Price       float64            `json:"price" bson:"price"`
	Rating      float64            `json:"rating" bson:"rating"`
	Image       string             `json:"image" bson:"image"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Tags        []string           `json:"tags" bson:"tags"`
	Description string             `json:"description" bson:"description"`
	UserEmail   string             `json:"userEmail" bson:"userEmail"`
	MadeBy      string             `json:"madeBy" bson:"madeBy"`
}
