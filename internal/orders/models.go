package orders

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrInvalidID = errors.New("invalid order id")
)

// Order documents are caller-supplied and stored verbatim; only the fields
// this service itself reads get names here.
type Order = bson.M

const FieldUserEmail = "userEmail"

// UserEmail extracts the owner email when the caller supplied one.
func UserEmail(o Order) string {
	email, _ := o[FieldUserEmail].(string)
	return email
}
