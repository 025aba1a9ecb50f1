package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Operator roles.
const (
	// RoleAdmin may change the tariff and import the catalog.
	RoleAdmin = "admin"
	// RoleOperator may request quotes and search the catalog.
	RoleOperator = "operator"
)

// User is an operator account.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
