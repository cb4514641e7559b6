// Package fixture declares schema structs used by loader tests.
package fixture

import "time"

// Base is embedded by other schemas and is discovered on its own.
type Base struct {
	ID int64
}

// User is an application account.
type User struct {
	Base
	_         struct{} `model:"table=app_users,comment=accounts"`
	Email     string   `model:"column=email_address,unique,maxlen=255"`
	Age       *int     `model:"default=0"`
	CreatedAt time.Time
	Ignored   bool `model:"-"`
	internal  string
}

// Name is an alias and must not become a schema.
type Name = string

// Count is a defined non-struct type and must not become a schema.
type Count int

type secret struct {
	Token string
}
