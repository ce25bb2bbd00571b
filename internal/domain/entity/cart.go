// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// CartLine is one product entry in a user's shopping cart, joined against the
// durable SKU record at read time. Cart contents themselves live only in the
// ephemeral store.
type CartLine struct {
	Sku      *GoodsSKU // The product the line refers to.
	Quantity int       // Units of the SKU in the cart.
	Amount   int64     // Quantity * unit price, in cents.
}

// Cart is the joined read model of a user's cart.
type Cart struct {
	UserID      uuid.UUID
	Lines       []*CartLine
	TotalCount  int   // Sum of line quantities.
	TotalAmount int64 // Sum of line amounts, in cents.
}
