// Package store holds sample shop models annotated with legacy tags and the
// custom handlers they name.
package store

import (
	"fmt"
	"reflect"
	"time"

	"legacy-bridge/legacy"
)

// Product is an item available for sale. Prices are kept in cents.
type Product struct {
	_           struct{}  `legacy:"rootName=product;propertyOrder=id,sku,name"`
	ID          int64     `legacy:"property=id"`
	SKU         string    `legacy:"property=sku"`
	Name        string    `legacy:"property=name"`
	Description string    `legacy:"property=description;serialize.include=NON_EMPTY"`
	PriceCents  int64     `legacy:"property=price;serialize.using=CentsSerializer"`
	Inventory   int       `legacy:"property=inventory_count"`
	CreatedAt   time.Time `legacy:"property=created_at"`
}

// Customer places orders.
type Customer struct {
	_        struct{} `legacy:"ignoreProperties=password;ignoreProperties.ignoreUnknown"`
	ID       int64    `legacy:"property=id"`
	Email    string   `legacy:"property=email"`
	FullName string   `legacy:"property=full_name"`
	Address  *string  `legacy:"property=address;writeNullProperties=false"`
	IsActive bool     `legacy:"property=is_active"`
	Orders   []*Order `legacy:"managedReference=customer-orders"`
}

// Order is a transaction made by a customer.
type Order struct {
	_          struct{}    `legacy:"typeName=order"`
	ID         int64       `legacy:"property=id"`
	Customer   *Customer   `legacy:"backReference=customer-orders"`
	Status     OrderStatus `legacy:"property=status;deserialize.using=StatusDeserializer"`
	TotalCents int64       `legacy:"property=total;serialize.using=CentsSerializer"`
	Items      []OrderItem `legacy:"property=items"`
	OrderedAt  time.Time   `legacy:"property=ordered_at"`
	Audit      string      `legacy:"-"`
}

// OrderItem is one product line within an order. It snapshots the price at
// the time of purchase.
type OrderItem struct {
	ProductID int64  `legacy:"property=product_id"`
	Name      string `legacy:"property=name"`
	Quantity  int    `legacy:"property=quantity"`
	UnitPrice int64  `legacy:"property=unit_price;serialize.using=CentsSerializer"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

var statuses = map[string]OrderStatus{
	"PENDING":   StatusPending,
	"PAID":      StatusPaid,
	"SHIPPED":   StatusShipped,
	"CANCELLED": StatusCancelled,
}

// CentsSerializer writes an amount in cents as a decimal string, "1999" as
// "19.99".
type CentsSerializer struct{}

func (CentsSerializer) Serialize(value any, gen legacy.JSONGenerator, _ legacy.SerializerProvider) error {
	cents, ok := value.(int64)
	if !ok {
		return fmt.Errorf("cents: unexpected %T", value)
	}

	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}

	return gen.WriteNumberString(fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100))
}

// StatusDeserializer reads an OrderStatus and rejects unknown states.
type StatusDeserializer struct{}

func (StatusDeserializer) Deserialize(p legacy.JSONParser, ctx legacy.DeserializationContext) (any, error) {
	if p.CurrentToken() != legacy.ValueString {
		return nil, ctx.MappingException(statusType)
	}

	s, ok := statuses[p.Text()]
	if !ok {
		return nil, ctx.WeirdStringException(statusType, "unknown order status")
	}

	return s, nil
}

// NullValue makes a JSON null read as a pending order.
func (StatusDeserializer) NullValue() any { return StatusPending }

var statusType = reflect.TypeFor[OrderStatus]()
