// Package broken carries legacy tags with mistakes for the checker tests.
package broken

import "time"

type Money struct {
	Cents int64
}

type Invoice struct {
	_      struct{}  `legacy:"rootName=invoice;nope"`
	ID     string    `legacy:"property=id"`
	Amount Money     `legacy:"serialize.using=MoneySerializer"`
	Due    time.Time `legacy:"serialize.as=time.Time"`
	Total  Money     `legacy:"serialize.as=broken.Money;serialize.include=SOMETIMES"`
	Paid   bool      `legacy:"ignore=maybe"`
	Lines  []Line    `legacy:"managedReference;backReference"`
	Raw    string    `legacy:"rawValue;serialize.using=NoneSerializer"`
	Note   string    `legacy:"serialize.include=NON_NULL;writeNullProperties"`
	Kind   string    `legacy:"typeName=k"`
	Skip   string    `legacy:"-"`
	plain  string
}

func (i *Invoice) SetTotal(m Money) { i.Total = m }

func (i *Invoice) Plain() string { return i.plain }

type Line struct {
	Invoice *Invoice `legacy:"backReference"`
}
