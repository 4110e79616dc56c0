package billing

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"senthur/internal/domain"
)

const (
	ComboHeaderName = "COMBO: ENTER PACKAGE NAME"
	CustomItemName  = "CUSTOM FURNITURE ITEM"
)

var upper = cases.Upper(language.Und)

// NormalizeName upper-cases free-text item names.
func NormalizeName(name string) string {
	return upper.String(name)
}

// Cart is the editable item selection behind a booking. ManualTotal is nil
// when no override is in effect.
type Cart struct {
	Items       []domain.OrderItem
	ManualTotal *float64
}

func NewCart(items []domain.OrderItem, manualTotal *float64) *Cart {
	c := &Cart{Items: make([]domain.OrderItem, len(items))}
	copy(c.Items, items)
	if manualTotal != nil {
		v := *manualTotal
		c.ManualTotal = &v
	}
	return c
}

func (c *Cart) index(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// AddProduct adds one unit of p. Catalog prices are copied at this point and
// never re-read. With a combo header present, new products join the package
// at price zero.
func (c *Cart) AddProduct(p domain.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	inCombo := HasComboHeader(c.Items)
	price := float64(p.UnitPrice)
	if inCombo {
		price = 0
	}
	c.Items = append(c.Items, domain.OrderItem{
		ID:          p.ID,
		Name:        NormalizeName(p.Name),
		UnitPrice:   price,
		Quantity:    1,
		IsComboItem: inCombo,
	})
}

// AddComboHeader prepends a package header and, if no override exists yet,
// seeds the manual total with the current calculated total.
func (c *Cart) AddComboHeader(id string) {
	header := domain.OrderItem{
		ID:            id,
		Name:          ComboHeaderName,
		Quantity:      1,
		IsComboHeader: true,
	}
	c.Items = append([]domain.OrderItem{header}, c.Items...)
	if c.ManualTotal == nil {
		seed := CalculatedTotal(c.Items)
		c.ManualTotal = &seed
	}
}

func (c *Cart) AddCustomItem(id string) {
	c.Items = append(c.Items, domain.OrderItem{
		ID:          id,
		Name:        CustomItemName,
		Quantity:    1,
		IsComboItem: HasComboHeader(c.Items),
	})
}

func (c *Cart) Remove(id string) {
	if i := c.index(id); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// ChangeQuantity adjusts quantity by delta, never going below one.
func (c *Cart) ChangeQuantity(id string, delta int) {
	if i := c.index(id); i >= 0 {
		c.Items[i].Quantity = max(1, c.Items[i].Quantity+delta)
	}
}

func (c *Cart) SetPrice(id string, price float64) {
	if i := c.index(id); i >= 0 {
		c.Items[i].UnitPrice = price
	}
}

func (c *Cart) Rename(id, name string) {
	if i := c.index(id); i >= 0 {
		c.Items[i].Name = NormalizeName(name)
	}
}

// ToggleCombo flips whether an item is bundled into the combo price. A combo
// header is never bundled, so headers are left alone.
func (c *Cart) ToggleCombo(id string) {
	if i := c.index(id); i >= 0 && !c.Items[i].IsComboHeader {
		c.Items[i].IsComboItem = !c.Items[i].IsComboItem
	}
}

func (c *Cart) SetManualTotal(total float64) {
	c.ManualTotal = &total
}

func (c *Cart) ClearManualTotal() {
	c.ManualTotal = nil
}

func (c *Cart) Quote(advance float64) Quote {
	return Price(c.Items, c.ManualTotal, advance)
}

// Sorted returns the items in billing order.
func (c *Cart) Sorted() []domain.OrderItem {
	return SortHeadersFirst(c.Items)
}
