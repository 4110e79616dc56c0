package dto

import "senthur/internal/domain"

type CartAction string

const (
	CartAddProduct       CartAction = "ADD_PRODUCT"
	CartAddComboHeader   CartAction = "ADD_COMBO"
	CartAddCustomItem    CartAction = "ADD_CUSTOM"
	CartRemove           CartAction = "REMOVE"
	CartChangeQuantity   CartAction = "CHANGE_QUANTITY"
	CartSetPrice         CartAction = "SET_PRICE"
	CartRename           CartAction = "RENAME"
	CartToggleCombo      CartAction = "TOGGLE_COMBO"
	CartSetManualTotal   CartAction = "SET_MANUAL_TOTAL"
	CartClearManualTotal CartAction = "CLEAR_MANUAL_TOTAL"
)

// CartRequest applies one editing action to the item list a client holds
// and returns the updated list with fresh figures.
type CartRequest struct {
	Items       []BookingItem `json:"items" validate:"dive"`
	ManualTotal *float64      `json:"manualTotal"`
	Advance     float64       `json:"advance" validate:"gte=0"`
	Action      CartAction    `json:"action" validate:"required,oneof=ADD_PRODUCT ADD_COMBO ADD_CUSTOM REMOVE CHANGE_QUANTITY SET_PRICE RENAME TOGGLE_COMBO SET_MANUAL_TOTAL CLEAR_MANUAL_TOTAL"`
	ProductID   string        `json:"productId" validate:"required_if=Action ADD_PRODUCT"`
	ItemID      string        `json:"itemId" validate:"required_if=Action REMOVE,required_if=Action CHANGE_QUANTITY,required_if=Action SET_PRICE,required_if=Action RENAME,required_if=Action TOGGLE_COMBO"`
	Delta       int           `json:"delta"`
	Price       float64       `json:"price" validate:"gte=0"`
	Name        string        `json:"name"`
	Total       float64       `json:"total" validate:"gte=0"`
}

type CartResponse struct {
	Items           []domain.OrderItem `json:"items"`
	ManualTotal     *float64           `json:"manualTotal"`
	CalculatedTotal float64            `json:"calculatedTotal"`
	Total           float64            `json:"total"`
	Advance         float64            `json:"advance"`
	Balance         float64            `json:"balance"`
}
