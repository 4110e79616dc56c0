package invoice

import (
	"senthur/internal/commons"
	"senthur/internal/domain"
)

const (
	IncludedRate   = "Included"
	IncludedAmount = "--"
)

// GeneralTerms are printed under the notes on every invoice.
var GeneralTerms = []string{
	"ADVANCE IS REFUNDABLE",
	"FULL PAYMENT REQUIRED BEFORE LOADING",
}

// Branding is the shop identity printed on invoices.
type Branding struct {
	ShopName     string `json:"shopName"`
	City         string `json:"city"`
	DefaultNotes string `json:"-"`
}

type Line struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Rate     string `json:"rate"`
	Amount   string `json:"amount"`
	Included bool   `json:"included"`
}

type Footer struct {
	Total         string   `json:"total"`
	Advance       string   `json:"advance"`
	Balance       string   `json:"balance"`
	AmountInWords string   `json:"amountInWords"`
	Notes         string   `json:"notes"`
	Terms         []string `json:"terms"`
	Seal          Seal     `json:"seal"`
}

// PageView is a rendered page. Footer is set on the last page only.
type PageView struct {
	Number int     `json:"number"`
	Lines  []Line  `json:"lines"`
	Footer *Footer `json:"footer,omitempty"`
}

type Document struct {
	Shop             Branding   `json:"shop"`
	OrderNumber      string     `json:"orderNumber"`
	BookingDate      string     `json:"bookingDate"`
	ExpectedDelivery string     `json:"expectedDelivery"`
	CustomerName     string     `json:"customerName"`
	Mobile           string     `json:"mobile"`
	Address          string     `json:"address"`
	Pincode          string     `json:"pincode"`
	Attendant        string     `json:"attendant"`
	AttendantPhone   string     `json:"attendantPhone"`
	Pages            []PageView `json:"pages"`
}

// Build lays out order as a printable document.
func Build(order domain.Order, shop Branding) Document {
	doc := Document{
		Shop:             shop,
		OrderNumber:      order.OrderNumber,
		BookingDate:      commons.FormatDate(order.BookingDate),
		ExpectedDelivery: commons.FormatDate(order.ExpectedDelivery),
		CustomerName:     order.CustomerName,
		Mobile:           order.Mobile,
		Address:          order.Address,
		Pincode:          order.Pincode,
		Attendant:        order.Attendant,
		AttendantPhone:   order.AttendantPhone,
	}

	pages := Paginate(order.Items)
	doc.Pages = make([]PageView, 0, len(pages))
	for i, page := range pages {
		view := PageView{Number: i + 1, Lines: make([]Line, 0, len(page.Items))}
		for j, item := range page.Items {
			view.Lines = append(view.Lines, lineFor(page.SequenceNumber(j), item))
		}
		if page.IsLast {
			view.Footer = footerFor(order, shop)
		}
		doc.Pages = append(doc.Pages, view)
	}

	return doc
}

func lineFor(n int, item domain.OrderItem) Line {
	line := Line{
		Number:   n,
		Name:     item.Name,
		Quantity: item.Quantity,
	}
	if item.IsComboItem {
		line.Rate = IncludedRate
		line.Amount = IncludedAmount
		line.Included = true
		return line
	}
	line.Rate = commons.FormatAmount(item.UnitPrice)
	line.Amount = commons.FormatAmount(item.LineAmount())
	return line
}

func footerFor(order domain.Order, shop Branding) *Footer {
	notes := order.Notes
	if notes == "" {
		notes = shop.DefaultNotes
	}
	return &Footer{
		Total:         commons.FormatAmount(order.Total),
		Advance:       commons.FormatAmount(order.Advance),
		Balance:       commons.FormatAmount(order.Balance),
		AmountInWords: ToWords(order.Total),
		Notes:         notes,
		Terms:         GeneralTerms,
		Seal:          SealFor(order.Status),
	}
}
