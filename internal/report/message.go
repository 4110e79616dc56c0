package report

import (
	"fmt"
	"net/url"
	"strings"

	"senthur/internal/commons"
	"senthur/internal/domain"
)

// ShareMessage is the order summary sent to the customer over WhatsApp. Its
// figures are the stored order figures.
func ShareMessage(order domain.Order, shopName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", shopName)
	fmt.Fprintf(&b, "*Order Summary for %s*\n", order.CustomerName)
	fmt.Fprintf(&b, "Bill No: %s\n\n", order.OrderNumber)
	fmt.Fprintf(&b, "Total Bill: ₹%s\n", commons.FormatAmount(order.Total))
	fmt.Fprintf(&b, "Paid Adv: ₹%s\n", commons.FormatAmount(order.Advance))
	fmt.Fprintf(&b, "Due Bal: ₹%s\n\n", commons.FormatAmount(order.Balance))
	fmt.Fprintf(&b, "Delivery Expected: %s\n\n", commons.FormatDate(order.ExpectedDelivery))
	fmt.Fprintf(&b, "Thank you for choosing %s!", shopName)
	return b.String()
}

// ShareURL builds the wa.me link that opens a chat with the customer.
func ShareURL(mobile, countryCode, message string) string {
	q := url.Values{"text": {message}}
	return fmt.Sprintf("https://wa.me/%s%s?%s", countryCode, mobile, q.Encode())
}
