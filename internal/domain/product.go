package domain

// Product is an immutable catalog entry used to seed order items.
type Product struct {
	ID        string `json:"id" yaml:"id"`
	Category  string `json:"category" yaml:"category"`
	Name      string `json:"name" yaml:"name"`
	UnitPrice int64  `json:"unitPrice" yaml:"unitPrice"`
}
