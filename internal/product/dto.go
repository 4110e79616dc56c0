package product

type SearchProductsRequest struct {
	Query    string `json:"q"`
	Category string `json:"category"`
}

type SearchProductsResponse struct {
	Products []ProductDTO `json:"products"`
	Count    int          `json:"count"`
}

type ProductDTO struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
