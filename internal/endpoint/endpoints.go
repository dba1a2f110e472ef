package endpoint

// Endpoints holds the collection-level path prefixes of the PIM REST API.
type Endpoints struct {
	Products   string
	Attributes string
	Families   string
	Categories string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Products:   "products",
		Attributes: "attributes",
		Families:   "families",
		Categories: "categories",
	}
}

// Pagination holds the query parameters of a paginated collection request.
type Pagination struct {
	Page      int
	Limit     int
	WithCount bool
}

func DefaultPagination() Pagination {
	return Pagination{
		Page:  1,
		Limit: 10,
	}
}
