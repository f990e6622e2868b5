package models

// SearchCelebritiesRequest mirrors the discovery query parameters.
// Zero values mean "no filter" so an unfiltered browse binds cleanly.
type SearchCelebritiesRequest struct {
	Category     string   `form:"category"`
	Search       string   `form:"search"`
	SortBy       string   `form:"sortBy" binding:"omitempty,oneof=featured price_asc price_desc rating response_time popular"`
	MinPrice     *int     `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice     *int     `form:"maxPrice" binding:"omitempty,min=0"`
	Availability string   `form:"availability" binding:"omitempty,oneof=All available limited unavailable"`
	Page         int      `form:"page" binding:"omitempty,min=1"`
	Limit        int      `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Pagination is the metadata attached to every paginated listing.
// Pages is the button window to render: page numbers with -1 marking
// an ellipsis slot.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
	Pages      []int `json:"pages"`
}

type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}
