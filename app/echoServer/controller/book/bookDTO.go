package book

type SearchReq struct {
	Q         string `query:"q"`
	Genre     string `query:"genre"`
	Author    string `query:"author"`
	SortBy    string `query:"sortBy" validate:"omitempty,oneof=relevance title author year rating"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page      int    `query:"page" validate:"omitempty,gte=1"`
	Limit     int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
}
