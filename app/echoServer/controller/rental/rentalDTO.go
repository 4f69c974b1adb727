package rental

type CreateRentalReq struct {
	BookID string `json:"bookId" validate:"required"`
	UserID string `json:"userId" validate:"omitempty"`
}
