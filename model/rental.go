// model/rental.go
package model

import "time"

// Rental is append-only: created on rent, mutated exactly once on return.
type Rental struct {
	ID         string     `json:"id"`
	BookID     string     `json:"bookId"`
	UserID     string     `json:"userId"`
	RentedAt   time.Time  `json:"rentedAt"`
	DueDate    time.Time  `json:"dueDate"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
	IsReturned bool       `json:"isReturned"`
	LateFee    float64    `json:"lateFee,omitempty"`
}

// RentalView is the "my books" row: book summary joined with the open rental.
type RentalView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	CoverImage string    `json:"coverImage"`
	Genre      string    `json:"genre"`
	RentalID   string    `json:"rentalId"`
	RentedAt   time.Time `json:"rentedAt"`
	DueDate    time.Time `json:"dueDate"`
	IsOverdue  bool      `json:"isOverdue"`
}
