package data

import (
	"context"
	"time"

	"bookrental/model"
	bookrepo "bookrental/repository/book"
	rentalrepo "bookrental/repository/rental"
	userrepo "bookrental/repository/user"

	"github.com/google/uuid"
)

// Seed loads the sample catalog, users, and a couple of open rentals.
// Runs once at process start, before the server accepts requests.
func Seed(ctx context.Context, books *bookrepo.Store, users *userrepo.Store, rentals *rentalrepo.Store, loanPeriod time.Duration) error {
	for _, b := range SampleBooks() {
		books.Insert(ctx, b)
	}

	us, err := SampleUsers()
	if err != nil {
		return err
	}
	for _, u := range us {
		if err := users.Create(ctx, u); err != nil {
			return err
		}
	}

	// Two open rentals, three days into their loan period. Their books'
	// available counts in SampleBooks are already one short.
	now := time.Now().UTC()
	rentedAt := now.Add(-3 * 24 * time.Hour)
	for _, r := range []model.Rental{
		{ID: uuid.NewString(), BookID: "1", UserID: "1", RentedAt: rentedAt, DueDate: rentedAt.Add(loanPeriod)},
		{ID: uuid.NewString(), BookID: "7", UserID: "2", RentedAt: rentedAt, DueDate: rentedAt.Add(loanPeriod)},
	} {
		rentals.Insert(ctx, r)
	}
	return nil
}
