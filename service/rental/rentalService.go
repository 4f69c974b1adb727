package rental

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"bookrental/model"

	"github.com/google/uuid"
)

// errors used by controllers

type ErrCode string

const (
	ErrBookNotFound    ErrCode = "BOOK_NOT_FOUND"
	ErrNoCopies        ErrCode = "NO_COPIES_AVAILABLE"
	ErrAlreadyRented   ErrCode = "ALREADY_RENTED"
	ErrRentalNotFound  ErrCode = "RENTAL_NOT_FOUND"
	ErrAccessDenied    ErrCode = "ACCESS_DENIED"
	ErrAlreadyReturned ErrCode = "ALREADY_RETURNED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Books interface {
	Get(ctx context.Context, id string) (*model.Book, bool)
	AdjustAvailable(ctx context.Context, id string, delta int) error
}

type Ledger interface {
	Insert(ctx context.Context, r model.Rental)
	Get(ctx context.Context, id string) (model.Rental, bool)
	Find(ctx context.Context, pred func(model.Rental) bool) []model.Rental
	MarkReturned(ctx context.Context, id string, returnedAt time.Time, lateFee float64) (model.Rental, error)
}

type Service interface {
	// Rent creates a new rental and takes one copy off the shelf.
	Rent(ctx context.Context, userID, bookID string) (*model.Rental, error)

	// Return closes the rental, charges a late fee when overdue, and
	// puts the copy back.
	Return(ctx context.Context, userID, rentalID string) (*model.Rental, error)

	// MyBooks lists the user's open rentals joined with book details.
	MyBooks(ctx context.Context, userID string) ([]model.RentalView, error)
}

type Config struct {
	LoanPeriod    time.Duration
	LateFeePerDay float64
}

// ----- Service implementation -----

type service struct {
	// mu serializes every check-then-mutate sequence so copies cannot be
	// oversold and a rental cannot be returned twice. Contention is a
	// handful of rentals per second at most, so a single lock is enough.
	mu     sync.Mutex
	books  Books
	ledger Ledger
	cfg    Config
	now    func() time.Time
}

func New(books Books, ledger Ledger, cfg Config) Service {
	return &service{books: books, ledger: ledger, cfg: cfg, now: time.Now}
}

func (s *service) Rent(ctx context.Context, userID, bookID string) (*model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books.Get(ctx, bookID)
	if !ok {
		return nil, makeErr(ErrBookNotFound)
	}
	if b.AvailableCopies <= 0 {
		return nil, makeErr(ErrNoCopies)
	}

	open := s.ledger.Find(ctx, func(r model.Rental) bool {
		return r.BookID == bookID && r.UserID == userID && !r.IsReturned
	})
	if len(open) > 0 {
		return nil, makeErr(ErrAlreadyRented)
	}

	now := s.now().UTC()
	r := model.Rental{
		ID:       uuid.NewString(),
		BookID:   bookID,
		UserID:   userID,
		RentedAt: now,
		DueDate:  now.Add(s.cfg.LoanPeriod),
	}

	if err := s.books.AdjustAvailable(ctx, bookID, -1); err != nil {
		return nil, err
	}
	s.ledger.Insert(ctx, r)
	return &r, nil
}

func (s *service) Return(ctx context.Context, userID, rentalID string) (*model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.ledger.Get(ctx, rentalID)
	if !ok {
		return nil, makeErr(ErrRentalNotFound)
	}
	if r.UserID != userID {
		return nil, makeErr(ErrAccessDenied)
	}
	if r.IsReturned {
		return nil, makeErr(ErrAlreadyReturned)
	}

	now := s.now().UTC()
	var fee float64
	if now.After(r.DueDate) {
		daysLate := math.Ceil(now.Sub(r.DueDate).Hours() / 24)
		fee = daysLate * s.cfg.LateFeePerDay
	}

	updated, err := s.ledger.MarkReturned(ctx, rentalID, now, fee)
	if err != nil {
		return nil, err
	}

	// A missing book record, or a counter that cannot take the copy
	// back, is non-fatal: the rental stays the authoritative record of
	// the loan and is already marked returned at this point.
	_ = s.books.AdjustAvailable(ctx, r.BookID, 1)
	return &updated, nil
}

func (s *service) MyBooks(ctx context.Context, userID string) ([]model.RentalView, error) {
	open := s.ledger.Find(ctx, func(r model.Rental) bool {
		return r.UserID == userID && !r.IsReturned
	})

	now := s.now().UTC()
	out := make([]model.RentalView, 0, len(open))
	for _, r := range open {
		b, ok := s.books.Get(ctx, r.BookID)
		if !ok {
			continue
		}
		out = append(out, model.RentalView{
			ID:         b.ID,
			Title:      b.Title,
			Author:     b.Author,
			CoverImage: b.CoverImage,
			Genre:      b.Genre,
			RentalID:   r.ID,
			RentedAt:   r.RentedAt,
			DueDate:    r.DueDate,
			IsOverdue:  now.After(r.DueDate),
		})
	}
	return out, nil
}
