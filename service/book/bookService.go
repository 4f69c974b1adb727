package booksvc

import (
	"context"
	"sort"
	"strings"

	"bookrental/model"

	"github.com/samber/lo"
)

type Criteria struct {
	Query     string
	Genre     string
	Author    string
	SortBy    string // relevance | title | author | year | rating
	SortOrder string // asc | desc
	Page      int
	Limit     int
}

type Page struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type Repo interface {
	Get(ctx context.Context, id string) (*model.Book, bool)
	List(ctx context.Context) []model.Book
}

type Service interface {
	Search(ctx context.Context, c Criteria) ([]model.Book, Page, error)
	Detail(ctx context.Context, id string) (*model.Book, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

// Search recomputes from the current catalog on every call: filter,
// stable sort, then slice out the requested page.
func (s *service) Search(ctx context.Context, c Criteria) ([]model.Book, Page, error) {
	books := s.r.List(ctx)

	// Listing order from the map snapshot is arbitrary; pin it down
	// before the stable sort so ties stay deterministic.
	sort.SliceStable(books, func(i, j int) bool { return books[i].ID < books[j].ID })

	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		books = lo.Filter(books, func(b model.Book, _ int) bool {
			return matchesQuery(b, q)
		})
	}
	if c.Genre != "" {
		books = lo.Filter(books, func(b model.Book, _ int) bool {
			return strings.EqualFold(b.Genre, c.Genre)
		})
	}
	if c.Author != "" {
		author := strings.ToLower(c.Author)
		books = lo.Filter(books, func(b model.Book, _ int) bool {
			return strings.Contains(strings.ToLower(b.Author), author)
		})
	}

	sortBooks(books, c.SortBy, c.SortOrder)

	page := c.Page
	if page < 1 {
		page = 1
	}
	limit := c.Limit
	if limit < 1 {
		limit = 10
	}

	total := len(books)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return books[start:end], Page{Page: page, Limit: limit, Total: total, TotalPages: totalPages}, nil
}

func (s *service) Detail(ctx context.Context, id string) (*model.Book, error) {
	b, ok := s.r.Get(ctx, id)
	if !ok {
		return nil, nil
	}
	return b, nil
}

func matchesQuery(b model.Book, q string) bool {
	if strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q) ||
		strings.Contains(strings.ToLower(b.Description), q) {
		return true
	}
	return lo.SomeBy(b.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

func sortBooks(books []model.Book, sortBy, sortOrder string) {
	cmp := func(a, b model.Book) int {
		switch sortBy {
		case "title":
			return strings.Compare(a.Title, b.Title)
		case "author":
			return strings.Compare(a.Author, b.Author)
		case "year":
			return a.PublishedYear - b.PublishedYear
		case "rating":
			return compareFloat(a.Rating, b.Rating)
		default: // relevance: rating stands in for a score
			return compareFloat(a.Rating, b.Rating)
		}
	}

	desc := sortOrder != "asc"
	sort.SliceStable(books, func(i, j int) bool {
		c := cmp(books[i], books[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
