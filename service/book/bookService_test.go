// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"fmt"
	"testing"

	"bookrental/model"
	booksvc "bookrental/service/book"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	getFn  func(ctx context.Context, id string) (*model.Book, bool)
	listFn func(ctx context.Context) []model.Book
}

func (m *repoMock) Get(ctx context.Context, id string) (*model.Book, bool) {
	return m.getFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context) []model.Book { return m.listFn(ctx) }

func fixed(books []model.Book) *repoMock {
	return &repoMock{
		listFn: func(ctx context.Context) []model.Book { return books },
		getFn: func(ctx context.Context, id string) (*model.Book, bool) {
			for _, b := range books {
				if b.ID == id {
					cp := b
					return &cp, true
				}
			}
			return nil, false
		},
	}
}

func sampleCatalog() []model.Book {
	return []model.Book{
		{ID: "1", Title: "The Go Programming Language", Author: "Alan Donovan", Genre: "Technology", Description: "The definitive Go book", Rating: 4.7, PublishedYear: 2015, Tags: []string{"programming", "golang"}},
		{ID: "2", Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Description: "Desert planet saga", Rating: 4.3, PublishedYear: 1965, Tags: []string{"space", "classic"}},
		{ID: "3", Title: "Circe", Author: "Madeline Miller", Genre: "Fantasy", Description: "Greek mythology retelling", Rating: 4.3, PublishedYear: 2018, Tags: []string{"mythology"}},
		{ID: "4", Title: "Educated", Author: "Tara Westover", Genre: "Biography", Description: "A memoir about education", Rating: 4.4, PublishedYear: 2018, Tags: []string{"memoir"}},
	}
}

func TestSearch_FreeText(t *testing.T) {
	ctx := context.Background()
	s := booksvc.New(fixed(sampleCatalog()))

	cases := []struct {
		name  string
		query string
		want  []string // expected ids, any order not required: results sorted by relevance desc
	}{
		{"title match", "dune", []string{"2"}},
		{"author match", "westover", []string{"4"}},
		{"description match", "mythology", []string{"3"}},
		{"tag match", "golang", []string{"1"}},
		{"no match", "zebra", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			books, page, err := s.Search(ctx, booksvc.Criteria{Query: tc.query})
			require.NoError(t, err)
			require.Equal(t, len(tc.want), page.Total)
			ids := idsOf(books)
			require.ElementsMatch(t, tc.want, ids)
		})
	}
}

func TestSearch_GenreAndAuthorFilters(t *testing.T) {
	ctx := context.Background()
	s := booksvc.New(fixed(sampleCatalog()))

	books, _, err := s.Search(ctx, booksvc.Criteria{Genre: "science fiction"})
	require.NoError(t, err)
	require.Equal(t, []string{"2"}, idsOf(books))

	// Author is a substring match, genre is exact; both AND together.
	books, _, err = s.Search(ctx, booksvc.Criteria{Author: "miller", Genre: "Fantasy"})
	require.NoError(t, err)
	require.Equal(t, []string{"3"}, idsOf(books))

	books, _, err = s.Search(ctx, booksvc.Criteria{Author: "miller", Genre: "Biography"})
	require.NoError(t, err)
	require.Empty(t, books)
}

func TestSearch_DefaultRelevanceSort(t *testing.T) {
	ctx := context.Background()
	s := booksvc.New(fixed(sampleCatalog()))

	books, _, err := s.Search(ctx, booksvc.Criteria{})
	require.NoError(t, err)
	// Highest rating first; the 4.3 tie keeps catalog order (2 before 3).
	require.Equal(t, []string{"1", "4", "2", "3"}, idsOf(books))
}

func TestSearch_SortTitle(t *testing.T) {
	ctx := context.Background()
	s := booksvc.New(fixed(sampleCatalog()))

	books, _, err := s.Search(ctx, booksvc.Criteria{SortBy: "title", SortOrder: "asc"})
	require.NoError(t, err)
	require.Equal(t, []string{"3", "2", "4", "1"}, idsOf(books))

	books, _, err = s.Search(ctx, booksvc.Criteria{SortBy: "title", SortOrder: "desc"})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "4", "2", "3"}, idsOf(books))
}

func TestSearch_SortYearAscIsStable(t *testing.T) {
	ctx := context.Background()
	s := booksvc.New(fixed(sampleCatalog()))

	books, _, err := s.Search(ctx, booksvc.Criteria{SortBy: "year", SortOrder: "asc"})
	require.NoError(t, err)
	// Books 3 and 4 share 2018 and must keep their catalog order.
	require.Equal(t, []string{"2", "1", "3", "4"}, idsOf(books))
}

func TestSearch_Pagination(t *testing.T) {
	ctx := context.Background()

	var catalog []model.Book
	for i := 1; i <= 25; i++ {
		catalog = append(catalog, model.Book{
			ID:    fmt.Sprintf("%02d", i),
			Title: fmt.Sprintf("Book %02d", i),
			Genre: "Fiction",
		})
	}
	s := booksvc.New(fixed(catalog))

	for _, tc := range []struct {
		page int
		want int
	}{
		{1, 10}, {2, 10}, {3, 5}, {4, 0},
	} {
		books, page, err := s.Search(ctx, booksvc.Criteria{Page: tc.page, Limit: 10})
		require.NoError(t, err)
		require.Len(t, books, tc.want, "page %d", tc.page)
		require.Equal(t, 25, page.Total)
		require.Equal(t, 3, page.TotalPages)
		require.Equal(t, tc.page, page.Page)
		require.Equal(t, 10, page.Limit)
	}
}

func TestSearch_Defaults(t *testing.T) {
	ctx := context.Background()
	s := booksvc.New(fixed(sampleCatalog()))

	books, page, err := s.Search(ctx, booksvc.Criteria{})
	require.NoError(t, err)
	require.Len(t, books, 4)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 10, page.Limit)
	require.Equal(t, 1, page.TotalPages)
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	s := booksvc.New(fixed(sampleCatalog()))

	b, err := s.Detail(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, b)
	require.Equal(t, "Dune", b.Title)

	b, err = s.Detail(ctx, "99")
	require.NoError(t, err)
	require.Nil(t, b)
}

func idsOf(books []model.Book) []string {
	var ids []string
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	return ids
}
