// model/book.go
package model

type Book struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	ISBN            string   `json:"isbn"`
	Genre           string   `json:"genre"`
	Description     string   `json:"description"`
	CoverImage      string   `json:"coverImage"`
	PublishedYear   int      `json:"publishedYear"`
	TotalCopies     int      `json:"totalCopies"`
	AvailableCopies int      `json:"availableCopies"`
	Rating          float64  `json:"rating"`
	Tags            []string `json:"tags"`
}
