package book

import (
	"log/slog"
	"net/http"

	booksvc "bookrental/service/book"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc booksvc.Service
	Log *slog.Logger
}

// GET /v1/books
func (h *Controller) List(c echo.Context) error {
	var req SearchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Validation failed"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  err.Error(),
		})
	}

	books, page, err := h.Svc.Search(c.Request().Context(), booksvc.Criteria{
		Query:     req.Q,
		Genre:     req.Genre,
		Author:    req.Author,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		Limit:     req.Limit,
	})
	if err != nil {
		h.Log.Error("book search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to fetch books"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"data":       books,
		"pagination": page,
	})
}

// GET /v1/books/:bookId
func (h *Controller) Detail(c echo.Context) error {
	id := c.Param("bookId")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Book ID is required"})
	}

	b, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("book detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to fetch book details"})
	}
	if b == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Book not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": b})
}
