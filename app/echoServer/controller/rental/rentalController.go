package rental

import (
	"fmt"
	"log/slog"
	"net/http"

	rs "bookrental/service/rental"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// POST /v1/books/:bookId/rent
func (h *Controller) Rent(c echo.Context) error {
	bookID := c.Param("bookId")
	if bookID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Book ID is required"})
	}
	uid, _ := c.Get("user_id").(string)

	r, err := h.Svc.Rent(c.Request().Context(), uid, bookID)
	if err != nil {
		return h.fail(c, "rent", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    r,
		"message": "Book rented successfully",
	})
}

// POST /v1/rentals
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid JSON"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  err.Error(),
		})
	}
	uid, _ := c.Get("user_id").(string)

	// A body userId may only name the caller; renting on behalf of
	// someone else is not allowed.
	if req.UserID != "" && req.UserID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "Access denied"})
	}

	r, err := h.Svc.Rent(c.Request().Context(), uid, req.BookID)
	if err != nil {
		return h.fail(c, "rental create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    r,
		"message": "Book rented successfully!",
	})
}

// POST /v1/rentals/:rentalId/return
func (h *Controller) Return(c echo.Context) error {
	rentalID := c.Param("rentalId")
	if rentalID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Rental ID is required"})
	}
	uid, _ := c.Get("user_id").(string)

	r, err := h.Svc.Return(c.Request().Context(), uid, rentalID)
	if err != nil {
		return h.fail(c, "rental return", err)
	}

	msg := "Book returned successfully"
	if r.LateFee > 0 {
		msg = fmt.Sprintf("Book returned successfully. Late fee: $%.2f", r.LateFee)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    r,
		"message": msg,
	})
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	switch rs.Code(err) {
	case rs.ErrBookNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Book not found"})
	case rs.ErrNoCopies:
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "No copies available for rent"})
	case rs.ErrAlreadyRented:
		return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "You have already rented this book"})
	case rs.ErrRentalNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Rental not found"})
	case rs.ErrAccessDenied:
		return c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "Access denied. You can only return your own books."})
	case rs.ErrAlreadyReturned:
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Book has already been returned"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "internal error"})
	}
}
