package user

import (
	"log/slog"
	"net/http"

	rs "bookrental/service/rental"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// GET /v1/users/:userId/books
func (h *Controller) Books(c echo.Context) error {
	userID := c.Param("userId")
	uid, _ := c.Get("user_id").(string)

	if userID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{
			"success": false,
			"message": "Access denied. You can only view your own books.",
		})
	}

	views, err := h.Svc.MyBooks(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("user books", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Failed to fetch user books"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": views})
}
