package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newscurator/curator-web/internal/core/domain"
	"github.com/newscurator/curator-web/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type usersResponse struct {
	Users []domain.Member `json:"users"`
}

// List returns the accounts visible to the signed-in administrator.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	_, s := ctxSession(c)
	users, err := h.userService.ListUsers(c.Request().Context(), s)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}
