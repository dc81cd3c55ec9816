package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OmkarKathile007/ResQ-Bridge/internal/api/middleware"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/domain"
	"github.com/OmkarKathile007/ResQ-Bridge/internal/core/ports"
)

// AccountHandler exposes identity-centric endpoints: the caller's own profile
// and the admin-only user listing.
type AccountHandler struct {
	users ports.UserRepository
}

func NewAccountHandler(users ports.UserRepository) *AccountHandler {
	return &AccountHandler{users: users}
}

type meResponse struct {
	Username    string   `json:"username"`
	Authorities []string `json:"authorities"`
}

// Me returns the authenticated principal and its granted authorities.
//
// @Summary      Current principal
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return c.JSON(http.StatusOK, meResponse{
		Username:    p.Username,
		Authorities: p.Authorities,
	})
}

type userSummary struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Roles    []domain.Role `json:"roles"`
}

// ListUsers returns every registered user, without password hashes.
//
// @Summary      List users (admin only)
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userSummary
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.users.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userSummary, 0, len(users))
	for _, u := range users {
		out = append(out, userSummary{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Roles:    u.Roles,
		})
	}
	return c.JSON(http.StatusOK, out)
}
