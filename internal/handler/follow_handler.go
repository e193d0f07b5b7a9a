package handler

import (
	"fmt"
	"net/http"

	"yatube/internal/middleware"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FollowHandler struct {
	svc *service.FollowService
}

func NewFollowHandler(db *gorm.DB) *FollowHandler {
	return &FollowHandler{svc: service.NewFollowService(db)}
}

// Follow creates the edge and lands back on the target's profile no
// matter whether anything changed.
func (h *FollowHandler) Follow(c *gin.Context) {
	author, err := h.svc.Follow(middleware.UserID(c), c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", author.Username))
}

// Unfollow drops the edge, a no-op when it never existed.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	author, err := h.svc.Unfollow(middleware.UserID(c), c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", author.Username))
}
