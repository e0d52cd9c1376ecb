package wishlist

import (
	"net/http"

	"laptop-store-api/internal/pkg/apperror"
	"laptop-store-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

func respondErr(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

// GET /wishlist
func (h *Handler) List(c *gin.Context) {
	res, err := h.service.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// GET /wishlist/items/:laptopId
func (h *Handler) Contains(c *gin.Context) {
	inWishlist, err := h.service.Contains(
		c.Request.Context(),
		c.GetString("user_id"),
		c.Param("laptopId"),
	)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, ContainsResponse{InWishlist: inWishlist})
}

// POST /wishlist/items/:laptopId
func (h *Handler) Add(c *gin.Context) {
	res, err := h.service.Add(
		c.Request.Context(),
		c.GetString("user_id"),
		c.Param("laptopId"),
	)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

// DELETE /wishlist/items/:laptopId
func (h *Handler) Remove(c *gin.Context) {
	res, err := h.service.Remove(
		c.Request.Context(),
		c.GetString("user_id"),
		c.Param("laptopId"),
	)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// POST /wishlist/items/:laptopId/toggle
func (h *Handler) Toggle(c *gin.Context) {
	res, err := h.service.Toggle(
		c.Request.Context(),
		c.GetString("user_id"),
		c.Param("laptopId"),
	)
	if err != nil {
		respondErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
