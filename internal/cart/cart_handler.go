package cart

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

func (h *Handler) respond(c *gin.Context, status int, res CartResponse, err error) {
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, status, res)
}

// GET /cart
func (h *Handler) Detail(c *gin.Context) {
	res, err := h.service.Detail(c.Request.Context(), c.GetString("user_id"))
	h.respond(c, http.StatusOK, res, err)
}

// POST /cart/items/:laptopId
func (h *Handler) AddItem(c *gin.Context) {
	res, err := h.service.AddItem(
		c.Request.Context(),
		c.GetString("user_id"),
		c.Param("laptopId"),
	)
	h.respond(c, http.StatusCreated, res, err)
}

// PATCH /cart/items/:itemId
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.UpdateQuantity(
		c.Request.Context(),
		c.GetString("user_id"),
		c.Param("itemId"),
		req,
	)
	h.respond(c, http.StatusOK, res, err)
}

// DELETE /cart/items/:itemId
func (h *Handler) RemoveItem(c *gin.Context) {
	res, err := h.service.RemoveItem(
		c.Request.Context(),
		c.GetString("user_id"),
		c.Param("itemId"),
	)
	h.respond(c, http.StatusOK, res, err)
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	res, err := h.service.Clear(c.Request.Context(), c.GetString("user_id"))
	h.respond(c, http.StatusOK, res, err)
}
