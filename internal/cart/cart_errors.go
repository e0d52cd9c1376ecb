package cart

import (
	"net/http"

	"laptop-store-api/internal/pkg/apperror"
)

var (
	ErrInvalidItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart item ID",
		http.StatusBadRequest,
	)

	ErrInvalidLaptopID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid laptop ID",
		http.StatusBadRequest,
	)

	ErrCartItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in cart",
		http.StatusNotFound,
	)

	ErrCartFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process cart operation",
		http.StatusInternalServerError,
	)
)
