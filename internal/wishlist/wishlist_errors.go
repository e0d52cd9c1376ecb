package wishlist

import (
	"net/http"

	"laptop-store-api/internal/pkg/apperror"
)

var (
	ErrInvalidLaptopID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid laptop ID",
		http.StatusBadRequest,
	)

	ErrAlreadyInWishlist = apperror.New(
		apperror.CodeConflict,
		"Item already in wishlist",
		http.StatusConflict,
	)

	ErrWishlistFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process wishlist operation",
		http.StatusInternalServerError,
	)
)
