package catalog

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

	ErrLaptopNotFound = apperror.New(
		apperror.CodeNotFound,
		"Laptop not found",
		http.StatusNotFound,
	)

	ErrInvalidDiscount = apperror.New(
		apperror.CodeInvalidInput,
		"Original price must not be below the sale price",
		http.StatusBadRequest,
	)

	ErrCatalogFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process catalog operation",
		http.StatusInternalServerError,
	)
)
