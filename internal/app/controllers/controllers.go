package controllers

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
)

// parseIDParam reads the numeric :id path parameter. Anything that is not
// a positive integer maps to ErrInvalidID.
func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.ErrInvalidID
	}
	return id, nil
}

// bindError normalizes gin binding failures. Field validation errors pass
// through for per-field formatting; anything else (malformed JSON, wrong
// content type) becomes a generic validation error.
func bindError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return err
	}
	return apperrors.NewValidationError("invalid request body")
}

// formFile reads an optional single-file multipart field. A missing field
// is nil, not an error.
func formFile(c *gin.Context, name string) *multipart.FileHeader {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return fh
}

// formFileGroups returns the uploaded file groups of a multipart request,
// or an empty map for requests without files.
func formFileGroups(c *gin.Context) map[string][]*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return map[string][]*multipart.FileHeader{}
	}
	return form.File
}
