package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/test", nil)

	HandleAPIError(c, err)

	body := map[string]string{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid id", apperrors.ErrInvalidID, http.StatusBadRequest, "Invalid id"},
		{"validation", apperrors.NewValidationError("name is required"), http.StatusBadRequest, "name is required"},
		{"file too large", apperrors.ErrFileTooLarge, http.StatusBadRequest, "file exceeds the allowed size"},
		{"file type", apperrors.ErrFileTypeNotAllowed, http.StatusBadRequest, "file type not allowed"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{"token missing", apperrors.ErrTokenMissing, http.StatusUnauthorized, "No token provided"},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
		{"token invalid", apperrors.ErrTokenInvalid, http.StatusUnauthorized, "Invalid token"},
		{"not found", apperrors.NewNotFoundError("Student not found"), http.StatusNotFound, "Student not found"},
		{"duplicate ap code", apperrors.ErrDuplicateAPCode, http.StatusConflict, "Academic partner with this AP code already exists"},
		{"admin exists", apperrors.ErrAdminExists, http.StatusConflict, "Admin already exists"},
		{"unexpected", errors.New("pool exhausted"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := handleError(t, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, body["message"])
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	status, body := handleError(t, apperrors.NewFileError(apperrors.ErrFileTooLarge, "brochure.pdf exceeds the 25 MB limit"))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "brochure.pdf exceeds the 25 MB limit", body["message"])
}
