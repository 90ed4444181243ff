package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e3mc/bschool-admin/internal/app/models/dto"
	"github.com/e3mc/bschool-admin/internal/pkg/apperrors"
)

func TestCounsellingCreateRejectsUntickedTerms(t *testing.T) {
	svc := NewCounsellingService(nil)

	_, err := svc.Create(context.Background(), &dto.CounsellingCreateRequest{
		Name:          "Priya Nair",
		Email:         "priya@example.com",
		PhoneCode:     "+91",
		Phone:         "98100 00000",
		AgreedToTerms: false,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "terms must be accepted", err.Error())
}
