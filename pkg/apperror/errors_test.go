package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"yourssu.com/blog/pkg/apperror"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperror.ErrUserNotFound, http.StatusNotFound},
		{apperror.ErrArticleNotFound, http.StatusNotFound},
		{apperror.ErrCommentNotFound, http.StatusNotFound},
		{apperror.ErrDuplicateEmail, http.StatusBadRequest},
		{apperror.ErrWrongPassword, http.StatusBadRequest},
		{apperror.ErrUserNotMatch, http.StatusBadRequest},
		{apperror.ErrArticleNotMatch, http.StatusBadRequest},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, apperror.MapErrorToStatus(tt.err))
		})
	}
}

func TestMapErrorToStatus_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("update comment: %w", apperror.ErrUserNotMatch)
	assert.Equal(t, http.StatusBadRequest, apperror.MapErrorToStatus(wrapped))
}

func TestAppError(t *testing.T) {
	inner := errors.New("boom")
	err := apperror.New(http.StatusConflict, "conflict", inner)

	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, http.StatusConflict, apperror.MapErrorToStatus(err))
}
