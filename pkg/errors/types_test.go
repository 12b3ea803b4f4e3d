package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("highlight", 7), http.StatusNotFound},
		{"validation", ValidationError("text", "must not be empty"), http.StatusBadRequest},
		{"invalid file type", InvalidFileType("image/png"), http.StatusBadRequest},
		{"confirmation", New(ErrCodeConfirmationRequired, "confirm"), http.StatusPreconditionRequired},
		{"database", DatabaseError("insert", fmt.Errorf("disk full")), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("outer: %w", NotFound("document", 1)), http.StatusNotFound},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPCode(tt.err))
		})
	}
}

func TestAppError_Details(t *testing.T) {
	err := InvalidFileType("image/png")

	assert.Equal(t, ErrCodeInvalidFileType, err.Code)
	assert.Equal(t, "image/png", err.Details["media_type"])
	assert.True(t, Is(err, ErrCodeInvalidFileType))
	assert.False(t, Is(err, ErrCodeNotFound))
	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("plain")))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := DatabaseError("select", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}
