package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		code     ErrCode
		expected int
	}{
		{ErrInvalidParameter, http.StatusBadRequest},
		{ErrNoContextFound, http.StatusNotFound},
		{ErrObjectNotFound, http.StatusNotFound},
		{ErrUpstreamModel, http.StatusBadGateway},
		{ErrEmbeddingFailed, http.StatusBadGateway},
		{ErrLLMCallFailed, http.StatusBadGateway},
		{ErrExtractionFailed, http.StatusBadGateway},
		{ErrInternalError, http.StatusInternalServerError},
		{ErrVectorSearch, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.code.HTTPStatusCode(), "code %d", tt.code)
	}
}

func TestIsCode(t *testing.T) {
	err := Newf(ErrNoContextFound, "no relevant context for user %s", "u2")
	assert.True(t, IsCode(err, ErrNoContextFound))
	assert.False(t, IsCode(err, ErrInvalidParameter))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrNoContextFound))
}

func TestGetAppError(t *testing.T) {
	err := New(ErrInvalidParameter, "userId is required")
	appErr := GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, ErrInvalidParameter, appErr.Code)
	assert.Equal(t, "userId is required", appErr.Message)

	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
	assert.Nil(t, GetAppError(nil))
}
