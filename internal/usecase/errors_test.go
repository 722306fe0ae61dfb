package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHelpersSeeThroughWrapping(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	tech := &TechnicalError{Code: CodeBackendUnreachable, Message: "backend unreachable", Err: cause}
	wrapped := fmt.Errorf("list leads: %w", tech)

	assert.True(t, IsTechnicalError(wrapped))
	assert.False(t, IsDomainError(wrapped))
	assert.Equal(t, CodeBackendUnreachable, ErrorCode(wrapped))
	assert.ErrorIs(t, wrapped, cause)

	dom := fmt.Errorf("delete: %w", &DomainError{Code: CodeLeadNotFound, Message: "lead not found"})
	assert.True(t, IsDomainError(dom))
	assert.Equal(t, CodeLeadNotFound, ErrorCode(dom))

	assert.Equal(t, "", ErrorCode(errors.New("plain")))
}
