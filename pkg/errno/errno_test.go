package errno_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"wallet-client/pkg/errno"
)

func TestWithMessage_KeepsTheKind(t *testing.T) {
	err := errno.ErrAuthorization.WithMessage("PIN rejected by server")

	assert.True(t, errors.Is(err, errno.ErrAuthorization))
	assert.Equal(t, "PIN rejected by server", err.Error())

	// The shared value is untouched.
	assert.Equal(t, "Invalid PIN", errno.ErrAuthorization.Message)
}

func TestWithMessage_EmptyFallsBack(t *testing.T) {
	err := errno.ErrUnknownServer.WithMessage("")
	assert.Same(t, errno.ErrUnknownServer, err)
}

func TestDecode(t *testing.T) {
	code, msg := errno.Decode(nil)
	assert.Equal(t, errno.OK.Code, code)
	assert.Equal(t, errno.OK.Message, msg)

	code, msg = errno.Decode(errno.ErrLimitExceeded)
	assert.Equal(t, errno.ErrLimitExceeded.Code, code)
	assert.Equal(t, "Transfer limit exceeded", msg)

	code, msg = errno.Decode(fmt.Errorf("connection reset"))
	assert.Equal(t, errno.ErrUnknownServer.Code, code)
	assert.Equal(t, "connection reset", msg)
}

func TestIs_DoesNotMatchAcrossKinds(t *testing.T) {
	err := errno.ErrInsufficientFunds.WithMessage("Insufficient balance")
	assert.False(t, errors.Is(err, errno.ErrLimitExceeded))
}
