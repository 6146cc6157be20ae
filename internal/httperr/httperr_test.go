package httperr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *Error
		kind   Kind
		status int
	}{
		{Validation("bad input"), KindValidation, 400},
		{Unauthorized("who are you"), KindAuth, 401},
		{Forbidden("not yours"), KindAuth, 403},
		{NotFound("gone"), KindNotFound, 404},
		{Internal("boom"), KindInternal, 500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.err.Kind)
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.err.Message, tc.err.Error())
	}
}
