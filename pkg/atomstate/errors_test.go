package atomstate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/atomstate/pkg/atomstate"
)

func TestListenerError_Error(t *testing.T) {
	err := &atomstate.ListenerError{
		Atom:       "counter",
		ListenerID: 3,
		Err:        errors.New("boom"),
	}
	assert.Equal(t, "atom counter: listener 3 failed: boom", err.Error())
}

func TestListenerError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &atomstate.ListenerError{Atom: "counter", ListenerID: 0, Err: cause}

	assert.ErrorIs(t, err, cause)

	var lerr *atomstate.ListenerError
	assert.ErrorAs(t, err, &lerr)
	assert.Equal(t, uint64(0), lerr.ListenerID)
}
