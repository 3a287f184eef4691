package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{
		Platform: "linux",
		Tried:    []string{"Environment Variable", "Hardcoded Modern List"},
	}

	require.Equal(
		t,
		"no terminal emulator could be determined on linux (tried: Environment Variable, Hardcoded Modern List)",
		err.Error(),
	)
	require.ErrorIs(t, err, ErrNoTerminalEmulator)
	require.True(t, err.IsTermEmuError())
}

func TestQueryError(t *testing.T) {
	err := &QueryError{Helper: "gsettings", Err: context.DeadlineExceeded}

	require.Equal(t, "query gsettings: context deadline exceeded", err.Error())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.True(t, err.IsTermEmuError())
}

func TestQueryError_AsFromWrapped(t *testing.T) {
	root := errors.New("exit status 1")
	wrapped := errors.Join(errors.New("outer"), &QueryError{Helper: "kreadconfig6", Err: root})

	qerr, ok := errors.AsType[*QueryError](wrapped)
	require.True(t, ok)
	require.Equal(t, "kreadconfig6", qerr.Helper)
	require.ErrorIs(t, wrapped, root)
}

func TestUnknownMethodError(t *testing.T) {
	err := &UnknownMethodError{Token: "hardcoded-retro"}

	require.Equal(t, `unknown detection method "hardcoded-retro"`, err.Error())
	require.True(t, err.IsTermEmuError())
}

func TestUnknownSyntaxError(t *testing.T) {
	err := &UnknownSyntaxError{Token: "-x"}

	require.Equal(t, `unknown execution syntax "-x"`, err.Error())
	require.True(t, err.IsTermEmuError())
}
