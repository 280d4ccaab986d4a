package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flier/llrb/pkg/llrb"
	"github.com/flier/llrb/pkg/xerrors"
)

func TestOpErrorUnwrapsToTheUnderlyingError(t *testing.T) {
	t.Parallel()

	err := &OpError{Op: "update", Key: "7", Err: llrb.ErrNotFound}

	assert.ErrorIs(t, err, llrb.ErrNotFound)
	assert.Contains(t, err.Error(), "update")
	assert.Contains(t, err.Error(), "7")
}

func TestAsAFindsOpErrorThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(errors.New("unrelated"), &OpError{Op: "insert", Key: "3", Err: llrb.ErrFullTree})

	opErr, ok := xerrors.AsA[*OpError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "insert", opErr.Op)
}
