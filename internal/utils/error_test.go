package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineErrors(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		assert.NoError(t, CombineErrors())
	})

	t.Run("nil errors are skipped", func(t *testing.T) {
		err := CombineErrors(errors.New("a"), nil, errors.New("b"))
		assert.EqualError(t, err, "a\nb")
	})
}
