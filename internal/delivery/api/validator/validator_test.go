package validator

import (
	"testing"

	"locinsight/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"store_name" validate:"required"`
	Page  int    `query:"page" validate:"gte=1"`
	ID    int64  `param:"id" validate:"gt=0"`
	Plain string `validate:"required"`
}

func TestRequestValidator_ReportsWireNames(t *testing.T) {
	err := New().Validate(&sample{})

	require.Error(t, err)
	assert.ElementsMatch(t, []string{"store_name: required", "page: gte", "id: gt", "Plain: required"}, FieldErrors(err))
}

func TestRequestValidator_Valid(t *testing.T) {
	err := New().Validate(&sample{Name: "a", Page: 1, ID: 2, Plain: "b"})

	assert.NoError(t, err)
}

func TestFieldErrors_OtherError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}
