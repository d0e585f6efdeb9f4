package entity

import (
	"testing"

	"locinsight/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessNumber_Next(t *testing.T) {
	t.Run("no existing number starts at JS0001", func(t *testing.T) {
		assert.Equal(t, "JS0001", BusinessNumber{}.Next().String())
	})

	t.Run("increments the current maximum", func(t *testing.T) {
		current, err := ParseBusinessNumber("JS0012")
		require.NoError(t, err)

		assert.Equal(t, "JS0013", current.Next().String())
	})

	t.Run("keeps growing past four digits", func(t *testing.T) {
		current, err := ParseBusinessNumber("JS9999")
		require.NoError(t, err)

		assert.Equal(t, "JS10000", current.Next().String())
	})
}

func TestParseBusinessNumber_Invalid(t *testing.T) {
	for _, raw := range []string{"", "JS", "AB0012", "JS12a", "js0012"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseBusinessNumber(raw)
			assert.True(t, errors.Is(err, ErrInvalidBusinessNumber))
		})
	}
}

func TestStoreRegistration_HasTag(t *testing.T) {
	reg := StoreRegistration{Selected: []string{"KT_MYSHOP", "pulmuone", "unknown"}}

	assert.True(t, reg.HasTag(TagKTMyShop))
	assert.True(t, reg.HasTag(TagPulmuone))
	assert.False(t, reg.HasTag(TagJSam))
	assert.False(t, StoreRegistration{}.HasTag(TagJSam))
}

func TestRegistrationResult_Success(t *testing.T) {
	assert.True(t, RegistrationResult{Outcome: OutcomeRegistered, BusinessNumber: "JS0001"}.Success())
	assert.False(t, RegistrationResult{Outcome: OutcomeAlreadyRegistered}.Success())
}
