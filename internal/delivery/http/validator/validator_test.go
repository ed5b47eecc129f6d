package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string  `json:"username" validate:"required,min=3"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=5"`
	Internal string  `json:"-" validate:"omitempty"`
}

func TestValidate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(&signup{Username: "sarah"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		bio := "far too long"
		err := v.Validate(&signup{Username: "ab", Bio: &bio})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 2)
		assert.Equal(t, FieldError{Field: "username", Rule: "min", Param: "3"}, verr.Fields[0])
		assert.Equal(t, FieldError{Field: "bio", Rule: "max", Param: "5"}, verr.Fields[1])
		assert.Equal(t, "username failed on min=3; bio failed on max=5", err.Error())
	})

	t.Run("required without param", func(t *testing.T) {
		err := v.Validate(&signup{})

		assert.EqualError(t, err, "username failed on required")
	})
}
