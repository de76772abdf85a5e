package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/utilkit/pkg/validate"
)

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	t.Run("valid password against default policy", func(t *testing.T) {
		t.Parallel()
		res := validate.CheckPassword("Str0ng!Pass", validate.DefaultPasswordConfig())
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("collects every failed requirement", func(t *testing.T) {
		t.Parallel()
		res := validate.CheckPassword("abc", validate.DefaultPasswordConfig())
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 4)
	})

	t.Run("errors appear in fixed check order", func(t *testing.T) {
		t.Parallel()
		res := validate.CheckPassword("", validate.DefaultPasswordConfig())
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 5)
		assert.Equal(t, []string{
			"password must be at least 8 characters long",
			"password must contain at least one uppercase letter",
			"password must contain at least one lowercase letter",
			"password must contain at least one number",
			"password must contain at least one special character",
		}, res.Errors)
	})

	t.Run("missing uppercase only", func(t *testing.T) {
		t.Parallel()
		res := validate.CheckPassword("str0ng!pass", validate.DefaultPasswordConfig())
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "uppercase")
	})

	t.Run("requirements can be toggled off", func(t *testing.T) {
		t.Parallel()
		cfg := validate.PasswordConfig{MinLength: 4}
		res := validate.CheckPassword("abcd", cfg)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("custom minimum length", func(t *testing.T) {
		t.Parallel()
		cfg := validate.PasswordConfig{MinLength: 20, RequireLowercase: true}
		res := validate.CheckPassword("short", cfg)
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "password must be at least 20 characters long", res.Errors[0])
	})
}
