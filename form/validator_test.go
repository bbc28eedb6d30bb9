package form_test

import (
	"testing"

	"github.com/instamd/portal-auth/form"
	"github.com/stretchr/testify/require"
)

func TestValidateField_Username(t *testing.T) {
	t.Run("valid email", func(t *testing.T) {
		require.Empty(t, form.ValidateField(form.FieldUsername, "test@example.com"))
	})

	t.Run("subdomain email", func(t *testing.T) {
		require.Empty(t, form.ValidateField(form.FieldUsername, "user@mail.example.co.uk"))
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, form.MsgEmailRequired, form.ValidateField(form.FieldUsername, ""))
	})

	t.Run("whitespace only", func(t *testing.T) {
		require.Equal(t, form.MsgEmailRequired, form.ValidateField(form.FieldUsername, "   "))
	})

	t.Run("missing at sign", func(t *testing.T) {
		require.Equal(t, form.MsgEmailInvalid, form.ValidateField(form.FieldUsername, "not-an-email"))
	})

	t.Run("missing dot after at", func(t *testing.T) {
		require.Equal(t, form.MsgEmailInvalid, form.ValidateField(form.FieldUsername, "user@example"))
	})

	t.Run("empty local part", func(t *testing.T) {
		require.Equal(t, form.MsgEmailInvalid, form.ValidateField(form.FieldUsername, "@example.com"))
	})

	t.Run("dot directly after at", func(t *testing.T) {
		require.Equal(t, form.MsgEmailInvalid, form.ValidateField(form.FieldUsername, "user@.com"))
	})

	t.Run("trailing dot", func(t *testing.T) {
		require.Equal(t, form.MsgEmailInvalid, form.ValidateField(form.FieldUsername, "user@example."))
	})

	t.Run("two at signs", func(t *testing.T) {
		require.Equal(t, form.MsgEmailInvalid, form.ValidateField(form.FieldUsername, "user@@example.com"))
	})

	t.Run("internal whitespace", func(t *testing.T) {
		require.Equal(t, form.MsgEmailInvalid, form.ValidateField(form.FieldUsername, "us er@example.com"))
	})
}

func TestValidateField_Password(t *testing.T) {
	t.Run("long enough", func(t *testing.T) {
		require.Empty(t, form.ValidateField(form.FieldPassword, "abcdef"))
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, form.MsgPasswordRequired, form.ValidateField(form.FieldPassword, ""))
	})

	t.Run("too short", func(t *testing.T) {
		require.Equal(t, form.MsgPasswordTooShort, form.ValidateField(form.FieldPassword, "abcde"))
	})

	t.Run("whitespace counts", func(t *testing.T) {
		require.Empty(t, form.ValidateField(form.FieldPassword, "      "))
	})
}

func TestValidateForm(t *testing.T) {
	t.Run("both valid yields empty map", func(t *testing.T) {
		errs := form.ValidateForm(map[string]string{
			form.FieldUsername: "test@example.com",
			form.FieldPassword: "password123",
		})
		require.Empty(t, errs)
	})

	t.Run("only failing fields present", func(t *testing.T) {
		errs := form.ValidateForm(map[string]string{
			form.FieldUsername: "test@example.com",
			form.FieldPassword: "short",
		})
		require.Len(t, errs, 1)
		require.Equal(t, form.MsgPasswordTooShort, errs[form.FieldPassword])
	})

	t.Run("both failing", func(t *testing.T) {
		errs := form.ValidateForm(map[string]string{})
		require.Len(t, errs, 2)
		require.Equal(t, form.MsgEmailRequired, errs[form.FieldUsername])
		require.Equal(t, form.MsgPasswordRequired, errs[form.FieldPassword])
	})
}

func TestState_TouchedGating(t *testing.T) {
	t.Run("error hidden until touched", func(t *testing.T) {
		s := form.NewState()
		s.SetField(form.FieldUsername, "bad")
		require.Empty(t, s.Error(form.FieldUsername))

		s.Blur(form.FieldUsername)
		require.Equal(t, form.MsgEmailInvalid, s.Error(form.FieldUsername))
	})

	t.Run("touch all surfaces every error", func(t *testing.T) {
		s := form.NewState()
		s.TouchAll()
		s.ValidateAll()
		require.Equal(t, form.MsgEmailRequired, s.Error(form.FieldUsername))
		require.Equal(t, form.MsgPasswordRequired, s.Error(form.FieldPassword))
	})
}

func TestState_LiveRevalidation(t *testing.T) {
	t.Run("touched field revalidates on change", func(t *testing.T) {
		s := form.NewState()
		s.SetField(form.FieldUsername, "bad")
		s.Blur(form.FieldUsername)
		require.Equal(t, form.MsgEmailInvalid, s.Error(form.FieldUsername))

		s.SetField(form.FieldUsername, "fixed@example.com")
		require.Empty(t, s.Error(form.FieldUsername))
	})

	t.Run("untouched field is not validated on change", func(t *testing.T) {
		s := form.NewState()
		s.SetField(form.FieldPassword, "x")
		s.Blur(form.FieldUsername)
		require.Empty(t, s.Error(form.FieldPassword))
	})
}

func TestState_IsValid(t *testing.T) {
	t.Run("clean values and no recorded errors", func(t *testing.T) {
		s := form.NewState()
		s.SetField(form.FieldUsername, "test@example.com")
		s.SetField(form.FieldPassword, "password123")
		require.True(t, s.IsValid())
	})

	t.Run("conservative while recorded errors are outstanding", func(t *testing.T) {
		s := form.NewState()
		s.ValidateAll() // records errors for the empty form

		// Values become clean, but the untouched fields never
		// revalidate, so the stale errors still block.
		s.SetField(form.FieldUsername, "test@example.com")
		s.SetField(form.FieldPassword, "password123")
		require.False(t, s.IsValid())

		s.ValidateAll()
		require.True(t, s.IsValid())
	})

	t.Run("false on bad values even with no recorded errors", func(t *testing.T) {
		s := form.NewState()
		s.SetField(form.FieldUsername, "test@example.com")
		s.SetField(form.FieldPassword, "short")
		require.False(t, s.IsValid())
	})
}
