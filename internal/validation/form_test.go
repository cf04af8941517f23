package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForm_Login(t *testing.T) {
	errs := ValidateForm(Form{
		FieldEmail:    "a@b.com",
		FieldPassword: "secret1",
	})
	assert.Nil(t, errs)
	assert.True(t, errs.Empty())
}

func TestValidateForm_CollectsAllErrors(t *testing.T) {
	errs := ValidateForm(Form{
		FieldName:     "",
		FieldEmail:    "bad",
		FieldPassword: "123",
	})
	require.Len(t, errs, 3)
	assert.Equal(t, MsgNameRequired, errs[FieldName])
	assert.Equal(t, MsgInvalidEmail, errs[FieldEmail])
	assert.Equal(t, MsgShortPassword, errs[FieldPassword])

	// порядок в тексте ошибки фиксирован
	assert.Equal(t,
		"name: Name is required.; email: Please enter a valid email address.; password: Password must be at least 6 characters long.",
		errs.Error())
}

func TestErrors_Add(t *testing.T) {
	var errs Errors
	errs.Add(FieldLink, "")
	assert.True(t, errs.Empty())

	errs.Add(FieldLink, MsgLinkRequired)
	assert.False(t, errs.Empty())
	assert.Equal(t, MsgLinkRequired, errs[FieldLink])
}

func TestFields(t *testing.T) {
	fields := Fields()
	assert.Len(t, fields, 15)
	fields[0] = "mutated"
	assert.Equal(t, FieldName, Fields()[0])
	assert.Equal(t, "ZIP Code", FieldZipCode.Label())
}
