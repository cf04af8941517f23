package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "valid email", email: "a@b.com", want: ""},
		{name: "valid with subdomain", email: "ops@mail.example.org", want: ""},
		{name: "pattern is not anchored", email: "  x a@b.c y", want: ""},
		{name: "empty", email: "", want: MsgInvalidEmail},
		{name: "no at sign", email: "ab.com", want: MsgInvalidEmail},
		{name: "no dot after at", email: "a@bcom", want: MsgInvalidEmail},
		{name: "spaces around at", email: "a @ b.com", want: MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.email))
			assert.Equal(t, tt.want, Validate(FieldEmail, tt.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	for n := 0; n < MinPasswordLen; n++ {
		assert.Equal(t, MsgShortPassword, ValidatePassword(strings.Repeat("p", n)), "length %d", n)
	}
	assert.Empty(t, ValidatePassword("secret"))
	assert.Empty(t, ValidatePassword("secret1"))
	// длина считается в символах, а не в байтах
	assert.Equal(t, MsgShortPassword, ValidatePassword("пароль"[:8]))
	assert.Empty(t, ValidatePassword("пароль"))
}

func TestValidateName(t *testing.T) {
	assert.Equal(t, MsgNameRequired, ValidateName(""))
	assert.Empty(t, ValidateName("Acme"))
}

func TestValidateLink(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{name: "https", link: "https://example.com/path?q=1", want: ""},
		{name: "http", link: "http://example.com", want: ""},
		{name: "ftp", link: "ftp://files.example.com", want: ""},
		{name: "blank", link: "", want: MsgLinkRequired},
		{name: "whitespace only", link: "   ", want: MsgLinkRequired},
		{name: "no scheme", link: "example.com", want: MsgInvalidLink},
		{name: "unsupported scheme", link: "mailto://a@b.com", want: MsgInvalidLink},
		{name: "space inside", link: "https://exa mple.com", want: MsgInvalidLink},
		{name: "quote inside", link: `https://example.com/"x`, want: MsgInvalidLink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateLink(tt.link))
		})
	}
}

func TestValidateBannerType(t *testing.T) {
	assert.Empty(t, ValidateBannerType(""))
	assert.Empty(t, ValidateBannerType("image/png"))
	assert.Empty(t, Validate(FieldBanner, "image/webp"))
	assert.Equal(t, MsgInvalidImage, ValidateBannerType("application/pdf"))
	assert.Equal(t, MsgInvalidImage, Validate(FieldBanner, "video/mp4"))
}

func TestValidateOrientation(t *testing.T) {
	assert.Equal(t, MsgOrientationRequired, ValidateOrientation(nil))

	v := true
	assert.Empty(t, ValidateOrientation(&v))
	h := false
	assert.Empty(t, ValidateOrientation(&h))

	assert.Equal(t, MsgOrientationRequired, Validate(FieldBannerOrientation, ""))
	assert.Empty(t, Validate(FieldBannerOrientation, "horizontal"))
}

func TestParseOrientation(t *testing.T) {
	for _, in := range []string{"true", "vertical", "V", " Vertical "} {
		got := ParseOrientation(in)
		if assert.NotNil(t, got, in) {
			assert.True(t, *got, in)
		}
	}
	for _, in := range []string{"false", "horizontal", "h"} {
		got := ParseOrientation(in)
		if assert.NotNil(t, got, in) {
			assert.False(t, *got, in)
		}
	}
	assert.Nil(t, ParseOrientation(""))
	assert.Nil(t, ParseOrientation("diagonal"))
}

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name string
		card string
		want string
	}{
		{name: "formatted 16 digits", card: "4111 1111 1111 1111", want: ""},
		{name: "raw 16 digits", card: "4111111111111111", want: ""},
		{name: "15 digits", card: "4111 1111 1111 111", want: MsgInvalidCardNumber},
		{name: "empty", card: "", want: MsgInvalidCardNumber},
		{name: "letters", card: "4111 1111 1111 111a", want: MsgInvalidCardNumber},
		{name: "masked card on file", card: "XXXX XXXX XXXX 1111", want: ""},
		{name: "masked sentinel only", card: "XXXX", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCardNumber(tt.card))
		})
	}
}

func TestValidateCardNumber_MaskedIsIdempotent(t *testing.T) {
	masked := "XXXXXXXXXXXX4242"
	for i := 0; i < 3; i++ {
		assert.Empty(t, Validate(FieldCardNumber, masked))
	}
}

func TestValidateExpiryDate(t *testing.T) {
	tests := []struct {
		expiry string
		want   string
	}{
		{expiry: "12/25", want: ""},
		{expiry: "01/30", want: ""},
		{expiry: "13/25", want: MsgInvalidExpiryDate},
		{expiry: "00/25", want: MsgInvalidExpiryDate},
		{expiry: "12/", want: MsgInvalidExpiryDate},
		{expiry: "/25", want: MsgInvalidExpiryDate},
		{expiry: "1225", want: MsgInvalidExpiryDate},
		{expiry: "", want: MsgInvalidExpiryDate},
		{expiry: "ab/25", want: MsgInvalidExpiryDate},
	}

	for _, tt := range tests {
		t.Run(tt.expiry, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateExpiryDate(tt.expiry))
		})
	}
}

func TestValidateRequired(t *testing.T) {
	for _, f := range []Field{FieldFirstName, FieldLastName, FieldAddress, FieldCity, FieldState, FieldZipCode, FieldCountry} {
		assert.Equal(t, MsgFieldRequired, Validate(f, ""), f)
		assert.Equal(t, MsgFieldRequired, Validate(f, " \t "), f)
		assert.Empty(t, Validate(f, "x"), f)
	}
}

func TestValidate_UnknownField(t *testing.T) {
	assert.Empty(t, Validate(Field("nickname"), ""))
}
