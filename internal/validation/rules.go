package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Сообщения об ошибках валидации, показываются пользователю как есть
const (
	MsgInvalidEmail        = "Please enter a valid email address."
	MsgShortPassword       = "Password must be at least 6 characters long."
	MsgNameRequired        = "Name is required."
	MsgLinkRequired        = "Link is required"
	MsgInvalidLink         = "Please enter a valid URL"
	MsgOrientationRequired = "Banner location is required."
	MsgInvalidCardNumber   = "Invalid card number"
	MsgInvalidExpiryDate   = "Invalid expiration date."
	MsgFieldRequired       = "This field is required."
	MsgInvalidImage        = "Please upload a valid image file."
)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// CardDigits количество цифр в номере карты
	CardDigits = 16
	// MaskSentinel префикс маскированного номера уже сохраненной карты
	MaskSentinel = "XXXX"
)

var (
	// EmailPattern не привязан к началу и концу строки
	EmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	// LinkPattern допустимый формат ссылки баннера
	LinkPattern = regexp.MustCompile(`^(ftp|http|https)://[^ "]+$`)
)

// Validate проверяет одно поле и возвращает сообщение об ошибке
// или пустую строку, если значение корректно
func Validate(field Field, value string) string {
	switch field {
	case FieldEmail:
		return ValidateEmail(value)
	case FieldPassword:
		return ValidatePassword(value)
	case FieldName:
		return ValidateName(value)
	case FieldLink:
		return ValidateLink(value)
	case FieldBanner:
		return ValidateBannerType(value)
	case FieldBannerOrientation:
		return ValidateOrientation(ParseOrientation(value))
	case FieldCardNumber:
		return ValidateCardNumber(value)
	case FieldExpiryDate:
		return ValidateExpiryDate(value)
	case FieldFirstName, FieldLastName, FieldAddress, FieldCity, FieldState, FieldZipCode, FieldCountry:
		return ValidateRequired(value)
	default:
		return ""
	}
}

// ValidateEmail проверяет формат email
func ValidateEmail(email string) string {
	if email == "" || !EmailPattern.MatchString(email) {
		return MsgInvalidEmail
	}
	return ""
}

// ValidatePassword проверяет минимальную длину пароля
func ValidatePassword(password string) string {
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return MsgShortPassword
	}
	return ""
}

// ValidateName проверяет, что название компании задано
func ValidateName(name string) string {
	if name == "" {
		return MsgNameRequired
	}
	return ""
}

// ValidateLink проверяет ссылку баннера.
// Пустое значение дает "Link is required", а не ошибку формата.
func ValidateLink(link string) string {
	if strings.TrimSpace(link) == "" {
		return MsgLinkRequired
	}
	if !LinkPattern.MatchString(link) {
		return MsgInvalidLink
	}
	return ""
}

// ValidateBannerType проверяет MIME тип баннера.
// Пустое значение допустимо: баннер не меняется.
func ValidateBannerType(mimeType string) string {
	if mimeType != "" && !strings.HasPrefix(mimeType, "image/") {
		return MsgInvalidImage
	}
	return ""
}

// ValidateOrientation проверяет, что расположение баннера выбрано
func ValidateOrientation(isVertical *bool) string {
	if isVertical == nil {
		return MsgOrientationRequired
	}
	return ""
}

// ParseOrientation разбирает значение поля расположения баннера:
// "true"/"vertical" и "false"/"horizontal", все остальное - не выбрано
func ParseOrientation(value string) *bool {
	var v bool
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "vertical", "v":
		v = true
	case "false", "horizontal", "h":
		v = false
	default:
		return nil
	}
	return &v
}

// ValidateCardNumber проверяет номер карты после форматирования.
// Маскированный номер ("XXXX...") считается уже проверенным.
func ValidateCardNumber(cardNumber string) string {
	if IsMaskedCard(cardNumber) {
		return ""
	}
	digits := UnformatCardNumber(cardNumber)
	if len(digits) != CardDigits || strings.Trim(digits, "0123456789") != "" {
		return MsgInvalidCardNumber
	}
	return ""
}

// IsMaskedCard сообщает, что номер карты - заглушка сохраненной карты
func IsMaskedCard(cardNumber string) bool {
	return strings.HasPrefix(cardNumber, MaskSentinel)
}

// ValidateExpiryDate проверяет срок действия в формате MM/YY
func ValidateExpiryDate(expiry string) string {
	month, year, _ := strings.Cut(expiry, "/")
	if month == "" || year == "" {
		return MsgInvalidExpiryDate
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return MsgInvalidExpiryDate
	}
	return ""
}

// ValidateRequired проверяет обязательное текстовое поле
func ValidateRequired(value string) string {
	if strings.TrimSpace(value) == "" {
		return MsgFieldRequired
	}
	return ""
}
