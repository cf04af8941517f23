package validation

import (
	"strings"
)

const (
	// MaxCardNumberLen 16 цифр и 3 пробела
	MaxCardNumberLen = 19
	// MaxExpiryDateLen MM/YY
	MaxExpiryDateLen = 5

	expiryDigits = 4
)

// digitsOnly оставляет в строке только цифры
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber приводит ввод к виду "1234 5678 9012 3456".
// Цифры сверх 16 отбрасываются, результат не длиннее 19 символов.
func FormatCardNumber(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > CardDigits {
		digits = digits[:CardDigits]
	}

	var b strings.Builder
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := min(i+4, len(digits))
		b.WriteString(digits[i:end])
	}
	return b.String()
}

// FormatCardNumberStrict форматирует номер карты и сообщает,
// помещается ли ввод в 19 символов. При false ввод следует отбросить
// и оставить предыдущее значение поля.
func FormatCardNumberStrict(raw string) (string, bool) {
	formatted := FormatCardNumber(raw)
	return formatted, len(digitsOnly(raw)) <= CardDigits
}

// FormatExpiryDate приводит ввод к виду "MM/YY".
// Слеш вставляется после первых двух цифр, результат не длиннее 5 символов.
func FormatExpiryDate(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > expiryDigits {
		digits = digits[:expiryDigits]
	}
	if len(digits) < 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// FormatExpiryDateStrict форматирует срок действия и сообщает,
// помещается ли ввод в 5 символов. При false ввод следует отбросить.
func FormatExpiryDateStrict(raw string) (string, bool) {
	return FormatExpiryDate(raw), len(digitsOnly(raw)) <= expiryDigits
}

// UnformatCardNumber убирает пробелы из номера карты перед отправкой
func UnformatCardNumber(cardNumber string) string {
	return strings.Join(strings.Fields(cardNumber), "")
}

// ExpiryFromBackend переводит дату сервера "YYYY-MM[-DD]" в "MM/YY".
// Нераспознанное значение возвращается без изменений.
func ExpiryFromBackend(date string) string {
	if date == "" {
		return ""
	}
	parts := strings.Split(date, "-")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return date
	}
	month := parts[1]
	if len(month) < 2 {
		month = "0" + month
	}
	year := parts[0]
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return month + "/" + year
}
