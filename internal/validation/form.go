package validation

import (
	"strings"
)

// Form значения полей формы
type Form map[Field]string

// Errors ошибки валидации по полям
type Errors map[Field]string

// ValidateForm проверяет все поля формы.
// Возвращает nil, если ошибок нет.
func ValidateForm(form Form) Errors {
	var errs Errors
	for field, value := range form {
		if msg := Validate(field, value); msg != "" {
			if errs == nil {
				errs = make(Errors)
			}
			errs[field] = msg
		}
	}
	return errs
}

// Add добавляет ошибку поля, пустое сообщение игнорируется
func (e *Errors) Add(field Field, msg string) {
	if msg == "" {
		return
	}
	if *e == nil {
		*e = make(Errors)
	}
	(*e)[field] = msg
}

// Empty сообщает об отсутствии ошибок
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Error реализует error, поля выводятся в фиксированном порядке
func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, field := range fieldOrder {
		if msg, ok := e[field]; ok {
			msgs = append(msgs, string(field)+": "+msg)
		}
	}
	return strings.Join(msgs, "; ")
}
