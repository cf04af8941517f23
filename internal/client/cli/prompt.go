package cli

import (
	"fmt"
	"strings"

	"github.com/iudanet/adpanel/internal/validation"
)

// ask запрашивает значение; пустой ввод оставляет текущее значение
func (c *Cli) ask(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}
	value, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

func (c *Cli) askField(field validation.Field, current string) (string, error) {
	return c.ask(field.Label(), current)
}

func (c *Cli) askPassword() (string, error) {
	password, err := c.io.ReadPassword(validation.FieldPassword.Label() + ": ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// askOrientation запрашивает расположение баннера.
// Нераспознанный ввод оставляет поле невыбранным.
func (c *Cli) askOrientation(current *bool) (*bool, error) {
	value, err := c.ask(validation.FieldBannerOrientation.Label()+" (vertical/horizontal)", orientationValue(current))
	if err != nil {
		return nil, err
	}
	return validation.ParseOrientation(value), nil
}

// confirm запрашивает подтверждение y/N
func (c *Cli) confirm(question string) (bool, error) {
	answer, err := c.io.ReadInput(question + " [y/N]: ")
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func orientationValue(v *bool) string {
	if v == nil {
		return ""
	}
	return orientation(v)
}
