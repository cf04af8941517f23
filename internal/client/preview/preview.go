// Package preview строит HTML страницу товара с баннером для просмотра до сохранения.
package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"
)

// FallbackBannerSrc изображение, если баннер еще не загружен
const FallbackBannerSrc = "https://images.unsplash.com/photo-1560472355-536de3962603?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=300&q=80"

//go:embed templates/product.html.tmpl
var templatesFS embed.FS

var productTemplate = template.Must(template.ParseFS(templatesFS, "templates/product.html.tmpl"))

// Draft данные баннера для превью
type Draft struct {
	IsVertical *bool  // nil - расположение не выбрано, баннер не показывается
	BannerSrc  string // data URL или адрес изображения
	Link       string
}

// page данные шаблона
type page struct {
	Src        template.URL
	Link       string
	Vertical   bool
	Horizontal bool
}

// Render возвращает HTML документ страницы товара с баннером
func Render(d Draft) (string, error) {
	p := page{
		Src:  bannerURL(d.BannerSrc),
		Link: d.Link,
	}
	if d.IsVertical != nil {
		p.Vertical = *d.IsVertical
		p.Horizontal = !*d.IsVertical
	}

	var buf bytes.Buffer
	if err := productTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}

// WriteFile сохраняет превью в файл для открытия в браузере
func WriteFile(path string, d Draft) error {
	html, err := Render(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0600); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

// bannerURL пропускает только изображения и http(s) адреса,
// остальное заменяется изображением-заглушкой
func bannerURL(src string) template.URL {
	src = strings.TrimSpace(src)
	lower := strings.ToLower(src)
	switch {
	case strings.HasPrefix(lower, "data:image/"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "http://"):
		return template.URL(src)
	default:
		return template.URL(FallbackBannerSrc)
	}
}
