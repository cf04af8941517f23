package ads

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

// MaxBannerSize ограничение размера файла баннера
const MaxBannerSize = 10 << 20

// LoadBanner читает файл баннера и кодирует его в data URL.
// Тип определяется по содержимому, проверка на изображение выполняется при отправке.
func LoadBanner(path string) (*pkgapi.BannerUpload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read banner: %w", err)
	}
	if info.Size() > MaxBannerSize {
		return nil, fmt.Errorf("banner file is too large: %d bytes", info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read banner: %w", err)
	}

	mime := mimetype.Detect(data).String()
	return &pkgapi.BannerUpload{
		Base64: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		Type:   mime,
	}, nil
}

// isDataURL отличает загруженный локально баннер от адреса, полученного с сервера
func isDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}
