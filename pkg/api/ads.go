package api

// Views счетчики показов баннера
type Views struct {
	TotalViews int64 `json:"totalViews"`
	TodayViews int64 `json:"todayViews"`
}

// Ad представляет рекламный баннер компании
type Ad struct {
	IsVertical *bool  `json:"isVertical"` // nil - расположение не выбрано
	ID         string `json:"id"`
	Banner     string `json:"banner"`     // data URL или URL изображения
	BannerType string `json:"bannerType"` // image | video
	Link       string `json:"link"`
	Views      Views  `json:"views"`
	IsShown    bool   `json:"isShown"`
}

// GetID возвращает идентификатор баннера
func (a Ad) GetID() string { return a.ID }

// AdsResponse представляет ответ на GET /ads и GET /company/:id/ads
type AdsResponse struct {
	Ads []Ad `json:"ads"`
}

// BannerUpload изображение баннера, закодированное в data URL
type BannerUpload struct {
	Base64 string `json:"base64"`
	Type   string `json:"type"`
}

// AdSubmitRequest представляет запрос POST /ads/submit.
// Один и тот же endpoint используется для сохранения баннера целиком
// и для переключения видимости ({id, isShown}).
type AdSubmitRequest struct {
	Banner     *BannerUpload `json:"banner,omitempty"`
	IsVertical *bool         `json:"isVertical,omitempty"`
	IsShown    *bool         `json:"isShown,omitempty"`
	ID         string        `json:"id,omitempty"`
	Link       string        `json:"link,omitempty"`
}
