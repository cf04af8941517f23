package api

// Company представляет компанию в административном списке
type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	AdsCount int    `json:"adsCount"`
	Blocked  bool   `json:"blocked"`
}

// GetID возвращает идентификатор компании
func (c Company) GetID() string { return c.ID }

// CompanyListResponse представляет ответ на GET /company
type CompanyListResponse struct {
	CompanyList []Company `json:"companyList"`
}
