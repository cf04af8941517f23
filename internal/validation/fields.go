package validation

// Field идентификатор поля формы.
// Набор полей фиксирован, каждому соответствует свое правило в Validate.
type Field string

const (
	FieldEmail             Field = "email"
	FieldPassword          Field = "password"
	FieldName              Field = "name"
	FieldLink              Field = "link"
	FieldBanner            Field = "banner" // MIME тип загружаемого файла
	FieldBannerOrientation Field = "isVertical"
	FieldCardNumber        Field = "cardNumber"
	FieldExpiryDate        Field = "expiryDate"
	FieldFirstName         Field = "firstName"
	FieldLastName          Field = "lastName"
	FieldAddress           Field = "address"
	FieldCity              Field = "city"
	FieldState             Field = "state"
	FieldZipCode           Field = "zipCode"
	FieldCountry           Field = "country"
)

// fieldOrder задает порядок вывода ошибок
var fieldOrder = []Field{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldLink,
	FieldBanner,
	FieldBannerOrientation,
	FieldCardNumber,
	FieldExpiryDate,
	FieldFirstName,
	FieldLastName,
	FieldAddress,
	FieldCity,
	FieldState,
	FieldZipCode,
	FieldCountry,
}

// Fields возвращает все известные поля в порядке отображения
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Label возвращает человекочитаемое название поля для промптов
func (f Field) Label() string {
	switch f {
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	case FieldName:
		return "Full name"
	case FieldLink:
		return "Link"
	case FieldBanner:
		return "Banner image"
	case FieldBannerOrientation:
		return "Banner location"
	case FieldCardNumber:
		return "Card Number"
	case FieldExpiryDate:
		return "Expiry Date (MM/YY)"
	case FieldFirstName:
		return "First Name"
	case FieldLastName:
		return "Last Name"
	case FieldAddress:
		return "Address"
	case FieldCity:
		return "City"
	case FieldState:
		return "State"
	case FieldZipCode:
		return "ZIP Code"
	case FieldCountry:
		return "Country"
	default:
		return string(f)
	}
}
