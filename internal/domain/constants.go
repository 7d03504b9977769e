package domain

// AllowedDurations допустимые длительности услуг в минутах
var AllowedDurations = []int{15, 30, 60}

// Business validation constants
const (
	MaxServiceNameLength = 100
	MaxStaffNameLength   = 100
	MaxBlockReasonLength = 500
	MinDayOfWeek         = 0
	MaxDayOfWeek         = 6
)

// DateFormat формат даты в query-параметрах (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// PhoneBookingCustomerName имя клиента для бронирований, созданных по телефону
const PhoneBookingCustomerName = "Telefonbokning"

// WeekdayNames названия дней недели, индекс 0 = понедельник
var WeekdayNames = [7]string{
	"Måndag",
	"Tisdag",
	"Onsdag",
	"Torsdag",
	"Fredag",
	"Lördag",
	"Söndag",
}
