package calendar

type HolidayResponse struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Category string `json:"category"`
}
