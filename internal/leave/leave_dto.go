package leave

type BalanceResponse struct {
	EmployeeID            string `json:"employee_id"`
	Year                  int    `json:"year"`
	CasualRemaining       int    `json:"casual_remaining"`
	SickRemaining         int    `json:"sick_remaining"`
	UnpaidDaysAccumulated int    `json:"unpaid_days_accumulated"`
}
