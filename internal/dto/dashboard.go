package dto

type DashboardDTO struct {
	TotalUnits         int `json:"total_units"`
	TotalWorkshops     int `json:"total_workshops"`
	TotalExtinguishers int `json:"total_extinguishers"`
	DueSoon            int `json:"due_soon"`
}

// NotificationDTO is one row of the due-soon list: an extinguisher with a
// scheduled inspection inside the window, annotated with its parents.
type NotificationDTO struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	When         string `json:"when"`
	DiffDays     int    `json:"diff_days"`
	WorkshopName string `json:"workshop_name"`
	UnitName     string `json:"unit_name"`
}
