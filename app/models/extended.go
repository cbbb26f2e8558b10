package models

// DashboardStats aggregates the numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalStudents      int     `json:"total_students"`
	TotalCenters       int     `json:"total_centers"`
	TotalClasses       int     `json:"total_classes"`
	TotalCurriculums   int     `json:"total_curriculums"`
	TotalCollected     int64   `json:"total_collected"`
	TotalPending       int64   `json:"total_pending"`
	TodayAttendance    float64 `json:"today_attendance"`
	PendingReminders   int     `json:"pending_reminders"`
	StudentsFullyPaid  int     `json:"students_fully_paid"`
	StudentsWithDues   int     `json:"students_with_dues"`
}
