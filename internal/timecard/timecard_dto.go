package timecard

type UpdateTimecardRequest struct {
	Card map[string]any `json:"card" binding:"required"`
}

type TimecardResponse struct {
	CardID    int64  `json:"cardID"`
	EmpID     int64  `json:"empID"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
