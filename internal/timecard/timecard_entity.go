package timecard

// Timecard rows keep the original wire column names. startTime and endTime
// stay "YYYY-MM-DD HH:MM:SS" strings; the composite unique index backs up
// the one-card-per-day pre-check.
type Timecard struct {
	CardID    int64  `gorm:"column:cardID;primaryKey;autoIncrement"`
	EmpID     int64  `gorm:"column:empID;not null;uniqueIndex:uq_timecard_slot"`
	StartTime string `gorm:"column:startTime;size:19;not null;uniqueIndex:uq_timecard_slot"`
	EndTime   string `gorm:"column:endTime;size:19;not null"`
}

func (Timecard) TableName() string {
	return "timecard"
}
