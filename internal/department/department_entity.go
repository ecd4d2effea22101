package department

// Department rows keep the original wire column names. deptNum carries a
// unique index as the authoritative backstop for the application-level
// uniqueness pre-check.
type Department struct {
	DeptID   int64  `gorm:"column:deptID;primaryKey;autoIncrement"`
	CompName string `gorm:"column:compName;size:25;not null"`
	DeptName string `gorm:"column:deptName;size:255;not null"`
	DeptNum  string `gorm:"column:deptNum;size:20;not null;uniqueIndex:uq_department_dept_num"`
	DeptLoc  string `gorm:"column:deptLoc;size:255;not null"`
}

func (Department) TableName() string {
	return "department"
}
