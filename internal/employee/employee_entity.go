package employee

// Employee rows keep the original wire column names. A deptID of 0 marks an
// employee whose department was deleted. hireDate stays a plain date string;
// all temporal reasoning happens in the validation pipeline before anything
// is stored.
type Employee struct {
	EmpID    int64   `gorm:"column:empID;primaryKey;autoIncrement"`
	DeptID   int64   `gorm:"column:deptID;not null"`
	EmpName  string  `gorm:"column:empName;size:50;not null"`
	EmpNum   string  `gorm:"column:empNum;size:20;not null;uniqueIndex:uq_employee_emp_num"`
	HireDate string  `gorm:"column:hireDate;size:10;not null"`
	JobPos   string  `gorm:"column:jobPos;size:30;not null"`
	Salary   float64 `gorm:"column:salary;not null"`
	MngID    int64   `gorm:"column:mngID;not null"`
}

func (Employee) TableName() string {
	return "employee"
}
