package employee

type UpdateEmployeeRequest struct {
	Emp map[string]any `json:"emp" binding:"required"`
}

type EmployeeResponse struct {
	EmpID    int64   `json:"empID"`
	DeptID   int64   `json:"deptID"`
	EmpName  string  `json:"empName"`
	EmpNum   string  `json:"empNum"`
	HireDate string  `json:"hireDate"`
	JobPos   string  `json:"jobPos"`
	Salary   float64 `json:"salary"`
	MngID    int64   `json:"mngID"`
}
