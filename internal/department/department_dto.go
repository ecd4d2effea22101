package department

// UpdateDepartmentRequest is the PUT body; the entity fields arrive wrapped
// under "dept" and stay a raw map so partial updates keep only the supplied
// keys.
type UpdateDepartmentRequest struct {
	Dept map[string]any `json:"dept" binding:"required"`
}

type DepartmentResponse struct {
	DeptID   int64  `json:"deptID"`
	CompName string `json:"compName"`
	DeptName string `json:"deptName"`
	DeptNum  string `json:"deptNum"`
	DeptLoc  string `json:"deptLoc"`
}
