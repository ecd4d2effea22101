// Package messages is the catalog of every user-facing string the service
// emits. Clients of the original API match on these exact messages, so the
// wording is load-bearing.
package messages

import "fmt"

// CompanyDeleted confirms a whole-company deletion.
func CompanyDeleted(compName string) string {
	return fmt.Sprintf("Company %s's information deleted.", compName)
}

// SchemaError wraps a schema-level reason, e.g. "'compName' is required".
func SchemaError(reason string) string {
	return fmt.Sprintf("Value for %s.", reason)
}

// DepartmentSearchResult reports the outcome of a department lookup or
// deletion; outcome is "not found" or "deleted".
func DepartmentSearchResult(deptID int64, compName, outcome string) string {
	return fmt.Sprintf("Department #%d, from %s, was %s.", deptID, compName, outcome)
}

// NoEmployeesFound reports an empty employee listing for a company.
func NoEmployeesFound(compName string) string {
	return fmt.Sprintf("No employees have been found for %s.", compName)
}

// RecordDeleted confirms an employee or timecard deletion.
func RecordDeleted(table string, id int64) string {
	return fmt.Sprintf("Record for %s #%d deleted.", table, id)
}

// NoTimecardsFound reports an empty timecard listing for an employee.
func NoTimecardsFound(empID int64) string {
	return fmt.Sprintf("No timecards have been found for the employee with the id #%d.", empID)
}

// DoesNotExist reports a failed existence check on a column.
func DoesNotExist(column string) string {
	return fmt.Sprintf("Value for '%s' does not exist.", column)
}

// NotValid reports a failed semantic check; kind is "unique" or "valid".
func NotValid(column, kind string) string {
	return fmt.Sprintf("Value for '%s' is not %s.", column, kind)
}

// WrongFormat reports a failed character-class or pattern check.
func WrongFormat(column string) string {
	return fmt.Sprintf("Value for '%s' is of the wrong format.", column)
}

// CannotBeEmpty reports a blank supplied field.
func CannotBeEmpty(column string) string {
	return fmt.Sprintf("Value for '%s' cannot be empty.", column)
}

// NotPositive reports a non-positive numeric field.
func NotPositive(column string) string {
	return fmt.Sprintf("Value for '%s' cannot be lower, nor equal to zero.", column)
}
