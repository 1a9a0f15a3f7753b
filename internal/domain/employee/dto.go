package employee

// EmployeeResponse is the API shape of one directory entry
type EmployeeResponse struct {
	ID               string  `json:"id"`
	UnitID           string  `json:"unit_id"`
	UnitName         *string `json:"unit_name,omitempty"`
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	EmploymentStatus string  `json:"employment_status"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               emp.ID,
		UnitID:           emp.UnitID,
		UnitName:         emp.UnitName,
		EmployeeCode:     emp.EmployeeCode,
		FullName:         emp.FullName,
		EmploymentStatus: string(emp.EmploymentStatus),
	}
}
