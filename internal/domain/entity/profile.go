package entity

import "time"

// EmployeeProfile is the optional enrichment resolved from the remote employee record.
type EmployeeProfile struct {
	EmployeeID     int64
	Name           string
	LastName       string
	JobID          int64
	JobName        string
	DepartmentID   int64
	DepartmentName string
}

// RemoteSession is the result of a successful remote login.
type RemoteSession struct {
	UserID      int64
	SessionID   string
	UserContext map[string]any
}

// LoginResult is the payload returned to a client after authentication.
// Its JSON form is what the session cache stores.
type LoginResult struct {
	Access         string         `json:"access"`
	Refresh        string         `json:"refresh"`
	SessionID      string         `json:"session_id"`
	UserID         int64          `json:"user_id"`
	EmployeeID     *int64         `json:"employee_id"`
	Name           string         `json:"name"`
	LastName       string         `json:"last_name"`
	JobID          *int64         `json:"job_id"`
	JobName        string         `json:"job_name"`
	DepartmentID   *int64         `json:"department_id"`
	DepartmentName string         `json:"department_name"`
	UserContext    map[string]any `json:"user_context"`
	DB             string         `json:"db"`
	ExpiresAt      time.Time      `json:"expires_at"`
	Success        bool           `json:"success"`
}

// ApplyProfile copies the profile fields onto the result.
func (r *LoginResult) ApplyProfile(p *EmployeeProfile) {
	if p == nil {
		return
	}

	r.EmployeeID = &p.EmployeeID
	r.Name = p.Name
	r.LastName = p.LastName
	if p.JobID != 0 {
		r.JobID = &p.JobID
		r.JobName = p.JobName
	}
	if p.DepartmentID != 0 {
		r.DepartmentID = &p.DepartmentID
		r.DepartmentName = p.DepartmentName
	}
}
