package domain

// Task represents a unit of work assigned to a user, optionally tied to a company.
type Task struct {
	TaskID     string  `json:"taskID" db:"task_id"`
	Name       string  `json:"name" db:"name"`
	Duration   int     `json:"duration" db:"duration"` // planned duration in days
	AssignedTo string  `json:"assignedTo" db:"assigned_to"`
	CompanyID  *string `json:"companyID,omitempty" db:"company_id"` // nullable
	IsActive   bool    `json:"isActive" db:"is_active"`
	AuditFields
}
