package dto

// CreateTaskRequest defines data for creating a task.
type CreateTaskRequest struct {
	Name       string  `json:"name" binding:"required"`
	Duration   int     `json:"duration" binding:"required,min=1"`
	AssignedTo string  `json:"assignedTo" binding:"required,uuid"`
	CompanyID  *string `json:"companyID" binding:"omitempty,uuid"`
	IsActive   *bool   `json:"isActive"`
}

// UpdateTaskRequest is a partial update; nil fields are left unchanged.
type UpdateTaskRequest struct {
	Name       *string `json:"name"`
	Duration   *int    `json:"duration" binding:"omitempty,min=1"`
	AssignedTo *string `json:"assignedTo" binding:"omitempty,uuid"`
	CompanyID  *string `json:"companyID" binding:"omitempty,uuid"`
}
