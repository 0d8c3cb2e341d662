package dto

// CreateCompanyRequest defines data for creating a company.
type CreateCompanyRequest struct {
	Name           string `json:"name" binding:"required"`
	TaxNumber      string `json:"taxNumber"`
	Phone          string `json:"phone"`
	Email          string `json:"email" binding:"omitempty,email"`
	City           string `json:"city"`
	BillingAddress string `json:"billingAddress"`
	Country        string `json:"country"`
	PostalCode     string `json:"postalCode"`
	EmployeesSize  int    `json:"employeesSize" binding:"omitempty,min=0"`
	IsActive       *bool  `json:"isActive"` // defaults to true when omitted
}

// UpdateCompanyRequest is a partial update; nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name           *string `json:"name"`
	TaxNumber      *string `json:"taxNumber"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email" binding:"omitempty,email"`
	City           *string `json:"city"`
	BillingAddress *string `json:"billingAddress"`
	Country        *string `json:"country"`
	PostalCode     *string `json:"postalCode"`
	EmployeesSize  *int    `json:"employeesSize" binding:"omitempty,min=0"`
}
