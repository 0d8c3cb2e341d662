package domain

// Company represents a client company managed in the CRM.
type Company struct {
	CompanyID     string `json:"companyID" db:"company_id"`
	Name          string `json:"name" db:"name"`
	TaxNumber     string `json:"taxNumber" db:"tax_number"`
	Phone         string `json:"phone" db:"phone"`
	Email         string `json:"email" db:"email"`
	City          string `json:"city" db:"city"`
	BillingAddress string `json:"billingAddress" db:"billing_address"`
	Country       string `json:"country" db:"country"`
	PostalCode    string `json:"postalCode" db:"postal_code"`
	EmployeesSize int    `json:"employeesSize" db:"employees_size"`
	IsActive      bool   `json:"isActive" db:"is_active"`
	AuditFields
}
