// Package messages defines the flash-message catalog keys emitted by write
// endpoints. Handlers respond with keys, never resolved text; the presentation
// layer owns localization.
package messages

// Success keys.
const (
	CompanyStore  = "messages.company_store"
	CompanyUpdate = "messages.company_update"
	CompanyDelete = "messages.company_delete"

	DealStore      = "messages.deal_store"
	DealUpdate     = "messages.deal_update"
	DealDelete     = "messages.deal_delete"
	DealTermStore  = "messages.deal_term_store"
	DealTermDelete = "messages.deal_term_delete"

	FinanceStore  = "messages.finance_store"
	FinanceUpdate = "messages.finance_update"
	FinanceDelete = "messages.finance_delete"

	SaleStore  = "messages.sale_store"
	SaleUpdate = "messages.sale_update"
	SaleDelete = "messages.sale_delete"

	ProductStore  = "messages.product_store"
	ProductUpdate = "messages.product_update"
	ProductDelete = "messages.product_delete"

	TaskStore  = "messages.task_store"
	TaskUpdate = "messages.task_update"
	TaskDelete = "messages.task_delete"

	SettingsUpdate = "messages.settings_update"
)

// Error keys.
const (
	DealFirstDeleteTerm     = "messages.deal_first_delete_deal_term"
	CompanyFirstDeleteDeals = "messages.company_first_delete_deals"
	ProductFirstDeleteSales = "messages.product_first_delete_sales"

	RecordNotFound  = "messages.record_not_found"
	InvalidInput    = "messages.invalid_input"
	DuplicateRecord = "messages.duplicate_record"
	GenericError    = "messages.generic_error"
)

// catalog holds the English fallback text per key. The presentation layer
// normally resolves keys from its own locale files; this table keeps keys
// typo-checked and gives Resolve something to return for diagnostics.
var catalog = map[string]string{
	CompanyStore:  "Company has been added.",
	CompanyUpdate: "Company has been updated.",
	CompanyDelete: "Company has been deleted.",

	DealStore:      "Deal has been added.",
	DealUpdate:     "Deal has been updated.",
	DealDelete:     "Deal has been deleted.",
	DealTermStore:  "Deal term has been added.",
	DealTermDelete: "Deal term has been deleted.",

	FinanceStore:  "Finance record has been added.",
	FinanceUpdate: "Finance record has been updated.",
	FinanceDelete: "Finance record has been deleted.",

	SaleStore:  "Sale has been added.",
	SaleUpdate: "Sale has been updated.",
	SaleDelete: "Sale has been deleted.",

	ProductStore:  "Product has been added.",
	ProductUpdate: "Product has been updated.",
	ProductDelete: "Product has been deleted.",

	TaskStore:  "Task has been added.",
	TaskUpdate: "Task has been updated.",
	TaskDelete: "Task has been deleted.",

	SettingsUpdate: "Settings have been saved.",

	DealFirstDeleteTerm:     "Delete the deal's terms before deleting the deal.",
	CompanyFirstDeleteDeals: "Delete the company's deals before deleting the company.",
	ProductFirstDeleteSales: "Delete the product's sales before deleting the product.",

	RecordNotFound:  "The requested record no longer exists.",
	InvalidInput:    "The submitted data is invalid.",
	DuplicateRecord: "A record with the same identity already exists.",
	GenericError:    "Something went wrong. Please try again.",
}

// Resolve returns the English fallback text for a key, and whether the key is
// part of the catalog.
func Resolve(key string) (string, bool) {
	text, ok := catalog[key]
	return text, ok
}
