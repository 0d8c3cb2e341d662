package handlers

import (
	"github.com/craftscrm/crm_backend/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the request validations that field tags
// cannot express. Called once at startup before routes are registered.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterStructValidation(dealTimesValidation, dto.CreateDealRequest{})
}

// dealTimesValidation rejects deal date ranges where the end precedes the start.
func dealTimesValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.CreateDealRequest)
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && req.EndTime.Before(req.StartTime) {
		sl.ReportError(req.EndTime, "endTime", "EndTime", "dealtimes", "")
	}
}
