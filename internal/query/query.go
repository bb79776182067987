package query

import (
	"errors"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

// User-facing validation messages.
const (
	MsgDateFormat = "Invalid date format. Please use YYYY-MM-DD."
	MsgNoItems    = "Please select at least one item."
	MsgGrouping   = "Invalid grouping. Use none, month or year."
	MsgDateOrder  = "Start date must be on or before end date."
)

// Request is a query exactly as entered by the user.
type Request struct {
	Items    []string `validate:"required,min=1,dive,required"`
	Start    string   `validate:"required,datetime=2006-01-02"`
	End      string   `validate:"required,datetime=2006-01-02"`
	Grouping string   `validate:"omitempty,oneof=none daily month monthly month-wise year yearly year-wise"`
}

// ValidationError is a rejected request with a message for the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// Validator checks requests and converts them to queries.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Build validates req and returns the equivalent Query. Items are trimmed and
// blank items ignored. Validation failures are returned as ValidationError.
func (v *Validator) Build(req Request) (model.Query, error) {
	req = clean(req)
	if err := v.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return model.Query{}, toValidationError(verrs[0])
		}
		return model.Query{}, err
	}

	start, err := civil.ParseDate(req.Start)
	if err != nil {
		return model.Query{}, ValidationError{Field: "Start", Message: MsgDateFormat}
	}
	end, err := civil.ParseDate(req.End)
	if err != nil {
		return model.Query{}, ValidationError{Field: "End", Message: MsgDateFormat}
	}
	if start.After(end) {
		return model.Query{}, ValidationError{Field: "Start", Message: MsgDateOrder}
	}

	grouping, err := model.ParseGrouping(req.Grouping)
	if err != nil {
		return model.Query{}, ValidationError{Field: "Grouping", Message: MsgGrouping}
	}

	return model.Query{
		Descriptions: req.Items,
		Start:        start,
		End:          end,
		Grouping:     grouping,
	}, nil
}

func clean(req Request) Request {
	var items []string
	for _, it := range req.Items {
		if it = strings.TrimSpace(it); it != "" {
			items = append(items, it)
		}
	}
	return Request{
		Items:    items,
		Start:    strings.TrimSpace(req.Start),
		End:      strings.TrimSpace(req.End),
		Grouping: strings.ToLower(strings.TrimSpace(req.Grouping)),
	}
}

func toValidationError(fe validator.FieldError) ValidationError {
	switch fe.StructField() {
	case "Items":
		return ValidationError{Field: "Items", Message: MsgNoItems}
	case "Grouping":
		return ValidationError{Field: "Grouping", Message: MsgGrouping}
	default:
		return ValidationError{Field: fe.StructField(), Message: MsgDateFormat}
	}
}
