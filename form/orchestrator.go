package form

import (
	"context"
	"errors"
	"strings"
	"time"
)

// State of the form as a whole.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

// ErrFormInvalid is returned by Submit when the field or group checks
// reject the submission client-side.
var ErrFormInvalid = errors.New("form has invalid fields")

// groupMessage is the product group rule's violation message.
const groupMessage = "Please select at least one product"

// Field is one input of the demo form.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool

	value string
}

// Checkbox is one entry of the interested-products group.
type Checkbox struct {
	Value   string
	Checked bool
}

// UI is the presentation surface the orchestrator drives. Implementations
// mark fields, move focus and toggle the result panels; they hold no
// validation logic of their own.
type UI interface {
	MarkFieldValid(name string)
	MarkFieldInvalid(name, message string)
	ClearFieldMark(name string)
	MarkGroupValid()
	MarkGroupInvalid(message string)
	ClearGroupMark()
	FocusField(name string)
	FocusGroup()
	UpdateCommentsCounter(state CounterState)
	SetSubmitting(on bool)
	ShowSuccess()
	ShowError(message string)
	HidePanels()
}

// Submitter sends a gathered payload to the backend.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) (*Receipt, error)
}

// Form orchestrates the demo-request form: it wires field events to the
// validator, holds the aggregate validity map, applies the product group
// rule and gates submission.
type Form struct {
	ui     UI
	client Submitter

	fields     []*Field
	index      map[string]*Field
	products   []*Checkbox
	groupIndex int

	verdicts map[string]Verdict
	state    State

	now func() time.Time
}

// New builds the demo-request form. products are the offered checkbox
// values in document order.
func New(ui UI, client Submitter, products []string) *Form {
	fields := []*Field{
		{Name: "fullName", Kind: FieldText, Required: true},
		{Name: "email", Kind: FieldEmail, Required: true},
		{Name: "phone", Kind: FieldPhone},
		{Name: "jobTitle", Kind: FieldText, Required: true},
		{Name: "organizationName", Kind: FieldText, Required: true},
		{Name: "industryType", Kind: FieldSelect, Required: true},
		{Name: "organizationSize", Kind: FieldSelect, Required: true},
		{Name: "country", Kind: FieldSelect, Required: true},
		// The interested-products group sits here in document order.
		{Name: "preferredDate", Kind: FieldDate},
		{Name: "preferredTime", Kind: FieldSelect},
		{Name: "comments", Kind: FieldTextarea},
	}

	f := &Form{
		ui:         ui,
		client:     client,
		fields:     fields,
		index:      make(map[string]*Field, len(fields)),
		groupIndex: 8,
		verdicts:   make(map[string]Verdict),
		state:      StateIdle,
		now:        time.Now,
	}
	for _, fld := range fields {
		f.index[fld.Name] = fld
	}
	for _, p := range products {
		f.products = append(f.products, &Checkbox{Value: p})
	}
	return f
}

// State returns the current form state.
func (f *Form) State() State {
	return f.state
}

// Value returns a field's current value.
func (f *Form) Value(name string) string {
	if fld, ok := f.index[name]; ok {
		return fld.value
	}
	return ""
}

// MinPreferredDate is the earliest selectable preferred date (today).
func (f *Form) MinPreferredDate() string {
	return f.now().Format("2006-01-02")
}

// HandleInput processes a keystroke in the named field and returns the
// value to display, which differs from the input for the auto-formatted
// phone field. A field currently marked invalid is re-validated live;
// otherwise feedback waits for blur.
func (f *Form) HandleInput(name, value string) string {
	f.rearm()

	fld, ok := f.index[name]
	if !ok {
		return value
	}

	if fld.Kind == FieldPhone {
		value = FormatPhone(value)
	}
	fld.value = value

	if fld.Name == "comments" {
		f.ui.UpdateCommentsCounter(CommentsCounter(value))
	}

	if v, seen := f.verdicts[name]; seen && !v.Valid {
		f.state = StateValidating
		f.validateField(fld)
		f.state = StateIdle
	}

	return value
}

// HandleBlur validates the named field when focus leaves it.
func (f *Form) HandleBlur(name string) Verdict {
	f.rearm()

	fld, ok := f.index[name]
	if !ok {
		return Verdict{Valid: true}
	}

	f.state = StateValidating
	v := f.validateField(fld)
	f.state = StateIdle
	return v
}

// ToggleProduct checks or unchecks one product. Checking any product
// clears a previous group violation.
func (f *Form) ToggleProduct(value string, checked bool) {
	f.rearm()

	for _, p := range f.products {
		if p.Value == value {
			p.Checked = checked
		}
	}

	if len(f.checkedProducts()) > 0 {
		f.ui.MarkGroupValid()
	}
}

// Submit runs the full gate and, when it passes, sends the payload.
// Returns ErrFormInvalid on a client-side rejection and the submission
// error on an API or transport failure.
func (f *Form) Submit(ctx context.Context) (*Receipt, error) {
	if f.state == StateSubmitting {
		return nil, errors.New("submission already in flight")
	}
	f.rearm()

	f.ui.HidePanels()

	f.state = StateValidating
	allValid := true
	firstInvalid := ""
	focusGroup := false

	for i, fld := range f.fields {
		if i == f.groupIndex && !f.validateGroup() {
			if allValid {
				focusGroup = true
			}
			allValid = false
		}
		if !f.validateField(fld).Valid {
			if allValid {
				firstInvalid = fld.Name
			}
			allValid = false
		}
	}

	if !allValid {
		f.state = StateIdle
		if focusGroup {
			f.ui.FocusGroup()
		} else {
			f.ui.FocusField(firstInvalid)
		}
		return nil, ErrFormInvalid
	}

	payload := f.payload()

	f.state = StateSubmitting
	f.ui.SetSubmitting(true)
	// The submit control always comes back, whatever the outcome.
	defer f.ui.SetSubmitting(false)

	receipt, err := f.client.Submit(ctx, payload)
	if err != nil {
		f.state = StateFailed
		f.ui.ShowError(err.Error())
		return nil, err
	}

	f.state = StateSucceeded
	f.reset()
	f.ui.ShowSuccess()
	return receipt, nil
}

// validateField runs the field validator and pushes the verdict to the UI.
func (f *Form) validateField(fld *Field) Verdict {
	v := Validate(fld.Kind, fld.Required, fld.value)
	f.verdicts[fld.Name] = v

	switch {
	case !v.Valid:
		f.ui.MarkFieldInvalid(fld.Name, v.Message)
	case strings.TrimSpace(fld.value) == "":
		f.ui.ClearFieldMark(fld.Name)
	default:
		f.ui.MarkFieldValid(fld.Name)
	}
	return v
}

// validateGroup applies the at-least-one-product rule.
func (f *Form) validateGroup() bool {
	if len(f.checkedProducts()) == 0 {
		f.ui.MarkGroupInvalid(groupMessage)
		return false
	}
	f.ui.MarkGroupValid()
	return true
}

func (f *Form) checkedProducts() []string {
	var checked []string
	for _, p := range f.products {
		if p.Checked {
			checked = append(checked, p.Value)
		}
	}
	return checked
}

// payload gathers the current values. Free-text fields are trimmed;
// selects, dates and enums are passed through as-is.
func (f *Form) payload() Payload {
	return Payload{
		FullName:           strings.TrimSpace(f.Value("fullName")),
		Email:              strings.TrimSpace(f.Value("email")),
		Phone:              strings.TrimSpace(f.Value("phone")),
		JobTitle:           strings.TrimSpace(f.Value("jobTitle")),
		OrganizationName:   strings.TrimSpace(f.Value("organizationName")),
		IndustryType:       f.Value("industryType"),
		OrganizationSize:   f.Value("organizationSize"),
		Country:            f.Value("country"),
		InterestedProducts: f.checkedProducts(),
		PreferredDate:      f.Value("preferredDate"),
		PreferredTime:      f.Value("preferredTime"),
		Comments:           strings.TrimSpace(f.Value("comments")),
		SubmittedAt:        f.now().UTC().Format(time.RFC3339),
	}
}

// rearm returns a settled form to Idle on the next user interaction.
func (f *Form) rearm() {
	if f.state == StateSucceeded || f.state == StateFailed {
		f.state = StateIdle
	}
}

// reset clears values, checkboxes, verdicts and field marks after a
// successful submission.
func (f *Form) reset() {
	for _, fld := range f.fields {
		fld.value = ""
		f.ui.ClearFieldMark(fld.Name)
	}
	for _, p := range f.products {
		p.Checked = false
	}
	f.ui.ClearGroupMark()
	f.verdicts = make(map[string]Verdict)
}
