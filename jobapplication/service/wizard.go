package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/qmuntal/stateless"

	"github.com/ferremax/portal/jobapplication/domain"
)

// Wizard steps. The machine is strictly linear.
const (
	StepPersonalInfo = 1
	StepExperience   = 2
	StepEducation    = 3
	StepDocuments    = 4
	StepConfirmation = 5

	stateSubmitted = 6
)

const (
	triggerNext   = "next"
	triggerPrev   = "prev"
	triggerSubmit = "submit"
)

// stepFields maps each step to the form fields its gating predicate checks.
var stepFields = map[int][]string{
	StepPersonalInfo: {"FullName", "Email", "Phone", "City"},
	StepExperience:   {"YearsExperience", "AvailableFrom"},
	StepEducation:    {"Education", "Experience"},
	StepDocuments:    {"CoverLetter"},
	StepConfirmation: {"DataProcessingConsent", "BackgroundCheckConsent"},
}

// Wizard drives the five step application form. Forward navigation is gated
// on the current step's required fields; going back is always allowed. The
// accumulated form survives a failed submission so the applicant can retry.
type Wizard struct {
	service  ApplicationService
	form     *domain.FormState
	machine  *stateless.StateMachine
	validate *validator.Validate
}

func NewWizard(svc ApplicationService, name, email string) *Wizard {
	machine := stateless.NewStateMachine(StepPersonalInfo)

	for step := StepPersonalInfo; step <= StepConfirmation; step++ {
		cfg := machine.Configure(step)

		if step > StepPersonalInfo {
			cfg.Permit(triggerPrev, step-1)
		}

		if step < StepConfirmation {
			cfg.Permit(triggerNext, step+1)
		}
	}

	machine.Configure(StepConfirmation).Permit(triggerSubmit, stateSubmitted)

	return &Wizard{
		service:  svc,
		form:     domain.NewFormState(name, email),
		machine:  machine,
		validate: validator.New(),
	}
}

// Step returns the current 1-based step.
func (w *Wizard) Step() int {
	return w.machine.MustState().(int)
}

// Form exposes the accumulated state for field-level edits. Nil once the
// wizard has been submitted.
func (w *Wizard) Form() *domain.FormState {
	return w.form
}

// StepValidationError reports every unmet field of a wizard step so the form
// can highlight them all at once.
type StepValidationError struct {
	Step   int
	Fields map[string]string

	err *multierror.Error
}

func (e *StepValidationError) Error() string {
	return e.err.Error()
}

// validateStep runs only the given step's required-field checks.
func (w *Wizard) validateStep(step int) error {
	err := w.validate.StructPartial(w.form, stepFields[step]...)
	if err == nil {
		return nil
	}

	stepErr := &StepValidationError{
		Step:   step,
		Fields: make(map[string]string),
	}

	for _, fieldErr := range err.(validator.ValidationErrors) {
		stepErr.Fields[fieldErr.Field()] = fmt.Sprintf("failed on the %s rule", fieldErr.Tag())
		stepErr.err = multierror.Append(stepErr.err, fmt.Errorf("field %s failed on the %s rule", fieldErr.Field(), fieldErr.Tag()))
	}

	return stepErr
}

// Next advances to the following step if the current step's gating predicate
// holds. The returned error lists every unmet field.
func (w *Wizard) Next() error {
	if err := w.validateStep(w.Step()); err != nil {
		return err
	}

	return w.machine.Fire(triggerNext)
}

// Prev goes back one step. At the first step it is a no-op.
func (w *Wizard) Prev() error {
	if w.Step() == StepPersonalInfo {
		return nil
	}

	return w.machine.Fire(triggerPrev)
}

// Submit hands the accumulated form to the application service as one atomic
// snapshot. Only callable from the confirmation step with both consents
// given. On success the form is discarded; on failure it is kept so the
// applicant can retry without re-entering anything.
func (w *Wizard) Submit(ctx context.Context) (*domain.JobApplication, error) {
	if w.Step() != StepConfirmation {
		return nil, ErrNotAtFinalStep
	}

	if err := w.validateStep(StepConfirmation); err != nil {
		return nil, err
	}

	created, err := w.service.SubmitApplication(ctx, *w.form)
	if err != nil {
		return nil, err
	}

	if err := w.machine.Fire(triggerSubmit); err != nil {
		return nil, err
	}

	w.form = nil

	return created, nil
}
