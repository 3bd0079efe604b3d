package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ferremax/portal/jobapplication/domain"
	"github.com/ferremax/portal/jobapplication/service/mocks"
)

func fillStep1(w *Wizard) {
	w.Form().FullName = "Camila Herrera"
	w.Form().Email = "camila.herrera@gmail.com"
	w.Form().Phone = "+56 9 1234 5678"
	w.Form().City = "Valparaíso"
}

func fillStep2(w *Wizard) {
	w.Form().Position = "Vendedor de salón"
	w.Form().Branch = "Valparaíso Centro"
	w.Form().YearsExperience = "3-5"
	w.Form().AvailableFrom = "2026-10-01"
}

func fillStep3(w *Wizard) {
	w.Form().Education = "media-completa"
	w.Form().Experience = "5 años atendiendo clientes en retail de construcción."
}

func fillStep4(w *Wizard) {
	w.Form().CoverLetter = "Estimados, me interesa el cargo."
}

func wizardAtStep5(t *testing.T, svc ApplicationService) *Wizard {
	w := NewWizard(svc, "", "")

	fillStep1(w)
	assert.NoError(t, w.Next())
	fillStep2(w)
	assert.NoError(t, w.Next())
	fillStep3(w)
	assert.NoError(t, w.Next())
	fillStep4(w)
	assert.NoError(t, w.Next())

	assert.Equal(t, StepConfirmation, w.Step())

	return w
}

func TestWizardPrefillsActorIdentity(t *testing.T) {
	w := NewWizard(&mocks.ApplicationService{}, "Camila Herrera", "camila.herrera@gmail.com")

	assert.Equal(t, "Camila Herrera", w.Form().FullName)
	assert.Equal(t, "camila.herrera@gmail.com", w.Form().Email)
	assert.Equal(t, StepPersonalInfo, w.Step())
}

func TestWizardGatesOnEmptyFullName(t *testing.T) {
	w := NewWizard(&mocks.ApplicationService{}, "", "")

	w.Form().Email = "camila.herrera@gmail.com"
	w.Form().Phone = "+56 9 1234 5678"
	w.Form().City = "Valparaíso"

	err := w.Next()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FullName")
	assert.Equal(t, StepPersonalInfo, w.Step())

	w.Form().FullName = "Camila Herrera"
	assert.NoError(t, w.Next())
	assert.Equal(t, StepExperience, w.Step())
}

func TestWizardCollectsAllMissingFields(t *testing.T) {
	w := NewWizard(&mocks.ApplicationService{}, "", "")

	err := w.Next()
	assert.Error(t, err)

	for _, field := range []string{"FullName", "Email", "Phone", "City"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestWizardPrevAlwaysAllowed(t *testing.T) {
	w := NewWizard(&mocks.ApplicationService{}, "", "")

	// Going back from the first step stays on the first step.
	assert.NoError(t, w.Prev())
	assert.Equal(t, StepPersonalInfo, w.Step())

	fillStep1(w)
	assert.NoError(t, w.Next())
	assert.NoError(t, w.Prev())
	assert.Equal(t, StepPersonalInfo, w.Step())
}

func TestWizardSkillsDedupe(t *testing.T) {
	w := NewWizard(&mocks.ApplicationService{}, "", "")

	w.Form().AddSkill("Ventas")
	w.Form().AddSkill("Ventas")
	w.Form().AddSkill("")
	w.Form().AddSkill("ventas")

	// Matching is case sensitive, "ventas" is a distinct tag.
	assert.Equal(t, []string{"Ventas", "ventas"}, w.Form().Skills)

	w.Form().RemoveSkill("Ventas")
	assert.Equal(t, []string{"ventas"}, w.Form().Skills)

	w.Form().RemoveSkill("Bodega")
	assert.Equal(t, []string{"ventas"}, w.Form().Skills)
}

func TestWizardSubmitRequiresBothConsents(t *testing.T) {
	svc := mocks.ApplicationService{}
	w := wizardAtStep5(t, &svc)

	w.Form().DataProcessingConsent = true

	_, err := w.Submit(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "BackgroundCheckConsent")

	// The submission handler must not have been invoked.
	svc.AssertNotCalled(t, "SubmitApplication")
}

func TestWizardSubmitOnlyFromFinalStep(t *testing.T) {
	svc := mocks.ApplicationService{}
	w := NewWizard(&svc, "", "")

	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotAtFinalStep)
	svc.AssertNotCalled(t, "SubmitApplication")
}

func TestWizardSubmitDiscardsFormOnSuccess(t *testing.T) {
	ctx := context.Background()

	svc := mocks.ApplicationService{}
	svc.On("SubmitApplication", ctx, mock.AnythingOfType("domain.FormState")).
		Return(&domain.JobApplication{ID: "app-1", Status: domain.StatusReceived}, nil).
		Once()

	w := wizardAtStep5(t, &svc)
	w.Form().DataProcessingConsent = true
	w.Form().BackgroundCheckConsent = true

	created, err := w.Submit(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "app-1", created.ID)
	assert.Nil(t, w.Form())

	svc.AssertExpectations(t)
}

func TestWizardSubmitFailureKeepsForm(t *testing.T) {
	ctx := context.Background()

	svc := mocks.ApplicationService{}
	svc.On("SubmitApplication", ctx, mock.AnythingOfType("domain.FormState")).
		Return(nil, errors.New("firestore unavailable")).
		Once()

	w := wizardAtStep5(t, &svc)
	w.Form().DataProcessingConsent = true
	w.Form().BackgroundCheckConsent = true

	_, err := w.Submit(ctx)
	assert.EqualError(t, err, "firestore unavailable")

	// Everything the applicant typed is still there for a retry.
	assert.NotNil(t, w.Form())
	assert.Equal(t, "Camila Herrera", w.Form().FullName)
	assert.Equal(t, StepConfirmation, w.Step())

	svc.AssertExpectations(t)
}
