package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ferremax/portal/framework/web"
	"github.com/ferremax/portal/logger"
	loggerMocks "github.com/ferremax/portal/logger/mocks"

	"github.com/ferremax/portal/jobapplication/domain"
	"github.com/ferremax/portal/jobapplication/service/mocks"
)

func completeForm() domain.FormState {
	return domain.FormState{
		FullName:               "Camila Herrera",
		Email:                  "camila.herrera@gmail.com",
		Phone:                  "+56 9 1234 5678",
		City:                   "Valparaíso",
		YearsExperience:        "3-5",
		AvailableFrom:          "2026-10-01",
		Education:              "media-completa",
		Experience:             "5 años en retail",
		CoverLetter:            "Estimados",
		DataProcessingConsent:  true,
		BackgroundCheckConsent: true,
	}
}

func TestJobApplicationHandler_CreateApplication(t *testing.T) {
	tests := []struct {
		name       string
		form       domain.FormState
		on         func(svc *mocks.ApplicationService)
		wantErr    bool
		wantFields []string
	}{
		{
			name: "complete form is submitted",
			form: completeForm(),
			on: func(svc *mocks.ApplicationService) {
				svc.On("SubmitApplication", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("domain.FormState")).
					Return(&domain.JobApplication{ID: "app-1", Status: domain.StatusReceived}, nil).
					Once()
			},
		},
		{
			name: "duplicate and empty skills collapse to an ordered set",
			form: func() domain.FormState {
				f := completeForm()
				f.Skills = []string{"Ventas", "", "Ventas", "Bodega"}
				return f
			}(),
			on: func(svc *mocks.ApplicationService) {
				svc.On("SubmitApplication", mock.AnythingOfType("*gin.Context"), mock.MatchedBy(func(form domain.FormState) bool {
					return assert.ObjectsAreEqual([]string{"Ventas", "Bodega"}, form.Skills)
				})).
					Return(&domain.JobApplication{ID: "app-2", Status: domain.StatusReceived}, nil).
					Once()
			},
		},
		{
			name: "missing personal info blocks at step one",
			form: func() domain.FormState {
				f := completeForm()
				f.FullName = ""
				return f
			}(),
			wantErr:    true,
			wantFields: []string{"FullName"},
		},
		{
			name: "missing consents block the submission",
			form: func() domain.FormState {
				f := completeForm()
				f.DataProcessingConsent = false
				f.BackgroundCheckConsent = false
				return f
			}(),
			wantErr:    true,
			wantFields: []string{"DataProcessingConsent", "BackgroundCheckConsent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			svc := mocks.ApplicationService{}

			h := &JobApplication{
				loggerProvider: func(ctx context.Context) logger.ILogger {
					return &loggerMocks.ILogger{}
				},
				service: &svc,
			}

			if tt.on != nil {
				tt.on(&svc)
			}

			bodyStr, err := json.Marshal(tt.form)
			if err != nil {
				t.Error(err)
			}

			request := httptest.NewRequest(http.MethodPost, "/api/v1/careers/applications", strings.NewReader(string(bodyStr)))
			request.Header.Set("Content-Type", "application/json")
			ctx.Request = request

			response := h.CreateApplication(ctx)

			if (response != nil) != tt.wantErr {
				t.Errorf("JobApplication.CreateApplication() error = %v, wantErr %v", response, tt.wantErr)
			}

			if tt.wantErr {
				// Gating failures never reach the submission handler and
				// carry the unmet fields for inline display.
				svc.AssertNotCalled(t, "SubmitApplication")

				var webErr *web.Error
				assert.ErrorAs(t, response, &webErr)
				assert.Equal(t, http.StatusBadRequest, webErr.Status)

				for _, field := range tt.wantFields {
					assert.Contains(t, webErr.Fields, field)
				}
			}

			svc.AssertExpectations(t)
		})
	}
}
