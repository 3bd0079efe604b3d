package mailer

import (
	"context"
	"encoding/json"
	"time"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ferremax/portal/common"
	"github.com/ferremax/portal/logger"
	"github.com/ferremax/portal/secretmanager"
)

type SendGridConfig struct {
	APIKey       string `json:"api_key"`
	BaseURL      string `json:"base_url"`
	MailSendPath string `json:"mail_send_path"`

	// <cotizaciones@ferremax.cl>
	QuotationsEmail string `json:"quotations_email"`
	QuotationsName  string `json:"quotations_name"`
	// <rrhh@ferremax.cl>
	RecruitingEmail string `json:"recruiting_email"`
	RecruitingName  string `json:"recruiting_name"`

	// Dynamic templates IDs
	DynamicTemplates DynamicTemplates `json:"dynamic_templates"`
}

type DynamicTemplates struct {
	QuotationSent       string `json:"quotation_sent"`
	ApplicationReceived string `json:"application_received"`
}

const (
	CategoryQuotations  string = "quotations"
	CategoryRecruitment string = "recruitment"
)

// QuotationNotification : quotation sent template data
type QuotationNotification struct {
	Email      string
	Name       string
	Number     string
	VendorName string
	Total      common.Cents
	ValidUntil time.Time
	CCs        []string
}

// ApplicationReceivedNotification : application received template data
type ApplicationReceivedNotification struct {
	Email    string
	Name     string
	Position string
	Branch   string
}

//go:generate mockery --name Mailer --output ./mocks --outpkg mocks
type Mailer interface {
	SendQuotationNotification(ctx context.Context, qn *QuotationNotification) error
	SendApplicationReceivedNotification(ctx context.Context, an *ApplicationReceivedNotification) error
}

// Service sends transactional email through SendGrid dynamic templates.
type Service struct {
	loggerProvider logger.Provider
	config         SendGridConfig
}

// NewService loads the SendGrid configuration from Secret Manager.
func NewService(ctx context.Context, loggerProvider logger.Provider) (*Service, error) {
	secretData, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretSendgrid)
	if err != nil {
		return nil, err
	}

	var config SendGridConfig

	if err := json.Unmarshal(secretData, &config); err != nil {
		return nil, err
	}

	return &Service{
		loggerProvider: loggerProvider,
		config:         config,
	}, nil
}

// amountPrinter renders cent amounts in the Chilean-Spanish format the
// templates expect.
var amountPrinter = message.NewPrinter(language.EuropeanSpanish)

func formatAmount(amount common.Cents) string {
	return amountPrinter.Sprintf("$%.2f", amount.Float64())
}

// SendQuotationNotification emails the client a link to the sent quotation.
func (s *Service) SendQuotationNotification(ctx context.Context, qn *QuotationNotification) error {
	m := mail.NewV3Mail()
	m.SetTemplateID(s.config.DynamicTemplates.QuotationSent)
	m.SetFrom(mail.NewEmail(s.config.QuotationsName, s.config.QuotationsEmail))
	m.AddCategories(CategoryQuotations)

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(qn.Name, qn.Email))

	if len(qn.CCs) > 0 {
		ccs := make([]*mail.Email, 0)

		for _, cc := range qn.CCs {
			if cc != qn.Email {
				ccs = append(ccs, mail.NewEmail("", cc))
			}
		}

		if len(ccs) > 0 {
			personalization.AddCCs(ccs...)
		}
	}

	personalization.SetDynamicTemplateData("client_name", qn.Name)
	personalization.SetDynamicTemplateData("quotation_number", qn.Number)
	personalization.SetDynamicTemplateData("vendor_name", qn.VendorName)
	personalization.SetDynamicTemplateData("total", formatAmount(qn.Total))
	personalization.SetDynamicTemplateData("valid_until", qn.ValidUntil.Format("02-01-2006"))

	m.AddPersonalizations(personalization)

	return s.send(ctx, m)
}

// SendApplicationReceivedNotification confirms receipt of a job application.
func (s *Service) SendApplicationReceivedNotification(ctx context.Context, an *ApplicationReceivedNotification) error {
	m := mail.NewV3Mail()
	m.SetTemplateID(s.config.DynamicTemplates.ApplicationReceived)
	m.SetFrom(mail.NewEmail(s.config.RecruitingName, s.config.RecruitingEmail))
	m.AddCategories(CategoryRecruitment)

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(an.Name, an.Email))

	personalization.SetDynamicTemplateData("applicant_name", an.Name)
	personalization.SetDynamicTemplateData("position", an.Position)
	personalization.SetDynamicTemplateData("branch", an.Branch)

	m.AddPersonalizations(personalization)

	return s.send(ctx, m)
}

func (s *Service) send(ctx context.Context, m *mail.SGMailV3) error {
	l := s.loggerProvider(ctx)

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	// Outside production emails are accepted by SendGrid but not delivered.
	if !common.Production {
		m.MailSettings = mail.NewMailSettings().SetSandboxMode(mail.NewSetting(true))
	}

	request := sendgrid.GetRequest(s.config.APIKey, s.config.MailSendPath, s.config.BaseURL)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestRetryWithContext(ctx, request)
	if err != nil {
		return err
	}

	l.Infof("sendgrid response status %d", response.StatusCode)

	return nil
}
