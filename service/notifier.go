package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/labax/labax-server/config"
	"github.com/labax/labax-server/models"
	"github.com/labax/labax-server/utils"
)

// mailDialer is the subset of gomail.Dialer the notifier needs.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Notifier sends best-effort email notifications for new demo requests.
// A nil *Notifier is valid and means the email capability is not
// configured; all its methods are then no-ops.
type Notifier struct {
	dialer     mailDialer
	from       string
	adminEmail string
}

// NewNotifier builds a Notifier from config, or nil when the SMTP
// credentials are absent.
func NewNotifier(cfg *config.Config) *Notifier {
	if !cfg.EmailEnabled() {
		utils.Logger.Info().Msg("email credentials not configured, notifications disabled")
		return nil
	}

	return &Notifier{
		dialer:     gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass),
		from:       cfg.EmailUser,
		adminEmail: cfg.AdminEmail,
	}
}

// NotifySubmission sends the admin alert and then the user confirmation.
// The submission has already been persisted; failures here are logged and
// swallowed, never surfaced to the submitter.
func (n *Notifier) NotifySubmission(req *models.DemoRequest) {
	if n == nil {
		return
	}

	if err := n.sendAdminAlert(req); err != nil {
		utils.LogError(err, map[string]interface{}{"email": req.Email}, "admin notification failed")
	}
	if err := n.sendConfirmation(req); err != nil {
		utils.LogError(err, map[string]interface{}{"email": req.Email}, "confirmation email failed")
	}
}

func (n *Notifier) sendAdminAlert(req *models.DemoRequest) error {
	body, err := renderTemplate(adminAlertTemplate, newEmailData(req))
	if err != nil {
		return err
	}
	return n.send(n.adminEmail, fmt.Sprintf("New Demo Request from %s", req.FullName), body)
}

func (n *Notifier) sendConfirmation(req *models.DemoRequest) error {
	body, err := renderTemplate(confirmationTemplate, newEmailData(req))
	if err != nil {
		return err
	}
	return n.send(req.Email, "Thank You for Your Interest in LabAx", body)
}

func (n *Notifier) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return n.dialer.DialAndSend(m)
}

// emailData is the view model shared by both email templates.
type emailData struct {
	FullName         string
	Email            string
	Phone            string
	JobTitle         string
	OrganizationName string
	IndustryType     string
	OrganizationSize string
	Country          string
	Products         string
	PreferredDate    string
	PreferredTime    string
	Comments         string
	SubmittedAt      string
}

func newEmailData(req *models.DemoRequest) emailData {
	data := emailData{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            orFallback(req.Phone, "Not provided"),
		JobTitle:         req.JobTitle,
		OrganizationName: req.OrganizationName,
		IndustryType:     string(req.IndustryType),
		OrganizationSize: string(req.OrganizationSize),
		Country:          req.Country,
		Products:         strings.Join(req.InterestedProducts, ", "),
		PreferredDate:    "Not specified",
		PreferredTime:    orFallback(string(req.PreferredTime), "Not specified"),
		Comments:         orFallback(req.Comments, "None"),
		SubmittedAt:      req.SubmittedAt.Format(time.RFC1123),
	}
	if req.PreferredDate != nil {
		data.PreferredDate = req.PreferredDate.Format("January 2, 2006")
	}
	return data
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func renderTemplate(tmpl *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var adminAlertTemplate = template.Must(template.New("adminAlert").Parse(`
<h2>New Demo Request Received</h2>
<h3>Personal Information</h3>
<ul>
    <li><strong>Name:</strong> {{.FullName}}</li>
    <li><strong>Email:</strong> {{.Email}}</li>
    <li><strong>Phone:</strong> {{.Phone}}</li>
    <li><strong>Job Title:</strong> {{.JobTitle}}</li>
</ul>
<h3>Organization Details</h3>
<ul>
    <li><strong>Organization:</strong> {{.OrganizationName}}</li>
    <li><strong>Industry:</strong> {{.IndustryType}}</li>
    <li><strong>Size:</strong> {{.OrganizationSize}}</li>
    <li><strong>Country:</strong> {{.Country}}</li>
</ul>
<h3>Demo Preferences</h3>
<ul>
    <li><strong>Interested Products:</strong> {{.Products}}</li>
    <li><strong>Preferred Date:</strong> {{.PreferredDate}}</li>
    <li><strong>Preferred Time:</strong> {{.PreferredTime}}</li>
    <li><strong>Comments:</strong> {{.Comments}}</li>
</ul>
<p><em>Submitted at: {{.SubmittedAt}}</em></p>
`))

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<h2>Thank You for Requesting a Demo!</h2>
<p>Dear {{.FullName}},</p>
<p>We have received your demo request for LabAx. Our team will review your information and contact you within 24 hours to schedule a personalized demonstration.</p>
<h3>Your Request Details:</h3>
<ul>
    <li><strong>Organization:</strong> {{.OrganizationName}}</li>
    <li><strong>Interested Products:</strong> {{.Products}}</li>
</ul>
<p>In the meantime, feel free to explore our website or contact us at <a href="mailto:sales@thelabax.com">sales@thelabax.com</a> if you have any questions.</p>
<p>Best regards,<br>The LabAx Team</p>
`))
