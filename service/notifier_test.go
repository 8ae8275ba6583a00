package service

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/labax/labax-server/config"
	"github.com/labax/labax-server/models"
	"github.com/labax/labax-server/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger("test")
	os.Exit(m.Run())
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func sampleRequest() *models.DemoRequest {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	return &models.DemoRequest{
		FullName:           "Jo Smith",
		Email:              "jo@example.com",
		JobTitle:           "QA Lead",
		OrganizationName:   "Acme Labs",
		IndustryType:       models.IndustryAcademic,
		OrganizationSize:   models.OrgSize1To10,
		Country:            "US",
		InterestedProducts: []string{"LIMS", "ELN"},
		PreferredDate:      &date,
		PreferredTime:      models.TimeMorning,
		SubmittedAt:        time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
		Status:             models.StatusPending,
	}
}

func TestNewNotifierWithoutCredentials(t *testing.T) {
	cfg := &config.Config{}
	assert.Nil(t, NewNotifier(cfg))

	cfg = &config.Config{EmailHost: "smtp.example.com"}
	assert.Nil(t, NewNotifier(cfg), "partial credentials keep email disabled")
}

func TestNilNotifierIsNoOp(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, func() {
		n.NotifySubmission(sampleRequest())
	})
}

func TestNotifySubmissionSendsAdminThenConfirmation(t *testing.T) {
	dialer := &fakeDialer{}
	n := &Notifier{dialer: dialer, from: "noreply@thelabax.com", adminEmail: "sales@thelabax.com"}

	n.NotifySubmission(sampleRequest())

	require.Len(t, dialer.sent, 2)

	admin := dialer.sent[0]
	assert.Equal(t, []string{"sales@thelabax.com"}, admin.GetHeader("To"))
	assert.Equal(t, []string{"New Demo Request from Jo Smith"}, admin.GetHeader("Subject"))

	confirmation := dialer.sent[1]
	assert.Equal(t, []string{"jo@example.com"}, confirmation.GetHeader("To"))
	assert.Equal(t, []string{"Thank You for Your Interest in LabAx"}, confirmation.GetHeader("Subject"))
}

func TestNotifySubmissionSwallowsSendFailures(t *testing.T) {
	dialer := &fakeDialer{err: fmt.Errorf("smtp unavailable")}
	n := &Notifier{dialer: dialer, from: "noreply@thelabax.com", adminEmail: "sales@thelabax.com"}

	assert.NotPanics(t, func() {
		n.NotifySubmission(sampleRequest())
	})
}

func TestEmailDataFallbacks(t *testing.T) {
	req := sampleRequest()
	req.Phone = ""
	req.Comments = ""
	req.PreferredDate = nil
	req.PreferredTime = models.TimeNone

	data := newEmailData(req)
	assert.Equal(t, "Not provided", data.Phone)
	assert.Equal(t, "None", data.Comments)
	assert.Equal(t, "Not specified", data.PreferredDate)
	assert.Equal(t, "Not specified", data.PreferredTime)
	assert.Equal(t, "LIMS, ELN", data.Products)
}
