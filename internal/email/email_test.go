package email

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSender struct {
	sent []Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg Message) error {
	r.sent = append(r.sent, msg)
	return r.err
}

func sampleContact() ContactEmail {
	return ContactEmail{
		FirstName:      "Kavi",
		LastName:       "Raj",
		Email:          "kavi@example.com",
		Phone:          "416-555-0111",
		Message:        "Hello <b>there</b>",
		RecipientName:  "Jane Doe",
		RecipientEmail: "jane@doelaw.ca",
		Category:       "RealEstate",
		BusinessURL:    "https://directory.example.com/realestate/jane-doe",
		BusinessName:   "jane-doe",
	}
}

func TestRecipientPolicy(t *testing.T) {
	withAdmin := RecipientPolicy{AdminAddress: "admin@example.com", AlwaysCCAdmin: true}
	withoutAdmin := RecipientPolicy{AdminAddress: "admin@example.com"}

	assert.Equal(t, []string{"jane@doelaw.ca", "admin@example.com"}, withAdmin.Recipients("jane@doelaw.ca"))
	assert.Equal(t, []string{"admin@example.com"}, withAdmin.Recipients(""))
	assert.Equal(t, []string{"ADMIN@example.com"}, withAdmin.Recipients("ADMIN@example.com"))
	assert.Equal(t, []string{"admin@example.com"}, withAdmin.Recipients(" admin@example.com\n"))
	assert.Equal(t, []string{"jane@doelaw.ca", "admin@example.com"}, withAdmin.Recipients("  jane@doelaw.ca "))
	assert.Equal(t, []string{"jane@doelaw.ca"}, withoutAdmin.Recipients("jane@doelaw.ca"))
	assert.Empty(t, withoutAdmin.Recipients(""))
}

func TestNotifier_NotifyContact(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, "Directory <no-reply@example.com>", "Business Directory",
		RecipientPolicy{AdminAddress: "admin@example.com", AlwaysCCAdmin: true})

	require.NoError(t, n.NotifyContact(context.Background(), sampleContact()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"jane@doelaw.ca", "admin@example.com"}, msg.To)
	assert.Equal(t, "[Business Directory] New Message from Kavi Raj - Real Estate - Jane Doe", msg.Subject)
	assert.Contains(t, msg.HTML, "Real Estate Category")
	assert.Contains(t, msg.HTML, "Hello &lt;b&gt;there&lt;/b&gt;")
	assert.Contains(t, msg.HTML, "https://directory.example.com/realestate/jane-doe")
}

func TestNotifier_NoRecipients(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, "from@example.com", "Directory", RecipientPolicy{})

	c := sampleContact()
	c.RecipientEmail = ""
	err := n.NotifyContact(context.Background(), c)

	assert.ErrorIs(t, err, ErrNoRecipients)
	assert.Empty(t, sender.sent)
}

func TestNotifier_SenderFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("rate limited")}
	n := NewNotifier(sender, "from@example.com", "Directory", RecipientPolicy{})

	err := n.NotifyContact(context.Background(), sampleContact())
	assert.ErrorContains(t, err, "rate limited")
}

func TestNotifier_EmptyCategoryIsGeneral(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, "from@example.com", "Directory", RecipientPolicy{})

	c := sampleContact()
	c.Category = ""
	require.NoError(t, n.NotifyContact(context.Background(), c))
	assert.Contains(t, sender.sent[0].Subject, "- General -")
}

type fakeResendEmails struct {
	got *resend.SendEmailRequest
	err error
}

func (f *fakeResendEmails) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func TestResendSender(t *testing.T) {
	fake := &fakeResendEmails{}
	s := &ResendSender{emails: fake}

	err := s.Send(context.Background(), Message{From: "a@example.com", To: []string{"b@example.com"}, Subject: "Hi", HTML: "<p>x</p>"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b@example.com"}, fake.got.To)
	assert.Equal(t, "<p>x</p>", fake.got.Html)

	fake.err = errors.New("invalid api key")
	assert.ErrorContains(t, s.Send(context.Background(), Message{}), "resend: invalid api key")
}

func TestLogSender(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewLogSender(zap.New(core))

	require.NoError(t, s.Send(context.Background(), Message{To: []string{"b@example.com"}, Subject: "Hi"}))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Hi", logs.All()[0].ContextMap()["subject"])
}
