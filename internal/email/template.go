package email

import "html/template"

type contactView struct {
	ContactEmail
	CategoryName string
	SiteName     string
}

// Submitted values are escaped by html/template.
var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
</head>
<body style="background-color: #f6f9fc; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; border-radius: 16px; overflow: hidden;">
    <div style="background: linear-gradient(to right, #7c3aed, #6366f1); padding: 40px 20px; text-align: center;">
      <h1 style="color: white; margin: 0; font-size: 24px;">New Message Received</h1>
      <p style="color: rgba(255, 255, 255, 0.9); margin: 10px 0 0;">via {{.SiteName}}<br><span style="font-size: 14px;">{{.CategoryName}} Category</span></p>
    </div>
    <div style="padding: 32px 24px;">
      <h2 style="color: #1f2937; font-size: 18px;">Business Profile Information</h2>
      <table style="width: 100%; border-collapse: collapse;">
        <tr><td style="color: #6b7280; width: 120px;">Business:</td><td>{{.RecipientName}}</td></tr>
        <tr><td style="color: #6b7280;">Category:</td><td>{{.CategoryName}}</td></tr>
        {{- if .RecipientEmail}}
        <tr><td style="color: #6b7280;">Email:</td><td><a href="mailto:{{.RecipientEmail}}">{{.RecipientEmail}}</a></td></tr>
        {{- end}}
        {{- if .BusinessURL}}
        <tr><td style="color: #6b7280;">Profile URL:</td><td><a href="{{.BusinessURL}}" target="_blank">{{.BusinessURL}}</a></td></tr>
        {{- end}}
      </table>
      <h2 style="color: #1f2937; font-size: 18px;">Sender Information</h2>
      <table style="width: 100%; border-collapse: collapse;">
        <tr><td style="color: #6b7280; width: 120px;">Name:</td><td>{{.FirstName}} {{.LastName}}</td></tr>
        <tr><td style="color: #6b7280;">Email:</td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
        <tr><td style="color: #6b7280;">Phone:</td><td><a href="tel:{{.Phone}}">{{.Phone}}</a></td></tr>
      </table>
      <h2 style="color: #1f2937; font-size: 18px;">Message</h2>
      <p style="color: #374151; line-height: 1.6; white-space: pre-wrap;">{{.Message}}</p>
    </div>
    <div style="background-color: #f9fafb; padding: 24px; text-align: center; border-top: 1px solid #e5e7eb;">
      <p style="color: #6b7280; font-size: 14px; margin: 0;">This is an automated message from {{.SiteName}} - {{.CategoryName}} Category.<br>Please do not reply to this email.</p>
    </div>
  </div>
</body>
</html>
`))
