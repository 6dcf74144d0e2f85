package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/mexicoindia/membership-backend/internal/models"
)

var adminMembershipTmpl = template.Must(template.New("adminMembership").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #ddd;">
  <h2 style="color: #D4AF37;">New Membership Application</h2>
  <hr>
  <p><b>Plan:</b> {{.SelectedPlan}}</p>
  <p><b>Name:</b> {{.Name}}</p>
  <p><b>Email:</b> {{.Email}}</p>
  <p><b>Phone:</b> {{.Phone}}</p>
  <p><b>Company:</b> {{.Company}}</p>
  <p><b>Message:</b> {{.Message}}</p>
  <p><b>Reference:</b> {{.Reference}}</p>
  <hr>
  <small>Received: {{.Received}}</small>
</div>`))

var userAckTmpl = template.Must(template.New("userAck").Parse(`
<!DOCTYPE html>
<html>
<body style="margin: 0; padding: 0; background-color: #f9f9f9;">
  <div style="font-family: Arial, sans-serif; padding: 40px; max-width: 600px; margin: 20px auto; background: #fff; border-radius: 8px;">
    <div style="border-bottom: 2px solid #D4AF37; padding-bottom: 15px; margin-bottom: 25px; text-align: center;">
      <h2 style="color: #D4AF37; margin: 0;">M&eacute;xico&ndash;India Business Council</h2>
      <p style="font-style: italic; color: #7f8c8d; margin: 8px 0 0 0;">Bridging Two Emerging Giants</p>
    </div>
    <p style="font-size: 18px; color: #2c3e50; font-weight: 600;">Dear {{.Name}},</p>
    <p style="font-size: 17px; color: #34495e; line-height: 1.6;">
      Thank you for submitting your membership application to the <strong>M&eacute;xico&ndash;India Business Council</strong>.
      We confirm that your application has been received and is currently under review.
    </p>
    <p style="font-size: 17px; color: #34495e; line-height: 1.6;">
      Our team will respond to you within <strong>24 to 48 hours</strong>.
      Your application reference is <strong>{{.Reference}}</strong>.
    </p>
    <div style="border-top: 1px solid #eee; padding-top: 20px; margin-top: 20px;">
      <p style="font-size: 17px; margin: 0; color: #2c3e50;">
        Warm regards,<br>
        <strong style="color: #D4AF37;">M&eacute;xico&ndash;India Business Council</strong>
      </p>
    </div>
  </div>
</body>
</html>`))

var adminContactTmpl = template.Must(template.New("adminContact").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #ddd;">
  <h2 style="color: #D4AF37;">New Contact Form Submission</h2>
  <hr>
  <p><b>Name:</b> {{.Name}}</p>
  <p><b>Email:</b> {{.Email}}</p>
  <p><b>Phone:</b> {{.Phone}}</p>
  <p><b>Message:</b> {{.Message}}</p>
</div>`))

func renderAdminMembership(m models.Membership) (subject, html string, err error) {
	data := struct {
		models.Membership
		Received string
	}{m, m.CreatedAt.Format(time.RFC1123)}

	var buf bytes.Buffer
	if err := adminMembershipTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render admin membership email: %w", err)
	}
	return fmt.Sprintf("New Membership: %s - %s", m.SelectedPlan, m.Name), buf.String(), nil
}

func renderUserAck(m models.Membership) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := userAckTmpl.Execute(&buf, m); err != nil {
		return "", "", fmt.Errorf("render user ack email: %w", err)
	}
	return "México-India Business Council - Application Received", buf.String(), nil
}

func renderAdminContact(msg ContactMessage) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := adminContactTmpl.Execute(&buf, msg); err != nil {
		return "", "", fmt.Errorf("render admin contact email: %w", err)
	}
	subj := msg.Subject
	if subj == "" {
		subj = "General Inquiry"
	}
	return fmt.Sprintf("New Contact: %s", subj), buf.String(), nil
}
