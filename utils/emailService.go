package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"prflow/config"
	"prflow/models"
)

// SendEmail delivers an HTML mail through the configured SMTP relay.
// A missing EMAIL_SENDER disables delivery, which keeps local runs and
// tests from touching the network.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword

	if from == "" {
		log.Printf("Email delivery skipped (no sender configured): %s", subject)
		return nil
	}

	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Titan Capital Procurement <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B4C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B4C; line-height: 1.6; }
			.content h2 { color: #1A2B4C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #d7b56d; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>TITAN CAPITAL</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Titan Capital. All rights reserved.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendPRStatusEmail mails the requester about a status change on their
// purchase request. Callers fire it on a goroutine after commit; delivery
// failures are logged, never surfaced to the API response.
func SendPRStatusEmail(email, name string, pr models.PurchaseRequest, notifType string) {
	title := NotificationTitle(notifType, pr.PRNumber)
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>%s.</p>
		<div class="info-box">
			<strong>%s</strong><br>
			Amount: $%.2f<br>
			Status: %s (step %d of %d)
		</div>
		<p>You can review the full approval history in the app.</p>`,
		name, NotificationMessage(notifType, pr), pr.PRNumber,
		pr.TotalAmount, pr.Status, pr.CurrentStep, pr.TotalSteps)

	if err := SendEmail([]string{email}, title, getEmailTemplate(title, body)); err != nil {
		log.Printf("Failed to send PR status email for %s: %v", pr.PRNumber, err)
	}
}
