package mailer

import (
	"fmt"
	"time"
)

func layout(title, body string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1E3C78; padding: 24px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 22px; }
			.content { padding: 32px 28px; color: #1E3C78; line-height: 1.6; }
			.code { font-size: 32px; letter-spacing: 8px; font-weight: bold; text-align: center; margin: 24px 0; }
			.footer { background-color: #F6F6F6; padding: 16px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>E-LEARNING IT</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">This is an automated message. Please do not reply.</div>
		</div>
	</body>
	</html>
	`, title, body)
}

// ResetCodeEmail builds the password reset message carrying code.
func ResetCodeEmail(to, code string, ttl time.Duration) Message {
	body := fmt.Sprintf(`
		<p>We received a request to reset your password.</p>
		<div class="code">%s</div>
		<p>The code expires in %d minutes. If you did not request a reset, you can ignore this email.</p>
	`, code, int(ttl.Minutes()))

	return Message{
		To:      []string{to},
		Subject: "Your password reset code",
		HTML:    layout("Password Reset", body),
	}
}
