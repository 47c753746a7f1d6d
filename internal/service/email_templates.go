package service

import "fmt"

func passwordResetEmailTemplate(resetURL, appName string) (string, string) {
	subject := fmt.Sprintf("Reset your %s password", appName)
	html := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>Password reset - %[2]s</title>
</head>
<body style="margin:0; padding:0; background-color:#000000; font-family: Arial, Helvetica, sans-serif;">
  <table role="presentation" cellpadding="0" cellspacing="0" width="100%%" style="background-color:#000000; padding:24px 0;">
    <tr>
      <td align="center">
        <table role="presentation" cellpadding="0" cellspacing="0" width="600" style="max-width:600px; width:100%%; background:#0a0a0a; border-radius:8px; overflow:hidden;">
          <tr>
            <td align="center" style="background:linear-gradient(90deg,#05120b,#00150d); padding:28px;">
              <h1 style="margin:0; font-size:24px; color:#e6fff6;">%[2]s</h1>
            </td>
          </tr>
          <tr>
            <td style="padding:30px 28px 12px 28px; text-align:center;">
              <h2 style="margin:0; font-size:26px; color:#e6fff6; font-weight:700;">Reset your password</h2>
            </td>
          </tr>
          <tr>
            <td style="padding:0 28px 20px 28px; text-align:center;">
              <p style="margin:0; color:#bfeee0; font-size:15px; line-height:1.6;">
                We received a request to change the password for your <strong>%[2]s</strong> account.
                Click the button below to choose a new password. This link expires in <strong>1 hour</strong>.
              </p>
            </td>
          </tr>
          <tr>
            <td align="center" style="padding:16px 28px 26px 28px;">
              <table role="presentation" cellpadding="0" cellspacing="0">
                <tr>
                  <td style="border-radius:8px; background:linear-gradient(180deg,#00d084,#00b86a);">
                    <a href="%[1]s" target="_blank" style="display:inline-block; padding:14px 30px; font-size:16px; color:#00140a; font-weight:700; text-decoration:none; border-radius:8px;">
                      Change my password
                    </a>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding:0 28px 18px 28px;">
              <p style="margin:0; color:#96e8c9; font-size:13px; line-height:1.5;">
                If the button does not work, copy and paste this link into your browser:
              </p>
              <p style="word-break:break-all; margin:8px 0 0 0; font-size:13px;">
                <a href="%[1]s" target="_blank" style="color:#8af2c6; text-decoration:underline;">%[1]s</a>
              </p>
            </td>
          </tr>
          <tr>
            <td style="padding:18px 28px;">
              <div style="background:#07120f; border:1px solid rgba(0,208,132,0.12); border-radius:8px; padding:14px;">
                <ul style="margin:0; padding-left:18px; color:#b9f7dd; font-size:13px; line-height:1.5;">
                  <li>The link expires in <strong>1 hour</strong> and can only be used once.</li>
                  <li>If you did not request this change, you can safely ignore this email.</li>
                  <li>Your current password stays in place until you change it.</li>
                </ul>
              </div>
            </td>
          </tr>
          <tr>
            <td style="padding:22px 28px 36px 28px; text-align:center;">
              <p style="margin:0 0 12px 0; color:#e6fff6; font-weight:700; font-size:15px;">The %[2]s Team</p>
              <p style="margin:0; color:#6a6f6b; font-size:12px;">
                This is an automated message. Please do not reply to this address.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, resetURL, appName)

	return subject, html
}
