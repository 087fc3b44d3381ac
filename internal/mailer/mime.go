package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

const mimeBoundary = "outreach_boundary"

// BodyToHTML converts a plain-text email body into a simple styled HTML
// document. Paragraph breaks become <p> elements and single line breaks
// become <br> tags.
func BodyToHTML(body string) string {
	escaped := strings.ReplaceAll(body, "&", "&amp;")
	escaped = strings.ReplaceAll(escaped, "<", "&lt;")
	escaped = strings.ReplaceAll(escaped, ">", "&gt;")

	html := strings.ReplaceAll(escaped, "\n\n", "</p><p>")
	html = strings.ReplaceAll(html, "\n", "<br>")

	return fmt.Sprintf(`<html><body><div style="font-family: Arial, sans-serif; font-size: 14px; line-height: 1.5;"><p>%s</p></div></body></html>`, html)
}

// BuildMessage assembles a multipart/alternative MIME message with plain and
// HTML parts and returns it base64url-encoded, ready for the Gmail API Raw
// field.
func BuildMessage(to, subject, body string) string {
	var msg bytes.Buffer

	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	encodedSubject := fmt.Sprintf("=?utf-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(subject)))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", encodedSubject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", mimeBoundary))

	msg.WriteString(fmt.Sprintf("--%s\r\n", mimeBoundary))
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", mimeBoundary))
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(BodyToHTML(body))
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s--", mimeBoundary))

	return base64.URLEncoding.EncodeToString(msg.Bytes())
}
