// Package notifications delivers outbound mail through an explicit outbox so
// that failures are observable instead of silently dropped.
package notifications

import (
	"fmt"
	"strings"

	"helping-hands/volunteerhub/internal/constants"
)

// Message is one outbound mail.
type Message struct {
	Kind    constants.MailKind `json:"kind"`
	To      string             `json:"to"`
	Subject string             `json:"subject"`
	Body    string             `json:"body"`
}

// OrganizationAccepted is sent when an admin approves an organization request.
func OrganizationAccepted(to, name, password string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hello %s,</p>", name)
	b.WriteString("<p>Your request to join volunteerhub as an organization has been approved.</p>")
	fmt.Fprintf(&b, "<p>You can now sign in with <b>%s</b> and the temporary password <b>%s</b>.</p>", to, password)
	b.WriteString("<p>Please change it after your first login.</p>")
	return Message{
		Kind:    constants.MailOrganizationAccepted,
		To:      to,
		Subject: "Your organization account is ready",
		Body:    b.String(),
	}
}

// OrganizationRejected is sent when an admin rejects an organization request.
func OrganizationRejected(to, name, reason string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hello %s,</p>", name)
	b.WriteString("<p>Unfortunately your request to join volunteerhub as an organization was not approved.</p>")
	if strings.TrimSpace(reason) != "" {
		fmt.Fprintf(&b, "<p>Reason: %s</p>", reason)
	}
	return Message{
		Kind:    constants.MailOrganizationRejected,
		To:      to,
		Subject: "Your organization request",
		Body:    b.String(),
	}
}
