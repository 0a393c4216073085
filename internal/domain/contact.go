package domain

import "strings"

type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (m ContactMessage) Validate() error {
	ve := &ValidationError{}
	if strings.TrimSpace(m.Name) == "" {
		ve.Add("name", "is required")
	}
	if !strings.Contains(m.Email, "@") {
		ve.Add("email", "must be a valid email address")
	}
	if strings.TrimSpace(m.Message) == "" {
		ve.Add("message", "is required")
	}
	return ve.Err()
}
