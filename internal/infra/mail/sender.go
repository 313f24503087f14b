package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendAgendaDigest(to string, day time.Time, tasks []*entity.Task) error {
	data := DigestEmailData{
		Day: day.Format("Monday, 02 Jan 2006"),
	}
	for _, task := range tasks {
		item := DigestTaskData{
			LeadName:    task.LeadName,
			Description: task.Description,
			Nature:      task.Nature,
		}
		if task.DueDate != nil {
			item.Due = task.DueDate.Format("15:04")
		}
		data.Tasks = append(data.Tasks, item)
	}

	tmplPath := filepath.Join("templates", "digest.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("error reading email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("error rendering email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Your agenda for %s 📋", data.Day))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending SMTP email: %w", err)
	}

	return nil
}
