package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/xavierca1/ligue-cursos/internal/usecase"
	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     "bot@liguecursos.com",
	}
}

const advisorTemplate = `Nuevo lead calificado 🔥

Usuario: {{.UserID}}
Nombre: {{.Name}}
Correo: {{.Email}}
Teléfono: {{.Phone}}
Curso de interés: {{if .CourseName}}{{.CourseName}}{{else}}(sin curso){{end}}
Score de interés: {{.InterestScore}}/100
Origen: {{.Source}}

Últimos mensajes:
{{range .History}}[{{.Timestamp.Format "02/01 15:04"}}] {{.Inbound}}
  → {{.Outbound}}
{{end}}`

var advisorTmpl = template.Must(template.New("advisor").Parse(advisorTemplate))

// SendAdvisorNotification manda el resumen del lead al asesor humano.
func (s *EmailSender) SendAdvisorNotification(to string, n usecase.AdvisorNotification) error {
	var body bytes.Buffer
	if err := advisorTmpl.Execute(&body, n); err != nil {
		return fmt.Errorf("error al procesar template del asesor: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("🔥 Lead calificado: %s (score %d)", n.Name, n.InterestScore))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return &usecase.TechnicalError{
			Code:    "SMTP_SEND_ERROR",
			Message: "error al enviar email al asesor: " + err.Error(),
		}
	}

	return nil
}
