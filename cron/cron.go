package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/clinicdesk/citas-api/models"
	"github.com/clinicdesk/citas-api/store"
	"github.com/clinicdesk/citas-api/utils"
)

// StartCronJobs starts the reminder scheduler: every minute it looks for
// scheduled citas starting in roughly one hour and mails the patient.
func StartCronJobs() {
	c := cron.New()
	_, err := c.AddFunc("* * * * *", sendCitaReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for cita reminders")
}

// sendCitaReminders mails patients whose scheduled cita starts within the
// 55-65 minute window from now. Runs once per minute, so each cita lands in
// the window a handful of times; duplicate reminders are acceptable here.
func sendCitaReminders() {
	if !utils.EmailConfigured() {
		return
	}

	citas, err := store.DB.Citas()
	if err != nil {
		log.Printf("Error fetching citas for reminders: %v", err)
		return
	}
	pacientes, err := store.DB.Pacientes()
	if err != nil {
		log.Printf("Error fetching pacientes for reminders: %v", err)
		return
	}

	emails := make(map[string]models.Patient, len(pacientes))
	for _, p := range pacientes {
		emails[p.ID] = p
	}

	ahora := time.Now()
	inicioVentana := ahora.Add(55 * time.Minute)
	finVentana := ahora.Add(65 * time.Minute)

	for _, cita := range citas {
		if cita.Estado != models.StatusScheduled {
			continue
		}
		t, err := time.ParseInLocation("2006-01-02 15:04", cita.Fecha+" "+cita.Hora, ahora.Location())
		if err != nil {
			continue
		}
		if t.Before(inicioVentana) || t.After(finVentana) {
			continue
		}
		paciente, ok := emails[cita.PacienteID]
		if !ok {
			continue
		}
		if err := sendReminderEmail(cita, paciente); err != nil {
			log.Printf("Failed to send reminder for cita %s: %v", cita.ID, err)
			continue
		}
		log.Printf("Sent reminder for cita %s to %s", cita.ID, paciente.Email)
	}
}

func sendReminderEmail(cita models.Appointment, paciente models.Patient) error {
	subject := fmt.Sprintf("Recordatorio: cita %s en una hora", cita.ID)
	body := fmt.Sprintf(`
		<p>Estimado/a %s,</p>
		<p>Le recordamos su cita programada para dentro de una hora.</p>
		<ul>
			<li><strong>Fecha:</strong> %s</li>
			<li><strong>Hora:</strong> %s</li>
		</ul>
		<p>Si necesita cancelar, contáctenos lo antes posible.</p>
	`, paciente.Nombre, cita.Fecha, cita.Hora)

	return utils.SendEmail(paciente.Email, subject, body)
}
