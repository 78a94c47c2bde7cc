package impl

import (
	"bytes"
	"html/template"
	"time"

	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/service"
)

const (
	pushReminderTitle = "🌱 Plant Care Reminder"
	defaultUserName   = "User"
	dueDateLayout     = "Monday, January 2, 2006"
	dueTimeLayout     = "03:04 PM"
)

var reminderEmailTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Plant Care Reminder</title>
  </head>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; border-radius: 8px; padding: 30px; margin-bottom: 20px;">
      <h1 style="color: #22c55e; margin-top: 0;">🌱 Plant Care Reminder</h1>
      <p style="font-size: 16px;">Hi {{.UserName}},</p>
      <p style="font-size: 16px;">It's time to take care of your plant!</p>
      <div style="background-color: white; border-left: 4px solid #22c55e; padding: 20px; margin: 20px 0; border-radius: 4px;">
        <h2 style="margin-top: 0; color: #22c55e; font-size: 20px;">Task Details</h2>
        <p style="margin: 10px 0;"><strong>Plant:</strong> {{.PlantName}}</p>
        <p style="margin: 10px 0;"><strong>Task:</strong> {{.TaskType}}</p>
        <p style="margin: 10px 0;"><strong>Due:</strong> {{.DueDate}} at {{.DueTime}}</p>
      </div>
      <div style="text-align: center; margin: 30px 0;">
        <a href="{{.TasksURL}}" style="background-color: #22c55e; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; display: inline-block; font-weight: bold;">View Tasks</a>
      </div>
      <p style="font-size: 14px; color: #666; margin-top: 30px;">You can mark this task as complete in the app to update your care schedule.</p>
    </div>
    <div style="text-align: center; font-size: 12px; color: #999; padding: 20px;">
      <p>Plant Care Reminder App</p>
      <p><a href="{{.SettingsURL}}" style="color: #22c55e; text-decoration: none;">Manage notification preferences</a></p>
    </div>
  </body>
</html>
`))

// reminder is everything the message builders need to know about one due task.
type reminder struct {
	UserName   string
	PlantName  string
	TaskType   entity.TaskType
	DueAt      time.Time
	PlantID    string
	ScheduleID string
}

func newReminder(due *entity.DueSchedule) reminder {
	r := reminder{
		UserName:   due.Owner.Name,
		TaskType:   due.Schedule.TaskType,
		DueAt:      due.Schedule.NextDueDate,
		ScheduleID: due.Schedule.ID.String(),
		PlantID:    due.Schedule.PlantID.String(),
	}
	if due.Plant != nil {
		r.PlantName = due.Plant.Name
	}
	if r.UserName == "" {
		r.UserName = defaultUserName
	}

	return r
}

// buildReminderEmail renders the reminder email. Template data is HTML-escaped.
func buildReminderEmail(to, appBaseURL string, r reminder) (service.EmailMessage, error) {
	var body bytes.Buffer
	err := reminderEmailTemplate.Execute(&body, map[string]string{
		"UserName":    r.UserName,
		"PlantName":   r.PlantName,
		"TaskType":    string(r.TaskType),
		"DueDate":     r.DueAt.Format(dueDateLayout),
		"DueTime":     r.DueAt.Format(dueTimeLayout),
		"TasksURL":    appBaseURL + constants.AppTasksPath,
		"SettingsURL": appBaseURL + constants.AppSettingsPath,
	})
	if err != nil {
		return service.EmailMessage{}, err
	}

	return service.EmailMessage{
		To:      to,
		Subject: "🌱 Time to " + r.TaskType.Verb() + " " + r.PlantName,
		HTML:    body.String(),
	}, nil
}

func buildReminderPush(r reminder) service.PushMessage {
	return service.PushMessage{
		Title: pushReminderTitle,
		Body:  "Time to " + r.TaskType.Verb() + " " + r.PlantName,
		Data: map[string]string{
			"scheduleId": r.ScheduleID,
			"plantId":    r.PlantID,
			"url":        constants.AppTasksPath,
		},
		Link: constants.AppTasksPath,
		Tag:  "task-" + r.ScheduleID,
	}
}
