package utils

import (
	"fmt"
	"log"
	"time"

	"prflow/config"
	"prflow/database"
	"prflow/models"

	"github.com/robfig/cron/v3"
)

// logReminder logs scheduler events with timestamp
func logReminder(message string) {
	log.Printf("[PR-REMINDER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ProcessPendingReminders re-notifies about purchase requests that have been
// sitting in PENDING longer than the configured threshold. A request is
// skipped while its latest pending-approval notification is younger than the
// threshold, so repeated runs do not pile up duplicates.
func ProcessPendingReminders() {
	db := database.Database.Db
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.ReminderAfterH) * time.Hour)

	var stale []models.PurchaseRequest
	if err := db.Where("status = ? AND updated_at <= ?", models.PRPending, cutoff).Find(&stale).Error; err != nil {
		logReminder("Error fetching stale pending requests: " + err.Error())
		return
	}

	reminded := 0
	for i := range stale {
		pr := &stale[i]

		var last models.Notification
		err := db.Where("pr_id = ? AND type = ?", pr.ID, models.NotifPRPendingApproval).
			Order("created_at DESC").First(&last).Error
		if err == nil && last.CreatedAt.After(cutoff) {
			continue
		}

		if err := NotifyPRUpdate(db, pr, models.NotifPRPendingApproval); err != nil {
			logReminder("Error creating reminder for " + pr.PRNumber + ": " + err.Error())
			continue
		}
		reminded++
	}

	if reminded > 0 {
		logReminder(fmt.Sprintf("Created reminders for %d stale pending request(s)", reminded))
	}
}

// StartReminderScheduler starts the cron job that nudges approvers about
// stale pending purchase requests. Returns the cron instance so callers can
// stop it on shutdown.
func StartReminderScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.ReminderCron, ProcessPendingReminders); err != nil {
		logReminder("Invalid REMINDER_CRON spec, scheduler disabled: " + err.Error())
		return c
	}

	c.Start()
	logReminder("Pending-approval reminder scheduler started (" + config.AppConfig.ReminderCron + ")")
	return c
}
