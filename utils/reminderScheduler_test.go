package utils

import (
	"testing"
	"time"

	"prflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPendingRemindersNudgesStaleRequests(t *testing.T) {
	db := setupTestDB(t)
	requester, pr := seedNotifyFixture(t, db, false)

	// recently touched request, should stay quiet
	fresh := models.PurchaseRequest{
		PRNumber:    "PR-2025031502",
		RequesterID: requester.ID,
		Status:      models.PRPending,
		CurrentStep: 1,
		TotalSteps:  2,
	}
	require.NoError(t, db.Create(&fresh).Error)

	// backdate the first request past the reminder threshold
	stale := time.Now().Add(-72 * time.Hour)
	require.NoError(t, db.Model(&models.PurchaseRequest{}).Where("id = ?", pr.ID).
		Update("updated_at", stale).Error)

	ProcessPendingReminders()

	var reminders []models.Notification
	require.NoError(t, db.Where("type = ?", models.NotifPRPendingApproval).Find(&reminders).Error)
	require.Len(t, reminders, 1)
	assert.Equal(t, pr.ID, reminders[0].PRID)

	// a second run inside the threshold must not stack another reminder
	ProcessPendingReminders()

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("type = ?", models.NotifPRPendingApproval).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProcessPendingRemindersIgnoresTerminalRequests(t *testing.T) {
	db := setupTestDB(t)
	_, pr := seedNotifyFixture(t, db, false)

	require.NoError(t, db.Model(&models.PurchaseRequest{}).Where("id = ?", pr.ID).
		Updates(map[string]interface{}{
			"status":     models.PRApproved,
			"updated_at": time.Now().Add(-100 * time.Hour),
		}).Error)

	ProcessPendingReminders()

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
