package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"prflow/models"

	"gorm.io/gorm"
)

// GeneratePRNumber returns the next purchase request number for the given
// moment, format PR-YYYYMMDDNN. The two-digit sequence starts at 01 and
// resets at the UTC day boundary. The sequence is derived from the numbers
// already stored, so it survives restarts and never repeats within a day.
func GeneratePRNumber(db *gorm.DB, now time.Time) (string, error) {
	prefix := "PR-" + now.UTC().Format("20060102")

	var numbers []string
	if err := db.Model(&models.PurchaseRequest{}).
		Where("pr_number LIKE ?", prefix+"%").
		Pluck("pr_number", &numbers).Error; err != nil {
		return "", err
	}

	maxSeq := 0
	for _, n := range numbers {
		if len(n) <= len(prefix) {
			continue
		}
		seq, err := strconv.Atoi(n[len(prefix):])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s%02d", prefix, maxSeq+1), nil
}

// IsDuplicatePRNumber reports whether err is a unique-constraint violation on
// the pr_number column. Two submits racing for the same daily sequence slot
// surface here; callers retry with a freshly derived number instead of
// failing the request. Covers both the postgres constraint name
// (purchase_requests_pr_number_key) and sqlite's column-qualified message.
func IsDuplicatePRNumber(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "pr_number")
}
