package dto

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"actech_backend/internals/features/home/activities/model"
)

func TestToActivityDTOAge(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := model.ActivityLogModel{
		Action:    model.ActionUpdate,
		Entity:    "user",
		Changes:   datatypes.JSONMap{"is_active": false},
		CreatedAt: now.Add(-3 * time.Minute),
	}

	got := ToActivityDTO(m, now)
	if got.ActivityAge != "3 minutes ago" {
		t.Errorf("age = %q", got.ActivityAge)
	}
	if got.ActivityChanges["is_active"] != false {
		t.Errorf("changes = %v", got.ActivityChanges)
	}
	if out := ToActivityDTOs(nil, now); out == nil || len(out) != 0 {
		t.Errorf("ToActivityDTOs(nil) = %v, want empty slice", out)
	}
}
