package dto

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"actech_backend/internals/features/home/activities/model"
)

type ActivityDTO struct {
	ActivityID         uuid.UUID      `json:"activity_id"`
	ActivityActorID    *uuid.UUID     `json:"activity_actor_id,omitempty"`
	ActivityActorName  string         `json:"activity_actor_name"`
	ActivityAction     string         `json:"activity_action"`
	ActivityEntity     string         `json:"activity_entity"`
	ActivityEntityID   string         `json:"activity_entity_id"`
	ActivityEntityName string         `json:"activity_entity_name"`
	ActivityChanges    map[string]any `json:"activity_changes,omitempty"`
	ActivityCreatedAt  time.Time      `json:"activity_created_at"`
	// mis. "3 minutes ago"
	ActivityAge string `json:"activity_age"`
}

func ToActivityDTO(m model.ActivityLogModel, now time.Time) ActivityDTO {
	return ActivityDTO{
		ActivityID:         m.ID,
		ActivityActorID:    m.ActorID,
		ActivityActorName:  m.ActorName,
		ActivityAction:     m.Action,
		ActivityEntity:     m.Entity,
		ActivityEntityID:   m.EntityID,
		ActivityEntityName: m.EntityName,
		ActivityChanges:    m.Changes,
		ActivityCreatedAt:  m.CreatedAt,
		ActivityAge:        humanize.RelTime(m.CreatedAt, now, "ago", "from now"),
	}
}

func ToActivityDTOs(rows []model.ActivityLogModel, now time.Time) []ActivityDTO {
	out := make([]ActivityDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToActivityDTO(r, now))
	}
	return out
}
