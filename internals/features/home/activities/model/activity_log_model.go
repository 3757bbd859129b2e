package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ActivityLogModel mencatat siapa mengubah apa di panel admin.
type ActivityLogModel struct {
	ID         uuid.UUID         `gorm:"column:activity_id;type:uuid;primaryKey" json:"activity_id"`
	ActorID    *uuid.UUID        `gorm:"column:activity_actor_id;type:uuid;index" json:"activity_actor_id,omitempty"`
	ActorName  string            `gorm:"column:activity_actor_name;size:150" json:"activity_actor_name"`
	Action     string            `gorm:"column:activity_action;size:20;not null" json:"activity_action"`
	Entity     string            `gorm:"column:activity_entity;size:50;not null;index" json:"activity_entity"`
	EntityID   string            `gorm:"column:activity_entity_id;size:64" json:"activity_entity_id"`
	EntityName string            `gorm:"column:activity_entity_name;size:200" json:"activity_entity_name"`
	Changes    datatypes.JSONMap `gorm:"column:activity_changes" json:"activity_changes,omitempty"`
	CreatedAt  time.Time         `gorm:"column:activity_created_at;autoCreateTime;index" json:"activity_created_at"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

func (m *ActivityLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
