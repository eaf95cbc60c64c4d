package models

import (
	"time"
)

// Entity is anything persisted with a storage-assigned numeric identifier.
type Entity interface {
	GetID() uint
	SetID(id uint)
	GetCreatedAt() time.Time
	SetCreatedAt(createdAt time.Time)
}

// LabeledEntity is an Entity whose label must be unique across its kind.
type LabeledEntity interface {
	Entity
	Label() string
}

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *BaseModel) GetID() uint {
	return b.ID
}

func (b *BaseModel) SetID(id uint) {
	b.ID = id
}

func (b *BaseModel) GetCreatedAt() time.Time {
	return b.CreatedAt
}

func (b *BaseModel) SetCreatedAt(createdAt time.Time) {
	b.CreatedAt = createdAt
}
