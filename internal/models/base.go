// internal/models/base.go
package models

// BaseModel carries the store-assigned identifier shared by every entity.
// Records are hard-deleted, so no soft-delete column is embedded.
type BaseModel struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
}
