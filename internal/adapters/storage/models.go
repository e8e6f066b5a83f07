package storage

import "time"

// SessionModel is the GORM model for sessions table
type SessionModel struct {
	Configuration     string     `gorm:"not null"`
	CreatedAt         time.Time
	EndTime           *time.Time `gorm:"default:null"`
	ExtensionNanos    int64      `gorm:"not null;default:0"`
	ID                string     `gorm:"primaryKey"`
	IsCurrent         bool       `gorm:"not null;default:false;index:idx_is_current"`
	KioskMode         string     `gorm:"not null"`
	KioskState        string     `gorm:"not null;default:'inactive';check:kiosk_state IN ('inactive','starting','active','paused','ending')"`
	Mode              string     `gorm:"not null"`
	Name              string     `gorm:"not null"`
	PausedAt          *time.Time `gorm:"default:null"`
	PausedNanos       int64      `gorm:"not null;default:0"`
	StartTime         time.Time  `gorm:"not null;index:idx_start_time"`
	State             string     `gorm:"not null;default:'inactive';check:state IN ('inactive','starting','active','paused','ending')"`
	TimeLimitReported bool       `gorm:"not null;default:false"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// ViolationModel is the GORM model for violations table
type ViolationModel struct {
	AppBundleID string    `gorm:"not null;default:''"`
	CreatedAt   time.Time
	Details     string    `gorm:"not null;default:''"`
	ID          string    `gorm:"primaryKey"`
	SessionID   string    `gorm:"not null;index:idx_violation_session"`
	Severity    string    `gorm:"not null;check:severity IN ('low','medium','high','critical')"`
	Timestamp   time.Time `gorm:"not null"`
	Type        string    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ViolationModel) TableName() string { return "violations" }
