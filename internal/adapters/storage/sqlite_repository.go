package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

// DatabaseFile is the database file name under the mapplock home directory
const DatabaseFile = "state.db"

const maxRetries = 3

// SQLiteRepository implements ports.SessionRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the mapplock logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("MAPPLOCK_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the CLI read while the daemon writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&SessionModel{}, &ViolationModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository for a specific MAPPLOCK_HOME path
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, DatabaseFile))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LoadCurrent implements SessionReader.LoadCurrent
func (r *SQLiteRepository) LoadCurrent(ctx context.Context) (*domain.CurrentSession, error) {
	var model SessionModel
	var violations []ViolationModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("is_current = ?", true).First(&model).Error; err != nil {
				return err
			}
			return tx.Where("session_id = ?", model.ID).Order("timestamp, rowid").Find(&violations).Error
		})
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load current session: %w", err)
	}

	session, err := sessionModelToDomain(model, violations)
	if err != nil {
		return nil, err
	}
	return &domain.CurrentSession{
		Session:    session,
		State:      domain.SessionState(model.State),
		KioskState: domain.KioskState(model.KioskState),
	}, nil
}

// Get implements SessionReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var model SessionModel
	var violations []ViolationModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
				return err
			}
			return tx.Where("session_id = ?", id).Order("timestamp, rowid").Find(&violations).Error
		})
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	session, err := sessionModelToDomain(model, violations)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// List implements SessionReader.List
func (r *SQLiteRepository) List(ctx context.Context, since time.Time) ([]domain.Session, error) {
	var models []SessionModel
	var violations []ViolationModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("start_time >= ?", since.UTC()).Order("start_time, rowid").Find(&models).Error; err != nil {
				return err
			}
			if len(models) == 0 {
				return nil
			}
			ids := make([]string, 0, len(models))
			for _, m := range models {
				ids = append(ids, m.ID)
			}
			return tx.Where("session_id IN ?", ids).Order("timestamp, rowid").Find(&violations).Error
		})
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	bySession := make(map[string][]ViolationModel, len(models))
	for _, v := range violations {
		bySession[v.SessionID] = append(bySession[v.SessionID], v)
	}

	sessions := make([]domain.Session, 0, len(models))
	for _, m := range models {
		session, err := sessionModelToDomain(m, bySession[m.ID])
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// SaveCurrent implements SessionWriter.SaveCurrent
func (r *SQLiteRepository) SaveCurrent(ctx context.Context, current domain.CurrentSession) error {
	model, err := domainToSessionModel(current.Session, current.State, current.KioskState, true)
	if err != nil {
		return err
	}

	columns := []string{
		"name", "mode", "kiosk_mode", "configuration", "start_time", "end_time",
		"paused_at", "paused_nanos", "extension_nanos", "time_limit_reported",
		"state", "is_current", "updated_at",
	}
	if current.KioskState == "" {
		model.KioskState = string(domain.KioskInactive)
	} else {
		columns = append(columns, "kiosk_state")
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&SessionModel{}).
				Where("is_current = ? AND id <> ?", true, model.ID).
				Update("is_current", false).Error; err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns(columns),
			}).Create(&model).Error; err != nil {
				return err
			}
			return insertViolations(tx, current.Session.Violations)
		})
	}, maxRetries)
}

// ArchiveSession implements SessionWriter.ArchiveSession
func (r *SQLiteRepository) ArchiveSession(ctx context.Context, session domain.Session) error {
	model, err := domainToSessionModel(session, domain.StateInactive, domain.KioskInactive, false)
	if err != nil {
		return err
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"end_time", "paused_at", "paused_nanos", "extension_nanos",
					"time_limit_reported", "state", "kiosk_state", "is_current", "updated_at",
				}),
			}).Create(&model).Error; err != nil {
				return err
			}
			return insertViolations(tx, session.Violations)
		})
	}, maxRetries)
}

// AppendViolation implements ViolationWriter.AppendViolation
func (r *SQLiteRepository) AppendViolation(ctx context.Context, violation domain.Violation) error {
	return withRetry(func() error {
		return insertViolations(r.db.WithContext(ctx), []domain.Violation{violation})
	}, maxRetries)
}

// UpdateKioskState implements KioskStateUpdater.UpdateKioskState
func (r *SQLiteRepository) UpdateKioskState(ctx context.Context, sessionID string, state domain.KioskState) error {
	var affected int64
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&SessionModel{}).
			Where("id = ?", sessionID).
			Update("kiosk_state", string(state))
		affected = result.RowsAffected
		return result.Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to update kiosk state: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return nil
}

// Purge implements SessionWriter.Purge
func (r *SQLiteRepository) Purge(ctx context.Context) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ViolationModel{}).Error; err != nil {
				return err
			}
			return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&SessionModel{}).Error
		})
	}, maxRetries)
}

// insertViolations stores violations, skipping ones already persisted
func insertViolations(tx *gorm.DB, violations []domain.Violation) error {
	if len(violations) == 0 {
		return nil
	}
	models := make([]ViolationModel, 0, len(violations))
	for _, v := range violations {
		models = append(models, domainToViolationModel(v))
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models).Error
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
