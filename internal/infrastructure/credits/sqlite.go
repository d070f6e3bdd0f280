package credits

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/roomlens/backend/internal/domain"
)

// creditRecord is the GORM model backing one user's balance.
type creditRecord struct {
	UserID    string    `gorm:"primaryKey;column:user_id"`
	Balance   int       `gorm:"column:balance"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (creditRecord) TableName() string {
	return "credits"
}

// SQLiteLedger persists per-user credit balances in a SQLite database so
// balances survive restarts. Users without a row start at the configured
// initial balance, matching MemoryLedger semantics.
type SQLiteLedger struct {
	db             *gorm.DB
	initialBalance int
	mu             sync.Mutex
}

// OpenSQLite initializes the SQLite-backed ledger at the provided path.
func OpenSQLite(path string, initialBalance int) (*SQLiteLedger, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open credit ledger: %w", err)
	}
	if err := db.AutoMigrate(&creditRecord{}); err != nil {
		return nil, fmt.Errorf("auto migrate credit ledger: %w", err)
	}
	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		logrus.WithError(err).Warn("enable WAL mode for credit ledger")
	}

	if initialBalance < 0 {
		initialBalance = 0
	}
	return &SQLiteLedger{db: db, initialBalance: initialBalance}, nil
}

// Close closes the underlying database connection.
func (l *SQLiteLedger) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get returns the remaining credits for a user.
func (l *SQLiteLedger) Get(ctx context.Context, userID string) (int, error) {
	var record creditRecord
	err := l.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return l.initialBalance, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read credits: %w", err)
	}
	return record.Balance, nil
}

// Decrement consumes one credit, failing with ErrNoCredits at zero.
func (l *SQLiteLedger) Decrement(ctx context.Context, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, err := l.loadOrSeed(ctx, userID)
	if err != nil {
		return err
	}
	if record.Balance <= 0 {
		return domain.ErrNoCredits
	}

	record.Balance--
	record.UpdatedAt = time.Now()
	if err := l.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("decrement credits: %w", err)
	}
	return nil
}

// Grant adds credits to a user's balance.
func (l *SQLiteLedger) Grant(ctx context.Context, userID string, amount int) error {
	if amount < 0 {
		return domain.ErrInvalidRequest
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	record, err := l.loadOrSeed(ctx, userID)
	if err != nil {
		return err
	}

	record.Balance += amount
	record.UpdatedAt = time.Now()
	if err := l.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("grant credits: %w", err)
	}
	return nil
}

// loadOrSeed fetches a user's record, creating it at the initial balance
// on first touch.
func (l *SQLiteLedger) loadOrSeed(ctx context.Context, userID string) (*creditRecord, error) {
	var record creditRecord
	err := l.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = creditRecord{UserID: userID, Balance: l.initialBalance, UpdatedAt: time.Now()}
		if err := l.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, fmt.Errorf("seed credits: %w", err)
		}
		return &record, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credits: %w", err)
	}
	return &record, nil
}
