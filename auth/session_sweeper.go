package auth

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/models"
)

// SessionSweeper revokes admin sessions that have outlived their TTL so the
// dashboard heartbeat fails promptly instead of waiting for token expiry.
// It runs for the lifetime of the context handed to Run and stops
// deterministically when that context is cancelled.
type SessionSweeper struct {
	db       *gorm.DB
	interval time.Duration
}

func NewSessionSweeper(db *gorm.DB, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{db: db, interval: interval}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-ctx.Done():
			return
		}
	}
}

// Sweep marks expired, not-yet-revoked sessions as revoked. Idempotent.
func (s *SessionSweeper) Sweep() {
	now := time.Now()
	result := s.db.Model(&models.AdminSession{}).
		Where("revoked_at IS NULL AND expires_at <= ?", now).
		Update("revoked_at", now)
	if result.Error != nil {
		log.Printf("❌ Session sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("🧹 Revoked %d expired admin sessions", result.RowsAffected)
	}
}
