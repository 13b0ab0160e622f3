package seeder

import (
	"context"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Connect opens the single connection used for a seeding run.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to connect to db")
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

// Session owns an open connection and the driver goroutine that keeps it
// serviced. Close must be called on every exit path.
type Session struct {
	DB *sqlx.DB

	log       *zap.Logger
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewSession starts the connection driver for db. The driver pings the
// connection every interval and logs failures without stopping the caller.
func NewSession(ctx context.Context, db *sqlx.DB, interval time.Duration, logger *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		DB:     db,
		log:    logger.With(zap.String("component", "driver")),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.drive(ctx, interval)
	return s
}

func (s *Session) drive(ctx context.Context, interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.DB.PingContext(ctx); err != nil && ctx.Err() == nil {
				s.log.Error("connection error", zap.Error(err))
			}
		}
	}
}

// Close stops the driver, waits for it to exit and closes the connection.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
		if err := s.DB.Close(); err != nil {
			s.closeErr = errors.Wrapf(err, "fail to close db")
		}
	})
	return s.closeErr
}
