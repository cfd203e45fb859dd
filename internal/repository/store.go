package repository

import (
	"context"
	"database/sql"
	"time"

	"committee-tracker-backend/internal/database"
	apperrors "committee-tracker-backend/internal/errors"
	"committee-tracker-backend/internal/logger"
	"committee-tracker-backend/internal/metrics"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/gorm"
)

// RetryPolicy bounds how often a serializable transaction is replayed
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// DefaultRetryPolicy matches the TX_MAX_RETRIES and TX_RETRY_BASE_DELAY defaults
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseDelay: 25 * time.Millisecond}

// Store hands out repositories bound to one *gorm.DB, which is either the
// connection pool or an open transaction
type Store struct {
	db     *gorm.DB
	policy RetryPolicy

	senateDivisions  *SenateDivisionRepository
	faculty          *FacultyRepository
	committees       *CommitteeRepository
	slotRequirements *SlotRequirementRepository
	assignments      *AssignmentRepository
}

// NewStore creates a new store over db
func NewStore(db *gorm.DB, policy RetryPolicy) *Store {
	return &Store{
		db:               db,
		policy:           policy,
		senateDivisions:  NewSenateDivisionRepository(db),
		faculty:          NewFacultyRepository(db),
		committees:       NewCommitteeRepository(db),
		slotRequirements: NewSlotRequirementRepository(db),
		assignments:      NewAssignmentRepository(db),
	}
}

func (s *Store) SenateDivisions() SenateDivisionRepositoryInterface   { return s.senateDivisions }
func (s *Store) Faculty() FacultyRepositoryInterface                  { return s.faculty }
func (s *Store) Committees() CommitteeRepositoryInterface             { return s.committees }
func (s *Store) SlotRequirements() SlotRequirementRepositoryInterface { return s.slotRequirements }
func (s *Store) Assignments() AssignmentRepositoryInterface           { return s.assignments }

// InSerializableTx runs fn inside a SERIALIZABLE transaction. When postgres
// aborts the transaction with a serialization failure or deadlock the whole
// of fn is replayed with exponential backoff, up to policy.MaxRetries times.
// Any other error from fn rolls back and is returned as is. When the retries
// run out ErrConcurrentModification is returned.
func (s *Store) InSerializableTx(ctx context.Context, fn func(tx StoreInterface) error) error {
	log := logger.WithContext(ctx)
	attempt := 0

	operation := func() error {
		attempt++
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(NewStore(tx, s.policy))
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err == nil {
			return nil
		}
		if database.IsRetryable(err) {
			return err
		}
		return backoff.Permanent(err)
	}

	notify := func(err error, wait time.Duration) {
		metrics.TxRetries.Inc()
		log.WithFields(map[string]interface{}{
			"attempt": attempt,
			"wait":    wait.String(),
		}).WithError(err).Warn("Serializable transaction aborted, retrying")
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(s.backOff(), ctx), notify)
	if err != nil && database.IsRetryable(err) {
		log.WithField("attempts", attempt).WithError(err).Error("Serializable transaction retries exhausted")
		return apperrors.ErrConcurrentModification
	}
	return err
}

func (s *Store) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if s.policy.BaseDelay > 0 {
		b.InitialInterval = s.policy.BaseDelay
	}
	b.MaxInterval = 20 * b.InitialInterval
	b.MaxElapsedTime = 0
	b.Reset()

	retries := s.policy.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithMaxRetries(b, uint64(retries))
}
