// Package services contains server-side business logic. ProvisioningService
// idempotently ensures a worker has a credentialed account plus the worker
// and user records that go with it.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophworker/internal/common"
	"github.com/dmitrijs2005/gophworker/internal/cryptox"
	"github.com/dmitrijs2005/gophworker/internal/logging"
	"github.com/dmitrijs2005/gophworker/internal/server/config"
	"github.com/dmitrijs2005/gophworker/internal/server/models"
	"github.com/dmitrijs2005/gophworker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const (
	MessageWorkerExists  = "Worker already exists"
	MessageAccountExists = "Worker account already exists"
	MessageCreated       = "Worker account created successfully"
)

// CreateWorkerRequest is the provisioning input. WorkerData and UserData are
// stored verbatim next to the system fields.
type CreateWorkerRequest struct {
	Email      string
	Password   string
	WorkerData models.Payload
	UserData   models.Payload
}

// CreateWorkerResult is returned on every successful call. AlreadyExists
// reports whether the account (not the records) was there before the call.
type CreateWorkerResult struct {
	Success       bool
	WorkerUID     string
	WorkerID      string
	Message       string
	AlreadyExists bool
}

type workerIDAllocator interface {
	Next(ctx context.Context) string
}

type recordWriter interface {
	WriteAtomically(ctx context.Context, uid string, worker *models.WorkerRecord, user *models.UserRecord) error
}

// ProvisioningService orchestrates account lookup/creation, worker id
// allocation and the atomic record write.
type ProvisioningService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	allocator    workerIDAllocator
	writer       recordWriter
	attempts     int
	newAccountID func() string
	hashPassword func(password []byte) (salt, hash []byte)
	logger       logging.Logger
}

// NewProvisioningService wires the service with the default allocator and
// writer over db.
func NewProvisioningService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *ProvisioningService {
	return &ProvisioningService{
		db:           db,
		repomanager:  m,
		allocator:    NewWorkerIDAllocator(db, m, cfg.WorkerIDPrefix, cfg.WorkerIDWidth, logger),
		writer:       NewRecordWriter(db, m),
		attempts:     max(cfg.AllocationAttempts, 1),
		newAccountID: uuid.NewString,
		hashPassword: cryptox.HashPassword,
		logger:       logger.With("module", "provisioning"),
	}
}

// CreateWorkerAccount runs the provisioning protocol. callerAuthenticated
// is established by the transport. Every returned error wraps exactly one
// of common.ErrorUnauthenticated, ErrorInvalidArgument, ErrorAlreadyExists
// or ErrorInternal.
//
// The email is trimmed and lower-cased before validation and lookup, so
// " W@X.com" and "w@x.com" name the same account and a whitespace-only
// email is rejected as missing.
func (s *ProvisioningService) CreateWorkerAccount(ctx context.Context, callerAuthenticated bool, req CreateWorkerRequest) (*CreateWorkerResult, error) {
	if !callerAuthenticated {
		return nil, fmt.Errorf("%w: customer must be authenticated", common.ErrorUnauthenticated)
	}

	req.Email = normalizeEmail(req.Email)
	if err := req.validate(); err != nil {
		return nil, err
	}

	log := s.logger.With("email", req.Email)
	log.Info(ctx, "creating worker account")

	account, found, err := s.repomanager.Accounts(s.db).FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, s.internal(ctx, log, err)
	}

	alreadyExists := found

	if found {
		worker, ok, err := s.repomanager.Workers(s.db).Get(ctx, account.ID)
		if err != nil {
			return nil, s.internal(ctx, log, err)
		}
		if ok {
			log.Info(ctx, "worker already exists", "uid", account.ID, "worker_id", worker.WorkerID)
			return &CreateWorkerResult{
				Success:       true,
				WorkerUID:     account.ID,
				WorkerID:      worker.WorkerID,
				Message:       MessageWorkerExists,
				AlreadyExists: true,
			}, nil
		}
		log.Warn(ctx, "account has no worker record, completing it", "uid", account.ID)
	} else {
		account, err = s.createAccount(ctx, req)
		if err != nil {
			if errors.Is(err, common.ErrorEmailTaken) {
				log.Warn(ctx, "account created concurrently")
				return nil, fmt.Errorf("worker with this email %w", common.ErrorAlreadyExists)
			}
			return nil, s.internal(ctx, log, err)
		}
		log.Info(ctx, "account created", "uid", account.ID)
	}

	workerID, err := s.writeRecords(ctx, log, account.ID, req)
	if err != nil {
		return nil, s.internal(ctx, log, err)
	}

	log.Info(ctx, "worker and user records created", "uid", account.ID, "worker_id", workerID)

	message := MessageCreated
	if alreadyExists {
		message = MessageAccountExists
	}

	return &CreateWorkerResult{
		Success:       true,
		WorkerUID:     account.ID,
		WorkerID:      workerID,
		Message:       message,
		AlreadyExists: alreadyExists,
	}, nil
}

func (s *ProvisioningService) createAccount(ctx context.Context, req CreateWorkerRequest) (*models.Account, error) {
	password := []byte(req.Password)
	defer common.WipeByteArray(password)

	salt, hash := s.hashPassword(password)
	account := &models.Account{
		ID:           s.newAccountID(),
		Email:        req.Email,
		PasswordSalt: salt,
		PasswordHash: hash,
		AccountFlags: newAccountFlags(),
	}
	return s.repomanager.Accounts(s.db).Create(ctx, account)
}

// writeRecords allocates an id and writes both records, allocating again
// when a concurrent request already took the id.
func (s *ProvisioningService) writeRecords(ctx context.Context, log logging.Logger, uid string, req CreateWorkerRequest) (string, error) {
	for attempt := 1; ; attempt++ {
		workerID := s.allocator.Next(ctx)

		worker := &models.WorkerRecord{WorkerID: workerID, Data: req.WorkerData}
		user := &models.UserRecord{WorkerID: workerID, Data: req.UserData}

		err := s.writer.WriteAtomically(ctx, uid, worker, user)
		if err == nil {
			return workerID, nil
		}
		if !errors.Is(err, common.ErrorWorkerIDTaken) || attempt >= s.attempts {
			return "", err
		}
		log.Warn(ctx, "worker id taken, allocating again", "worker_id", workerID, "attempt", attempt)
	}
}

func (s *ProvisioningService) internal(ctx context.Context, log logging.Logger, err error) error {
	log.Error(ctx, "error creating worker", "error", err)
	return fmt.Errorf("%w: failed to create worker: %w", common.ErrorInternal, err)
}

func (r CreateWorkerRequest) validate() error {
	var missing []string
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Password == "" {
		missing = append(missing, "password")
	}
	if r.WorkerData == nil {
		missing = append(missing, "workerData")
	}
	if r.UserData == nil {
		missing = append(missing, "userData")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", common.ErrorInvalidArgument, strings.Join(missing, ", "))
	}
	return nil
}

// newAccountFlags is the state of a freshly provisioned account: the worker
// has not verified the email yet and the account is active.
func newAccountFlags() models.AccountFlags {
	return models.AccountFlags{EmailVerified: false, Disabled: false}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
