package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophworker/internal/common"
	"github.com/dmitrijs2005/gophworker/internal/dbx"
	"github.com/dmitrijs2005/gophworker/internal/server/models"
	"github.com/dmitrijs2005/gophworker/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophworker/internal/server/repositories/users"
	"github.com/dmitrijs2005/gophworker/internal/server/repositories/workers"
)

// memStore is an in-memory identity store plus both record stores. Every
// repository call is counted so tests can assert that no I/O happened.
type memStore struct {
	mu sync.Mutex

	accounts map[string]*models.Account
	workers  map[string]*models.WorkerRecord
	users    map[string]*models.UserRecord
	calls    int

	findErr   error
	getErr    error
	createErr error
	latestErr error
}

func newMemStore() *memStore {
	return &memStore{
		accounts: map[string]*models.Account{},
		workers:  map[string]*models.WorkerRecord{},
		users:    map[string]*models.UserRecord{},
	}
}

func (m *memStore) addAccount(id, email string) {
	m.accounts[id] = &models.Account{ID: id, Email: email}
}

func (m *memStore) addWorker(uid, workerID string) {
	m.workers[uid] = &models.WorkerRecord{UID: uid, WorkerID: workerID, Data: models.Payload{}}
	m.users[uid] = &models.UserRecord{UID: uid, WorkerID: workerID, Data: models.Payload{}}
}

func (m *memStore) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memStore) Accounts(dbx.DBTX) accounts.Repository      { return memAccounts{m} }
func (m *memStore) Workers(dbx.DBTX) workers.Repository        { return memWorkers{m} }
func (m *memStore) Users(dbx.DBTX) users.Repository            { return memUsers{m} }

type memAccounts struct{ s *memStore }

func (r memAccounts) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.createErr != nil {
		return nil, r.s.createErr
	}
	for _, existing := range r.s.accounts {
		if existing.Email == a.Email {
			return nil, fmt.Errorf("%w: %s", common.ErrorEmailTaken, a.Email)
		}
	}
	a.CreatedAt = time.Now()
	cp := *a
	r.s.accounts[a.ID] = &cp
	return a, nil
}

func (r memAccounts) FindByEmail(_ context.Context, email string) (*models.Account, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.findErr != nil {
		return nil, false, r.s.findErr
	}
	for _, a := range r.s.accounts {
		if a.Email == email {
			cp := *a
			return &cp, true, nil
		}
	}
	return nil, false, nil
}

type memWorkers struct{ s *memStore }

func (r memWorkers) Create(_ context.Context, w *models.WorkerRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	return r.s.putWorkerLocked(w)
}

func (r memWorkers) Get(_ context.Context, uid string) (*models.WorkerRecord, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.getErr != nil {
		return nil, false, r.s.getErr
	}
	w, ok := r.s.workers[uid]
	return w, ok, nil
}

func (r memWorkers) LatestWorkerID(context.Context) (string, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	if r.s.latestErr != nil {
		return "", false, r.s.latestErr
	}
	ids := make([]string, 0, len(r.s.workers))
	for _, w := range r.s.workers {
		ids = append(ids, w.WorkerID)
	}
	if len(ids) == 0 {
		return "", false, nil
	}
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) > len(ids[j])
		}
		return ids[i] > ids[j]
	})
	return ids[0], true, nil
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *models.UserRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	u.CreatedAt, u.LastLogin = time.Now(), time.Now()
	r.s.users[u.UID] = u
	return nil
}

func (r memUsers) Get(_ context.Context, uid string) (*models.UserRecord, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.calls++
	u, ok := r.s.users[uid]
	return u, ok, nil
}

func (m *memStore) putWorkerLocked(w *models.WorkerRecord) error {
	for uid, existing := range m.workers {
		if existing.WorkerID == w.WorkerID && uid != w.UID {
			return fmt.Errorf("%w: %s", common.ErrorWorkerIDTaken, w.WorkerID)
		}
	}
	w.CreatedAt, w.LastActive = time.Now(), time.Now()
	m.workers[w.UID] = w
	return nil
}

// memWriter writes both records under one lock, or neither.
type memWriter struct {
	s   *memStore
	err error
}

func (w *memWriter) WriteAtomically(_ context.Context, uid string, worker *models.WorkerRecord, user *models.UserRecord) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.calls++
	if w.err != nil {
		return w.err
	}
	worker.UID, user.UID = uid, uid
	if err := w.s.putWorkerLocked(worker); err != nil {
		return err
	}
	user.CreatedAt, user.LastLogin = worker.CreatedAt, worker.LastActive
	w.s.users[uid] = user
	return nil
}

// seqAllocator returns ids in order, repeating the last one.
type seqAllocator struct {
	ids   []string
	calls int
}

func (a *seqAllocator) Next(context.Context) string {
	id := a.ids[min(a.calls, len(a.ids)-1)]
	a.calls++
	return id
}
