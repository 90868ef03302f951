// Package stub is an in-memory stand-in for the remote Wallet Service,
// faithful to its HTTP contract. It exists for local development and tests;
// the real service owns the ledger, PIN verification and business rules.
package stub

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wallet-client/internal/model"
)

type userRecord struct {
	model.User
	Password string
	Pin      string
	WalletID string
}

type walletRecord struct {
	ID       string
	UserID   string
	Balance  decimal.Decimal
	Currency string
}

// Store holds the stub's entire state behind one mutex, mirroring the
// single json-file database the service it stands in for uses.
type Store struct {
	mu      sync.Mutex
	users   map[string]*userRecord
	wallets map[string]*walletRecord
	txs     []model.Transaction
	rules   model.BusinessRules

	defaultPin  string
	seedBalance decimal.Decimal
}

// StoreConfig seeds the stub.
type StoreConfig struct {
	DefaultPin       string
	SeedBalance      decimal.Decimal
	MaxTransferLimit decimal.Decimal
	FeePercentage    decimal.Decimal
}

func NewStore(cfg StoreConfig) *Store {
	if cfg.DefaultPin == "" {
		cfg.DefaultPin = "123456"
	}
	s := &Store{
		users:   make(map[string]*userRecord),
		wallets: make(map[string]*walletRecord),
		rules: model.BusinessRules{
			MaxTransferLimit: cfg.MaxTransferLimit,
			FeePercentage:    cfg.FeePercentage,
		},
		defaultPin:  cfg.DefaultPin,
		seedBalance: cfg.SeedBalance,
	}

	// Two seeded accounts so transfers work out of the box.
	s.seedUser("Ava Sharma", "ava@example.com", "password")
	s.seedUser("Rohan Mehta", "rohan@example.com", "password")
	return s
}

func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (s *Store) seedUser(name, email, password string) {
	u, _ := s.createUser(name, email, password)
	s.mu.Lock()
	s.wallets[s.users[u.ID].WalletID].Balance = s.seedBalance
	s.mu.Unlock()
}

func (s *Store) createUser(name, email, password string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return model.User{}, false
		}
	}

	user := &userRecord{
		User:     model.User{ID: newID("u"), Name: name, Email: email},
		Password: password,
		Pin:      s.defaultPin,
		WalletID: newID("w"),
	}
	s.users[user.ID] = user
	s.wallets[user.WalletID] = &walletRecord{
		ID:       user.WalletID,
		UserID:   user.ID,
		Balance:  decimal.Zero,
		Currency: "INR",
	}
	return user.User, true
}

func (s *Store) authenticate(email, password string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return u.User, true
		}
	}
	return model.User{}, false
}

func (s *Store) userByID(id string) (*userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) listUsers() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u.User)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (s *Store) businessRules() model.BusinessRules {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rules
}

func (s *Store) wallet(userID string) (model.WalletSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return model.WalletSnapshot{}, false
	}
	w := s.wallets[u.WalletID]
	return model.WalletSnapshot{ID: w.ID, UserID: w.UserID, Balance: w.Balance, Currency: w.Currency}, true
}

// addMoney credits the user's wallet and records a credit transaction.
func (s *Store) addMoney(userID string, amount decimal.Decimal) (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return decimal.Zero, false
	}
	w := s.wallets[u.WalletID]
	w.Balance = w.Balance.Add(amount)

	s.txs = append(s.txs, model.Transaction{
		ID:        newID("tx"),
		WalletID:  w.ID,
		Type:      model.TypeCredit,
		Amount:    amount,
		Fee:       decimal.Zero,
		Status:    model.StatusSuccess,
		CreatedAt: time.Now().UTC(),
	})
	return w.Balance, true
}

// transfer debits amount plus fee from the user's wallet. The transfer
// outcome carries the same fields the remote service acknowledges with.
type transferOutcome struct {
	TransactionID string
	Fee           decimal.Decimal
	TotalDeducted decimal.Decimal
}

// transfer errors, matched to the remote service's verbatim detail strings
// by the handlers.
type transferError int

const (
	transferOK transferError = iota
	transferLimitExceeded
	transferInsufficient
	transferNoWallet
)

func (s *Store) transfer(userID, toUserID string, amount decimal.Decimal) (transferOutcome, transferError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return transferOutcome{}, transferNoWallet
	}
	w := s.wallets[u.WalletID]

	if amount.GreaterThan(s.rules.MaxTransferLimit) {
		return transferOutcome{}, transferLimitExceeded
	}

	fee := amount.Mul(s.rules.FeePercentage).Div(decimal.NewFromInt(100))
	total := amount.Add(fee)
	if w.Balance.LessThan(total) {
		return transferOutcome{}, transferInsufficient
	}

	w.Balance = w.Balance.Sub(total)

	tx := model.Transaction{
		ID:        newID("tx"),
		WalletID:  w.ID,
		Type:      model.TypeDebit,
		Amount:    amount,
		Fee:       fee,
		ToUserID:  toUserID,
		Status:    model.StatusSuccess,
		CreatedAt: time.Now().UTC(),
	}
	s.txs = append(s.txs, tx)

	return transferOutcome{TransactionID: tx.ID, Fee: fee, TotalDeducted: total}, transferOK
}

// transactions returns the user's history, newest first, filtered.
func (s *Store) transactions(userID, status, startDate, endDate string) []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil
	}

	var out []model.Transaction
	for _, tx := range s.txs {
		if tx.WalletID != u.WalletID {
			continue
		}
		if status != "" && tx.Status != status {
			continue
		}
		stamp := tx.CreatedAt.Format(time.RFC3339)
		if startDate != "" && stamp < startDate {
			continue
		}
		if endDate != "" && stamp > endDate {
			continue
		}
		out = append(out, tx)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
