package api

import (
	"context"
	"errors"
	"time"

	"wallet-client/internal/model"
	"wallet-client/pkg/cache"
)

const (
	keyUsers = "directory:users"
	keyRules = "directory:rules"

	// Directory data changes rarely; a short TTL keeps recipient pickers
	// snappy without ever caching anything money-shaped.
	directoryTTL = 30 * time.Second
)

// Directory is the read side the recipient picker and rules display need.
// Satisfied by *Client.
type Directory interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	BusinessRules(ctx context.Context) (model.BusinessRules, error)
}

// CachedDirectory is a read-through cache over the user directory and
// business rules. Balances and transactions are deliberately not cacheable:
// those projections are stale the moment they render and must always be
// re-fetched.
type CachedDirectory struct {
	inner Directory
	cache cache.Cache
}

func NewCachedDirectory(inner Directory, c cache.Cache) *CachedDirectory {
	return &CachedDirectory{inner: inner, cache: c}
}

func (d *CachedDirectory) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := d.cache.Get(ctx, keyUsers, &users); err == nil {
		return users, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		return nil, err
	}

	users, err := d.inner.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	_ = d.cache.Set(ctx, keyUsers, users, directoryTTL)
	return users, nil
}

func (d *CachedDirectory) BusinessRules(ctx context.Context) (model.BusinessRules, error) {
	var rules model.BusinessRules
	if err := d.cache.Get(ctx, keyRules, &rules); err == nil {
		return rules, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		return model.BusinessRules{}, err
	}

	rules, err := d.inner.BusinessRules(ctx)
	if err != nil {
		return model.BusinessRules{}, err
	}
	_ = d.cache.Set(ctx, keyRules, rules, directoryTTL)
	return rules, nil
}
