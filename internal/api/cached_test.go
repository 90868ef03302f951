package api_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-client/internal/api"
	"wallet-client/internal/model"
	"wallet-client/pkg/cache"
)

type countingDirectory struct {
	userCalls  int
	rulesCalls int
}

func (d *countingDirectory) ListUsers(ctx context.Context) ([]model.User, error) {
	d.userCalls++
	return []model.User{{ID: "u1", Name: "Ava", Email: "ava@example.com"}}, nil
}

func (d *countingDirectory) BusinessRules(ctx context.Context) (model.BusinessRules, error) {
	d.rulesCalls++
	return model.BusinessRules{
		MaxTransferLimit: decimal.NewFromInt(10000),
		FeePercentage:    decimal.NewFromInt(2),
	}, nil
}

func TestCachedDirectory_ReadThrough(t *testing.T) {
	inner := &countingDirectory{}
	directory := api.NewCachedDirectory(inner, cache.NewMemoryCache(time.Minute, time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		users, err := directory.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "u1", users[0].ID)
	}
	assert.Equal(t, 1, inner.userCalls, "repeat reads must be served from cache")

	for i := 0; i < 2; i++ {
		rules, err := directory.BusinessRules(ctx)
		require.NoError(t, err)
		assert.True(t, rules.FeePercentage.Equal(decimal.NewFromInt(2)))
	}
	assert.Equal(t, 1, inner.rulesCalls)
}
