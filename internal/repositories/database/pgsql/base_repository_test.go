package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeTx struct {
	pgx.Tx
}

type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	tx := &fakeTx{}
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(tx, nil).Once()
	tm.On("Commit", ctx, tx).Return(nil).Once()
	tm.On("Rollback", ctx, tx).Return(nil).Once()

	var got pgx.Tx
	err := withTx(ctx, tm, func(inner pgx.Tx) error {
		got = inner
		return nil
	})

	assert.NoError(t, err)
	assert.Same(t, tx, got)
	tm.AssertExpectations(t)
}

func TestWithTx_RollsBackWhenFnFails(t *testing.T) {
	ctx := context.Background()
	tx := &fakeTx{}
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(tx, nil).Once()
	tm.On("Rollback", ctx, tx).Return(nil).Once()
	fnErr := errors.New("insufficient balance")

	err := withTx(ctx, tm, func(pgx.Tx) error { return fnErr })

	assert.ErrorIs(t, err, fnErr)
	tm.AssertExpectations(t)
	tm.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

func TestWithTx_CommitFailureIsReturned(t *testing.T) {
	ctx := context.Background()
	tx := &fakeTx{}
	tm := new(MockTransactionManager)
	commitErr := errors.New("serialization failure")
	tm.On("Begin", ctx).Return(tx, nil).Once()
	tm.On("Commit", ctx, tx).Return(commitErr).Once()
	tm.On("Rollback", ctx, tx).Return(nil).Once()

	err := withTx(ctx, tm, func(pgx.Tx) error { return nil })

	assert.ErrorIs(t, err, commitErr)
	tm.AssertExpectations(t)
}

func TestWithTx_BeginFailureSkipsFn(t *testing.T) {
	ctx := context.Background()
	tm := new(MockTransactionManager)
	beginErr := errors.New("pool closed")
	tm.On("Begin", ctx).Return(nil, beginErr).Once()

	called := false
	err := withTx(ctx, tm, func(pgx.Tx) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
	assert.False(t, called)
	tm.AssertNotCalled(t, "Rollback", mock.Anything, mock.Anything)
}
