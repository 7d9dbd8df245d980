package services

import (
	"testing"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"

	"github.com/stretchr/testify/require"
)

func newWalletService(t *testing.T) (*WalletService, fixtures) {
	t.Helper()
	db := newTestDB(t)
	f := seedFixtures(t, db)
	return NewWalletService(db, repository.NewWalletRepository(db)), f
}

func TestWalletCreatedEmptyOnFirstTouch(t *testing.T) {
	svc, f := newWalletService(t)

	w, err := svc.Get(f.user.ID)
	require.NoError(t, err)
	require.Zero(t, w.Balance)

	again, err := svc.Get(f.user.ID)
	require.NoError(t, err)
	require.Equal(t, w.ID, again.ID)
}

func TestTopUpAccumulates(t *testing.T) {
	svc, f := newWalletService(t)

	_, err := svc.TopUp(f.user.ID, 500)
	require.NoError(t, err)
	w, err := svc.TopUp(f.user.ID, 250)
	require.NoError(t, err)
	require.Equal(t, int64(750), w.Balance)

	txns, err := svc.Transactions(f.user.ID, 10)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	require.Equal(t, entity.WalletTxnTopUp, txns[0].Type)
	require.Equal(t, int64(250), txns[0].Amount)
}

func TestTopUpRejectsNonPositiveAmount(t *testing.T) {
	svc, f := newWalletService(t)

	_, err := svc.TopUp(f.user.ID, 0)
	require.ErrorIs(t, err, ErrBadAmount)
	_, err = svc.TopUp(f.user.ID, -100)
	require.ErrorIs(t, err, ErrBadAmount)
}

func TestDebitInsufficientBalance(t *testing.T) {
	svc, f := newWalletService(t)

	_, err := svc.TopUp(f.user.ID, 100)
	require.NoError(t, err)

	err = svc.Debit(svc.DB, f.user.ID, 200, 1)
	require.ErrorIs(t, err, ErrInsufficientBalance)

	w, err := svc.Get(f.user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), w.Balance)
}

func TestDebitRecordsNegativeAmount(t *testing.T) {
	svc, f := newWalletService(t)

	_, err := svc.TopUp(f.user.ID, 500)
	require.NoError(t, err)
	require.NoError(t, svc.Debit(svc.DB, f.user.ID, 300, 42))

	w, err := svc.Get(f.user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(200), w.Balance)

	txns, err := svc.Transactions(f.user.ID, 10)
	require.NoError(t, err)
	require.Equal(t, int64(-300), txns[0].Amount)
	require.Equal(t, entity.WalletTxnDebit, txns[0].Type)
}
