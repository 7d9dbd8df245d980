package services

import (
	"testing"

	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/configs"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/entity"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/repository"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/session"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	require.NoError(t, configs.SeedLookups(db, zap.NewNop()))
	return db
}

type fixtures struct {
	user  entity.User
	cafe  entity.Cafe
	other entity.Cafe
	latte entity.Menu
	scone entity.Menu
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()
	f := fixtures{
		user:  entity.User{Email: "dana@example.com", Name: "Dana", Verified: true},
		cafe:  entity.Cafe{Name: "North Campus Cafe", Location: "North Campus"},
		other: entity.Cafe{Name: "South Campus Cafe", Location: "South Campus"},
	}
	require.NoError(t, db.Create(&f.user).Error)
	require.NoError(t, db.Create(&f.cafe).Error)
	require.NoError(t, db.Create(&f.other).Error)

	f.latte = entity.Menu{MenuName: "Latte", Price: 450, CafeID: f.cafe.ID}
	f.scone = entity.Menu{MenuName: "Scone", Price: 300, CafeID: f.other.ID}
	require.NoError(t, db.Create(&f.latte).Error)
	require.NoError(t, db.Create(&f.scone).Error)
	return f
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	log := zap.NewNop()
	email := NewEmailService(&configs.Config{MailFrom: "no-reply@test"}, log)
	wallet := NewWalletService(db, repository.NewWalletRepository(db))
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewCafeRepository(db),
		wallet,
		email,
		repository.NewUserRepository(db),
		log,
	)
}

func line(m entity.Menu, qty int) session.CartLine {
	return session.CartLine{
		Item: session.Item{ID: m.ID, Name: m.MenuName, Price: m.Price, RestaurantID: m.CafeID},
		Qty:  qty,
	}
}

func TestCheckoutPricesFromDatabase(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := newOrderService(t, db)

	// stale cart price must not leak into the order
	stale := line(f.latte, 2)
	stale.Price = 1

	res, err := svc.Checkout(f.user.ID, []session.CartLine{stale}, f.cafe.ID, &CheckoutReq{})
	require.NoError(t, err)
	require.Equal(t, int64(900), res.Total)
	require.Contains(t, res.Reference, "CC-")

	var order entity.Order
	require.NoError(t, db.Preload("OrderItems").First(&order, res.ID).Error)
	require.Equal(t, svc.Status.Placed, order.OrderStatusID)
	require.Len(t, order.OrderItems, 1)
	require.Equal(t, int64(450), order.OrderItems[0].UnitPrice)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := newOrderService(t, db)

	_, err := svc.Checkout(f.user.ID, nil, f.cafe.ID, &CheckoutReq{})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutRejectsMenuFromOtherCafe(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := newOrderService(t, db)

	_, err := svc.Checkout(f.user.ID, []session.CartLine{line(f.scone, 1)}, f.cafe.ID, &CheckoutReq{})
	require.ErrorIs(t, err, ErrMenuNotInCafe)
}

func TestCheckoutUnknownCafe(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := newOrderService(t, db)

	_, err := svc.Checkout(f.user.ID, []session.CartLine{line(f.latte, 1)}, 999, &CheckoutReq{})
	require.ErrorIs(t, err, ErrCafeNotFound)
}

func TestCheckoutWalletPayment(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := newOrderService(t, db)

	_, err := svc.Wallet.TopUp(f.user.ID, 1000)
	require.NoError(t, err)

	res, err := svc.Checkout(f.user.ID, []session.CartLine{line(f.latte, 2)}, f.cafe.ID, &CheckoutReq{PayWallet: true})
	require.NoError(t, err)

	w, err := svc.Wallet.Get(f.user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), w.Balance)

	txns, err := svc.Wallet.Transactions(f.user.ID, 10)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	require.Equal(t, entity.WalletTxnDebit, txns[0].Type)
	require.NotNil(t, txns[0].OrderID)
	require.Equal(t, res.ID, *txns[0].OrderID)
}

func TestCheckoutInsufficientWalletRollsBack(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := newOrderService(t, db)

	_, err := svc.Wallet.TopUp(f.user.ID, 100)
	require.NoError(t, err)

	_, err = svc.Checkout(f.user.ID, []session.CartLine{line(f.latte, 2)}, f.cafe.ID, &CheckoutReq{PayWallet: true})
	require.ErrorIs(t, err, ErrInsufficientBalance)

	// the order must not survive the failed payment
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	require.Zero(t, count)

	w, err := svc.Wallet.Get(f.user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), w.Balance)
}

type recordedStatus struct {
	userID, orderID, statusID uint
	name                      string
}

type fakeBroadcaster struct {
	events []recordedStatus
}

func (f *fakeBroadcaster) OrderStatusChanged(userID, orderID, statusID uint, statusName string) {
	f.events = append(f.events, recordedStatus{userID, orderID, statusID, statusName})
}

func TestAdvanceFollowsTransitions(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := newOrderService(t, db)
	bc := &fakeBroadcaster{}
	svc.Broadcast = bc

	res, err := svc.Checkout(f.user.ID, []session.CartLine{line(f.latte, 1)}, f.cafe.ID, &CheckoutReq{})
	require.NoError(t, err)

	// Placed straight to Completed is not a legal move
	require.ErrorIs(t, svc.Advance(res.ID, svc.Status.Completed), ErrInvalidTransition)

	require.NoError(t, svc.Advance(res.ID, svc.Status.Preparing))
	require.NoError(t, svc.Advance(res.ID, svc.Status.Ready))
	require.NoError(t, svc.Advance(res.ID, svc.Status.Completed))

	// repeating a consumed transition fails the guard
	require.ErrorIs(t, svc.Advance(res.ID, svc.Status.Preparing), ErrInvalidTransition)

	require.Len(t, bc.events, 3)
	require.Equal(t, "Preparing", bc.events[0].name)
	require.Equal(t, "Completed", bc.events[2].name)
	require.Equal(t, f.user.ID, bc.events[0].userID)
}

func TestAdvanceCancelOnlyFromPlaced(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := newOrderService(t, db)

	res, err := svc.Checkout(f.user.ID, []session.CartLine{line(f.latte, 1)}, f.cafe.ID, &CheckoutReq{})
	require.NoError(t, err)

	require.NoError(t, svc.Advance(res.ID, svc.Status.Preparing))
	require.ErrorIs(t, svc.Advance(res.ID, svc.Status.Cancelled), ErrInvalidTransition)
}
