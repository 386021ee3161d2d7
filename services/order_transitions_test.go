package services_test

import (
	"testing"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *services.OrderService {
	return services.NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewRestaurantOrderRepository(db),
		repository.NewCatalogRepository(db),
	)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		kind, from, to string
		want           bool
	}{
		{services.OrderKindGrocery, entity.StatusPending, entity.StatusConfirmed, true},
		{services.OrderKindGrocery, entity.StatusConfirmed, entity.StatusOutForDelivery, true},
		{services.OrderKindGrocery, entity.StatusOutForDelivery, entity.StatusDelivered, true},
		{services.OrderKindGrocery, entity.StatusPending, entity.StatusDelivered, false},
		{services.OrderKindGrocery, entity.StatusPending, entity.StatusCancelled, true},
		{services.OrderKindGrocery, entity.StatusDelivered, entity.StatusCancelled, false},
		{services.OrderKindGrocery, entity.StatusPending, entity.StatusAccepted, false},

		{services.OrderKindRestaurant, entity.StatusPending, entity.StatusAccepted, true},
		{services.OrderKindRestaurant, entity.StatusAccepted, entity.StatusPreparing, true},
		{services.OrderKindRestaurant, entity.StatusPreparing, entity.StatusReady, true},
		{services.OrderKindRestaurant, entity.StatusReady, entity.StatusOutForDelivery, true},
		{services.OrderKindRestaurant, entity.StatusOutForDelivery, entity.StatusDelivered, true},
		{services.OrderKindRestaurant, entity.StatusPending, entity.StatusReady, false},
		{services.OrderKindRestaurant, entity.StatusPreparing, entity.StatusCancelled, true},
		{services.OrderKindRestaurant, entity.StatusCancelled, entity.StatusPending, false},
	}

	for _, tt := range tests {
		got := services.CanTransition(tt.kind, tt.from, tt.to)
		assert.Equal(t, tt.want, got, "%s %s -> %s", tt.kind, tt.from, tt.to)
	}
}

func TestOrderService_AdminConfirm_Guarded(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	order := entity.Order{UserID: 1, TotalAmount: 100, Status: entity.StatusPending}
	require.NoError(t, db.Create(&order).Error)

	require.NoError(t, svc.AdminConfirm(order.ID))

	var stored entity.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.StatusConfirmed, stored.Status)

	// confirm ซ้ำต้องชน guard
	assert.ErrorIs(t, svc.AdminConfirm(order.ID), services.ErrInvalidTransition)
}

func TestOrderService_AdminCancel_OnlyNonTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	pending := entity.Order{UserID: 1, Status: entity.StatusPending}
	delivered := entity.Order{UserID: 1, Status: entity.StatusDelivered}
	require.NoError(t, db.Create(&pending).Error)
	require.NoError(t, db.Create(&delivered).Error)

	require.NoError(t, svc.AdminCancel(pending.ID))
	assert.ErrorIs(t, svc.AdminCancel(delivered.ID), services.ErrInvalidTransition)
}

func TestOrderService_OwnerFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	owner := entity.User{Email: "owner@example.com", Role: "owner"}
	require.NoError(t, db.Create(&owner).Error)
	rest := entity.Restaurant{Name: "Thai Corner", UserID: owner.ID}
	require.NoError(t, db.Create(&rest).Error)

	order := entity.RestaurantOrder{UserID: 99, RestaurantID: rest.ID, TotalAmount: 120, Status: entity.StatusPending}
	require.NoError(t, db.Create(&order).Error)

	// เดินครบ chain ของร้าน
	require.NoError(t, svc.OwnerAccept(owner.ID, order.ID))
	require.NoError(t, svc.OwnerStartPreparing(owner.ID, order.ID))
	require.NoError(t, svc.OwnerMarkReady(owner.ID, order.ID))
	require.NoError(t, svc.OwnerHandoff(owner.ID, order.ID))
	require.NoError(t, svc.OwnerComplete(owner.ID, order.ID))

	var stored entity.RestaurantOrder
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.StatusDelivered, stored.Status)

	// terminal แล้ว cancel ไม่ได้
	assert.ErrorIs(t, svc.OwnerCancel(owner.ID, order.ID), services.ErrInvalidTransition)
}

func TestOrderService_OwnerForbiddenOnOtherRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	owner := entity.User{Email: "owner@example.com", Role: "owner"}
	stranger := entity.User{Email: "other@example.com", Role: "owner"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&stranger).Error)

	rest := entity.Restaurant{Name: "Thai Corner", UserID: owner.ID}
	require.NoError(t, db.Create(&rest).Error)
	order := entity.RestaurantOrder{UserID: 99, RestaurantID: rest.ID, Status: entity.StatusPending}
	require.NoError(t, db.Create(&order).Error)

	assert.ErrorIs(t, svc.OwnerAccept(stranger.ID, order.ID), services.ErrForbidden)
}

func TestOrderService_DeliveryFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	personID := uint(42)
	order := entity.Order{UserID: 1, Status: entity.StatusConfirmed, DeliveryPersonID: &personID}
	require.NoError(t, db.Create(&order).Error)

	// คนอื่นที่ไม่ได้ถูก assign ห้ามแตะ
	assert.ErrorIs(t, svc.DeliveryPickUp(7, order.ID), services.ErrForbidden)

	require.NoError(t, svc.DeliveryPickUp(personID, order.ID))
	require.NoError(t, svc.DeliveryComplete(personID, order.ID))

	var stored entity.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.StatusDelivered, stored.Status)
}

type recordingNotifier struct {
	updates []string
}

func (r *recordingNotifier) NotifyStatus(kind string, orderID uint, status string) {
	r.updates = append(r.updates, kind+":"+status)
}

func TestOrderService_NotifiesOnTransition(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	notifier := &recordingNotifier{}
	svc.Notifier = notifier

	order := entity.Order{UserID: 1, Status: entity.StatusPending}
	require.NoError(t, db.Create(&order).Error)

	require.NoError(t, svc.AdminConfirm(order.ID))
	assert.Equal(t, []string{"grocery:confirmed"}, notifier.updates)
}
