package postgres

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_FindProfileByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).
		WithArgs(id.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "kyc_status", "preferred_currency"}).
			AddRow(id.String(), "amara@example.com", "vendor", "APPROVED", "AED"))

	profile, err := repo.FindProfileByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, entity.RoleVendor, profile.Role)
	assert.Equal(t, entity.KYCStatusApproved, profile.KYCStatus)
}

func TestProfileRepository_FindProfileByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	profile, err := repo.FindProfileByID(context.Background(), uuid.New())

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_UpdateKYCStatus_NoRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectExec(`UPDATE "profiles" SET .*"kyc_status"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateKYCStatus(context.Background(), uuid.New(), entity.KYCStatusPending)

	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProductRepository_UpdateInventoryQuantity(t *testing.T) {
	tests := []struct {
		name     string
		returned *int
		count    int64
		want     int
		wantErr  error
	}{
		{name: "reserved", returned: intPtr(3), want: 3},
		{name: "insufficient", count: 1, wantErr: repository.ErrInsufficientInventory},
		{name: "missing product", count: 0, wantErr: repository.ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewProductRepository(db)

			rows := sqlmock.NewRows([]string{"inventory_quantity"})
			if tt.returned != nil {
				rows.AddRow(*tt.returned)
			}
			mock.ExpectQuery(`UPDATE vendor_products\s+SET inventory_quantity = inventory_quantity \+ \$1`).
				WillReturnRows(rows)
			if tt.returned == nil {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "vendor_products"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))
			}

			quantity, err := repo.UpdateInventoryQuantity(context.Background(), uuid.New(), -2)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, quantity)
		})
	}
}

func TestGroupBuyRepository_IncrementParticipants_Rejected(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	columns := []string{"id", "status", "min_participants", "max_participants", "current_participants", "ends_at"}

	tests := []struct {
		name    string
		row     []driver.Value
		wantErr error
	}{
		{
			name:    "full",
			row:     []driver.Value{"OPEN", 2, 5, 5, now.Add(time.Hour)},
			wantErr: repository.ErrGroupBuyFull,
		},
		{
			name:    "ended",
			row:     []driver.Value{"OPEN", 2, 5, 1, now.Add(-time.Minute)},
			wantErr: repository.ErrGroupBuyClosed,
		},
		{
			name:    "cancelled",
			row:     []driver.Value{"CANCELLED", 2, 5, 1, now.Add(time.Hour)},
			wantErr: repository.ErrGroupBuyClosed,
		},
		{
			name:    "missing",
			wantErr: repository.ErrGroupBuyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewGroupBuyRepository(db)
			dealID := uuid.New()

			mock.ExpectExec(`UPDATE "group_buy_deals" SET "current_participants"=current_participants \+ 1`).
				WillReturnResult(sqlmock.NewResult(0, 0))
			rows := sqlmock.NewRows(columns)
			if tt.row != nil {
				rows.AddRow(append([]driver.Value{dealID.String()}, tt.row...)...)
			}
			mock.ExpectQuery(`SELECT \* FROM "group_buy_deals" WHERE id = \$1`).WillReturnRows(rows)

			deal, err := repo.IncrementParticipants(context.Background(), dealID, now)

			assert.Nil(t, deal)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGroupBuyRepository_IncrementParticipants_Reloads(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGroupBuyRepository(db)
	dealID := uuid.New()

	mock.ExpectExec(`UPDATE "group_buy_deals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "group_buy_deals" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "min_participants", "current_participants", "deal_price"}).
			AddRow(dealID.String(), "OPEN", 5, 4, "80.0000"))

	deal, err := repo.IncrementParticipants(context.Background(), dealID, time.Now())

	require.NoError(t, err)
	assert.Equal(t, dealID, deal.ID)
	assert.Equal(t, 4, deal.CurrentParticipants)
	assert.Equal(t, "80", deal.DealPrice.String())
}

func TestGroupBuyRepository_AddParticipant_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGroupBuyRepository(db)

	mock.ExpectExec(`INSERT INTO "group_buy_participants"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "group_buy_participants_pkey" (SQLSTATE 23505)`))

	err := repo.AddParticipant(context.Background(), &entity.GroupBuyParticipant{
		DealID:   uuid.New(),
		UserID:   uuid.New(),
		Quantity: 1,
		JoinedAt: time.Now(),
	})

	assert.ErrorIs(t, err, repository.ErrAlreadyJoined)
}

func TestPaymentRepository_RecordWebhookEvent(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{name: "first delivery", rows: sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString())},
		{name: "replayed delivery", rows: sqlmock.NewRows([]string{"id"}), wantErr: repository.ErrDuplicateWebhookEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPaymentRepository(db)

			mock.ExpectQuery(`INSERT INTO "payment_webhook_events" .* ON CONFLICT \("provider","event_id"\) DO NOTHING`).
				WillReturnRows(tt.rows)

			err := repo.RecordWebhookEvent(context.Background(), &entity.PaymentWebhookEvent{
				ID:          uuid.New(),
				Provider:    entity.ProviderCheckout,
				EventID:     "evt_123",
				EventType:   "payment_captured",
				Payload:     []byte(`{"id":"evt_123"}`),
				ProcessedAt: time.Now(),
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNotificationQueueRepository_ClaimDue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationQueueRepository(db)
	now := time.Now()
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "notification_queue" WHERE \(status = \$1 AND next_attempt_at <= \$2\) OR \(status = \$3 AND updated_at < \$4\) ORDER BY next_attempt_at ASC LIMIT \$5 FOR UPDATE SKIP LOCKED`).
		WithArgs(string(entity.QueueStatusPending), sqlmock.AnyArg(), string(entity.QueueStatusProcessing), sqlmock.AnyArg(), 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "channels", "variables", "status", "attempts", "next_attempt_at"}).
			AddRow(first.String(), uuid.NewString(), "ORDER", []byte(`["PUSH","EMAIL"]`), []byte(`{"order":"A-1"}`), "PENDING", 0, now).
			AddRow(second.String(), uuid.NewString(), "PAYMENT", []byte(`["IN_APP"]`), []byte(`{}`), "PROCESSING", 2, now.Add(-time.Hour)))
	mock.ExpectExec(`UPDATE "notification_queue" SET .*"status"=\$\d.* WHERE id IN \(\$\d,\$\d\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	items, err := repo.ClaimDue(context.Background(), now, now.Add(-10*time.Minute), 10)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].ID)
	assert.Equal(t, entity.QueueStatusProcessing, items[0].Status)
	assert.Equal(t, []entity.Channel{entity.ChannelPush, entity.ChannelEmail}, items[0].Channels)
	assert.Equal(t, "A-1", items[0].Variables["order"])
	assert.Equal(t, 2, items[1].Attempts)
	assert.Equal(t, entity.QueueStatusProcessing, items[1].Status, "an expired lease is claimed again")
}

func TestNotificationQueueRepository_ClaimDue_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationQueueRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "notification_queue"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	items, err := repo.ClaimDue(context.Background(), time.Now(), time.Now().Add(-time.Minute), 10)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNotificationQueueRepository_Release(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationQueueRepository(db)
	first, second := uuid.New(), uuid.New()

	mock.ExpectExec(`UPDATE "notification_queue" SET "next_attempt_at"=\$1,"status"=\$2,"updated_at"=\$3 WHERE id IN \(\$4,\$5\) AND status = \$6`).
		WithArgs(sqlmock.AnyArg(), string(entity.QueueStatusPending), sqlmock.AnyArg(), first.String(), second.String(), string(entity.QueueStatusProcessing)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Release(context.Background(), []uuid.UUID{first, second}, time.Now()))
	require.NoError(t, repo.Release(context.Background(), nil, time.Now()), "nothing to release issues no query")
}

func TestNotificationQueueRepository_MarkFailed_TruncatesError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationQueueRepository(db)

	longErr := make([]byte, maxLastErrorLength+50)
	for i := range longErr {
		longErr[i] = 'x'
	}

	mock.ExpectExec(`UPDATE "notification_queue" SET`).
		WithArgs(5, string(longErr[:maxLastErrorLength]), sqlmock.AnyArg(), string(entity.QueueStatusFailed), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(context.Background(), uuid.New(), 5, string(longErr), time.Now())

	require.NoError(t, err)
}

func TestNotificationQueueRepository_HasRecent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationQueueRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notification_queue" WHERE .*user_id = \$1 AND created_at >= \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	found, err := repo.HasRecent(context.Background(), uuid.New(), map[string]string{"order_id": uuid.NewString()}, time.Now().Add(-time.Minute))

	require.NoError(t, err)
	assert.True(t, found)
}

func TestNotificationQueueRepository_HasRecent_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationQueueRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notification_queue"`).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.HasRecent(context.Background(), uuid.New(), nil, time.Now())

	require.Error(t, err)
}

func TestDeviceRepository_DeactivateDevicesByTokens(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`UPDATE "user_devices" SET .* WHERE \(fcm_token IN \(\$\d,\$\d\) AND is_active = \$\d\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	affected, err := repo.DeactivateDevicesByTokens(context.Background(), []string{"stale-1", "stale-2"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}

func TestDeviceRepository_DeactivateDevicesByTokens_NoTokens(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewDeviceRepository(db)

	affected, err := repo.DeactivateDevicesByTokens(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestDeviceRepository_RefreshDevice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`UPDATE "user_devices" SET "app_version"=\$1,"fcm_token"=\$2,"is_active"=\$3,"last_seen_at"=\$4,"updated_at"=\$5 WHERE id = \$6`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RefreshDevice(context.Background(), uuid.New(), repository.DeviceRefresh{FCMToken: "fresh", AppVersion: "2.4.0"})

	require.NoError(t, err)
}

func TestDeviceRepository_RefreshDevice_KeepsAppVersionWhenEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(`UPDATE "user_devices" SET "fcm_token"=\$1,"is_active"=\$2,"last_seen_at"=\$3,"updated_at"=\$4 WHERE id = \$5`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RefreshDevice(context.Background(), uuid.New(), repository.DeviceRefresh{FCMToken: "fresh"})

	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestVendorRepository_AddFollower(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "vendor_followers"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "vendors" SET "follower_count"=follower_count \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AddFollower(context.Background(), &entity.VendorFollower{
		VendorID:  uuid.New(),
		UserID:    uuid.New(),
		CreatedAt: time.Now(),
	})

	require.NoError(t, err)
}

func TestVendorRepository_AddFollower_AlreadyFollowing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "vendor_followers"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "vendor_followers_pkey" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	err := repo.AddFollower(context.Background(), &entity.VendorFollower{VendorID: uuid.New(), UserID: uuid.New()})

	assert.ErrorIs(t, err, repository.ErrAlreadyFollowing)
}

func TestVendorRepository_RemoveFollower_NotFollowing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "vendor_followers"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.RemoveFollower(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrNotFollowing)
}

func TestListingRepository_SearchListings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "listings" WHERE status = \$1 AND \(title ILIKE \$2 OR description ILIKE \$3\) AND .*latitude BETWEEN \$\d AND \$\d.* ORDER BY created_at DESC LIMIT \$\d`).
		WithArgs("ACTIVE", `%sofa\_set%`, `%sofa\_set%`, 24.9, 25.3, 55.1, 55.5, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seller_id", "title", "price", "currency", "status", "images", "latitude", "longitude"}).
			AddRow(id.String(), uuid.NewString(), "Sofa set", "450.5000", "AED", "ACTIVE", []byte(`["a.jpg","b.jpg"]`), 25.2, 55.3))

	listings, err := repo.SearchListings(context.Background(), &entity.ListingFilter{
		Query:  " sofa_set ",
		Status: entity.ListingStatusActive,
		Limit:  20,
	}, &repository.BoundingBox{MinLat: 24.9, MaxLat: 25.3, MinLon: 55.1, MaxLon: 55.5})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, id, listings[0].ID)
	assert.Equal(t, "450.5", listings[0].Price.String())
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, listings[0].Images)
	require.NotNil(t, listings[0].Latitude)
	assert.InDelta(t, 25.2, *listings[0].Latitude, 0.0001)
}

func TestListingRepository_UpdateListingStatus_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)

	mock.ExpectExec(`UPDATE "listings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateListingStatus(context.Background(), uuid.New(), entity.ListingStatusActive, entity.ListingStatusSold)

	assert.ErrorIs(t, err, repository.ErrListingStatusConflict)
}

func TestSearchQueryRepository_PopularSearches(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSearchQueryRepository(db)

	mock.ExpectQuery(`SELECT lower\(trim\(query\)\) AS query, count\(\*\) AS count FROM "search_queries" .*GROUP BY lower\(trim\(query\)\)`).
		WillReturnRows(sqlmock.NewRows([]string{"query", "count"}).
			AddRow("iphone", 12).
			AddRow("sofa", 4))

	popular, err := repo.PopularSearches(context.Background(), time.Now().Add(-24*time.Hour), 5)

	require.NoError(t, err)
	assert.Equal(t, []*entity.PopularSearch{{Query: "iphone", Count: 12}, {Query: "sofa", Count: 4}}, popular)
}

func TestEscrowRepository_FindDueForAutoRelease(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEscrowRepository(db)
	escrowID := uuid.New()

	mock.ExpectQuery(`JOIN orders ON orders.id = escrow_accounts.order_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "status", "amount", "currency"}).
			AddRow(escrowID.String(), uuid.NewString(), "FUNDED", "99.9900", "EUR"))

	due, err := repo.FindDueForAutoRelease(context.Background(), time.Now(), 50)

	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, escrowID, due[0].ID)
	assert.Equal(t, entity.EscrowStatusFunded, due[0].Status)
}

func TestEscrowRepository_FindEscrowByTransactionIDForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEscrowRepository(db)
	escrowID, txnID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "escrow_accounts" WHERE transaction_id = \$1 LIMIT \$2 FOR UPDATE`).
		WithArgs(txnID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "transaction_id", "status"}).
			AddRow(escrowID.String(), txnID.String(), "PENDING"))

	escrow, err := repo.FindEscrowByTransactionIDForUpdate(context.Background(), txnID)

	require.NoError(t, err)
	assert.Equal(t, escrowID, escrow.ID)
	assert.Equal(t, txnID, *escrow.TransactionID)
}

func TestEscrowRepository_CreateEscrow_SecondLiveEscrow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEscrowRepository(db)

	mock.ExpectQuery(`INSERT INTO "escrow_accounts"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_escrow_accounts_live_order" (SQLSTATE 23505)`))

	err := repo.CreateEscrow(context.Background(), &entity.EscrowAccount{
		OrderID:  uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Currency: "EUR",
		Status:   entity.EscrowStatusPending,
	})

	assert.ErrorIs(t, err, repository.ErrLiveEscrowExists)
}

func TestPaymentRepository_FindOpenTransactionByOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)
	orderID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "payment_transactions" WHERE order_id = \$1 AND status IN \(\$2,\$3,\$4\) ORDER BY created_at DESC`).
		WithArgs(orderID.String(), "PENDING", "PROCESSING", "PENDING_VERIFICATION", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindOpenTransactionByOrder(context.Background(), orderID)

	assert.ErrorIs(t, err, repository.ErrPaymentNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\tmp`, escapeLike(`c:\tmp`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestConstraintHelpers(t *testing.T) {
	unique := errors.New(`ERROR: duplicate key value violates unique constraint "vendors_owner_id_key" (SQLSTATE 23505)`)
	fk := errors.New(`ERROR: insert or update on table "orders" violates foreign key constraint (SQLSTATE 23503)`)
	check := errors.New(`ERROR: new row violates check constraint "chk_inventory" (SQLSTATE 23514)`)

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.False(t, isUniqueConstraintViolation(fk))
	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(fk, "create order")))
	assert.True(t, isCheckConstraintViolation(check))
	assert.False(t, isNotNullConstraintViolation(nil))
}

func intPtr(v int) *int {
	return &v
}
