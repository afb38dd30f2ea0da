//go:build integration

package repository

// Run with: go test -tags integration ./internal/repository/... -v
// Needs a Docker daemon; each test gets a fresh migrated Postgres.

import (
	"context"
	"testing"
	"time"

	"gestorcash/internal/apierror"
	"gestorcash/internal/dto"
	"gestorcash/internal/infra"
	"gestorcash/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("gestorcash_test"),
		tcPostgres.WithUsername("gestorcash"),
		tcPostgres.WithPassword("gestorcash"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, infra.RunMigrations(dsn))
	// second run is a no-op
	require.NoError(t, infra.RunMigrations(dsn))

	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	return db
}

func strPtr(s string) *string { return &s }

func TestOpeningCountRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewOpeningCountRepository(db)
	ctx := context.Background()

	rec := &model.OpeningCount{
		RegisterID: strPtr("r1"),
		StoreID:    "s1",
		Amount:     decimal.RequireFromString("150.25"),
		Date:       "2024-06-01",
		UserID:     "u1",
		UserName:   "Ana",
	}
	require.NoError(t, repo.Create(ctx, rec))
	require.NotEmpty(t, rec.ID)
	require.False(t, rec.Timestamp.IsZero())

	got, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.StoreID, got.StoreID)
	assert.Equal(t, *rec.RegisterID, *got.RegisterID)
	assert.True(t, rec.Amount.Equal(got.Amount))
	assert.Equal(t, rec.Date, got.Date)

	// Replace keeps id and timestamp, even when the payload carries other values.
	got.Amount = decimal.RequireFromString("99.99")
	got.Timestamp = time.Now().Add(48 * time.Hour)
	require.NoError(t, repo.Replace(ctx, rec.ID, got))
	after, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("99.99").Equal(after.Amount))
	assert.WithinDuration(t, rec.Timestamp, after.Timestamp, time.Second)

	require.NoError(t, repo.Remove(ctx, rec.ID))
	_, err = repo.FindByID(ctx, rec.ID)
	var nf *apierror.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.ErrorAs(t, repo.Remove(ctx, rec.ID), &nf)
}

func TestExpensesNewestFirstAndStats(t *testing.T) {
	db := setupDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	for _, e := range []struct {
		item, cat, amount, date string
	}{
		{"A-item", model.CategoryStoreSupplies, "10", "2024-06-01"},
		{"B-item", model.CategoryTransport, "5", "2024-06-02"},
		{"C-item", model.CategoryStoreSupplies, "3", "2024-06-03"},
	} {
		require.NoError(t, repo.Create(ctx, &model.Expense{
			Category:    e.cat,
			Item:        e.item,
			Amount:      decimal.RequireFromString(e.amount),
			Description: "integration expense",
			StoreID:     strPtr("s1"),
			Date:        strPtr(e.date),
		}))
		time.Sleep(5 * time.Millisecond)
	}

	list, err := repo.List(ctx, dto.ExpenseFilter{Page: dto.DefaultPage()})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"C-item", "B-item", "A-item"}, []string{list[0].Item, list[1].Item, list[2].Item})

	ranged, err := repo.List(ctx, dto.ExpenseFilter{DateFrom: "2024-06-02", DateTo: "2024-06-03", Page: dto.DefaultPage()})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	paged, err := repo.List(ctx, dto.ExpenseFilter{Page: dto.Page{Skip: 1, Limit: 1}})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "B-item", paged[0].Item)

	all, err := repo.ListForStats(ctx, dto.ExpenseStatsFilter{StoreID: "s1"})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReportsMostRecentDayFirst(t *testing.T) {
	db := setupDB(t)
	repo := NewDailyReportRepository(db)
	ctx := context.Background()

	for _, d := range []string{"2024-06-02", "2024-06-03", "2024-06-01", "2024-06-03"} {
		require.NoError(t, repo.Create(ctx, &model.DailyReport{StoreID: "s1", Date: d}))
	}
	list, err := repo.List(ctx, dto.ReportFilter{StoreID: "s1", Page: dto.DefaultPage()})
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "2024-06-03", list[0].Date)
	assert.Equal(t, "2024-06-03", list[1].Date)
	assert.Equal(t, "2024-06-01", list[3].Date)
}

func TestUserEmailConflict(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{UID: "u1", Email: "ana@gestorcash.example", Role: model.RoleDM, Active: true}))

	err := repo.Create(ctx, &model.User{UID: "u2", Email: "ana@gestorcash.example", Role: model.RoleSM, Active: true})
	var ce *apierror.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Email already registered", ce.Detail)

	err = repo.Create(ctx, &model.User{UID: "u1", Email: "other@gestorcash.example", Role: model.RoleSM, Active: true})
	assert.ErrorAs(t, err, &ce)

	// inactive on insert stays inactive
	require.NoError(t, repo.Create(ctx, &model.User{UID: "u3", Email: "off@gestorcash.example", Role: model.RoleASM}))
	off, err := repo.FindByID(ctx, "u3")
	require.NoError(t, err)
	assert.False(t, off.Active)

	active, err := repo.List(ctx, dto.UserFilter{ActiveOnly: true, Page: dto.DefaultPage()})
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestStoreDeactivateTwice(t *testing.T) {
	db := setupDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Store{ID: "s1", Name: "Centro", Code: "CTR", Active: true}))
	require.NoError(t, repo.Remove(ctx, "s1"))
	require.NoError(t, repo.Remove(ctx, "s1"))

	got, err := repo.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, got.Active)

	err = repo.Create(ctx, &model.Store{ID: "s2", Name: "Norte", Code: "CTR", Active: true})
	var ce *apierror.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Store code already registered", ce.Detail)

	visible, err := repo.List(ctx, dto.StoreFilter{ActiveOnly: true, Page: dto.DefaultPage()})
	require.NoError(t, err)
	assert.Empty(t, visible)
	everything, err := repo.List(ctx, dto.StoreFilter{Page: dto.DefaultPage()})
	require.NoError(t, err)
	assert.Len(t, everything, 1)
}
