package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestorcash/internal/apierror"
	"gestorcash/internal/dto"
	"gestorcash/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func openingReq(amount string) dto.OpeningCountRequest {
	return dto.OpeningCountRequest{
		StoreID:  "s1",
		Amount:   decimal.RequireFromString(amount),
		Date:     "2024-06-01",
		UserID:   "u1",
		UserName: "Ana",
	}
}

func TestOpeningCountUpdateKeepsIDAndTimestamp(t *testing.T) {
	repo := newMemTable[model.OpeningCount, dto.CountFilter]("Opening count", func(o *model.OpeningCount) *string { return &o.ID })
	svc := NewOpeningCountService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, openingReq("150.00"))
	require.NoError(t, err)
	stamp := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	repo.rows[created.ID].Timestamp = stamp

	updated, err := svc.Update(ctx, created.ID, openingReq("175.50"))
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, stamp, updated.Timestamp)
	assert.True(t, decimal.RequireFromString("175.50").Equal(updated.Amount))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("175.50").Equal(got.Amount))
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	repo := newMemTable[model.ClosingCount, dto.CountFilter]("Closing count", func(c *model.ClosingCount) *string { return &c.ID })
	svc := NewClosingCountService(repo)

	_, err := svc.Update(context.Background(), "nope", dto.ClosingCountRequest{StoreID: "s1"})
	var nf *apierror.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Closing count", nf.Entity)
	assert.Empty(t, repo.rows)
}

func TestDeleteConfirmsExistence(t *testing.T) {
	repo := newMemTable[model.OpeningCount, dto.CountFilter]("Opening count", func(o *model.OpeningCount) *string { return &o.ID })
	svc := NewOpeningCountService(repo)

	err := svc.Delete(context.Background(), "missing")
	var nf *apierror.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Empty(t, repo.removed)
}

func TestListPropagatesStorageError(t *testing.T) {
	repo := newMemTable[model.DailyReport, dto.ReportFilter]("Daily report", func(r *model.DailyReport) *string { return &r.ID })
	repo.failOn = "list"
	svc := NewDailyReportService(repo, nil, nil)

	_, err := svc.List(context.Background(), dto.ReportFilter{})
	var se *apierror.StorageError
	assert.ErrorAs(t, err, &se)
}

func TestExpenseDateDefaultsToToday(t *testing.T) {
	repo := newMemExpenses()
	svc := NewExpenseService(repo).(*expenseService)
	svc.today = func() string { return "2024-06-03" }
	ctx := context.Background()

	req := dto.ExpenseRequest{
		Category:    model.CategoryPaperwork,
		Item:        "Stamps",
		Amount:      decimal.RequireFromString("4.20"),
		Description: "Stamps for supplier invoices",
	}
	withoutDate, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, withoutDate.Date)
	assert.Equal(t, "2024-06-03", *withoutDate.Date)

	req.Date = ptr("2024-05-30")
	withDate, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-30", *withDate.Date)
}

func TestExpenseStatsByCategory(t *testing.T) {
	repo := newMemExpenses()
	svc := NewExpenseService(repo)
	ctx := context.Background()

	for _, e := range []struct{ cat, amount string }{
		{model.CategoryMaintenance, "10.10"},
		{model.CategoryMaintenance, "0.20"},
		{model.CategoryTransport, "7.00"},
	} {
		_, err := svc.Create(ctx, dto.ExpenseRequest{
			Category:    e.cat,
			Item:        "item",
			Amount:      decimal.RequireFromString(e.amount),
			Description: "some description",
		})
		require.NoError(t, err)
	}

	stats, err := svc.StatsByCategory(ctx, dto.ExpenseStatsFilter{})
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 2, stats[model.CategoryMaintenance].Count)
	assert.Equal(t, "10.3", stats[model.CategoryMaintenance].Total.String())
	assert.Equal(t, 1, stats[model.CategoryTransport].Count)
	_, ok := stats[model.CategoryPaperwork]
	assert.False(t, ok)
}

func TestAggregateByCategoryEmpty(t *testing.T) {
	stats := AggregateByCategory(nil)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestUserActiveDefaults(t *testing.T) {
	repo := newMemTable[model.User, dto.UserFilter]("User", func(u *model.User) *string { return &u.UID })
	svc := NewUserService(repo)
	ctx := context.Background()

	on, err := svc.Create(ctx, dto.CreateUserRequest{UID: "u1", UserRequest: dto.UserRequest{Email: "a@x.io", Role: model.RoleDM}})
	require.NoError(t, err)
	assert.True(t, on.Active)

	off, err := svc.Create(ctx, dto.CreateUserRequest{UID: "u2", UserRequest: dto.UserRequest{Email: "b@x.io", Role: model.RoleSM, Active: ptr(false)}})
	require.NoError(t, err)
	assert.False(t, off.Active)

	// full replace: omitting active on update restores the default
	back, err := svc.Update(ctx, "u2", dto.UserRequest{Email: "b@x.io", Role: model.RoleASM})
	require.NoError(t, err)
	assert.True(t, back.Active)
	assert.Equal(t, "u2", back.UID)
	assert.Equal(t, model.RoleASM, back.Role)
}

func TestUserCreateDuplicateUID(t *testing.T) {
	repo := newMemTable[model.User, dto.UserFilter]("User", func(u *model.User) *string { return &u.UID })
	svc := NewUserService(repo)
	ctx := context.Background()
	req := dto.CreateUserRequest{UID: "u1", UserRequest: dto.UserRequest{Email: "a@x.io", Role: model.RoleDM}}

	_, err := svc.Create(ctx, req)
	require.NoError(t, err)
	_, err = svc.Create(ctx, req)
	var ce *apierror.ConflictError
	assert.ErrorAs(t, err, &ce)
}

func TestStoreAndRegisterUseCallerIDs(t *testing.T) {
	stores := newMemTable[model.Store, dto.StoreFilter]("Store", func(s *model.Store) *string { return &s.ID })
	registers := newMemTable[model.CashRegister, dto.CashRegisterFilter]("Cash register", func(r *model.CashRegister) *string { return &r.ID })
	ctx := context.Background()

	st, err := NewStoreService(stores).Create(ctx, dto.CreateStoreRequest{ID: "s-001", StoreRequest: dto.StoreRequest{Name: "Centro", Code: "CTR"}})
	require.NoError(t, err)
	assert.Equal(t, "s-001", st.ID)
	assert.True(t, st.Active)

	regs := NewCashRegisterService(registers)
	reg, err := regs.Create(ctx, dto.CreateCashRegisterRequest{ID: "r-1", CashRegisterRequest: dto.CashRegisterRequest{StoreID: "s-001", Number: 1}})
	require.NoError(t, err)
	assert.Equal(t, "r-1", reg.ID)

	require.NoError(t, regs.Delete(ctx, "r-1"))
	assert.Equal(t, []string{"r-1"}, registers.removed)
}

func newReports(mailer ReportMailer) (*memTable[model.DailyReport, dto.ReportFilter], DailyReportService) {
	repo := newMemTable[model.DailyReport, dto.ReportFilter]("Daily report", func(r *model.DailyReport) *string { return &r.ID })
	render := func(r *model.DailyReport) ([]byte, error) { return []byte("%PDF-" + r.ID), nil }
	return repo, NewDailyReportService(repo, render, mailer)
}

func TestReportPDF(t *testing.T) {
	_, svc := newReports(nil)
	ctx := context.Background()

	r, err := svc.Create(ctx, dto.DailyReportRequest{StoreID: "s1", Date: "2024-06-01"})
	require.NoError(t, err)

	name, pdf, err := svc.PDF(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "report-s1-2024-06-01.pdf", name)
	assert.Equal(t, "%PDF-"+r.ID, string(pdf))

	_, _, err = svc.PDF(ctx, "missing")
	var nf *apierror.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestReportEmail(t *testing.T) {
	ctx := context.Background()
	to := dto.EmailReportRequest{To: "dm@gestorcash.example"}

	t.Run("sends attachment", func(t *testing.T) {
		mailer := &stubMailer{enabled: true}
		_, svc := newReports(mailer)
		r, err := svc.Create(ctx, dto.DailyReportRequest{StoreID: "s1", Date: "2024-06-01"})
		require.NoError(t, err)

		require.NoError(t, svc.Email(ctx, r.ID, to))
		assert.Equal(t, []string{"dm@gestorcash.example"}, mailer.sent)
		assert.Equal(t, []string{"report-s1-2024-06-01.pdf"}, mailer.files)
	})

	t.Run("missing report wins over disabled mail", func(t *testing.T) {
		_, svc := newReports(&stubMailer{})
		err := svc.Email(ctx, "missing", to)
		var nf *apierror.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("disabled", func(t *testing.T) {
		_, svc := newReports(&stubMailer{})
		r, err := svc.Create(ctx, dto.DailyReportRequest{StoreID: "s1", Date: "2024-06-01"})
		require.NoError(t, err)
		assert.ErrorIs(t, svc.Email(ctx, r.ID, to), ErrMailDisabled)
	})

	t.Run("smtp failure", func(t *testing.T) {
		_, svc := newReports(&stubMailer{enabled: true, err: errors.New("421 try later")})
		r, err := svc.Create(ctx, dto.DailyReportRequest{StoreID: "s1", Date: "2024-06-01"})
		require.NoError(t, err)
		err = svc.Email(ctx, r.ID, to)
		assert.ErrorIs(t, err, ErrMailUnavailable)
		assert.ErrorContains(t, err, "421")
	})
}

func TestAggregateByCategoryExample(t *testing.T) {
	expenses := []model.Expense{
		{Category: model.CategoryStoreSupplies, Amount: decimal.NewFromInt(10)},
		{Category: model.CategoryTransport, Amount: decimal.NewFromInt(5)},
		{Category: model.CategoryStoreSupplies, Amount: decimal.NewFromInt(3)},
	}
	stats := AggregateByCategory(expenses)

	require.Len(t, stats, 2)
	assert.Equal(t, 2, stats[model.CategoryStoreSupplies].Count)
	assert.True(t, decimal.NewFromInt(13).Equal(stats[model.CategoryStoreSupplies].Total))
	assert.Equal(t, 1, stats[model.CategoryTransport].Count)
	assert.True(t, decimal.NewFromInt(5).Equal(stats[model.CategoryTransport].Total))
}
