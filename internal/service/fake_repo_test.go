package service

import (
	"context"
	"errors"
	"fmt"

	"gestorcash/internal/apierror"
	"gestorcash/internal/dto"
	"gestorcash/internal/model"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

// memTable is a CRUD stub keyed by the record's id field. Generated ids are
// sequential so tests can predict them.
type memTable[T any, F any] struct {
	entity  string
	key     func(*T) *string
	rows    map[string]*T
	order   []string
	seq     int
	removed []string
	failOn  string
}

func newMemTable[T any, F any](entity string, key func(*T) *string) *memTable[T, F] {
	return &memTable[T, F]{entity: entity, key: key, rows: make(map[string]*T)}
}

func (m *memTable[T, F]) fail(op string) error {
	if m.failOn == op {
		return apierror.Storage(op, errors.New("connection reset"))
	}
	return nil
}

func (m *memTable[T, F]) Create(_ context.Context, rec *T) error {
	if err := m.fail("create"); err != nil {
		return err
	}
	id := m.key(rec)
	if *id == "" {
		m.seq++
		*id = fmt.Sprintf("gen-%d", m.seq)
	}
	if _, ok := m.rows[*id]; ok {
		return apierror.Conflict(m.entity, m.entity+" already exists")
	}
	cp := *rec
	m.rows[*id] = &cp
	m.order = append(m.order, *id)
	return nil
}

func (m *memTable[T, F]) FindByID(_ context.Context, id string) (*T, error) {
	rec, ok := m.rows[id]
	if !ok {
		return nil, apierror.NotFound(m.entity, id)
	}
	cp := *rec
	return &cp, nil
}

func (m *memTable[T, F]) List(_ context.Context, _ F) ([]T, error) {
	if err := m.fail("list"); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.rows[id])
	}
	return out, nil
}

func (m *memTable[T, F]) Replace(_ context.Context, id string, rec *T) error {
	if err := m.fail("replace"); err != nil {
		return err
	}
	if _, ok := m.rows[id]; !ok {
		return apierror.NotFound(m.entity, id)
	}
	cp := *rec
	m.rows[id] = &cp
	return nil
}

func (m *memTable[T, F]) Remove(_ context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return apierror.NotFound(m.entity, id)
	}
	m.removed = append(m.removed, id)
	return nil
}

type memExpenses struct {
	*memTable[model.Expense, dto.ExpenseFilter]
}

func newMemExpenses() *memExpenses {
	return &memExpenses{newMemTable[model.Expense, dto.ExpenseFilter]("Expense", func(e *model.Expense) *string { return &e.ID })}
}

func (m *memExpenses) ListForStats(ctx context.Context, _ dto.ExpenseStatsFilter) ([]model.Expense, error) {
	return m.List(ctx, dto.ExpenseFilter{})
}

type stubMailer struct {
	enabled bool
	err     error
	sent    []string
	files   []string
}

func (s *stubMailer) Enabled() bool { return s.enabled }

func (s *stubMailer) SendPDF(to, _, _, fileName string, _ []byte) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	s.files = append(s.files, fileName)
	return nil
}
