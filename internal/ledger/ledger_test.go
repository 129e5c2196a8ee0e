package ledger

import (
	"context"
	"testing"
	"time"

	"mybudget/internal/core"
	"mybudget/internal/store/memory"
)

func expense(amount float64) core.Transaction {
	return core.Transaction{
		Amount:   core.NewAmount(amount),
		Category: core.CategoryFood,
		Type:     core.Expense,
		Date:     core.NewDate(time.Now()),
	}
}

func TestListEmptyStore(t *testing.T) {
	l := New(memory.New(nil), nil)
	txns := l.List(context.Background())
	if txns == nil || len(txns) != 0 {
		t.Fatalf("expected empty list, got %v", txns)
	}
}

func TestAddLocalAppendsInOrder(t *testing.T) {
	l := New(memory.New(nil), nil)
	ctx := context.Background()

	first, err := l.AddLocal(ctx, expense(1))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := l.AddLocal(ctx, expense(2))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	txns := l.List(ctx)
	if len(txns) != 2 {
		t.Fatalf("len = %d, want 2", len(txns))
	}
	if txns[0].ID != first.ID || txns[1].ID != second.ID {
		t.Fatalf("append order broken: %v", txns)
	}
}

func TestAddLocalAssignsIDAndDate(t *testing.T) {
	l := New(memory.New(nil), nil)

	tx := core.Transaction{Amount: core.NewAmount(5), Category: core.CategoryOther, Type: core.Income}
	got, err := l.AddLocal(context.Background(), tx)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if got.Date.IsZero() {
		t.Fatalf("expected generated date")
	}
}

func TestAddLocalRejectsInvalid(t *testing.T) {
	l := New(memory.New(nil), nil)
	ctx := context.Background()

	if _, err := l.AddLocal(ctx, expense(-1)); err != core.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if len(l.List(ctx)) != 0 {
		t.Fatalf("rejected transaction must not be cached")
	}
}

func TestReplaceWithRemote(t *testing.T) {
	l := New(memory.New(nil), nil)
	ctx := context.Background()

	l.AddLocal(ctx, expense(1)) // local-only entry, about to be discarded
	remote := []core.Transaction{expense(10), expense(20)}
	if !l.ReplaceWithRemote(ctx, remote) {
		t.Fatalf("replace failed")
	}

	txns := l.List(ctx)
	if len(txns) != 2 {
		t.Fatalf("len = %d, want 2 (wholesale overwrite)", len(txns))
	}
}

func TestReplaceWithRemoteIdempotent(t *testing.T) {
	l := New(memory.New(nil), nil)
	ctx := context.Background()

	remote := []core.Transaction{expense(10), expense(20), expense(30)}
	l.ReplaceWithRemote(ctx, remote)
	once := l.List(ctx)
	l.ReplaceWithRemote(ctx, remote)
	twice := l.List(ctx)

	if len(once) != len(twice) {
		t.Fatalf("idempotence broken: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Amount.Equal(twice[i].Amount) {
			t.Fatalf("entry %d differs after second replace", i)
		}
	}
}

func TestReplaceWithRemoteNil(t *testing.T) {
	l := New(memory.New(nil), nil)
	ctx := context.Background()

	l.AddLocal(ctx, expense(1))
	l.ReplaceWithRemote(ctx, nil)
	if len(l.List(ctx)) != 0 {
		t.Fatalf("nil payload must clear to empty list")
	}
}

func TestStats(t *testing.T) {
	l := New(memory.New(nil), nil)
	ctx := context.Background()
	now := time.Now()

	l.AddLocal(ctx, core.Transaction{Amount: core.NewAmount(100), Category: core.CategorySalary, Type: core.Income, Date: core.NewDate(now)})
	l.AddLocal(ctx, core.Transaction{Amount: core.NewAmount(30), Category: core.CategoryFood, Type: core.Expense, Date: core.NewDate(now)})

	s := l.Stats(ctx, now)
	if !s.Balance.Equal(core.NewAmount(70)) {
		t.Fatalf("balance = %s, want 70", s.Balance)
	}
	if !s.DailySpent.Equal(core.NewAmount(30)) {
		t.Fatalf("dailySpent = %s, want 30", s.DailySpent)
	}
}

func TestCorruptCacheReadsAsEmpty(t *testing.T) {
	s := memory.New(nil)
	s.Seed("transactions", []byte(`"not a list"`))
	l := New(s, nil)
	if got := l.List(context.Background()); len(got) != 0 {
		t.Fatalf("corrupt cache must read as empty, got %v", got)
	}
}
