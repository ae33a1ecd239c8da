package tiny

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/fallible/pkg/rop"
)

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	chain := Start(ctx, rop.Ok(5))

	out := chain.Result()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: %v", out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	chain := Start(ctx, rop.Fail[int](errors.New("boom")))

	called := false
	chain = chain.Then(func(ctx context.Context, t int) rop.Result[int, error] {
		called = true
		return rop.Ok(t + 1)
	})

	out := chain.Result()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: %v", out)
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 3).
		Then(func(ctx context.Context, t int) rop.Result[int, error] { return rop.Ok(t * 2) }).
		Result()

	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: %v", out)
	}
}

func TestThen_EmptyShortCircuits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, rop.Result[int, error]{}).
		Then(func(ctx context.Context, t int) rop.Result[int, error] { return rop.Ok(1) }).
		Result()

	if !out.IsEmpty() {
		t.Fatalf("expected empty result, got: %v", out)
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ThenTry(FromValue(ctx, 4), func(ctx context.Context, t int) (int, error) { return t * t, nil }).Result()
	if out.Must() != 16 {
		t.Fatalf("expected 16, got: %v", out)
	}

	out = ThenTry(FromValue(ctx, 10), func(ctx context.Context, t int) (int, error) {
		return 0, errors.New("try-error")
	}).Result()
	if out.IsSuccess() || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: %v", out)
	}
}

func TestRepeatUntilAndWhile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	inc := func(ctx context.Context, t int) rop.Result[int, error] { return rop.Ok(t + 1) }

	out := FromValue(ctx, 0).RepeatUntil(inc, func(ctx context.Context, t int) bool { return t < 5 }).Result()
	if out.Must() != 5 {
		t.Fatalf("expected 5, got: %v", out)
	}

	out = FromValue(ctx, 0).While(inc, func(ctx context.Context, t int) bool { return t < 3 }).Result()
	if out.Must() != 3 {
		t.Fatalf("expected 3, got: %v", out)
	}

	failAt := func(ctx context.Context, t int) rop.Result[int, error] {
		if t == 2 {
			return rop.FailMsg[int]("stop")
		}
		return rop.Ok(t + 1)
	}
	out = FromValue(ctx, 0).While(failAt, func(ctx context.Context, t int) bool { return true }).Result()
	if !out.IsError() {
		t.Fatalf("expected failure, got: %v", out)
	}
}

func TestOrAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bad := Start(ctx, rop.FailMsg[int]("bad"))
	good := FromValue(ctx, 1)
	other := FromValue(ctx, 2)

	if got := bad.Or(good, other).Result(); got.Must() != 1 {
		t.Fatalf("expected first success, got: %v", got)
	}
	if got := bad.Or(bad).Result(); !got.IsError() {
		t.Fatalf("expected failure, got: %v", got)
	}
	if got := good.And(other).Result(); got.Must() != 2 {
		t.Fatalf("expected last success, got: %v", got)
	}
	if got := good.And(bad, other).Result(); !got.IsError() {
		t.Fatalf("expected failure, got: %v", got)
	}
}

func TestMapAndTo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := To(FromValue(ctx, 5).Map(func(ctx context.Context, t int) int { return t + 3 }),
		func(ctx context.Context, t int) rop.Result[string, error] { return rop.Ok(strconv.Itoa(t)) }).
		Result()
	if out.Must() != "8" {
		t.Fatalf("expected \"8\", got: %v", out)
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sCalled, fCalled := false, false
	FromValue(ctx, 11).Ensure(func(ctx context.Context, v int) { sCalled = true }, func(ctx context.Context, err error) { fCalled = true })
	if !sCalled || fCalled {
		t.Fatalf("expected success side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	sCalled, fCalled = false, false
	Start(ctx, rop.FailMsg[int]("bad")).Ensure(func(ctx context.Context, v int) { sCalled = true }, func(ctx context.Context, err error) { fCalled = true })
	if sCalled || !fCalled {
		t.Fatalf("expected failure side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	if out := FromValue(ctx, 1).Ensure(nil, nil).Result(); out.Must() != 1 {
		t.Fatalf("expected unchanged success result, got: %v", out)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, v int) int { return v + 100 }
	onFailure := func(ctx context.Context, err error) int { return -1 }

	if s := FromValue(ctx, 3).Finally(onSuccess, onFailure); s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}
	if f := Start(ctx, rop.FailMsg[int]("x")).Finally(onSuccess, onFailure); f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
}
