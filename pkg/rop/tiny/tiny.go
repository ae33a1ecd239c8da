package tiny

import (
	"context"

	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/solo"
)

type Chain[T any, E error] struct {
	ctx context.Context
	res rop.Result[T, E]
}

func Start[T any, E error](ctx context.Context, r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T, error] {
	return Start(ctx, rop.Ok(v))
}

func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

// Then composes functions that already return rop.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T, E]) Chain[T, E] {
	if c.res.IsError() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

func (c Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsError() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsError() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) rop.Result[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for !c.res.IsError() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain. If none succeeds it returns the
// first failed one.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	for _, ch := range append([]Chain[T, E]{c}, alternatives...) {
		if ch.res.IsSuccess() {
			return ch
		}
	}
	return c
}

// And returns the first failed chain, or the last one when all succeed.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsError() {
			return ch
		}
		last = ch
	}
	return Chain[T, E]{ctx: c.ctx, res: last.res}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T, E] {
	v, err := c.res.Unwrap()
	if err != nil {
		if onFailure != nil {
			onFailure(c.ctx, err)
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, v)
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T, E]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// ThenTry composes functions that return (T, error), like repo calls
func ThenTry[T any](c Chain[T, error], try func(ctx context.Context, t T) (T, error)) Chain[T, error] {
	return Chain[T, error]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// To switches the chain to another value type.
func To[T, U any, E error](c Chain[T, E], onSuccess func(ctx context.Context, t T) rop.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}
