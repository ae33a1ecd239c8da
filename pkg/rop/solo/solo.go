package solo

import (
	"context"
	"errors"

	"github.com/ib-77/fallible/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T, error] {
	return rop.Ok(input)
}

func Fail[T any](err error) rop.Result[T, error] {
	return rop.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T, error] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T, error] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Value()); !isValid {
			return rop.FailMsg[T](errMsg)
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T, error],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T, error]) rop.Result[T, error]) rop.Result[T, error] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T, error]) rop.Result[T, error] {

			if current.IsError() {
				_, cerr := current.Unwrap()
				e := rop.GetErrors(err)
				e = append(e, cerr)
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Fail[T](err)
		},
		inputsF...,
	)
}

// Switch moves a success into a new Result. Errors pass through retyped.
func Switch[In, Out any, E error](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In, Out any, E error](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Value()))
	}
	return rop.FailFrom[In, Out](input)
}

// MapError transforms the held error. Successes and empty results are
// carried over unchanged.
func MapError[T any, E1, E2 error](ctx context.Context,
	input rop.Result[T, E1],
	onError func(ctx context.Context, err E1) E2) rop.Result[T, E2] {

	if input.IsSuccess() {
		return rop.Success[T, E2](input.Value())
	}
	if err, uerr := input.UnwrapError(); uerr == nil {
		return rop.Fail[T](onError(ctx, err))
	}
	return rop.Result[T, E2]{}
}

func Tee[T any, E error](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any, E error](ctx context.Context,
	input rop.Result[T, E],
	condition func(ctx context.Context, r rop.Result[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any, E error](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T, E] {

	v, err := input.Unwrap()
	if err != nil {
		onError(ctx, err)
	} else {
		onSuccess(ctx, v)
	}

	return input
}

// DoubleMap maps a success and reports an error through onError before
// passing it on.
func DoubleMap[In, Out any, E error](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error)) rop.Result[Out, E] {

	v, err := input.Unwrap()
	if err == nil {
		return rop.Success[Out, E](onSuccess(ctx, v))
	}

	onError(ctx, err)
	return rop.FailFrom[In, Out](input)
}

func Try[In, Out any](ctx context.Context, input rop.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out, error] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return rop.Fail[Out](err)
		}

		return rop.Ok(out)
	}

	return rop.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T, error] {
	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

// Recover turns an error result into a success. Empty results are left
// alone.
func Recover[T any, E error](ctx context.Context, input rop.Result[T, E],
	onError func(ctx context.Context, err E) T) rop.Result[T, E] {

	if err, uerr := input.UnwrapError(); uerr == nil {
		return rop.Success[T, E](onError(ctx, err))
	}
	return input
}

// Finally collapses input into a value. Empty results reach onError with
// rop.ErrEmptyResult.
func Finally[In, Out any, E error](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	v, err := input.Unwrap()
	if err != nil {
		return onError(ctx, err)
	}
	return onSuccess(ctx, v)
}

func Join[T any](ctx context.Context,
	input rop.Result[T, error],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T, error]) rop.Result[T, error],
	inputsF ...func(ctx context.Context, in rop.Result[T, error]) rop.Result[T, error]) rop.Result[T, error] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsError() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
