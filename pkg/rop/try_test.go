package rop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func half(n int) Result[int, *divideError] {
	if n%2 != 0 {
		return Fail[int](&divideError{num: n})
	}
	return Success[int, *divideError](n / 2)
}

func quarter(n int) (q int, err error) {
	defer Handle(&err)
	return Try(half(Try(half(n)))), nil
}

func TestTry_ReturnsValue(t *testing.T) {
	t.Parallel()

	q, err := quarter(12)
	require.NoError(t, err)
	assert.Equal(t, 3, q)
}

func TestTry_BailsOutWithHeldError(t *testing.T) {
	t.Parallel()

	_, err := quarter(6)
	var de *divideError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 3, de.num)
}

var errOdd = errors.New("odd input")

func quarterOr(n int) (q int, err error) {
	defer Handle(&err)
	return TryOr(half(TryOr(half(n), errOdd)), errOdd), nil
}

func TestTryOr_ReplacesError(t *testing.T) {
	t.Parallel()

	q, err := quarterOr(8)
	require.NoError(t, err)
	assert.Equal(t, 2, q)

	_, err = quarterOr(7)
	assert.ErrorIs(t, err, errOdd)
}

func TestTry_EmptyResult(t *testing.T) {
	t.Parallel()

	f := func() (err error) {
		defer Handle(&err)
		Try(empty[int, error]())
		return nil
	}
	assert.ErrorIs(t, f(), ErrEmptyResult)
}

func TestDo(t *testing.T) {
	t.Parallel()

	r := Do(func() int { return Try(half(Try(half(20)))) })
	assert.Equal(t, 5, r.Must())

	r = Do(func() int { return Try(half(Try(half(10)))) })
	require.True(t, r.IsError())
	var de *divideError
	assert.ErrorAs(t, r.Err(), &de)
}

func TestDo_OtherPanicsPropagate(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Do(func() int { panic("not a bail-out") })
	})
}
