package catch

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rop-result/pkg/rop"
)

func TestTry_NormalReturnIsOk(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) { return 10, nil })
	assert.Equal(t, rop.Success(10), r)
}

func TestTry_InterceptedKindIsErr(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) { return strconv.Atoi("bad") }, As[*strconv.NumError]())
	require.True(t, r.IsErr())

	var numErr *strconv.NumError
	assert.ErrorAs(t, r.UnwrapErr(), &numErr)
	assert.ErrorIs(t, r.UnwrapErr(), strconv.ErrSyntax)
}

func TestTry_NonInterceptedKindPropagates(t *testing.T) {
	t.Parallel()

	var p any
	func() {
		defer func() { p = recover() }()
		Try(func() (int, error) { return strconv.Atoi("bad") }, As[*json.SyntaxError]())
		t.Fatalf("Try must not return for a non-intercepted failure")
	}()

	err, ok := p.(error)
	require.True(t, ok, "got %T", p)
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}

func TestTry_NoKindsInterceptsEverything(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	assert.Equal(t, rop.Fail[int](boom), Try(func() (int, error) { return 0, boom }))

	r := Try(func() (int, error) { panic("bad state") })
	require.True(t, r.IsErr())
	var pe *PanicError
	require.ErrorAs(t, r.UnwrapErr(), &pe)
	assert.Equal(t, "bad state", pe.Value)
}

func TestTry_TypedNilErrorIsOk(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) {
		var pe *PipelineError
		return 3, pe
	})
	assert.True(t, r.IsOk())
}

func TestCatch_PanicKinds(t *testing.T) {
	t.Parallel()

	div := func(a, b int) func() int { return func() int { return a / b } }

	assert.Equal(t, rop.Success(5), Catch(div(10, 2)))

	r := Catch(div(1, 0), Match(func(err error) bool { return err.Error() == "runtime error: integer divide by zero" }))
	require.True(t, r.IsErr())

	assert.Panics(t, func() { Catch(div(1, 0), Panics()) })
	assert.PanicsWithValue(t, "raw", func() {
		Catch(func() int { panic("raw") }, Is(fs.ErrNotExist))
	})
	assert.True(t, Catch(func() int { panic("raw") }, Panics()).IsErr())
}

func TestCatch_IsMatchesWrappedSentinel(t *testing.T) {
	t.Parallel()

	r := Try(func() ([]byte, error) { return os.ReadFile("/definitely/not/here") }, Is(fs.ErrNotExist))
	assert.True(t, r.IsErrAnd(func(err error) bool { return errors.Is(err, fs.ErrNotExist) }))
}

func TestTryResult_PassesThrough(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	assert.Equal(t, rop.Fail[int](boom), TryResult(func() rop.Result[int, error] { return rop.Fail[int](boom) }))
	assert.Equal(t, rop.Success(1), TryResult(func() rop.Result[int, error] { return rop.Success(1) }))
	assert.True(t, TryResult(func() rop.Result[int, error] { panic(boom) }, Is(boom)).IsErr())
}

func TestOperation_NamesFailure(t *testing.T) {
	t.Parallel()

	r := Operation("load", func() (int, error) { return strconv.Atoi("x") })
	require.True(t, r.IsErr())

	var pe *PipelineError
	require.ErrorAs(t, r.UnwrapErr(), &pe)
	assert.Equal(t, "load", pe.Op)
	assert.Contains(t, pe.Error(), "load failed: ")
	assert.ErrorIs(t, r.UnwrapErr(), strconv.ErrSyntax)

	assert.Equal(t, rop.Success(7), Operation("load", func() (int, error) { return 7, nil }))
}

func TestWrap_PreservesSignature(t *testing.T) {
	t.Parallel()

	parse := Wrap(strconv.Atoi, As[*strconv.NumError]())
	assert.Equal(t, rop.Success(42), parse("42"))
	assert.True(t, parse("forty-two").IsErr())

	parseInt := Wrap3(strconv.ParseInt)
	assert.Equal(t, rop.Success(int64(255)), parseInt("ff", 16, 64))

	quote := Wrap2(func(s string, n int) (string, error) {
		if n < 0 {
			return "", errors.New("negative")
		}
		return strconv.Quote(s[:n]), nil
	})
	assert.Equal(t, rop.Success(`"ab"`), quote("abc", 2))
	assert.True(t, quote("abc", -1).IsErr())

	zero := Wrap0(func() (string, error) { return "ready", nil })
	assert.Equal(t, rop.Success("ready"), zero())

	named := WrapOp("parse", strconv.Atoi)
	var pe *PipelineError
	assert.ErrorAs(t, named("?").UnwrapErr(), &pe)
}
