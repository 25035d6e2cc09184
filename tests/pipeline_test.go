package tests

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/rop-result/pkg/rop"
	"github.com/ib-77/rop-result/pkg/rop/catch"
	"github.com/ib-77/rop-result/pkg/rop/chain"
	"github.com/ib-77/rop-result/pkg/rop/core"
	"github.com/ib-77/rop-result/pkg/rop/frame"
	"github.com/ib-77/rop-result/pkg/rop/lite"
)

// TestURLProcessingDirectly runs the URL pipeline on mocked fetches.
func TestURLProcessingDirectly(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(context.Background(), urls)
	assert.Len(t, results, len(urls))

	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		}
	}
	assert.Equal(t, 2, invalidCount)
}

func processRequest(ctx context.Context, urls []string) []string {
	handlers := lite.FinallyHandlers[int, string]{
		OnSuccess: func(_ context.Context, r int) string {
			return fmt.Sprintf("title length: %d", r)
		},
		OnError: func(_ context.Context, _ error) string {
			return "invalid"
		},
		OnCancel: func(_ context.Context, _ error) string {
			return "cancelled"
		},
	}

	return core.FromChanMany(ctx,
		lite.Finally(ctx,
			lite.Turnout(ctx,
				lite.Turnout(ctx,
					lite.Run(ctx,
						core.ToChanManyResults(ctx, urls),
						lite.Validate(validateURL), 2),
					lite.Try(mockFetchTitle), 2),
				lite.Switch(titleLength), 2),
			handlers,
		),
	)
}

func mockFetchTitle(ctx context.Context, url string) (string, error) {
	if valid, _ := validateURL(ctx, url); valid {
		return "Mock Page Title for " + url, nil
	}
	return "", errors.New("invalid URL")
}

func validateURL(_ context.Context, url string) (bool, string) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}

func titleLength(_ context.Context, title string) rop.Result[int, error] {
	return rop.Success(len(title))
}

var errMalformed = errors.New("malformed line")

func parseLine(_ context.Context, line string) (map[string]any, error) {
	parts := strings.Split(line, ";")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%q: %w", line, errMalformed)
	}
	n, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, err
	}
	return map[string]any{"vessel": parts[0], "tonnes": n}, nil
}

// TestLinesToFrame parses lines on parallel workers and aggregates the good
// ones in a frame.
func TestLinesToFrame(t *testing.T) {
	t.Parallel()

	ctx := core.WithWorkerOptions(context.Background(), 3)
	lines := []string{"Aurora;12.5", "Nordlys;8", "broken", "Aurora;2.5", "Skarv;x"}

	results := core.FromChanMany(ctx,
		lite.Turnout(ctx, core.ToChanManyResults(ctx, lines), lite.Try(parseLine), 0))
	require.Len(t, results, len(lines))

	records, errs := rop.Partition(results)
	assert.Len(t, records, 3)
	require.Len(t, errs, 2)
	assert.True(t, errors.Is(errs[0], errMalformed) || errors.Is(errs[1], errMalformed))

	grouped := rop.AndThen(frame.FromRecords(records), func(f *frame.Frame) rop.Result[*frame.Frame, error] {
		return f.GroupBy("vessel", frame.Sum("total", "tonnes"))
	})
	f, err := rop.ToTuple(grouped)
	require.NoError(t, err)

	totals := map[string]any{}
	for _, row := range f.Rows() {
		totals[row["vessel"].(string)] = row["total"]
	}
	assert.Equal(t, map[string]any{"Aurora": 15.0, "Nordlys": 8.0}, totals)
}

// TestChainOverFrame drives frame operations through a fluent chain and an
// adapter-wrapped reader.
func TestChainOverFrame(t *testing.T) {
	t.Parallel()

	read := catch.WrapOp("load", func(src string) (*frame.Frame, error) {
		return rop.ToTuple(frame.ReadCSV(strings.NewReader(src)))
	})

	var seen []string
	c := chain.Start(context.Background(), read("vessel,tonnes\nSkarv,3\nAurora,1\n"))
	c = chain.Then(c, func(_ context.Context, f *frame.Frame) rop.Result[*frame.Frame, error] {
		return f.Select("vessel")
	}).Ensure(func(_ context.Context, f *frame.Frame) {
		col, _ := f.Column("vessel")
		for _, v := range col {
			seen = append(seen, v.(string))
		}
	})

	summary := chain.Finally(c,
		func(_ context.Context, f *frame.Frame) string { return frame.Summary(f) },
		func(_ context.Context, err error) string { return err.Error() },
		func(_ context.Context, err error) string { return "cancelled" })

	assert.Equal(t, "DataFrame(2x1 [vessel])", summary)
	sort.Strings(seen)
	assert.Equal(t, []string{"Aurora", "Skarv"}, seen)

	failed := read("")
	err, isErr := failed.Err()
	require.True(t, isErr)
	var pe *catch.PipelineError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "load", pe.Op)
	var fe *frame.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "read_csv", fe.Op)
}
