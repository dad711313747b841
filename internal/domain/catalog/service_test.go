package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/core/apperror"
	"vitrine/pkg/logger"
)

type fakeExecutor struct {
	rows []Row
	err  error

	gotSQL  string
	gotArgs []any
}

func (f *fakeExecutor) Query(ctx context.Context, sql string, args ...any) ([]Row, error) {
	f.gotSQL = sql
	f.gotArgs = args
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeRecorder struct {
	runs []Run
	err  error
}

func (f *fakeRecorder) Record(ctx context.Context, run Run) error {
	f.runs = append(f.runs, run)
	return f.err
}

type fakeImages struct{}

func (fakeImages) Resolve(code int) (string, string) {
	return fmt.Sprintf("https://img/%d", code), fmt.Sprintf("https://mirror/%d", code)
}

func newTestService(t *testing.T, exec *fakeExecutor, rec *fakeRecorder) *Service {
	t.Helper()
	a := testAssembler(t)
	var recorder RunRecorder
	if rec != nil {
		recorder = rec
	}
	return NewService(a, exec, recorder, fakeImages{}, 12, logger.Default())
}

func TestService_GenerateGrid(t *testing.T) {
	exec := &fakeExecutor{rows: makeRows(25)}
	rec := &fakeRecorder{}
	svc := newTestService(t, exec, rec)

	res, err := svc.Generate(context.Background(), Snapshot{Display: DisplayOptions{Cover: true}})
	require.NoError(t, err)

	assert.Len(t, res.Rows, 25)
	assert.False(t, res.Empty)
	assert.Equal(t, 3, res.PageCount)
	require.Len(t, res.Pages, 4) // cover + three product pages
	assert.True(t, res.Pages[0].Cover)

	status := svc.Status()
	assert.False(t, status.Generating)
	assert.Equal(t, 100, status.Progress)

	require.Len(t, rec.runs, 1)
	assert.Equal(t, 25, rec.runs[0].RowCount)
	assert.False(t, rec.runs[0].Failed)
	assert.Equal(t, exec.gotSQL, rec.runs[0].SQL)
}

func TestService_GenerateListMode(t *testing.T) {
	exec := &fakeExecutor{rows: makeRows(5)}
	svc := newTestService(t, exec, nil)

	res, err := svc.Generate(context.Background(), Snapshot{ViewMode: ViewModeList})
	require.NoError(t, err)

	assert.Len(t, res.Rows, 5)
	assert.Nil(t, res.Pages, "list mode must not paginate")
	assert.Zero(t, res.PageCount)
}

func TestService_GenerateEmptyResult(t *testing.T) {
	exec := &fakeExecutor{}
	svc := newTestService(t, exec, nil)

	res, err := svc.Generate(context.Background(), Snapshot{})
	require.NoError(t, err)

	assert.True(t, res.Empty)
	assert.Empty(t, res.Rows)
	assert.Empty(t, res.Pages)
	assert.Zero(t, res.PageCount)
}

func TestService_GenerateQueryFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("connection reset")}
	rec := &fakeRecorder{}
	svc := newTestService(t, exec, rec)

	res, err := svc.Generate(context.Background(), Snapshot{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, apperror.IsQueryFailure(err))

	// A failed run resets to idle instead of keeping a stale result.
	status := svc.Status()
	assert.False(t, status.Generating)
	assert.Zero(t, status.Progress)

	require.Len(t, rec.runs, 1)
	assert.True(t, rec.runs[0].Failed)
}

func TestService_GenerateRejectsInvalidPriceTable(t *testing.T) {
	svc := newTestService(t, &fakeExecutor{}, nil)

	_, err := svc.Generate(context.Background(), Snapshot{PriceTable: 99})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestService_GenerateDecoratesRows(t *testing.T) {
	exec := &fakeExecutor{rows: []Row{{
		Code:          42,
		Description:   "armchair",
		StockCompany1: 3,
		StockCompany2: -1,
		StockCompany3: 7,
	}}}
	svc := newTestService(t, exec, nil)

	res, err := svc.Generate(context.Background(), Snapshot{})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.Equal(t, map[int]float64{1: 3, 2: -1, 4: 7}, row.StockByCompany)
	assert.Equal(t, "https://img/42", row.ImageURL)
	assert.Equal(t, "https://mirror/42", row.ImageFallbackURL)
}

func TestService_RecorderFailureDoesNotFailGeneration(t *testing.T) {
	exec := &fakeExecutor{rows: makeRows(1)}
	rec := &fakeRecorder{err: errors.New("log table missing")}
	svc := newTestService(t, exec, rec)

	_, err := svc.Generate(context.Background(), Snapshot{})
	assert.NoError(t, err)
}
