package employees_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/employee-directory/internal/client"
	"github.com/UnknownOlympus/employee-directory/internal/metrics"
	"github.com/UnknownOlympus/employee-directory/internal/models"
	"github.com/UnknownOlympus/employee-directory/internal/services/employees"
	mocks "github.com/UnknownOlympus/employee-directory/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var initialStaff = []models.Employee{
	{ID: "1", Name: "John Smith", Email: "john@example.com", Role: "qa"},
	{ID: "2", Name: "Jane Doe", Email: "jane@example.com", Role: "dev"},
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func transportErr(opn string) error {
	return &client.TransportError{Op: opn, Method: "GET", URL: "http://localhost:5000/employees", Err: assert.AnError}
}

func newStore(t *testing.T) (*employees.Store, *mocks.EmployeeAPI, *metrics.Metrics) {
	t.Helper()

	api := mocks.NewEmployeeAPI(t)
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	return employees.NewStore(discardLogger(), api, appMetrics), api, appMetrics
}

func loadedStore(t *testing.T) (*employees.Store, *mocks.EmployeeAPI, *metrics.Metrics) {
	t.Helper()

	store, api, appMetrics := newStore(t)
	api.On("List", mock.Anything).Return(initialStaff, nil).Once()
	require.NoError(t, store.Refresh(t.Context()))

	return store, api, appMetrics
}

func TestStore_Refresh(t *testing.T) {
	t.Parallel()

	store, _, appMetrics := loadedStore(t)

	assert.Equal(t, initialStaff, store.Records())
	assert.InDelta(t, 2, testutil.ToFloat64(appMetrics.Records), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.Refreshes.WithLabelValues("success")), 0)
	assert.Positive(t, testutil.ToFloat64(appMetrics.LastSuccessfulRefresh))
}

func TestStore_RefreshFailureKeepsPreviousList(t *testing.T) {
	t.Parallel()

	store, api, appMetrics := loadedStore(t)
	api.On("List", mock.Anything).Return(nil, transportErr("list")).Once()

	err := store.Refresh(t.Context())

	require.ErrorIs(t, err, client.ErrTransport)
	assert.Equal(t, initialStaff, store.Records())
	assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.Refreshes.WithLabelValues("failure")), 0)
}

func TestStore_RecordsReturnsCopy(t *testing.T) {
	t.Parallel()

	store, _, _ := loadedStore(t)

	records := store.Records()
	records[0].Name = "changed"

	assert.Equal(t, "John Smith", store.Records()[0].Name)
}

func TestStore_Find(t *testing.T) {
	t.Parallel()

	store, _, _ := loadedStore(t)

	employee, ok := store.Find("2")
	assert.True(t, ok)
	assert.Equal(t, "Jane Doe", employee.Name)

	_, ok = store.Find("99")
	assert.False(t, ok)
}

func TestStore_CreateRefetches(t *testing.T) {
	t.Parallel()

	store, api, _ := loadedStore(t)
	created := models.Employee{ID: "3", Name: "Will Smithson", Email: "will@example.com", Role: "ops"}

	api.On("Create", mock.Anything, models.EmployeeInput{Name: "Will Smithson", Email: "will@example.com", Role: "ops"}).
		Return(nil).
		Once()
	api.On("List", mock.Anything).Return(append(initialStaff[:2:2], created), nil).Once()

	require.NoError(t, store.Create(t.Context(), "Will Smithson", "will@example.com", "ops"))

	assert.Len(t, store.Records(), 3)
	assert.Equal(t, created, store.Records()[2])
}

func TestStore_CreateFailureLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	store, api, _ := loadedStore(t)
	before := store.Records()

	api.On("Create", mock.Anything, mock.Anything).Return(transportErr("create")).Once()

	err := store.Create(t.Context(), "Will", "will@example.com", "ops")

	require.ErrorIs(t, err, client.ErrTransport)
	require.ErrorContains(t, err, "failed to add employee")
	assert.Equal(t, before, store.Records())
	api.AssertNumberOfCalls(t, "List", 1)
}

func TestStore_CreateSucceedsWhenRefetchFails(t *testing.T) {
	t.Parallel()

	store, api, _ := loadedStore(t)

	api.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	api.On("List", mock.Anything).Return(nil, transportErr("list")).Once()

	require.NoError(t, store.Create(t.Context(), "Will", "will@example.com", "ops"))
	assert.Equal(t, initialStaff, store.Records(), "stale until the next successful fetch")
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	store, api, _ := loadedStore(t)
	updated := []models.Employee{
		initialStaff[0],
		{ID: "2", Name: "Jane Roe", Email: "jane@example.com", Role: "lead"},
	}

	api.On("Update", mock.Anything, models.EmployeeID("2"),
		models.EmployeeInput{Name: "Jane Roe", Email: "jane@example.com", Role: "lead"}).
		Return(nil).
		Once()
	api.On("List", mock.Anything).Return(updated, nil).Once()

	require.NoError(t, store.Update(t.Context(), "2", "Jane Roe", "jane@example.com", "lead"))
	assert.Equal(t, updated, store.Records())
}

func TestStore_UpdateFailure(t *testing.T) {
	t.Parallel()

	store, api, _ := loadedStore(t)
	api.On("Update", mock.Anything, models.EmployeeID("2"), mock.Anything).Return(transportErr("update")).Once()

	err := store.Update(t.Context(), "2", "Jane Roe", "", "")

	require.ErrorContains(t, err, "failed to update employee 2")
	assert.Equal(t, initialStaff, store.Records())
}

func TestStore_DeleteThenRefresh(t *testing.T) {
	t.Parallel()

	store, api, _ := loadedStore(t)

	api.On("Delete", mock.Anything, models.EmployeeID("1")).Return(nil).Once()
	api.On("List", mock.Anything).Return(initialStaff[1:], nil).Once()

	require.NoError(t, store.Delete(t.Context(), "1"))

	_, found := store.Find("1")
	assert.False(t, found)
	for _, record := range store.Records() {
		assert.NotEqual(t, models.EmployeeID("1"), record.ID)
	}
}

func TestStore_DeleteFailure(t *testing.T) {
	t.Parallel()

	store, api, _ := loadedStore(t)
	api.On("Delete", mock.Anything, models.EmployeeID("1")).Return(transportErr("delete")).Once()

	err := store.Delete(t.Context(), "1")

	require.ErrorIs(t, err, client.ErrTransport)
	assert.Equal(t, initialStaff, store.Records())
}
