package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/UnknownOlympus/employee-directory/internal/metrics"
	"github.com/UnknownOlympus/employee-directory/internal/models"
)

// UserAgent is sent with every request to the employee API.
const UserAgent = "employee-directory/1.0"

const employeesPath = "/employees"

var (
	errUnexpectedStatus = errors.New("unexpected status")
	errMalformedPayload = errors.New("malformed payload")
)

// EmployeeClient consumes the employee CRUD API served under baseURL.
type EmployeeClient struct {
	client  *http.Client
	baseURL string
	metrics *metrics.Metrics
}

// NewEmployeeClient returns a client for the API at baseURL, e.g. `http://localhost:5000`.
func NewEmployeeClient(client *http.Client, metrics *metrics.Metrics, baseURL string) *EmployeeClient {
	return &EmployeeClient{client: client, baseURL: baseURL, metrics: metrics}
}

// List fetches every employee: GET /employees.
func (ec *EmployeeClient) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee

	if err := ec.do(ctx, "list", http.MethodGet, employeesPath, nil, &employees); err != nil {
		return nil, err
	}

	if employees == nil {
		employees = []models.Employee{}
	}

	return employees, nil
}

// Create submits a new employee: POST /employees. The response body is not used.
func (ec *EmployeeClient) Create(ctx context.Context, input models.EmployeeInput) error {
	return ec.do(ctx, "create", http.MethodPost, employeesPath, &input, nil)
}

// Update overwrites every field of the employee with the given id: PUT /employees/{id}.
func (ec *EmployeeClient) Update(ctx context.Context, identifier models.EmployeeID, input models.EmployeeInput) error {
	return ec.do(ctx, "update", http.MethodPut, employeePath(identifier), &input, nil)
}

// Delete removes the employee with the given id: DELETE /employees/{id}.
func (ec *EmployeeClient) Delete(ctx context.Context, identifier models.EmployeeID) error {
	return ec.do(ctx, "delete", http.MethodDelete, employeePath(identifier), nil, nil)
}

func employeePath(identifier models.EmployeeID) string {
	return employeesPath + "/" + url.PathEscape(identifier.String())
}

func (ec *EmployeeClient) do(
	ctx context.Context,
	opn, method, path string,
	body *models.EmployeeInput,
	out any,
) error {
	startTime := time.Now()
	status := "success"
	defer func() {
		ec.metrics.APIRequestDuration.WithLabelValues(opn).Observe(time.Since(startTime).Seconds())
		ec.metrics.APIRequests.WithLabelValues(opn, status).Inc()
	}()

	err := ec.roundTrip(ctx, opn, method, ec.baseURL+path, body, out)
	if err != nil {
		status = "failure"
	}

	return err
}

func (ec *EmployeeClient) roundTrip(
	ctx context.Context,
	opn, method, reqURL string,
	body *models.EmployeeInput,
	out any,
) error {
	fail := func(code int, err error) error {
		return &TransportError{Op: opn, Method: method, URL: reqURL, StatusCode: code, Err: err}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail(0, fmt.Errorf("failed to encode request body: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fail(0, fmt.Errorf("failed to create new request: %w", err))
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ec.client.Do(req)
	if err != nil {
		return fail(0, fmt.Errorf("failed to request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fail(resp.StatusCode, errUnexpectedStatus)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("%w: %w", errMalformedPayload, err))
	}

	return nil
}
