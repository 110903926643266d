package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diyk/TeslaClient/internal/charge"
	"github.com/diyk/TeslaClient/internal/netutil"
	"github.com/diyk/TeslaClient/internal/vehicle"
	"github.com/sirupsen/logrus"
)

// Client talks to the owner API gateway. Every payload arrives wrapped
// in a {"response": ...} envelope which the request helpers unwrap.
// Authentication and retries are the gateway's problem, not ours.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates an API client for the given base URL, e.g.
// "http://localhost:4443/api/1".
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: netutil.NewHTTPClient(timeout, logger),
		logger:     logger,
	}
}

// Vehicles fetches the account's vehicle list.
func (c *Client) Vehicles(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var list []*vehicle.Vehicle
	if err := c.get(ctx, "/vehicles", &list); err != nil {
		return nil, err
	}

	c.logger.WithField("count", len(list)).Debug("Fetched vehicle list")
	return list, nil
}

// ChargeState fetches the charge state snapshot for one vehicle.
func (c *Client) ChargeState(ctx context.Context, vehicleID int64) (*charge.State, error) {
	var state charge.State
	path := fmt.Sprintf("/vehicles/%d/data_request/charge_state", vehicleID)
	if err := c.get(ctx, path, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Command issues a named command against a vehicle and decodes the
// outcome. The name may carry its parameters in query form, e.g.
// "set_charge_limit?percent=80". A command the car turns down is not an
// error: the refusal comes back in the Result.
func (c *Client) Command(ctx context.Context, vehicleID int64, name string) (charge.Result, error) {
	var res charge.Result
	path := fmt.Sprintf("/vehicles/%d/command/%s", vehicleID, name)
	if err := c.do(ctx, http.MethodPost, path, &res); err != nil {
		return charge.Result{}, err
	}

	c.logger.WithFields(logrus.Fields{
		"vehicle_id": vehicleID,
		"command":    name,
		"success":    res.Success,
	}).Debug("Issued vehicle command")
	return res, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, out)
}

func (c *Client) do(ctx context.Context, method, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request %s: unexpected status %d: %s",
			path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env struct {
		Response json.RawMessage `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s envelope: %w", path, err)
	}
	if err := json.Unmarshal(env.Response, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
