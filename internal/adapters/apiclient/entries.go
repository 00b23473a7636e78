package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	domainauth "github.com/Pulkitsaraswat52/facegate/internal/domain/auth"
	"github.com/Pulkitsaraswat52/facegate/internal/ports"
)

// ListEntries fetches all records visible to the current session.
func (c *Client) ListEntries(ctx context.Context) ([]ports.Entry, error) {
	var entries []ports.Entry
	if err := c.getJSON(ctx, "/entries", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddEntry creates one record owned by the current session's username.
func (c *Client) AddEntry(ctx context.Context, data string) (ports.Entry, error) {
	payload, err := json.Marshal(map[string]string{"data": data})
	if err != nil {
		return ports.Entry{}, fmt.Errorf("encode entry: %w", err)
	}

	var entry ports.Entry
	status, err := c.post(ctx, "/entries", "application/json", bytes.NewReader(payload), &entry)
	if err != nil {
		return ports.Entry{}, &domainauth.TransportError{Op: "add entry", Err: err}
	}
	if status < 200 || status >= 300 {
		return ports.Entry{}, &domainauth.TransportError{Op: "add entry", Err: fmt.Errorf("unexpected status %d", status)}
	}
	return entry, nil
}

// UpdateEntry replaces the data of one record.
func (c *Client) UpdateEntry(ctx context.Context, id int64, data string) (ports.Entry, error) {
	payload, err := json.Marshal(map[string]string{"data": data})
	if err != nil {
		return ports.Entry{}, fmt.Errorf("encode entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.endpoint("/entries/"+strconv.FormatInt(id, 10)), bytes.NewReader(payload))
	if err != nil {
		return ports.Entry{}, fmt.Errorf("create update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return ports.Entry{}, &domainauth.TransportError{Op: "update entry", Err: err}
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ports.Entry{}, &domainauth.TransportError{
			Op:  "update entry",
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var entry ports.Entry
	if decodeErr := json.NewDecoder(resp.Body).Decode(&entry); decodeErr != nil {
		return ports.Entry{}, &domainauth.TransportError{Op: "update entry", Err: decodeErr}
	}
	return entry, nil
}

// DeleteEntry removes one record.
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint("/entries/"+strconv.FormatInt(id, 10)), nil)
	if err != nil {
		return fmt.Errorf("create delete request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &domainauth.TransportError{Op: "delete entry", Err: err}
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domainauth.TransportError{
			Op:  "delete entry",
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	return nil
}

// ListFaces fetches the registered biometric records, display only.
func (c *Client) ListFaces(ctx context.Context) ([]ports.FaceRecord, error) {
	var faces []ports.FaceRecord
	if err := c.getJSON(ctx, "/faces/", &faces); err != nil {
		return nil, err
	}
	return faces, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &domainauth.TransportError{Op: "get " + path, Err: err}
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domainauth.TransportError{
			Op:  "get " + path,
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domainauth.TransportError{Op: "get " + path, Err: err}
	}
	return nil
}
