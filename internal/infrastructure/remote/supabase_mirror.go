package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"paksupply/internal/domain/repository"
)

// SupabaseMirror talks to the PostgREST endpoint of a Supabase project.
type SupabaseMirror struct {
	client *resty.Client
}

func NewSupabaseMirror(baseURL, anonKey string) *SupabaseMirror {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/rest/v1").
		SetHeader("apikey", anonKey).
		SetAuthToken(anonKey).
		SetHeader("Content-Type", "application/json")

	return &SupabaseMirror{client: client}
}

func (m *SupabaseMirror) FetchAll(ctx context.Context, kind repository.EntityKind) ([]json.RawMessage, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{}
	resp, err := m.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetResult(&rows).
		Get("/" + t.name)
	if err := checkResponse(resp, err, "fetch "+t.name); err != nil {
		return nil, err
	}

	docs := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		doc, err := t.fromWire(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *SupabaseMirror) Upsert(ctx context.Context, kind repository.EntityKind, id string, doc json.RawMessage) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	row, err := t.toWire(doc)
	if err != nil {
		return err
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "resolution=merge-duplicates,return=minimal").
		SetQueryParam("on_conflict", "id").
		SetBody([]map[string]interface{}{row}).
		Post("/" + t.name)
	return checkResponse(resp, err, fmt.Sprintf("upsert %s/%s", t.name, id))
}

func (m *SupabaseMirror) UpdateFields(ctx context.Context, kind repository.EntityKind, id string, fields map[string]interface{}, expectedVersion int64) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	row, err := t.wireFields(fields)
	if err != nil {
		return err
	}

	var updated []map[string]interface{}
	req := m.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		SetBody(row).
		SetResult(&updated)
	if expectedVersion == 0 {
		req.SetQueryParam("or", "(version.is.null,version.eq.0)")
	} else {
		req.SetQueryParam("version", "eq."+strconv.FormatInt(expectedVersion, 10))
	}

	resp, err := req.Patch("/" + t.name)
	if err := checkResponse(resp, err, fmt.Sprintf("update %s/%s", t.name, id)); err != nil {
		return err
	}
	if len(updated) == 0 {
		return fmt.Errorf("remote: update %s/%s at version %d: %w", t.name, id, expectedVersion, repository.ErrVersionMismatch)
	}
	return nil
}

func checkResponse(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("remote: %s: %w", op, err)
	}
	if resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("remote: %s: status %d: %s", op, resp.StatusCode(), resp.String())
	}
	return nil
}
