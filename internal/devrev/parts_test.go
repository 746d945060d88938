package devrev

import (
	"context"
	"net/http"
	"net/url"
	"testing"
)

func TestGetPart(t *testing.T) {
	var path string
	var query url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		query = r.URL.Query()
		w.Write([]byte(`{"part": {"id": "FEAT-1", "name": "Login"}}`))
	})

	part, err := client.GetPart(context.Background(), "FEAT-1")
	if err != nil {
		t.Fatalf("GetPart() error = %v", err)
	}
	if path != "/parts.get" {
		t.Errorf("path = %s, want /parts.get", path)
	}
	if query.Get("id") != "FEAT-1" {
		t.Errorf("id = %q, want FEAT-1", query.Get("id"))
	}
	if string(part) != `{"id": "FEAT-1", "name": "Login"}` {
		t.Errorf("part = %s, want unwrapped part object", part)
	}
}

func TestListParts_UnknownTypeStillSent(t *testing.T) {
	var query url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"parts": []}`))
	})

	_, err := client.ListParts(context.Background(), ListPartsParams{PartType: "widget"})
	if err != nil {
		t.Fatalf("ListParts() error = %v, unknown part types must not be rejected", err)
	}
	if got := query.Get("type"); got != "widget" {
		t.Errorf("type = %q, want the unknown value forwarded as-is", got)
	}
}

func TestListParts_Filters(t *testing.T) {
	var query url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"parts": []}`))
	})

	_, err := client.ListParts(context.Background(), ListPartsParams{
		PartType:   "feature",
		Cursor:     "next-page",
		ParentPart: "PROD-1",
	})
	if err != nil {
		t.Fatalf("ListParts() error = %v", err)
	}

	if got := query.Get("type"); got != "feature" {
		t.Errorf("type = %q, want feature", got)
	}
	if got := query.Get("cursor"); got != "next-page" {
		t.Errorf("cursor = %q, want next-page", got)
	}
	if got := query.Get("parent_part.parts"); got != "PROD-1" {
		t.Errorf("parent_part.parts = %q, want PROD-1", got)
	}
}
