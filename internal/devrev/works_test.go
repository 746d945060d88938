package devrev

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
)

func TestListWorks_ResolvesSelf(t *testing.T) {
	var query url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"works": []}`))
	}, WithIdentity(&Identity{ID: "DEVU-42", DisplayName: "Sam"}))

	_, err := client.ListWorks(context.Background(), ListWorksParams{OwnedBy: "self"})
	if err != nil {
		t.Fatalf("ListWorks() error = %v", err)
	}
	if got := query.Get("owned_by"); got != "DEVU-42" {
		t.Errorf("owned_by = %q, want DEVU-42", got)
	}
}

func TestListWorks_ExplicitOwnerBypassesResolution(t *testing.T) {
	var query url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"works": []}`))
	}, WithIdentity(&Identity{ID: "DEVU-42"}))

	_, err := client.ListWorks(context.Background(), ListWorksParams{OwnedBy: "DEVU-7"})
	if err != nil {
		t.Fatalf("ListWorks() error = %v", err)
	}
	if got := query.Get("owned_by"); got != "DEVU-7" {
		t.Errorf("owned_by = %q, want DEVU-7", got)
	}
}

func TestListWorks_SelfWithoutIdentity(t *testing.T) {
	var called atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Add(1)
	})

	_, err := client.ListWorks(context.Background(), ListWorksParams{OwnedBy: "self"})
	if !errors.Is(err, ErrNoIdentity) {
		t.Errorf("error = %v, want ErrNoIdentity", err)
	}
	if called.Load() != 0 {
		t.Error("request was sent despite missing identity")
	}
}

func TestListWorks_OmitsUnsetFilters(t *testing.T) {
	var query url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"works": []}`))
	})

	_, err := client.ListWorks(context.Background(), ListWorksParams{WorkType: "issue", Limit: 5})
	if err != nil {
		t.Fatalf("ListWorks() error = %v", err)
	}

	if got := query.Get("type"); got != "issue" {
		t.Errorf("type = %q, want issue", got)
	}
	if got := query.Get("limit"); got != "5" {
		t.Errorf("limit = %q, want 5", got)
	}
	for _, key := range []string{"owned_by", "applies_to_part", "cursor"} {
		if query.Has(key) {
			t.Errorf("query contains %q, want it omitted", key)
		}
	}
}

func TestCreateWork_RejectsUnsupportedType(t *testing.T) {
	var called atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Add(1)
	})

	tests := []string{"ticket", "epic", ""}
	for _, workType := range tests {
		_, err := client.CreateWork(context.Background(), CreateWorkParams{
			WorkType:      workType,
			Title:         "anything",
			AppliesToPart: "FEAT-1",
		})
		if !errors.Is(err, ErrUnsupportedWorkType) {
			t.Errorf("CreateWork(%q) error = %v, want ErrUnsupportedWorkType", workType, err)
		}
	}

	if called.Load() != 0 {
		t.Error("request was sent despite precondition failure")
	}
}

func TestCreateWork_IssueRequiresPart(t *testing.T) {
	var called atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Add(1)
	})

	_, err := client.CreateWork(context.Background(), CreateWorkParams{
		WorkType: "issue",
		Title:    "broken build",
	})
	if !errors.Is(err, ErrPartRequired) {
		t.Errorf("error = %v, want ErrPartRequired", err)
	}
	if called.Load() != 0 {
		t.Error("request was sent despite missing part")
	}
}

func TestCreateWork_TaskWithoutPart(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&payload)
		w.Write([]byte(`{"work": {"id": "TASK-1"}}`))
	}, WithIdentity(&Identity{ID: "DEVU-42"}))

	_, err := client.CreateWork(context.Background(), CreateWorkParams{
		WorkType: "task",
		Title:    "update docs",
	})
	if err != nil {
		t.Fatalf("CreateWork() error = %v", err)
	}

	if payload["type"] != "task" {
		t.Errorf("type = %v, want task", payload["type"])
	}
	owned, ok := payload["owned_by"].([]any)
	if !ok || len(owned) != 1 || owned[0] != "DEVU-42" {
		t.Errorf("owned_by = %v, want [DEVU-42]", payload["owned_by"])
	}
	if _, ok := payload["applies_to_part"]; ok {
		t.Error("payload contains applies_to_part, want it omitted")
	}
}

func TestUpdateWork_PartialPayload(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&payload)
		w.Write([]byte(`{"work": {"id": "ISS-1"}}`))
	})

	status := "closed"
	_, err := client.UpdateWork(context.Background(), "ISS-1", UpdateWorkParams{Status: &status})
	if err != nil {
		t.Fatalf("UpdateWork() error = %v", err)
	}

	if len(payload) != 2 {
		t.Errorf("payload has %d keys (%v), want exactly id and status", len(payload), payload)
	}
	if payload["id"] != "ISS-1" {
		t.Errorf("id = %v, want ISS-1", payload["id"])
	}
	if payload["status"] != "closed" {
		t.Errorf("status = %v, want closed", payload["status"])
	}
}

func TestUpdateWork_EmptyStringIsAField(t *testing.T) {
	// A supplied empty string differs from an absent field: it clears
	// the body rather than leaving it untouched.
	var payload map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&payload)
		w.Write([]byte(`{"work": {}}`))
	})

	empty := ""
	_, err := client.UpdateWork(context.Background(), "ISS-1", UpdateWorkParams{Body: &empty})
	if err != nil {
		t.Fatalf("UpdateWork() error = %v", err)
	}

	if v, ok := payload["body"]; !ok || v != "" {
		t.Errorf("body = %v (present=%v), want empty string present", v, ok)
	}
}
