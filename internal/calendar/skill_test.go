package calendar

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func newTestSkill(t *testing.T) *Skill {
	t.Helper()
	repo := newTestRepo(t)
	return NewSkill(repo, nil, repo.logger)
}

func TestRunRejectsMalformedJSON(t *testing.T) {
	s := newTestSkill(t)
	got := s.Run(context.Background(), "{not json")
	if got != `{"error":"Invalid JSON arguments"}` {
		t.Fatalf("unexpected payload %s", got)
	}
}

func TestRunRequiresUserID(t *testing.T) {
	s := newTestSkill(t)
	got := s.Run(context.Background(), `{"action": "add_schedule"}`)
	if got != `{"error":"Error: user_id is required"}` {
		t.Fatalf("unexpected payload %s", got)
	}
}

func TestRunRejectsUnknownAction(t *testing.T) {
	s := newTestSkill(t)
	got := s.Run(context.Background(), `{"action": "explode", "user_id": "u1"}`)
	if got != `{"error":"Error: invalid action: explode"}` {
		t.Fatalf("unexpected payload %s", got)
	}
}

func TestRunAddThenSearch(t *testing.T) {
	s := newTestSkill(t)
	ctx := context.Background()

	got := s.Run(ctx, `{
		"action": "add_schedule",
		"user_id": "u1",
		"schedule": {
			"title": "standup",
			"description": "daily",
			"start_time": "2024-01-02T09:00:00",
			"end_time": "2024-01-02T09:15:00",
			"tags": ["work"]
		}
	}`)
	if got != `{"message":"Schedule added successfully"}` {
		t.Fatalf("unexpected payload %s", got)
	}

	out := s.Run(ctx, `{"action": "search_by_title", "user_id": "u1", "title": "stand"}`)
	var results []map[string]any
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("search payload not a JSON array: %v\n%s", err, out)
	}
	if len(results) != 1 || results[0]["title"] != "standup" {
		t.Fatalf("unexpected results %s", out)
	}
	if !strings.Contains(out, "\n  ") {
		t.Fatalf("expected pretty-printed records, got %s", out)
	}
}

func TestRunAddMissingScheduleObject(t *testing.T) {
	s := newTestSkill(t)
	got := s.Run(context.Background(), `{"action": "add_schedule", "user_id": "u1"}`)
	if got != `{"error":"Error: title is required"}` {
		t.Fatalf("unexpected payload %s", got)
	}
}

func TestRunSearchEmptyStoreReturnsEmptyArray(t *testing.T) {
	s := newTestSkill(t)
	got := s.Run(context.Background(), `{"action": "search_by_tags", "user_id": "u1", "tags": ["x"]}`)
	if got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}
