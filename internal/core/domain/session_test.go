package domain

import (
	"encoding/json"
	"testing"
)

func TestUser_JSONRoundTripKeepsProfileFields(t *testing.T) {
	raw := `{"id":"u1","name":"Dharshika","email":"d@example.com","currentRole":"student","targetRole":"Data Analyst"}`

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.ID != "u1" || u.Name != "Dharshika" || u.Email != "d@example.com" {
		t.Fatalf("identity fields not mapped: %+v", u)
	}
	if u.Profile["currentRole"] != "student" || u.Profile["targetRole"] != "Data Analyst" {
		t.Fatalf("profile fields lost: %+v", u.Profile)
	}

	out, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var flat map[string]any
	if err := json.Unmarshal(out, &flat); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if flat["targetRole"] != "Data Analyst" || flat["id"] != "u1" {
		t.Fatalf("round trip dropped fields: %v", flat)
	}
	if _, ok := flat["profile"]; ok {
		t.Fatalf("profile must flatten, not nest: %v", flat)
	}
}

func TestSession_IsAuthenticated(t *testing.T) {
	if (Session{}).IsAuthenticated() {
		t.Fatal("empty session must not be authenticated")
	}
	if !(Session{Token: "t"}).IsAuthenticated() {
		t.Fatal("session with token must be authenticated")
	}
}
