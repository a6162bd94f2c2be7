package main

import (
	"bytes"
	"encoding/json"
	"itinerary-service/internal/api/dto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runPlanner(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const tripJSON = `{
	"id": "trip",
	"title": "Kyoto",
	"days": [
		{"day_number": 1, "items": [
			{"category": "destination", "name": "Fushimi Inari", "start_time": "07:00", "duration": 120},
			{"category": "meal", "name": "Udon"}
		]},
		{"day_number": 2, "items": [
			{"category": "destination", "name": "Arashiyama"}
		]}
	]
}`

func TestRebuildCommandPrintsTable(t *testing.T) {
	dir := t.TempDir()
	day := writeFile(t, dir, "day.json", `{"items": [
		{"id": "b", "category": "meal", "name": "Lunch", "time_slot": "12:00", "duration": 60},
		{"id": "a", "category": "destination", "name": "Temple", "time_slot": "09:00", "duration": 90},
		{"id": "t", "category": "transit", "name": "Bus"}
	]}`)

	out, err := runPlanner(t, "rebuild", day)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if !strings.Contains(out, "09:00:00") || !strings.Contains(out, "12:00:00") {
		t.Fatalf("rebuilt slots missing from output:\n%s", out)
	}
	if strings.Contains(out, "Bus") {
		t.Fatalf("transit item should be dropped:\n%s", out)
	}
	if strings.Index(out, "Temple") > strings.Index(out, "Lunch") {
		t.Fatalf("items should be ordered by start:\n%s", out)
	}
}

func TestAllocateCommandJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "trip.json", tripJSON)

	out, err := runPlanner(t, "--json", "allocate", path)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}

	var res dto.ItineraryResponse
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got := res.Days[0].Items[1].TimeSlot; got != "09:00-10:00" {
		t.Fatalf("udon slot = %q, want 09:00-10:00", got)
	}
	if got := res.Days[1].Items[0].TimeSlot; got != "08:00-09:30" {
		t.Fatalf("arashiyama slot = %q, want 08:00-09:30", got)
	}
}

func TestAllocateCommandCanonical(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "trip.json", tripJSON)

	out, err := runPlanner(t, "--json", "allocate", "--canonical", path)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}

	var res dto.ItineraryResponse
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	first := res.Days[0].Items
	if first[0].TimeSlot != "07:00:00" || first[1].TimeSlot != "09:00:00" {
		t.Fatalf("canonical slots = %q, %q; want 07:00:00, 09:00:00", first[0].TimeSlot, first[1].TimeSlot)
	}
}

func TestStoreCommands(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "store")
	path := writeFile(t, dir, "trip.json", tripJSON)

	if _, err := runPlanner(t, "--store", store, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}

	out, err := runPlanner(t, "--store", store, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if strings.TrimSpace(out) != "trip" {
		t.Fatalf("stored ids = %q, want trip", out)
	}

	if _, err := runPlanner(t, "--store", store, "apply", "trip", `{"type":"add_day"}`); err != nil {
		t.Fatalf("apply add_day: %v", err)
	}

	out, err = runPlanner(t, "--store", store, "--json", "show", "trip")
	if err != nil {
		t.Fatalf("show trip: %v", err)
	}
	var res dto.ItineraryResponse
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Days) != 3 || res.Days[2].DayNumber != 3 {
		t.Fatalf("days after add_day = %+v", res.Days)
	}

	if _, err := runPlanner(t, "--store", store, "apply", "trip", `{"type":"reorder","day":1,"from":0,"to":9}`); err == nil {
		t.Fatal("out of range reorder should fail")
	}
	if _, err := runPlanner(t, "--store", store, "show", "missing"); err == nil {
		t.Fatal("showing an unknown id should fail")
	}
}

func TestInvalidDayStart(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "trip.json", tripJSON)

	if _, err := runPlanner(t, "--day-start", "dawn", "allocate", path); err == nil {
		t.Fatal("expected error for invalid --day-start")
	}
}
