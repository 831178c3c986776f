package web

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	s := NewServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)
	s.router.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want %q", resp.Status, "ok")
	}
}

func TestHandleRunCompilesAndExecutes(t *testing.T) {
	s := NewServer()
	body, _ := json.Marshal(RunRequest{Source: "R R' ;"})
	req := httptest.NewRequest("POST", "/api/run", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp RunResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Halted || resp.Error != "" {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.MemoryUsed != 1 {
		t.Errorf("MemoryUsed = %d, want 1", resp.MemoryUsed)
	}
}

func TestHandleRunRejectsUndefinedLabel(t *testing.T) {
	s := NewServer()
	body, _ := json.Marshal(RunRequest{Source: "R =nope ;"})
	req := httptest.NewRequest("POST", "/api/run", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != 422 {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
