package validators

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	pkgerrors "github.com/agrisense-io/agrisense-backend/pkg/errors"
)

type registerBody struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestDecodeJSONBodyValidates(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"name":"Jo","email":"jo@farm.com","password":"password123"}`))

	var body registerBody
	if err := DecodeJSONBody(r, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Email != "jo@farm.com" {
		t.Fatalf("unexpected decode result %+v", body)
	}
}

func TestDecodeJSONBodyRejectsShortPassword(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"name":"Jo","email":"jo@farm.com","password":"123"}`))

	var body registerBody
	err := DecodeJSONBody(r, &body)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["password"] != "must be at least 6" {
		t.Fatalf("unexpected password message %q", details["password"])
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"name":"Jo","email":"jo@farm.com","password":"password123","admin":true}`))

	var body registerBody
	if err := DecodeJSONBody(r, &body); err == nil {
		t.Fatalf("expected unknown field rejection")
	}
}

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/data/sensor?limit=20", nil)
	got, err := ParseQueryInt(r, "limit", 50, 1, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Fatalf("expected 20 got %d", got)
	}

	r = httptest.NewRequest("GET", "/api/data/sensor", nil)
	got, err = ParseQueryInt(r, "limit", 50, 1, 500)
	if err != nil || got != 50 {
		t.Fatalf("expected default 50, got %d err %v", got, err)
	}

	r = httptest.NewRequest("GET", "/api/data/sensor?limit=abc", nil)
	if _, err := ParseQueryInt(r, "limit", 50, 1, 500); err == nil {
		t.Fatalf("expected error for non-numeric limit")
	}

	r = httptest.NewRequest("GET", "/api/data/sensor?limit=9999", nil)
	if _, err := ParseQueryInt(r, "limit", 50, 1, 500); err == nil {
		t.Fatalf("expected error for out-of-range limit")
	}
}

func TestParseQueryBool(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/data/alerts?resolved=false", nil)
	got := ParseQueryBool(r, "resolved")
	if got == nil || *got {
		t.Fatalf("expected false, got %v", got)
	}

	r = httptest.NewRequest("GET", "/api/data/alerts?resolved=true", nil)
	got = ParseQueryBool(r, "resolved")
	if got == nil || !*got {
		t.Fatalf("expected true, got %v", got)
	}

	r = httptest.NewRequest("GET", "/api/data/alerts", nil)
	if got = ParseQueryBool(r, "resolved"); got != nil {
		t.Fatalf("absent key should yield nil, got %v", got)
	}

	r = httptest.NewRequest("GET", "/api/data/alerts?resolved=maybe", nil)
	if got = ParseQueryBool(r, "resolved"); got != nil {
		t.Fatalf("non-boolean values are ignored, got %v", got)
	}
}

func TestParseQueryTime(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/data/sensor?startDate=2025-06-01", nil)
	got, err := ParseQueryTime(r, "startDate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("expected %v got %v", want, got)
	}

	r = httptest.NewRequest("GET", "/api/data/sensor?startDate=2025-06-01T12:30:00Z", nil)
	if got, err = ParseQueryTime(r, "startDate"); err != nil || got == nil {
		t.Fatalf("RFC3339 should parse, got %v err %v", got, err)
	}

	r = httptest.NewRequest("GET", "/api/data/sensor?startDate=yesterday", nil)
	if _, err := ParseQueryTime(r, "startDate"); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func TestQueryString(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/data/sensor?sensorId=%20SENSOR_001%20", nil)
	if got := QueryString(r, "sensorId", 64); got != "SENSOR_001" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestSanitizeStringTruncatesOnRuneBoundary(t *testing.T) {
	if got := SanitizeString("SENSOR_001", 6); got != "SENSOR" {
		t.Fatalf("expected %q got %q", "SENSOR", got)
	}

	// Each rune here is three bytes; a byte-index cut would split one.
	if got := SanitizeString("日本語テスト", 3); got != "日本語" {
		t.Fatalf("expected %q got %q", "日本語", got)
	}
	if got := SanitizeString("日本語", 10); got != "日本語" {
		t.Fatalf("expected %q got %q", "日本語", got)
	}
	if !utf8.ValidString(SanitizeString("crop=小麦畑", 5)) {
		t.Fatal("expected valid UTF-8 after truncation")
	}
}
