package extract

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestFromBase64PlainPayload(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("Jane Doe\nBackend engineer\twith Go experience"))
	text, err := FromBase64(encoded)
	if err != nil {
		t.Fatalf("FromBase64: %v", err)
	}
	if text != "Jane Doe Backend engineer with Go experience" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFromBase64DataURLPrefix(t *testing.T) {
	encoded := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("hello world"))
	text, err := FromBase64(encoded)
	if err != nil {
		t.Fatalf("FromBase64: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFromBase64StripsControlCharacters(t *testing.T) {
	raw := "Jane\x00Doe\x01 \x02 engineer"
	encoded := base64.StdEncoding.EncodeToString([]byte(raw))
	text, err := FromBase64(encoded)
	if err != nil {
		t.Fatalf("FromBase64: %v", err)
	}
	if text != "JaneDoe engineer" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFromBase64EmptyInput(t *testing.T) {
	if _, err := FromBase64("  "); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestFromBase64InvalidPayload(t *testing.T) {
	if _, err := FromBase64("!!!not-base64!!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}
