package logger

import (
	"errors"
	"log/slog"
	"reflect"
	"testing"
)

func TestNormalizeBareError(t *testing.T) {
	boom := errors.New("boom")

	got := normalize([]any{boom})

	if len(got) != 1 {
		t.Fatalf("got %d args, want 1", len(got))
	}
	attr, ok := got[0].(slog.Attr)
	if !ok || attr.Key != "error" {
		t.Fatalf("got %#v, want an error attr", got[0])
	}
	if attr.Value.Any() != boom {
		t.Fatalf("got %v, want the original error", attr.Value.Any())
	}
}

func TestNormalizeKeyValuePairs(t *testing.T) {
	args := []any{"rows", 3, "path", "data.csv"}

	if got := normalize(args); !reflect.DeepEqual(got, args) {
		t.Fatalf("got %v, want untouched args", got)
	}
}

func TestNormalizeSingleAttr(t *testing.T) {
	args := []any{slog.String("path", "data.csv")}

	got := normalize(args)

	if len(got) != 1 {
		t.Fatalf("got %d args, want 1", len(got))
	}
	attr, ok := got[0].(slog.Attr)
	if !ok || attr.Key != "path" {
		t.Fatalf("got %#v, want the original attr", got[0])
	}
}

func TestNormalizeSingleValue(t *testing.T) {
	got := normalize([]any{42})

	attr, ok := got[0].(slog.Attr)
	if !ok || attr.Key != "detail" {
		t.Fatalf("got %#v, want a detail attr", got[0])
	}
}
