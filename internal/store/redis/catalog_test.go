package redis

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MrSnakeDoc/uadb/internal/domain"
)

func TestEncodeDecodeRecords(t *testing.T) {
	in := []*domain.UserAgent{
		{ID: "2", Name: "Safari on iPhone", Category: domain.CategoryMobile, Popularity: 21.5},
		nil,
		{ID: "1", Name: "Chrome on Windows", Category: domain.CategoryDesktop},
	}

	ids, data, err := encodeRecords(in, func(ua *domain.UserAgent) string { return ua.ID })
	if err != nil {
		t.Fatalf("encodeRecords() error = %v", err)
	}
	if diff := cmp.Diff([]string{"2", "1"}, ids); diff != "" {
		t.Errorf("encodeRecords() ids mismatch (-want +got):\n%s", diff)
	}

	// MGET returns strings, and nil for expired keys.
	values := []any{string(data[0]), nil, string(data[1])}
	out, err := decodeRecords[domain.UserAgent](values)
	if err != nil {
		t.Fatalf("decodeRecords() error = %v", err)
	}

	want := []*domain.UserAgent{in[0], in[2]}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRecordsErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []any
	}{
		{name: "corrupt json", values: []any{"{not json"}},
		{name: "unexpected type", values: []any{42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeRecords[domain.Article](tt.values); err == nil {
				t.Error("decodeRecords() should return error")
			}
		})
	}
}

func TestDecodeRecordsEmpty(t *testing.T) {
	out, err := decodeRecords[domain.Article](nil)
	if err != nil {
		t.Fatalf("decodeRecords() error = %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("decodeRecords(nil) = %v, want empty non-nil slice", out)
	}
}

func TestToAny(t *testing.T) {
	got := toAny([]string{"a", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("toAny() = %v", got)
	}
}
