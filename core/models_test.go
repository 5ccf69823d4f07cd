package core

import (
	"encoding/json"
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same id",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "persian content",
			content: "سرقت ادبی به معنای استفاده از کار دیگران است",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different ids for same content: %s vs %s", id1, id2)
			}
			if len(id1) != 16 {
				t.Errorf("IDFromContent() expected 16 hex chars, got %d", len(id1))
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same id for different content")
	}
}

func TestHitSource_String(t *testing.T) {
	tests := []struct {
		name   string
		source HitSource
		want   string
	}{
		{name: "internal", source: SourceInternal, want: "internal_db"},
		{name: "open wikipedia", source: SourceOpenWikipedia, want: "open_wikipedia"},
		{name: "zero value", source: HitSource(0), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.source.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHitSource_JSONRoundTrip(t *testing.T) {
	for _, source := range []HitSource{SourceInternal, SourceOpenWikipedia} {
		data, err := json.Marshal(source)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", source, err)
		}

		var decoded HitSource
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if decoded != source {
			t.Errorf("round trip changed source: %v -> %v", source, decoded)
		}
	}
}

func TestHitSource_MarshalInvalid(t *testing.T) {
	if _, err := json.Marshal(HitSource(42)); err == nil {
		t.Error("Marshal of invalid source should fail")
	}
}

func TestHitSource_UnmarshalInvalid(t *testing.T) {
	var s HitSource
	if err := json.Unmarshal([]byte(`"some_other_source"`), &s); err == nil {
		t.Error("Unmarshal of unknown source name should fail")
	}
}

func TestResult_JSONFieldNames(t *testing.T) {
	result := Result{
		Query:             "a sentence",
		SimilarityPercent: 87.5,
		BestHit: &Hit{
			Source:            SourceInternal,
			TargetId:          "abc",
			TargetText:        "a sentence too",
			SimilarityPercent: 87.5,
		},
		Hits: []Hit{
			{Source: SourceInternal, TargetId: "abc", TargetText: "a sentence too", SimilarityPercent: 87.5},
		},
		Notes: Notes{InternalCandidates: 1, OpenCandidates: 0, OpenSourcesUsed: false},
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for _, field := range []string{"query", "similarity_percent", "best_hit", "hits", "notes"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("serialized result missing field %q", field)
		}
	}

	notes, ok := decoded["notes"].(map[string]any)
	if !ok {
		t.Fatalf("notes is not an object: %T", decoded["notes"])
	}
	for _, field := range []string{"internal_candidates", "open_candidates", "open_sources_used"} {
		if _, ok := notes[field]; !ok {
			t.Errorf("serialized notes missing field %q", field)
		}
	}
}

func TestResult_NilBestHitSerializesAsNull(t *testing.T) {
	result := Result{Query: "q", Hits: []Hit{}}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded["best_hit"] != nil {
		t.Errorf("best_hit should be null, got %v", decoded["best_hit"])
	}
}
