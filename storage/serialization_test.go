package storage

import (
	"testing"
	"time"

	"github.com/parsatext/hamanand/core"
)

func TestSentenceRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		record core.SentenceRecord
	}{
		{
			name: "english sentence",
			record: core.SentenceRecord{
				Id:        "abc123",
				Text:      "References should be listed at the end.",
				CreatedAt: time.Unix(1700000000, 0).UTC(),
			},
		},
		{
			name: "persian sentence",
			record: core.SentenceRecord{
				Id:        core.IDFromContent("سرقت ادبی"),
				Text:      "سرقت ادبی به معنای استفاده از کار دیگران بدون ذکر منبع است.",
				CreatedAt: time.Unix(1800000000, 0).UTC(),
			},
		},
		{
			name: "zero timestamp",
			record: core.SentenceRecord{
				Id:        "x",
				Text:      "y",
				CreatedAt: time.Unix(0, 0).UTC(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalSentenceRecord(&tt.record)

			decoded, err := UnmarshalSentenceRecord(data)
			if err != nil {
				t.Fatalf("UnmarshalSentenceRecord failed: %v", err)
			}

			if decoded.Id != tt.record.Id {
				t.Errorf("Id = %q, want %q", decoded.Id, tt.record.Id)
			}
			if decoded.Text != tt.record.Text {
				t.Errorf("Text = %q, want %q", decoded.Text, tt.record.Text)
			}
			if !decoded.CreatedAt.Equal(tt.record.CreatedAt) {
				t.Errorf("CreatedAt = %v, want %v", decoded.CreatedAt, tt.record.CreatedAt)
			}
		})
	}
}

func TestUnmarshalSentenceRecord_Truncated(t *testing.T) {
	record := core.SentenceRecord{Id: "abc", Text: "some text", CreatedAt: time.Now().UTC()}
	data := MarshalSentenceRecord(&record)

	if _, err := UnmarshalSentenceRecord(data[:2]); err == nil {
		t.Error("expected error for truncated data")
	}
}

func TestSentenceRecordTimestampPrecision(t *testing.T) {
	// Sub-second precision is intentionally dropped; created_at is stored
	// as integer unix seconds.
	record := core.SentenceRecord{
		Id:        "abc",
		Text:      "text",
		CreatedAt: time.Unix(1700000000, 999999999).UTC(),
	}

	decoded, err := UnmarshalSentenceRecord(MarshalSentenceRecord(&record))
	if err != nil {
		t.Fatalf("UnmarshalSentenceRecord failed: %v", err)
	}
	if got := decoded.CreatedAt; !got.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("CreatedAt = %v, want %v", got, time.Unix(1700000000, 0).UTC())
	}
}
