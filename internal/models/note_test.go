package models

import (
	"regexp"
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 3, 0, time.Local)

	got := FormatTimestamp(ts)
	if got != "2024-03-09 07:05:03" {
		t.Errorf("expected 2024-03-09 07:05:03, got %s", got)
	}

	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	if !pattern.MatchString(FormatTimestamp(time.Now())) {
		t.Error("timestamp does not match YYYY-MM-DD HH:MM:SS")
	}
}

func TestNoteDate(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		want      string
		wantErr   bool
	}{
		{
			name:      "valid timestamp",
			timestamp: "2024-01-15 10:30:00",
			want:      "2024-01-15",
		},
		{
			name:      "end of day",
			timestamp: "2024-12-31 23:59:59",
			want:      "2024-12-31",
		},
		{
			name:      "date only",
			timestamp: "2024-01-15",
			wantErr:   true,
		},
		{
			name:      "empty",
			timestamp: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Note{ID: 1, Timestamp: tt.timestamp}
			got, err := n.Date()
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
