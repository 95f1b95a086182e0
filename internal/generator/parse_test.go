package generator

import (
	"testing"
)

func TestParseDrafts(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		stage     Stage
		wantErr   bool
		numDrafts int
	}{
		{
			name:      "strict json",
			input:     `{"posts": [{"content": "Post one", "estimated_engagement": 120}, {"content": "Post two", "estimated_engagement": 90}]}`,
			stage:     StageStrict,
			numDrafts: 2,
		},
		{
			name:      "json embedded in prose",
			input:     "Here are your posts:\n```json\n{\"posts\": [{\"content\": \"Wrapped\", \"estimated_engagement\": 75}]}\n```\nEnjoy!",
			stage:     StageExtracted,
			numDrafts: 1,
		},
		{
			name:    "no json at all",
			input:   "Sorry, I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "json without posts key",
			input:   `{"drafts": []}`,
			wantErr: true,
		},
		{
			name:    "empty posts array",
			input:   `{"posts": []}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts, stage, err := parseDrafts(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stage != tt.stage {
				t.Errorf("stage = %v, want %v", stage, tt.stage)
			}
			if len(drafts) != tt.numDrafts {
				t.Errorf("got %d drafts, want %d", len(drafts), tt.numDrafts)
			}
		})
	}
}

func TestParseHashtags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		stage    Stage
		wantErr  bool
		expected []string
	}{
		{
			name:     "strict json",
			input:    `{"hashtags": ["#Go", "#Backend"]}`,
			limit:    5,
			stage:    StageStrict,
			expected: []string{"#Go", "#Backend"},
		},
		{
			name:     "embedded json",
			input:    "Sure! {\"hashtags\": [\"#Hiring\"]} hope that helps",
			limit:    5,
			stage:    StageExtracted,
			expected: []string{"#Hiring"},
		},
		{
			name:     "raw hashtags in text",
			input:    "Try #RemoteWork and #Leadership for this one",
			limit:    5,
			stage:    StageScavenged,
			expected: []string{"#RemoteWork", "#Leadership"},
		},
		{
			name:     "limit caps the result",
			input:    `{"hashtags": ["#a", "#b", "#c", "#d"]}`,
			limit:    2,
			stage:    StageStrict,
			expected: []string{"#a", "#b"},
		},
		{
			name:    "nothing usable",
			input:   "no tags here",
			limit:   5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags, stage, err := parseHashtags(tt.input, tt.limit)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stage != tt.stage {
				t.Errorf("stage = %v, want %v", stage, tt.stage)
			}
			if len(tags) != len(tt.expected) {
				t.Fatalf("got %d tags %v, want %v", len(tags), tags, tt.expected)
			}
			for i, tag := range tags {
				if tag != tt.expected[i] {
					t.Errorf("tag[%d] = %q, want %q", i, tag, tt.expected[i])
				}
			}
		})
	}
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage    Stage
		expected string
	}{
		{StageStrict, "strict"},
		{StageExtracted, "extracted"},
		{StageScavenged, "scavenged"},
		{StageFallback, "fallback"},
		{Stage(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.expected {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.expected)
		}
	}
}
