package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "lowercases",
			input: "Breaking News",
			want:  "breaking news",
		},
		{
			name:  "strips punctuation",
			input: "Shocking: aliens found!!!",
			want:  "shocking aliens found",
		},
		{
			name:  "trims whitespace",
			input: "  padded claim  ",
			want:  "padded claim",
		},
		{
			name:  "folds alef variants",
			input: "أخبار إعلان آخر",
			want:  "اخبار اعلان اخر",
		},
		{
			name:  "folds teh marbuta and alef maqsura",
			input: "مدينة مستشفى",
			want:  "مدينه مستشفي",
		},
		{
			name:  "keeps digits and underscore",
			input: "top_10 stories in 2024",
			want:  "top_10 stories in 2024",
		},
		{
			name:  "whitespace only",
			input: " \t\n ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Breaking: NASA finds water on Mars!",
		"أخبار عاجلة: حدث مهم",
		"plain text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
