package crossref

import "testing"

func TestToPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"jats markup",
			"<jats:title>Abstract</jats:title><jats:p>We study soil.</jats:p>",
			"Abstract We study soil. ",
		},
		{
			"latex math",
			"Bound of $O(n \\log n)$ holds.",
			"Bound of holds.",
		},
		{
			"backslash words",
			"We use \\emph{bold} claims.",
			"We use  claims.",
		},
		{
			"collapses whitespace",
			"  too \n\n many \t spaces",
			"too many spaces",
		},
		{
			"empty",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToPlainText(tt.in); got != tt.want {
				t.Errorf("ToPlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
