package attrstring

import (
	"reflect"
	"testing"
)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "Lorem", []string{"Lorem"}},
		{"trailing split", "Lorem\nipsum", []string{"Lorem\n", "ipsum"}},
		{"leading newline", "\nipsum", []string{"\n", "ipsum"}},
		{"blank paragraph", "Lorem\n\nipsum", []string{"Lorem\n", "\n", "ipsum"}},
		{"empty", "", []string{""}},
		{"trailing newline only", "Lorem\n", []string{"Lorem\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paras := SplitParagraphs(tt.input)
			got := make([]string, len(paras))
			for i, p := range paras {
				got[i] = p.String(tt.input)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitParagraphs(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
