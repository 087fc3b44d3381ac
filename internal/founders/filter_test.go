package founders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterNames(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			"full names pass through",
			[]string{"Jane Smith", "John Doe"},
			[]string{"Jane Smith", "John Doe"},
		},
		{
			"titles stripped",
			[]string{"Dr. Jane Smith", "CEO John Doe", "Robert Johnson CTO"},
			[]string{"Jane Smith", "John Doe", "Robert Johnson"},
		},
		{
			"disqualifying words dropped",
			[]string{"The founding team", "Acme Inc", "Jane Smith"},
			[]string{"Jane Smith"},
		},
		{
			"short lines dropped",
			[]string{"al", "-", "Jane Smith"},
			[]string{"Jane Smith"},
		},
		{
			"single names need 4+ alphabetic chars",
			[]string{"Sam", "Sami", "Jo3y"},
			[]string{"Sami"},
		},
		{
			"duplicates kept in order",
			[]string{"Jane Smith", "Jane Smith"},
			[]string{"Jane Smith", "Jane Smith"},
		},
		{
			"whitespace trimmed",
			[]string{"  Jane Smith  ", ""},
			[]string{"Jane Smith"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterNames(tt.lines))
		})
	}
}

func TestFilterNames_TitleOnlyLine(t *testing.T) {
	// A line that is nothing but a title collapses to empty after cleaning
	assert.Empty(t, FilterNames([]string{"CEO"}))
}

func TestFilterNames_Empty(t *testing.T) {
	assert.Empty(t, FilterNames(nil))
}
