package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBreadcrumbs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [NumCategories]string
	}{
		{
			name: "full five-level path",
			in:   "Home > Baby Products > Nursing & Feeding > Breastfeeding > Pumps",
			want: [NumCategories]string{"Baby Products", "Nursing & Feeding", "Breastfeeding", "Pumps"},
		},
		{
			name: "six segments drops the fifth after root",
			in:   "Home > A > B > C > D > E",
			want: [NumCategories]string{"A", "B", "C", "D"},
		},
		{
			name: "two levels",
			in:   "Home > Electronics",
			want: [NumCategories]string{"Electronics"},
		},
		{
			name: "root only",
			in:   "Home",
			want: [NumCategories]string{},
		},
		{
			name: "blank",
			in:   "   ",
			want: [NumCategories]string{},
		},
		{
			name: "empty",
			in:   "",
			want: [NumCategories]string{},
		},
		{
			name: "untrimmed segments",
			in:   "Home>  Toys >Games  ",
			want: [NumCategories]string{"Toys", "Games"},
		},
		{
			name: "casing preserved",
			in:   "home > electronics > TVs",
			want: [NumCategories]string{"electronics", "TVs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitBreadcrumbs(tt.in))
		})
	}
}
