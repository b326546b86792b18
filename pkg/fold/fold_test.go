package fold_test

import (
	"testing"

	"recipebox/pkg/fold"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Crème Brûlée", "creme brulee"},
		{"JALAPEÑO", "jalapeno"},
		{"Mac & Cheese", "mac & cheese"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, fold.String(tt.in))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, fold.Contains("Crème Brûlée", "brulee"))
	assert.True(t, fold.Contains("Lemon Posset", "POSSET"))
	assert.True(t, fold.Contains("anything", ""))
	assert.False(t, fold.Contains("Granola Bowl", "chili"))
}
