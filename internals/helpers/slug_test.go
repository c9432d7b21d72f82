package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Trinity Baptist Church", "trinity-baptist-church"},
		{"  Grace   Community  ", "grace-community"},
		{"St. Mark's (Downtown)", "st-marks-downtown"},
		{"UPPER case", "upper-case"},
		{"éàccents stripped", "ccents-stripped"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestGenerateSlugIsStable(t *testing.T) {
	first := GenerateSlug("New Hope Fellowship")
	second := GenerateSlug("New Hope Fellowship")
	assert.Equal(t, first, second)
}
