package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gobasic/pkg/langdetect"
)

func TestDetectHeuristic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		isBasic bool
	}{
		{
			name:    "numbered listing",
			content: "10 CLS\n20 PRINT \"HELLO\"\n30 GOTO 20\n",
			isBasic: true,
		},
		{
			name:    "structured program",
			content: "DECLARE SUB Greet ()\n' entry\nname$ = \"x\"\nCALL Greet\nEND\n",
			isBasic: true,
		},
		{
			name:    "labels and lower case",
			content: "start: cls\nprint 1\ngoto start\n",
			isBasic: true,
		},
		{
			name:    "prose",
			content: "Dear reader,\nthis is a letter about nothing in particular.\nRegards\n",
			isBasic: false,
		},
		{
			name:    "blank",
			content: "  \n\n",
			isBasic: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lang := langdetect.Detect("LISTING", []byte(tc.content))
			assert.Equal(t, tc.isBasic, langdetect.IsBasic(lang), "detected %q", lang)
		})
	}
}

func TestDetectShebang(t *testing.T) {
	t.Parallel()

	lang := langdetect.Detect("run", []byte("#!/bin/sh\necho hi\n"))
	assert.False(t, langdetect.IsBasic(lang))
}

func TestIsBasic(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.IsBasic(langdetect.Basic))
	assert.True(t, langdetect.IsBasic("FreeBasic"))
	assert.False(t, langdetect.IsBasic(langdetect.Unknown))
	assert.False(t, langdetect.IsBasic("Go"))
}
