package metacommand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gobasic/pkg/metacommand"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "include spacing", input: "'  $INCLUDE:'FOO.BI'", want: "' $INCLUDE: 'FOO.BI'"},
		{name: "include touching the quote", input: "'$include: 'qb.bi'", want: "' $INCLUDE: 'qb.bi'"},
		{name: "blanks around the colon", input: "' $INCLUDE  :   'A.BI'", want: "' $INCLUDE: 'A.BI'"},
		{name: "dynamic", input: "'   $dynamic", want: "' $DYNAMIC"},
		{name: "static in REM", input: "REM   $STATIC", want: "REM $STATIC"},
		{name: "trailing text keeps one blank", input: "' $STATIC    arrays", want: "' $STATIC arrays"},
		{name: "trailing blanks dropped", input: "' $STATIC   ", want: "' $STATIC"},
		{name: "two directives", input: "'$STATIC   $INCLUDE:'X.BI'", want: "' $STATIC $INCLUDE: 'X.BI'"},
		{name: "no directive", input: "'  keep   THIS  text", want: "'  keep   THIS  text"},
		{name: "dollar inside a word", input: "' cost$DYNAMIC", want: "' cost$DYNAMIC"},
		{name: "unknown directive", input: "'  $DEBUG", want: "'  $DEBUG"},
		{name: "directive prefix of a longer word", input: "' $STATICS", want: "' $STATICS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := metacommand.Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := metacommand.Normalize(got)
			require.NoError(t, err)
			assert.Equal(t, got, again, "normalizing twice must equal normalizing once")
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"' $INCLUDE",
		"' $INCLUDE 'A.BI'",
		"' $INCLUDE: A.BI",
		"' $INCLUDE: 'A.BI",
		"' $INCLUDE: ''",
	} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := metacommand.Normalize(input)
			require.ErrorIs(t, err, metacommand.ErrMetacommand)
		})
	}
}

func TestDirectives(t *testing.T) {
	t.Parallel()

	found, err := metacommand.Directives("REM $dynamic $INCLUDE: 'GAME.BI' and more")
	require.NoError(t, err)
	assert.Equal(t, []metacommand.Directive{
		{Name: metacommand.Dynamic},
		{Name: metacommand.Include, File: "GAME.BI"},
	}, found)

	found, err = metacommand.Directives("' nothing here")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range []string{"'  $INCLUDE:'FOO.BI'", "REM $STATIC x", "' $ $ $dynamic", "'$INCLUDE:'"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		once, err := metacommand.Normalize(input)
		if err != nil {
			return
		}
		twice, err := metacommand.Normalize(once)
		if err != nil {
			t.Fatalf("normalized %q to %q, which fails: %v", input, once, err)
		}
		if once != twice {
			t.Fatalf("not idempotent: %q -> %q -> %q", input, once, twice)
		}
	})
}
