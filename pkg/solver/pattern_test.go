package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePattern(t *testing.T) {
	p, err := CompilePattern("l?v-l", "xz, x")
	require.NoError(t, err)

	assert.Equal(t, 5, p.Len())
	assert.Equal(t, "l_v_l", p.String())
	assert.Equal(t, "l", p.Prefix())
	assert.Equal(t, "lv", p.KnownLetters())
	assert.Equal(t, "xz", p.InvalidLetters())
	assert.Equal(t, []int{1, 3}, p.Unknown())
	assert.True(t, p.IsKnown('v'))
	assert.False(t, p.IsKnown('e'))
	assert.True(t, p.IsInvalid('z'))
}

func TestPatternPrefix(t *testing.T) {
	testCases := []struct {
		pattern string
		prefix  string
	}{
		{"_____", ""},
		{"a____", "a"},
		{"ab_c_", "ab"},
		{"abcde", "abcde"},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			p, err := CompilePattern(tc.pattern, "")
			require.NoError(t, err)
			assert.Equal(t, tc.prefix, p.Prefix())
		})
	}
}

func TestPatternMatches(t *testing.T) {
	testCases := []struct {
		pattern string
		invalid string
		word    string
		want    bool
	}{
		{"l_v_l", "", "level", true},
		{"l_v_l", "", "lever", false},
		{"l_v_l", "e", "level", false},
		{"_____", "", "level", true},
		{"_____", "", "levels", false},
		{"_____", "", "leve", false},
		{"e____", "", "eerie", false},
		{"ee__e", "", "eerie", true},
		{"__ä__", "", "bäume", false},
		{"_ä___", "", "bäume", true},
		{"_ä___", "u", "bäume", false},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern+"/"+tc.word, func(t *testing.T) {
			p, err := CompilePattern(tc.pattern, tc.invalid)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Matches(tc.word))
		})
	}
}

func TestPatternFilterKeepsOrder(t *testing.T) {
	p, err := CompilePattern("__a__", "")
	require.NoError(t, err)
	got := p.Filter([]string{"crane", "brand", "apple", "crazy", "banal"})
	assert.Equal(t, []string{"crane", "brand", "crazy"}, got)
}

func TestSolverCompileNormalizes(t *testing.T) {
	p, err := New().Compile(" BÄ?-E ", "X")
	require.NoError(t, err)
	assert.Equal(t, "bä__e", p.String())
	assert.Equal(t, "x", p.InvalidLetters())
}
