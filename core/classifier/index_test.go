package classifier

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestIndex(t testing.TB, patterns ...string) *Index {
	t.Helper()
	compiled := make([]CompiledPattern, len(patterns))
	for i, p := range patterns {
		cp, err := Compile(Entry{Pattern: p, Ordinal: i}, i)
		require.NoError(t, err)
		compiled[i] = cp
	}
	idx, err := BuildIndex(compiled)
	require.NoError(t, err)
	return idx
}

func TestIndex_Specificity(t *testing.T) {
	idx := buildTestIndex(t, "*", "iPhone*", "iPhone 6*")

	slot, ok := idx.Query("iPhone 6 Plus")
	require.True(t, ok)
	assert.Equal(t, 2, slot)

	slot, ok = idx.Query("iPhone 5s")
	require.True(t, ok)
	assert.Equal(t, 1, slot)

	slot, ok = idx.Query("Nokia")
	require.True(t, ok)
	assert.Equal(t, 0, slot)
}

func TestIndex_TieBreakByDeclarationOrder(t *testing.T) {
	// Same score and length; the first declared wins whichever bucket it is in.
	idx := buildTestIndex(t, "*", "ab*d", "a*cd")

	slot, ok := idx.Query("abcd")
	require.True(t, ok)
	assert.Equal(t, 1, slot)

	idx = buildTestIndex(t, "*", "a*cd", "ab*d")
	slot, ok = idx.Query("abcd")
	require.True(t, ok)
	assert.Equal(t, 1, slot)
}

func TestIndex_CatchAllCompetes(t *testing.T) {
	// A leading-wildcard pattern with more literals beats a prefix match.
	idx := buildTestIndex(t, "*", "Mozilla*", "*Mozilla/5.0 (Windows NT*")

	slot, ok := idx.Query("Mozilla/5.0 (Windows NT 10.0)")
	require.True(t, ok)
	assert.Equal(t, 2, slot)
}

func TestIndex_CaseInsensitive(t *testing.T) {
	idx := buildTestIndex(t, "*", "iphone*", "IPHONE OS*")

	upper, _ := idx.Query("IPHONE OS 17")
	lower, _ := idx.Query("iphone os 17")
	assert.Equal(t, upper, lower)
	assert.Equal(t, 2, upper)
}

func TestIndex_MissingDefault(t *testing.T) {
	cp, err := Compile(Entry{Pattern: "iPhone*"}, 0)
	require.NoError(t, err)

	_, err = BuildIndex([]CompiledPattern{cp})
	assert.ErrorIs(t, err, ErrMissingDefaultPattern)

	_, err = BuildIndex(nil)
	assert.ErrorIs(t, err, ErrMissingDefaultPattern)
}

func TestIndex_Stats(t *testing.T) {
	idx := buildTestIndex(t, "*", "ab*", "ab?", "abc*", "*x", "q")

	stats := idx.Stats()
	assert.Equal(t, 6, stats.Patterns)
	assert.Equal(t, 3, stats.Buckets)
	assert.Equal(t, 2, stats.LargestBucket)
	assert.Equal(t, "ab", stats.LargestPrefix)
	assert.Equal(t, 2, stats.CatchAll)
	assert.Equal(t, "*", stats.DefaultPattern)
	assert.Equal(t, 0, idx.DefaultEntry())
}

// wildcardRegexp is an independent oracle for the matching semantics.
func wildcardRegexp(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("(?is)^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

func randomString(rng *rand.Rand, alphabet string, min, max int) string {
	runes := []rune(alphabet)
	n := min + rng.Intn(max-min+1)
	b := make([]rune, n)
	for i := range b {
		b[i] = runes[rng.Intn(len(runes))]
	}
	return string(b)
}

// assertAgreesWithOracle checks every pattern against its regexp and the
// index answer against a full scan in rank order.
func assertAgreesWithOracle(t *testing.T, idx *Index, patterns, inputs []string) {
	t.Helper()
	oracles := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		oracles[i] = wildcardRegexp(p)
	}

	for _, input := range inputs {
		best := -1
		for j := range idx.patterns {
			cp := &idx.patterns[j]
			if !oracles[j].MatchString(input) {
				assert.False(t, MatchPattern(*cp, input), "pattern %q input %q", cp.Pattern, input)
				continue
			}
			assert.True(t, MatchPattern(*cp, input), "pattern %q input %q", cp.Pattern, input)
			if best < 0 || ranksAbove(cp, &idx.patterns[best]) {
				best = j
			}
		}

		slot, ok := idx.Query(input)
		require.True(t, ok)
		require.Equal(t, idx.patterns[best].Entry, slot, "input %q: want %q got %q",
			input, idx.patterns[best].Pattern, patterns[slot])
	}
}

func TestIndex_AgreesWithLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	patterns := []string{"*"}
	seen := map[string]bool{"*": true}
	for len(patterns) < 400 {
		p := randomString(rng, "abABß*?", 1, 7)
		if seen[p] {
			continue
		}
		seen[p] = true
		patterns = append(patterns, p)
	}
	idx := buildTestIndex(t, patterns...)

	inputs := make([]string, 2000)
	for i := range inputs {
		inputs[i] = randomString(rng, "abABßẞ", 1, 8)
	}
	assertAgreesWithOracle(t, idx, patterns, inputs)
}

func TestIndex_GramBucketsAgreeWithLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	// Letters from several simple folding orbits, including the Kelvin sign.
	const letters = "abAkK\u212Aßẞσς"
	starts := []string{"*", "aB*", "?"}

	piece := func() string {
		switch r := rng.Intn(100); {
		case r < 15:
			return "*"
		case r < 23:
			return "?"
		default:
			return randomString(rng, letters, 1, 1)
		}
	}

	patterns := []string{"*"}
	seen := map[string]bool{"*": true}
	for len(patterns) < 1500 {
		var b strings.Builder
		b.WriteString(starts[rng.Intn(len(starts))])
		for n := 3 + rng.Intn(8); n > 0; n-- {
			b.WriteString(piece())
		}
		p := b.String()
		if seen[p] {
			continue
		}
		seen[p] = true
		patterns = append(patterns, p)
	}
	idx := buildTestIndex(t, patterns...)

	stats := idx.Stats()
	require.GreaterOrEqual(t, stats.GramIndexed, 2, "both the ab bucket and the catch-all should be gram indexed")
	require.NotNil(t, idx.buckets["ab"].grams)
	require.NotNil(t, idx.catchAll.grams)

	inputs := make([]string, 1000)
	for i := range inputs {
		input := randomString(rng, letters, 1, 12)
		if i%2 == 0 {
			input = "Ab" + input
		}
		inputs[i] = input
	}
	assertAgreesWithOracle(t, idx, patterns, inputs)
}

const browscapWanted = "Mozilla/5.0 (*Windows NT 10.0*) AppleWebKit* (KHTML*like Gecko*)*Chrome/120.0*Safari*"

// browscapShapedPatterns builds n patterns in the form of the real dataset:
// almost all share the "Mozilla/5.0 (" prefix and the common WebKit literals.
func browscapShapedPatterns(n int) []string {
	oses := []string{"Windows NT 10.0", "Windows NT 6.1", "Mac OS X", "Linux", "Android", "iPhone OS", "CrOS"}
	browsers := []string{"Chrome", "Firefox", "Edge", "OPR", "YaBrowser", "Vivaldi"}

	patterns := []string{
		"*",
		"Mozilla/5.0 (*",
		"Mozilla/5.0 (*) AppleWebKit*",
		"Mozilla/5.0 (*Windows*) AppleWebKit*Chrome/*",
		browscapWanted,
	}
	for i := 0; len(patterns) < n; i++ {
		patterns = append(patterns, fmt.Sprintf(
			"Mozilla/5.0 (*%s*DEV%06d*) AppleWebKit* (KHTML*like Gecko*)*%s/%d.0*Safari*",
			oses[i%len(oses)], i, browsers[(i/len(oses))%len(browsers)], i%130+1))
	}
	return patterns
}

var browscapInputs = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Linux; Android 14; DEV004246) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/87.0.4280.141 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 14; DEV004242) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/87.0.4280.141 Mobile Safari/537.36",
	"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
}

func TestIndex_BrowscapShapedLatency(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a 200k pattern index")
	}

	patterns := browscapShapedPatterns(200000)
	idx := buildTestIndex(t, patterns...)
	stats := idx.Stats()
	assert.Equal(t, 200000-1, stats.LargestBucket)
	assert.Equal(t, 1, stats.GramIndexed)

	// Answers must match a full scan in rank order.
	for _, input := range browscapInputs {
		s := Normalize(input)
		n := utf8.RuneCountInString(s)
		want := -1
		for j := range idx.patterns {
			if idx.patterns[j].accepts(s, n) && (want < 0 || ranksAbove(&idx.patterns[j], &idx.patterns[want])) {
				want = j
			}
		}
		slot, ok := idx.Query(input)
		require.True(t, ok)
		assert.Equal(t, idx.patterns[want].Entry, slot, "input %q", input)
	}

	slot, _ := idx.Query(browscapInputs[0])
	assert.Equal(t, browscapWanted, patterns[slot])
	// Generated entry 4246 is Android with Chrome/87; 4242 is Windows NT 10.0.
	slot, _ = idx.Query(browscapInputs[3])
	assert.Equal(t, "Mozilla/5.0 (*Android*DEV004246*) AppleWebKit* (KHTML*like Gecko*)*Chrome/87.0*Safari*", patterns[slot])
	slot, _ = idx.Query(browscapInputs[4])
	assert.Equal(t, "Mozilla/5.0 (*) AppleWebKit*", patterns[slot])

	const rounds = 200
	start := time.Now()
	for i := 0; i < rounds; i++ {
		idx.Query(browscapInputs[i%len(browscapInputs)])
	}
	perQuery := time.Since(start) / rounds
	assert.Less(t, perQuery, 5*time.Millisecond, "per query %s, stats %+v", perQuery, stats)
}

func BenchmarkIndex_Query(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	families := []string{"Mozilla/5.0 (Windows NT ", "Mozilla/5.0 (Macintosh; ", "Mozilla/5.0 (Linux; Android ", "Opera/9.80 (", "Dalvik/2.1.0 ("}

	patterns := []string{"*"}
	seen := map[string]bool{"*": true}
	for len(patterns) < 50000 {
		p := families[rng.Intn(len(families))] + randomString(rng, "abcdefgh0123456789.; ", 2, 10) + "*" +
			randomString(rng, "abcdefgh0123456789/.", 2, 8) + "*"
		if rng.Intn(4) == 0 {
			p = "*" + p
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		patterns = append(patterns, p)
	}
	idx := buildTestIndex(b, patterns...)
	input := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Query(input)
	}
}

func BenchmarkIndex_QueryBrowscapShaped(b *testing.B) {
	idx := buildTestIndex(b, browscapShapedPatterns(200000)...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Query(browscapInputs[i%len(browscapInputs)])
	}
}
