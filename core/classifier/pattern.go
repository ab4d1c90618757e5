package classifier

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Specificity weights. A literal rune is worth more than any wildcard costs,
// and '?' costs less than '*' because it constrains the input more.
const (
	literalWeight   = 4
	starPenalty     = 2
	questionPenalty = 1
)

// TokenKind distinguishes literal runs from wildcards.
type TokenKind uint8

const (
	TokenLiteral TokenKind = iota
	TokenStar
	TokenQuestion
)

// Token is one element of a compiled pattern.
type Token struct {
	Kind TokenKind
	// Text is the normalized literal run; empty for wildcards.
	Text string
}

// CompiledPattern is the matchable form of an entry's pattern.
type CompiledPattern struct {
	Pattern string
	Tokens  []Token
	// Prefix is the normalized leading literal run, empty when the pattern
	// starts with a wildcard.
	Prefix string
	// Suffix is the normalized trailing literal run when the pattern has
	// more than one token and ends with a literal.
	Suffix string
	// Longest is the longest normalized literal run; every match contains it.
	Longest string
	Score   int
	// MinLen and MaxLen bound the rune length of matching inputs. MaxLen is
	// -1 when the pattern contains '*'.
	MinLen int
	MaxLen int
	// Length is the rune length of the raw pattern.
	Length  int
	Entry   int
	Ordinal int
}

// Compile converts an entry into its compiled form. slot is the entry's
// position in the arena owned by the engine.
func Compile(entry Entry, slot int) (CompiledPattern, error) {
	if strings.TrimSpace(entry.Pattern) == "" {
		return CompiledPattern{}, fmt.Errorf("%w: entry %d has an empty pattern", ErrInvalidPattern, entry.Ordinal)
	}

	cp := CompiledPattern{
		Pattern: entry.Pattern,
		Length:  utf8.RuneCountInString(entry.Pattern),
		Entry:   slot,
		Ordinal: entry.Ordinal,
	}

	var (
		literals  int
		stars     int
		questions int
		run       strings.Builder
	)

	flush := func() {
		if run.Len() == 0 {
			return
		}
		text := Normalize(run.String())
		run.Reset()
		cp.Tokens = append(cp.Tokens, Token{Kind: TokenLiteral, Text: text})
		literals += utf8.RuneCountInString(text)
		if len(text) > len(cp.Longest) {
			cp.Longest = text
		}
	}

	for _, r := range entry.Pattern {
		switch r {
		case '*':
			flush()
			if n := len(cp.Tokens); n > 0 && cp.Tokens[n-1].Kind == TokenStar {
				continue
			}
			cp.Tokens = append(cp.Tokens, Token{Kind: TokenStar})
			stars++
		case '?':
			flush()
			cp.Tokens = append(cp.Tokens, Token{Kind: TokenQuestion})
			questions++
		default:
			run.WriteRune(r)
		}
	}
	flush()

	if first := cp.Tokens[0]; first.Kind == TokenLiteral {
		cp.Prefix = first.Text
	}
	if last := cp.Tokens[len(cp.Tokens)-1]; last.Kind == TokenLiteral && len(cp.Tokens) > 1 {
		cp.Suffix = last.Text
	}

	cp.Score = literalWeight*literals - starPenalty*stars - questionPenalty*questions
	cp.MinLen = literals + questions
	cp.MaxLen = cp.MinLen
	if stars > 0 {
		cp.MaxLen = -1
	}
	return cp, nil
}

// Normalize case-folds s rune by rune. Patterns and inputs go through the
// same function, so matching on the normalized forms is case-insensitive,
// and the rune count is preserved so that '?' still consumes exactly one
// character of the original input.
func Normalize(s string) string {
	upper := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			return strings.Map(foldRune, s)
		}
		if 'A' <= c && c <= 'Z' {
			upper = true
		}
	}
	if !upper {
		return s
	}
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

// foldRune maps every rune of a simple case-folding orbit (k, K, U+212A
// KELVIN SIGN; σ, ς, Σ; ß, ẞ) to the same representative: the smallest
// lower-case member, or the smallest member when none is lower case.
func foldRune(r rune) rune {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		return r
	}
	rep, repLower := r, unicode.ToLower(r) == r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		lower := unicode.ToLower(f) == f
		if (lower && !repLower) || (lower == repLower && f < rep) {
			rep, repLower = f, lower
		}
	}
	return rep
}

// MatchPattern reports whether the raw input matches the compiled pattern.
func MatchPattern(cp CompiledPattern, input string) bool {
	s := Normalize(input)
	return cp.accepts(s, utf8.RuneCountInString(s))
}

// accepts runs the cheap filters and then the wildcard match against an
// already normalized input of n runes.
func (cp *CompiledPattern) accepts(s string, n int) bool {
	if n < cp.MinLen || (cp.MaxLen >= 0 && n > cp.MaxLen) {
		return false
	}
	if !strings.HasPrefix(s, cp.Prefix) || !strings.HasSuffix(s, cp.Suffix) {
		return false
	}
	if cp.Longest != "" && !strings.Contains(s, cp.Longest) {
		return false
	}
	return matchTokens(cp.Tokens, s)
}

// matchTokens matches s against tokens, anchored at both ends. Only the most
// recent '*' is ever backtracked into; a later star can absorb anything an
// earlier one would have.
func matchTokens(tokens []Token, s string) bool {
	ti, si := 0, 0
	starTi, starSi := -1, 0

	for {
		if ti < len(tokens) {
			tok := tokens[ti]
			switch tok.Kind {
			case TokenStar:
				if ti == len(tokens)-1 {
					return true
				}
				starTi, starSi = ti, si
				ti++
				continue
			case TokenQuestion:
				if si < len(s) {
					_, w := utf8.DecodeRuneInString(s[si:])
					si += w
					ti++
					continue
				}
			case TokenLiteral:
				if strings.HasPrefix(s[si:], tok.Text) {
					si += len(tok.Text)
					ti++
					continue
				}
			}
		} else if si == len(s) {
			return true
		}

		if starTi < 0 || starSi >= len(s) {
			return false
		}
		_, w := utf8.DecodeRuneInString(s[starSi:])
		next := starSi + w
		if starTi+1 < len(tokens) && tokens[starTi+1].Kind == TokenLiteral {
			idx := strings.Index(s[next:], tokens[starTi+1].Text)
			if idx < 0 {
				return false
			}
			next += idx
		}
		starSi, si, ti = next, next, starTi+1
	}
}
