package token

import (
	"reflect"
	"strings"
	"testing"
)

func TestLexBracketsWithSOFAndEOF(t *testing.T) {
	tokens := Lex([]string{"R U"})
	if tokens[0].Kind != SOF {
		t.Errorf("first token = %v, want SOF", tokens[0].Kind)
	}
	if tokens[len(tokens)-1].Kind != EOF {
		t.Errorf("last token = %v, want EOF", tokens[len(tokens)-1].Kind)
	}
}

func TestLexFaceAndModifierSpellings(t *testing.T) {
	tokens := Lex([]string{"R R' Rp R2"})
	got := kindsOnly(tokens)
	want := []Kind{SOF, MoveR, MoveRPrime, MoveRPrime, MoveR2, Newline, EOF}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLexCommentTerminatesLine(t *testing.T) {
	tokens := Lex([]string{"R // U F"})
	got := kindsOnly(tokens)
	want := []Kind{SOF, MoveR, Newline, EOF}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLexLabelsAreExclusiveOfMoveTable(t *testing.T) {
	// ":R" must lex only as a JumpLabel named "R", never also as a
	// MoveR token (spec.md 9, resolved by SPEC_FULL.md 9.2).
	tokens := Lex([]string{":R =F"})
	want := []Token{
		{Kind: SOF},
		{Kind: JumpLabel, Name: "R"},
		{Kind: ConditionalLabel, Name: "F"},
		{Kind: Newline},
		{Kind: EOF},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("got %v, want %v", tokens, want)
	}
}

func TestLexUnrecognisedTokensSkipped(t *testing.T) {
	tokens := Lex([]string{"R bogus U"})
	got := kindsOnly(tokens)
	want := []Kind{SOF, MoveR, MoveU, Newline, EOF}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOppositePrimePairsAndDoubles(t *testing.T) {
	if Opposite(Token{Kind: MoveR}) != (Token{Kind: MoveRPrime}) {
		t.Error("opposite of R should be R'")
	}
	if Opposite(Token{Kind: MoveRPrime}) != (Token{Kind: MoveR}) {
		t.Error("opposite of R' should be R")
	}
	if Opposite(Token{Kind: MoveR2}) != (Token{Kind: MoveR2}) {
		t.Error("opposite of R2 should be R2")
	}
	if Opposite(Token{Kind: Semicolon}) != (Token{Kind: Unused}) {
		t.Error("opposite of a non-move token should be Unused")
	}
}

// TestRoundTrip checks spec.md 8's lexer property: tokenizing a line,
// re-serializing it in canonical spelling, and tokenizing again must
// yield the same token stream.
func TestRoundTrip(t *testing.T) {
	lines := []string{
		"R U R' U'",
		"M M' M2 S S' S2 E E' E2",
		"X Y' Z2 *",
		":loop =loop ; ,",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			first := Lex([]string{line})
			words := make([]string, 0, len(first))
			for _, tok := range first {
				switch tok.Kind {
				case SOF, EOF, Newline:
					continue
				default:
					words = append(words, tok.String())
				}
			}
			second := Lex([]string{strings.Join(words, " ")})
			if !reflect.DeepEqual(first, second) {
				t.Errorf("round trip mismatch for %q:\n  first:  %v\n  second: %v", line, first, second)
			}
		})
	}
}

func kindsOnly(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}
