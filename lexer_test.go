package climb

import (
	"testing"
)

var tEOF = Token{Kind: TokenEndOfInput}

func tokensEqual(ts1, ts2 []Token) bool {
	if len(ts1) != len(ts2) {
		return false
	}
	for i := range ts1 {
		t1, t2 := ts1[i], ts2[i]
		if t1.Kind != t2.Kind {
			return false
		}
		if t1.Data != t2.Data {
			return false
		}
	}
	return true
}

func SingleTest(t *testing.T, input string, expectedError string, expected []Token) {
	t.Helper()
	// Copy the test tokens and append an end-of-input token
	testTokens := append([]Token(nil), expected...)
	if len(testTokens) == 0 || testTokens[len(testTokens)-1].Kind != TokenEndOfInput {
		testTokens = append(testTokens, tEOF)
	}
	tokens, err := Lex("snippet", input)
	var errString string
	if err != nil {
		errString = err.Error()
	}
	if errString != expectedError {
		t.Errorf("error result does not match. got\n\t%+v\nexpected\n\t%+v",
			errString, expectedError)
	}
	if err == nil && !tokensEqual(tokens, testTokens) {
		t.Errorf("got\n\t%+v\nexpected\n\t%+v", tokens, expected)
	}
}

func TestEmpty(t *testing.T) {
	SingleTest(t, "", "", []Token{})
}

func TestWhitespace(t *testing.T) {
	SingleTest(t, "  \t\n\r\r\n", "", []Token{})
}

func TestParenL(t *testing.T) {
	SingleTest(t, "(", "", []Token{
		{Kind: TokenParenL, Data: "("},
	})
}

func TestParenR(t *testing.T) {
	SingleTest(t, ")", "", []Token{
		{Kind: TokenParenR, Data: ")"},
	})
}

func TestIdentifier(t *testing.T) {
	SingleTest(t, "foo_Bar123", "", []Token{
		{Kind: TokenOperand, Data: "foo_Bar123"},
	})
}

func TestNumber(t *testing.T) {
	SingleTest(t, "0 12 3.25", "", []Token{
		{Kind: TokenOperand, Data: "0"},
		{Kind: TokenOperand, Data: "12"},
		{Kind: TokenOperand, Data: "3.25"},
	})
}

func TestNumberJunkAfterDecimalPoint(t *testing.T) {
	SingleTest(t, "1.+", "snippet:1:3 couldn't lex number, junk after decimal point: '+'", []Token{})
}

func TestOperatorSingle(t *testing.T) {
	SingleTest(t, "+", "", []Token{
		{Kind: TokenOperator, Data: "+"},
	})
}

func TestOperatorMaximalMunch(t *testing.T) {
	SingleTest(t, "<-", "", []Token{
		{Kind: TokenOperator, Data: "<-"},
	})
}

func TestOperatorsSplitByWhitespace(t *testing.T) {
	SingleTest(t, "< -", "", []Token{
		{Kind: TokenOperator, Data: "<"},
		{Kind: TokenOperator, Data: "-"},
	})
}

func TestOperatorStopsAtParen(t *testing.T) {
	SingleTest(t, "-(", "", []Token{
		{Kind: TokenOperator, Data: "-"},
		{Kind: TokenParenL, Data: "("},
	})
}

func TestOperandThenOperator(t *testing.T) {
	SingleTest(t, "a-1", "", []Token{
		{Kind: TokenOperand, Data: "a"},
		{Kind: TokenOperator, Data: "-"},
		{Kind: TokenOperand, Data: "1"},
	})
}

func TestComment(t *testing.T) {
	SingleTest(t, "a # rest is ignored\n+ b", "", []Token{
		{Kind: TokenOperand, Data: "a"},
		{Kind: TokenOperator, Data: "+"},
		{Kind: TokenOperand, Data: "b"},
	})
}

func TestBadCharacter(t *testing.T) {
	SingleTest(t, "a £ b", "snippet:1:3 could not lex the character '\\u00a3'", []Token{})
}

func TestExpression(t *testing.T) {
	SingleTest(t, "(alpha + 2) * -beta?", "", []Token{
		{Kind: TokenParenL, Data: "("},
		{Kind: TokenOperand, Data: "alpha"},
		{Kind: TokenOperator, Data: "+"},
		{Kind: TokenOperand, Data: "2"},
		{Kind: TokenParenR, Data: ")"},
		{Kind: TokenOperator, Data: "*"},
		{Kind: TokenOperator, Data: "-"},
		{Kind: TokenOperand, Data: "beta"},
		{Kind: TokenOperator, Data: "?"},
	})
}

func TestTokenLocations(t *testing.T) {
	tokens, err := Lex("snippet", "ab +\ncd")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	locs := []struct {
		line, column int
	}{
		{1, 1}, // ab
		{1, 4}, // +
		{2, 1}, // cd
		{2, 3}, // end of input
	}
	if len(tokens) != len(locs) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(locs), len(tokens), tokens)
	}
	for i, want := range locs {
		got := tokens[i].Loc.Begin
		if got.Line != want.line || got.Column != want.column {
			t.Errorf("token %d (%v): expected position %v:%v, got %v",
				i, tokens[i], want.line, want.column, got.String())
		}
	}
}

func TestEndOfInputSentinel(t *testing.T) {
	tokens, err := Lex("snippet", "a")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	last := tokens[len(tokens)-1]
	if last.Kind != TokenEndOfInput {
		t.Errorf("expected trailing end-of-input token, got %v", last)
	}
}
