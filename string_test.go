package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringBasics(t *testing.T) {
	s := NewString("hello")
	assert.Equal(t, Number(5), StringLength([]Value{s}))
	assert.Equal(t, Character('e'), StringRef([]Value{s, Number(1)}))
	assert.Equal(t, NewString("ell"), StringSubstring([]Value{s, Number(1), Number(4)}))
	assert.Equal(t, NewString("hello world"), StringAppend([]Value{s, NewString(" world")}))
}

func TestStringListRoundTrip(t *testing.T) {
	s := NewString("abc")
	l := StringToList([]Value{s})
	assert.Equal(t, "(#\\a #\\b #\\c)", WriteToString(l))
	assert.Equal(t, s, ListToString([]Value{l}))
}

func TestStringComparisons(t *testing.T) {
	assert.Equal(t, Boolean(true), StringLt([]Value{NewString("a"), NewString("b"), NewString("c")}))
	assert.Equal(t, Boolean(false), StringLt([]Value{NewString("b"), NewString("a")}))
}

func TestStringUnicodeLengthIsRuneCount(t *testing.T) {
	s := NewString("café") // "café"
	assert.Equal(t, Number(4), StringLength([]Value{s}))
}

func TestSymbolStringConversions(t *testing.T) {
	assert.Equal(t, NewString("hello"), SymbolToString([]Value{Symbol("hello")}))
	assert.Equal(t, Symbol("hello"), StringToSymbol([]Value{NewString("hello")}))
}

func TestCharacterConversions(t *testing.T) {
	assert.Equal(t, Number('A'), CharacterToInteger([]Value{Character('A')}))
	assert.Equal(t, Character('A'), IntegerToCharacter([]Value{Number(65)}))
}

// TestStringEqIsIdentityNotContent pins down spec.md's "eq? — identity
// for pairs/procedures/strings": two strings built by separate
// allocations are eq?-distinct even with identical content, while the
// same string value referenced twice is eq? to itself.
func TestStringEqIsIdentityNotContent(t *testing.T) {
	assert.Equal(t, Boolean(false), Eq([]Value{NewString("a"), NewString("a")}))
	s := NewString("a")
	assert.Equal(t, Boolean(true), Eq([]Value{s, s}))
	assert.Equal(t, Boolean(true), Equal([]Value{NewString("a"), NewString("a")}))
}
