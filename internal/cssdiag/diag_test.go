package cssdiag

import (
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	src := "a {\n  color: red;\n}\n"
	tests := []struct {
		offset   int32
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{4, 2, 1},
		{6, 2, 3},
	}
	for _, tt := range tests {
		line, col := LineCol(src, tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("LineCol(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}

func TestMsgStringIncludesTag(t *testing.T) {
	m := Msg{Kind: ParseError, Tag: TagMalformedDeclaration, Text: "bad decl", Loc: Loc{Start: 0}}
	got := m.String("x")
	if !strings.Contains(got, "malformed_declaration") {
		t.Errorf("String() = %q, want it to contain the tag", got)
	}
	if !strings.Contains(got, "bad decl") {
		t.Errorf("String() = %q, want it to contain the text", got)
	}
}

func TestMsgStringOmitsTagWhenNone(t *testing.T) {
	m := Msg{Kind: Warning, Text: "heads up", Loc: Loc{Start: 0}}
	got := m.String("x")
	if strings.Contains(got, "[") {
		t.Errorf("String() = %q, want no tag brackets for TagNone", got)
	}
}

func TestLogAddWarningDoesNotSetHasErrors(t *testing.T) {
	log := NewLog()
	log.AddWarning(Loc{Start: 5}, "something odd")
	if log.HasErrors() {
		t.Fatal("HasErrors() = true after only a warning")
	}
	if len(log.Msgs()) != 1 {
		t.Fatalf("Msgs() has %d entries, want 1", len(log.Msgs()))
	}
}

func TestLogAddErrorSetsHasErrors(t *testing.T) {
	log := NewLog()
	log.AddError(ParseError, TagUnclosedBlock, Loc{Start: 10}, "unclosed block")
	if !log.HasErrors() {
		t.Fatal("HasErrors() = false after AddError")
	}
}

func TestLogStringRendersEveryMessage(t *testing.T) {
	log := NewLog()
	log.AddWarning(Loc{Start: 0}, "first")
	log.AddError(ParseError, TagEmptyValue, Loc{Start: 1}, "second")

	rendered := log.String("ab")
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, want 2: %q", len(lines), rendered)
	}
	if !strings.Contains(lines[0], "first") || !strings.Contains(lines[1], "second") {
		t.Errorf("String() = %q, messages out of order or missing", rendered)
	}
}

func TestTagStringUnknownIsEmpty(t *testing.T) {
	if got := TagNone.String(); got != "" {
		t.Errorf("TagNone.String() = %q, want empty", got)
	}
}

func TestKindStringCoversEveryKind(t *testing.T) {
	for _, k := range []Kind{Warning, ParseError, DepthError, SizeError} {
		if k.String() == "" {
			t.Errorf("Kind(%d).String() is empty", k)
		}
	}
}
