package result

import (
	"testing"

	"github.com/NotDragon/ArgonLang-sub000/internal/position"
)

type fakeKind string

func (f fakeKind) String() string { return string(f) }

func TestOkIsValid(t *testing.T) {
	r := Ok(42)
	if !r.IsValid() || r.HasError() {
		t.Fatalf("Ok result must be valid with no error")
	}
	if v := r.Value(); v != 42 {
		t.Fatalf("Value() = %d, want 42", v)
	}
	if v, ok := r.TryValue(); !ok || v != 42 {
		t.Fatalf("TryValue() = (%d, %v), want (42, true)", v, ok)
	}
}

func TestFailHasError(t *testing.T) {
	e := New(UnexpectedToken, "boom", position.New("f.argon", 1, 1))
	r := Fail[int](e)
	if r.IsValid() || !r.HasError() {
		t.Fatalf("Fail result must carry an error")
	}
	if _, ok := r.TryValue(); ok {
		t.Fatalf("TryValue() must report ok=false on error")
	}
	if r.Err() != e {
		t.Fatalf("Err() must return the error passed to Fail")
	}
}

func TestValuePanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Value() must panic when the Result carries an error")
		}
	}()
	Fail[int](New(UnexpectedToken, "boom", position.Position{})).Value()
}

func TestChainPushesFrameWithoutMutatingOriginal(t *testing.T) {
	inner := New(UnexpectedToken, "boom", position.New("f.argon", 3, 5))
	child := Fail[string](inner)

	parentFrame := Trace{Kind: fakeKind("BinaryExpression"), Position: position.New("f.argon", 3, 1)}
	parent := Chain[int](child, parentFrame)

	if inner.HasTrace() {
		t.Fatalf("the original error must be untouched by Chain")
	}
	if !parent.Err().HasTrace() {
		t.Fatalf("the chained error must carry the pushed frame")
	}
	top, ok := parent.Err().InnermostFrame()
	if !ok || top.Kind.String() != "BinaryExpression" {
		t.Fatalf("InnermostFrame() = %v, %v; want BinaryExpression frame", top, ok)
	}

	// Chaining again accumulates frames independently.
	grandparentFrame := Trace{Kind: fakeKind("Statement"), Position: position.New("f.argon", 1, 1)}
	grandparent := Chain[bool](parent, grandparentFrame)
	frames := grandparent.Err().TraceFrames()
	if len(frames) != 2 {
		t.Fatalf("expected 2 accumulated frames, got %d", len(frames))
	}
	if frames[0].Kind.String() != "BinaryExpression" || frames[1].Kind.String() != "Statement" {
		t.Fatalf("frames out of order: %v", frames)
	}
}

func TestMapPassesErrorsThrough(t *testing.T) {
	e := New(InvalidType, "nope", position.Position{})
	failed := Fail[int](e)
	mapped := Map(failed, func(i int) string { return "x" })
	if !mapped.HasError() || mapped.Err() != e {
		t.Fatalf("Map must pass the error through unchanged")
	}

	ok := Ok(21)
	doubled := Map(ok, func(i int) int { return i * 2 })
	if doubled.Value() != 42 {
		t.Fatalf("Map must transform a successful value")
	}
}
