package stack

import (
	"testing"

	"github.com/NotDragon/ArgonLang-sub000/internal/testutils"
)

func TestStack(t *testing.T) {
	type S = Stack[int] // shortcut

	var s S = MakeStack[int]()
	testutils.FatalUnless(t, s.Len() == 0, "expected empty stack")
	_, ok := s.TryPop()
	testutils.FatalUnless(t, !ok, "TryPop on empty stack must report ok=false")
	_, ok = s.TryTop()
	testutils.FatalUnless(t, !ok, "TryTop on empty stack must report ok=false")
	testutils.FatalUnless(t, s.IsEmpty(), "")

	s.Push(10)
	x := 20
	s.PushPtr(&x)
	testutils.FatalUnless(t, s.Len() == 2, "")
	top := s.Top()
	testutils.FatalUnless(t, *top == 20, "")
	testutils.FatalUnless(t, top != &x, "PushPtr must copy, not alias")
	*top = 19
	testutils.FatalUnless(t, s.Pop() == 19, "")
	testutils.FatalUnless(t, s.Pop() == 10, "")
	testutils.FatalUnless(t, s.IsEmpty(), "")
}

func TestStackClone(t *testing.T) {
	var s Stack[string] = MakeStack[string]()
	s.Push("a")
	s.Push("b")

	clone := s.Clone()
	clone.Push("c")

	testutils.FatalUnless(t, s.Len() == 2, "cloning must not mutate the original")
	testutils.FatalUnless(t, clone.Len() == 3, "the clone must see its own push")

	slice := s.Slice()
	testutils.FatalUnless(t, len(slice) == 2 && slice[0] == "a" && slice[1] == "b", "Slice must be bottom-to-top")
}

func TestStackPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Pop on empty stack must panic")
		}
	}()
	var s Stack[int]
	s.Pop()
}
