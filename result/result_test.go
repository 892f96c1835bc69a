package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/ordered/result"
)

func TestResultMatch(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

// Matching must also work for wrapped types that are not comparable.
func TestResultMatchSliceValue(t *testing.T) {
	var v []int
	var e error
	switch m := Ok([]int{7}).Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%v)", v)
	case m.Err(&e):
		t.Error("expected Ok([7]) to match as Ok, doesn't")
	}
	if len(v) != 1 || v[0] != 7 {
		t.Errorf("expected matched value [7], have %v", v)
	}
}

func TestResultGet(t *testing.T) {
	v, err := Get(Ok(7))
	if err != nil || v != 7 {
		t.Errorf("expected Get(Ok(7)) to be (7, nil), is (%d, %v)", v, err)
	}
	_, err = Get(Err[int](errors.New("not ok")))
	if err == nil {
		t.Error("expected Get(Err(…)) to return the error, didn't")
	}
}
