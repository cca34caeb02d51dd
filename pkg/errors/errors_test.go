package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/samtupy/toga/pkg/errors"
)

func TestTogaError_Format(t *testing.T) {
	err := errors.New("sources.ListSource.Remove", errors.KindMembership,
		&errors.MembershipError{Source: "ListSource", Value: "nope"})

	want := "sources.ListSource.Remove [membership]: nope is not a member of ListSource"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTogaError_Unwrap(t *testing.T) {
	inner := &errors.TypeError{Expected: "slice or *ListSource", Got: 42}
	err := errors.New("widgets.Selection.SetItems", errors.KindType, inner)

	var te *errors.TypeError
	if !stderrors.As(err, &te) {
		t.Fatal("expected TypeError to unwrap from TogaError")
	}
	if te.Got != 42 {
		t.Errorf("unwrapped Got = %v, want 42", te.Got)
	}
}

func TestKindStrings(t *testing.T) {
	cases := []struct {
		kind errors.ErrorKind
		want string
	}{
		{errors.KindUnknown, "unknown"},
		{errors.KindMembership, "membership"},
		{errors.KindType, "type"},
		{errors.KindIndex, "index"},
		{errors.KindBackend, "backend"},
		{errors.KindConfig, "config"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tc.kind), got, tc.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	membership := errors.New("op", errors.KindMembership, &errors.MembershipError{Source: "s", Value: 1})
	typed := errors.New("op", errors.KindType, &errors.TypeError{Expected: "bool", Got: "on"})

	if !errors.IsMembership(membership) {
		t.Error("IsMembership should match a wrapped MembershipError")
	}
	if errors.IsMembership(typed) {
		t.Error("IsMembership should not match a TypeError")
	}
	if !errors.IsType(typed) {
		t.Error("IsType should match a wrapped TypeError")
	}
	if errors.IsType(membership) {
		t.Error("IsType should not match a MembershipError")
	}
}
