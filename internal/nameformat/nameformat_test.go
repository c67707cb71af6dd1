package nameformat

import (
	"testing"

	"github.com/dlclark/regexp2"
)

func TestFormattedToRegex(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"mockUser", `mock(es|s)?.?user`},
		{"MockUser", `mock(es|s)?.?user`},
		{"mock_user", `mock(es|s)?.?user`},
		{"mock-user", `mock(es|s)?.?user`},
		{"mockUsers", `mock(es|s)?.?users`},
		{"fooBarBaz", `foo(es|s)?.?bar(es|s)?.?baz`},
		{"simple", `simple`},
		{"HTMLParser", `htmlparser`},
	}
	for _, tt := range tests {
		got := FormattedToRegex(tt.name)
		if got != tt.want {
			t.Errorf("FormattedToRegex(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormattedToRegexMatches(t *testing.T) {
	pattern := FormattedToRegex("mockUser")
	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
	if err != nil {
		t.Fatal(err)
	}
	for _, candidate := range []string{"mock_user", "mocks/user", "mockuser", "mockUser"} {
		ok, err := re.MatchString(candidate)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("pattern %q did not match %q", pattern, candidate)
		}
	}
}
