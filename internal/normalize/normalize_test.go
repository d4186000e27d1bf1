package normalize

import "testing"

func TestEmail(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  John.DOE@Example.COM  ", "John.DOE@Example.COM"},
		{"a@b.c", "a@b.c"},
		{"   ", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Email(c.in); got != c.want {
			t.Fatalf("Normalize.Email(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Alice ", "Alice"},
		{"alice", "alice"},
		{"\t\n", ""},
	}
	for _, c := range cases {
		if got := Name(c.in); got != c.want {
			t.Fatalf("Normalize.Name(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
