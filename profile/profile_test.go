package profile

import "testing"

func TestNew(t *testing.T) {
	c := New(WithMode("cpu"), WithPath("/tmp/p"), nil, WithQuiet(true))

	want := Config{Mode: "cpu", Path: "/tmp/p", Quiet: true}
	if c != want {
		t.Errorf("New() = %+v, want %+v", c, want)
	}
}

func TestStartDisabled(t *testing.T) {
	for _, c := range []Config{{}, {Mode: "no-such-mode"}} {
		s := c.Start()
		if _, ok := s.(ignore); !ok {
			t.Errorf("Config%+v.Start() = %T, want ignore", c, s)
		}

		s.Stop()
	}
}
