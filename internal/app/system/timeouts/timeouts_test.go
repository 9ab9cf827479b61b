package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing || Short() != DefaultShort || Medium() != DefaultMedium || Long() != DefaultLong {
		t.Errorf("unexpected defaults: %+v", Current())
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	Reset()
	defer Reset()

	Configure(Config{Short: 7 * time.Second})
	if Short() != 7*time.Second {
		t.Errorf("Short = %v, want 7s", Short())
	}
	if Medium() != DefaultMedium {
		t.Errorf("Medium = %v, want default", Medium())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	Reset()
	defer Reset()

	t.Setenv("TIMEOUT_PING", "500ms")
	t.Setenv("TIMEOUT_MEDIUM", "bogus")
	t.Setenv("TIMEOUT_LONG", "-5s")

	if n := ConfigureFromEnv(); n != 1 {
		t.Errorf("ConfigureFromEnv applied %d values, want 1", n)
	}
	if Ping() != 500*time.Millisecond {
		t.Errorf("Ping = %v, want 500ms", Ping())
	}
	if Medium() != DefaultMedium || Long() != DefaultLong {
		t.Errorf("invalid values should be ignored: %+v", Current())
	}
}
