package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func capture(lvl Lvl, fn func(l Logger)) string {
	buf := new(bytes.Buffer)
	l := New()
	l.SetHandler(LvlFilterHandler(lvl, StreamHandler(buf, TerminalFormat())))
	fn(l)
	return buf.String()
}

func TestLvlFilterHandler(t *testing.T) {
	out := capture(LvlWarn, func(l Logger) {
		l.Info("dropped")
		l.Warn("kept")
	})
	if strings.Contains(out, "dropped") {
		t.Errorf("info record passed a warn filter: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestChildContext(t *testing.T) {
	out := capture(LvlInfo, func(l Logger) {
		l.New("category", "ecrecover").Info("generated")
	})
	if !strings.Contains(out, "category=ecrecover") {
		t.Errorf("child context missing: %q", out)
	}
}

func TestLogfmtValues(t *testing.T) {
	buf := new(bytes.Buffer)
	logfmt(buf, []interface{}{
		"err", errors.New("invalid input length"),
		"elapsed", 150 * time.Millisecond,
		"n", 42,
	})
	want := `err="invalid input length" elapsed=150ms n=42` + "\n"
	if buf.String() != want {
		t.Errorf("logfmt mismatch:\nhave %q\nwant %q", buf.String(), want)
	}
}

func TestOddContextNormalized(t *testing.T) {
	out := capture(LvlInfo, func(l Logger) {
		l.Info("msg", "dangling")
	})
	if !strings.Contains(out, errorKey) {
		t.Errorf("odd context not flagged: %q", out)
	}
}

func TestLvlFromString(t *testing.T) {
	for _, s := range []string{"trace", "debug", "info", "warn", "error", "crit"} {
		if _, err := LvlFromString(s); err != nil {
			t.Errorf("LvlFromString(%q): %v", s, err)
		}
	}
	if _, err := LvlFromString("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
