package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"verbose":  zapcore.DebugLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", " warn ", "error"} {
		if !ValidLevel(lvl) {
			t.Fatalf("expected %q to be valid", lvl)
		}
	}
	if ValidLevel("trace") {
		t.Fatalf("expected trace to be invalid")
	}
}

func TestNewHonoursLevel(t *testing.T) {
	log := New("WARN")
	if log.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !log.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error should be enabled at warn level")
	}
}

func TestNewAnnotatesNameAndCaller(t *testing.T) {
	ce := New(InfoLevel).Desugar().Check(zapcore.InfoLevel, "hello")
	if ce == nil {
		t.Fatalf("info entry should be enabled")
	}
	if ce.LoggerName != "itemdesk" {
		t.Fatalf("LoggerName = %q, want itemdesk", ce.LoggerName)
	}
	if !ce.Caller.Defined {
		t.Fatalf("expected caller to be recorded")
	}
}
