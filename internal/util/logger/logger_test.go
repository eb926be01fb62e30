package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)

	log := Logger("test")
	log.Info("test message", "key", "value1")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected log message in buffer, got: %s", output)
	}
	if !strings.Contains(output, "key=value1") {
		t.Errorf("expected key=value1 in buffer, got: %s", output)
	}
	if !strings.Contains(output, "subsystem=test") {
		t.Errorf("expected subsystem=test in buffer, got: %s", output)
	}
}

func TestSetOutput_ExistingLogger(t *testing.T) {
	log := Logger("test2")

	buf := &bytes.Buffer{}
	SetOutput(buf)

	log.Info("after switch")

	if !strings.Contains(buf.String(), "after switch") {
		t.Errorf("expected log message in buffer, got: %s", buf.String())
	}
}

func TestRedactSensitive(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)

	log := Logger("test-redact")
	log.Warn("credential written", "key", "pairing.token", "value", "s3cr3t")

	output := buf.String()
	if strings.Contains(output, "s3cr3t") {
		t.Errorf("secret leaked into log output: %s", output)
	}
	if !strings.Contains(output, "key=pairing.token") {
		t.Errorf("expected key attribute, got: %s", output)
	}
	if !strings.Contains(output, redacted) {
		t.Errorf("expected redaction marker, got: %s", output)
	}
}

func TestSetLevel_AffectsDerivedLoggers(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)

	log := Logger("test-level").With("session", "abc")
	SetLevel("test-level", slog.LevelError)

	log.Info("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("info log should be filtered after SetLevel(error): %s", buf.String())
	}
}

func TestParseConfig(t *testing.T) {
	env := map[string]string{
		EnvLevel:  "session=debug,keyring=warn,error",
		EnvFormat: "json",
	}
	cfg := parseConfig(func(k string) string { return env[k] })

	if cfg.DefaultLevel != slog.LevelError {
		t.Errorf("DefaultLevel = %v, want error", cfg.DefaultLevel)
	}
	if got := cfg.LevelForSubsystem("core/session"); got != slog.LevelDebug {
		t.Errorf("LevelForSubsystem(core/session) = %v, want debug", got)
	}
	if got := cfg.LevelForSubsystem("keyring"); got != slog.LevelWarn {
		t.Errorf("LevelForSubsystem(keyring) = %v, want warn", got)
	}
	if got := cfg.LevelForSubsystem("other"); got != slog.LevelError {
		t.Errorf("LevelForSubsystem(other) = %v, want error", got)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %v, want FormatJSON", cfg.Format)
	}
}
