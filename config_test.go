package lazylog

import "testing"

func TestInitFromEnvAppliesLevelAndCapacity(t *testing.T) {
	resetGlobal()
	t.Cleanup(resetGlobal)
	t.Setenv(EnvMaxLevel, "WRN")
	t.Setenv(EnvBufferSize, "4096")

	InitFromEnv(Options{})
	if MaxLevel() != WarnLevel {
		t.Fatalf("threshold: %v", MaxLevel())
	}
	if got := active().q.capacity; got != 4096 {
		t.Fatalf("capacity: %d", got)
	}
}

func TestInitFromEnvIgnoresInvalidValues(t *testing.T) {
	resetGlobal()
	t.Cleanup(resetGlobal)
	t.Setenv(EnvMaxLevel, "shouting")
	t.Setenv(EnvBufferSize, "not-a-number")

	InitFromEnv(Options{MaxLevel: DebugLevel, Capacity: 512})
	if MaxLevel() != DebugLevel {
		t.Fatalf("threshold should keep the option value: %v", MaxLevel())
	}
	if got := active().q.capacity; got != 512 {
		t.Fatalf("capacity should keep the option value: %d", got)
	}
}

func TestInitFromEnvLevelNamesAndDigits(t *testing.T) {
	for value, want := range map[string]Level{
		"trace": DefaultMaxLevel,
		"ERR":   ErrorLevel,
		"3":     WarnLevel,
		"off":   OffLevel,
	} {
		resetGlobal()
		t.Setenv(EnvMaxLevel, value)
		InitFromEnv(Options{})
		if MaxLevel() != want {
			t.Errorf("%q: threshold %v, want %v", value, MaxLevel(), want)
		}
	}
	resetGlobal()
}

func TestCompileEnvelopeDefault(t *testing.T) {
	// The default build carries the lowest envelope so nothing is removed.
	if CompileMinLevel != TraceLevel {
		t.Fatalf("default envelope: %v", CompileMinLevel)
	}
}
