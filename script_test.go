package signhands

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"fps": 30,
		"steps": [
			{"action": "enqueue", "tokens": ["HELLO", "CHAR_A"]},
			{"action": "wait", "frames": 3},
			{"action": "text", "text": "thank you"},
			{"action": "wait", "ms": 500},
			{"action": "expect", "sign": "A"},
			{"action": "drain"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(runner.steps))
	}
	if st := runner.steps[0]; st.Action != "enqueue" || len(st.Tokens) != 2 || st.Tokens[1] != "CHAR_A" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Frames != 3 || runner.steps[3].Millis != 500 {
		t.Error("wait steps mismatch")
	}
	if st := runner.steps[4]; st.Sign == nil || *st.Sign != "A" {
		t.Error("step 4 mismatch")
	}
	if runner.frameDur != time.Second/30 {
		t.Errorf("frameDur = %v", runner.frameDur)
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	_, err := LoadScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadScript_UnknownAction(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": [{"action": "dance"}]}`))
	if err == nil || !strings.Contains(err.Error(), "dance") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadScript_ExpectWithoutSign(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": [{"action": "expect"}]}`))
	if err == nil {
		t.Error("expected error for expect without sign")
	}
}

func TestRunnerDefaultFPS(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "drain"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if runner.frameDur != time.Second/defaultScriptFPS {
		t.Errorf("frameDur = %v", runner.frameDur)
	}
}

func TestRunnerClock(t *testing.T) {
	runner, err := NewRunner(Script{FPS: 30, Steps: []ScriptStep{{Action: "wait", Frames: 5}}})
	if err != nil {
		t.Fatal(err)
	}
	a := newTestAvatar(t, DefaultConfig())

	elapsed, now := runner.Clock()
	if elapsed != 0 || !now.Equal(time.Unix(0, 0)) {
		t.Errorf("initial clock = %v, %v", elapsed, now)
	}
	runner.Step(a)
	runner.Step(a)
	elapsed, now = runner.Clock()
	want := 2 * (time.Second / 30)
	assertNear(t, "elapsed", elapsed, want.Seconds())
	if now.Sub(time.Unix(0, 0)) != want {
		t.Errorf("now = %v", now)
	}
}

func TestRunnerStep_Expect(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "enqueue", "tokens": ["HELLO"]},
		{"action": "wait", "frames": 1},
		{"action": "expect", "sign": "HELLO"}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	a := newTestAvatar(t, DefaultConfig())

	runner.Step(a)
	if runner.Done() {
		t.Fatal("should not be done while waiting")
	}
	runner.Step(a)
	if !runner.Done() {
		t.Fatal("should be done after expect")
	}
	if len(runner.Failures()) != 0 {
		t.Errorf("failures = %v", runner.Failures())
	}
}

func TestRunnerStep_DrainWaitsForIdle(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "enqueue", "tokens": ["CHAR_A"]},
		{"action": "drain"},
		{"action": "expect", "sign": ""}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	a := newTestAvatar(t, DefaultConfig())

	// 800ms at 60fps is 48 frames.
	for i := 0; i < 40; i++ {
		runner.Step(a)
	}
	if runner.Done() {
		t.Fatal("drain should still be waiting")
	}
	for i := 0; i < 20 && !runner.Done(); i++ {
		runner.Step(a)
	}
	if !runner.Done() {
		t.Fatal("drain never finished")
	}
	if len(runner.Failures()) != 0 {
		t.Errorf("failures = %v", runner.Failures())
	}
}

func TestRunnerWaitMillis(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "ms": 100}]}`))
	if err != nil {
		t.Fatal(err)
	}
	a := newTestAvatar(t, DefaultConfig())

	// 100ms at 60fps is 6 frames.
	for i := 0; i < 6; i++ {
		if runner.Done() {
			t.Fatalf("done after %d frames", i)
		}
		runner.Step(a)
	}
	runner.Step(a)
	if !runner.Done() {
		t.Error("expected done after wait")
	}
}

func TestRunnerRunTimeline(t *testing.T) {
	data, err := os.ReadFile("examples/signer/hello.json")
	if err != nil {
		t.Fatal(err)
	}
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	a := newTestAvatar(t, DefaultConfig())

	if err := runner.Run(a, 2000); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"HELLO", "A", "B", "", "THANK-YOU", "MY", "FRIEND", ""}
	if got := runner.Timeline(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("timeline = %q, want %q", got, want)
	}
}

func TestRunnerRunReportsFailures(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "enqueue", "tokens": ["YES"]},
		{"action": "wait", "frames": 2},
		{"action": "expect", "sign": "NO"}
	]}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	err = runner.Run(newTestAvatar(t, DefaultConfig()), 500)
	if err == nil || !strings.Contains(err.Error(), "expectation") {
		t.Errorf("err = %v", err)
	}
	if len(runner.Failures()) != 1 {
		t.Errorf("failures = %v", runner.Failures())
	}
}

func TestRunnerRunNotFinished(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 100}]}`))
	if err != nil {
		t.Fatal(err)
	}
	err = runner.Run(newTestAvatar(t, DefaultConfig()), 10)
	if err == nil || !strings.Contains(err.Error(), "not finished") {
		t.Errorf("err = %v", err)
	}
}

func TestRunnerWaitMillisShorterThanFrame(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "ms": 5},
		{"action": "enqueue", "tokens": ["YES"]}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	a := newTestAvatar(t, DefaultConfig())

	runner.Step(a)
	if runner.Done() || a.Sequencer().Pending() != 0 || a.Sequencer().Playing() {
		t.Fatal("sub-frame wait should still hold for one frame")
	}
	runner.Step(a)
	if !runner.Done() {
		t.Error("expected done after one-frame wait")
	}
}
