package radial

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedWheelPanics(t *testing.T) {
	w, err := NewWheel(emotionDataset(), WheelOptions{})
	if err != nil {
		t.Fatalf("NewWheel: %v", err)
	}
	w.Dispose()

	SetDebugMode(true)
	defer SetDebugMode(false)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on input to a disposed wheel, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	w.HandleKey(KeyEvent{Key: KeyEnter})
}

func TestDebugMode_DisposedWheelSilentInRelease(t *testing.T) {
	w, err := NewWheel(emotionDataset(), WheelOptions{})
	if err != nil {
		t.Fatalf("NewWheel: %v", err)
	}
	w.Dispose()
	if out := w.HandleKey(KeyEvent{Key: KeyEnter}); out != nil {
		t.Errorf("disposed wheel returned %v", out)
	}
}

func TestDebugMode_ThinSegmentWarning(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	var cats []Category
	for i := 0; i < 200; i++ {
		cats = append(cats, Primary(fmt.Sprintf("p%d", i), ""))
	}
	_, err := NewLayout(NewDataset(cats...), LayoutOptions{})

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if !strings.Contains(output, "warning: segment") {
		t.Errorf("expected thin segment warning in stderr, got: %q", output)
	}
}

func TestDebugMode_NoWarningWhenOff(t *testing.T) {
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	var cats []Category
	for i := 0; i < 200; i++ {
		cats = append(cats, Primary(fmt.Sprintf("p%d", i), ""))
	}
	_, _ = NewLayout(NewDataset(cats...), LayoutOptions{})

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	if buf.Len() != 0 {
		t.Errorf("expected no stderr output with debug off, got: %q", buf.String())
	}
}

func TestDebugModeToggle(t *testing.T) {
	if DebugMode() {
		t.Fatal("debug mode on by default")
	}
	SetDebugMode(true)
	if !DebugMode() {
		t.Error("SetDebugMode(true) had no effect")
	}
	SetDebugMode(false)
}
