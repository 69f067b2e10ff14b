package terminal

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yeah\n", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := Confirm(context.Background(), strings.NewReader(tt.input), &out, "Destroy stack dev?")
		if err != nil {
			t.Errorf("Confirm(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if out.String() != "Destroy stack dev? [y/N]: " {
			t.Errorf("prompt = %q", out.String())
		}
	}
}

func TestConfirm_Canceled(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Confirm(ctx, r, &bytes.Buffer{}, "Continue?"); err != context.Canceled {
		t.Errorf("Confirm() error = %v, want context.Canceled", err)
	}
}

func TestIsInteractive_Nil(t *testing.T) {
	if IsInteractive(nil) {
		t.Error("IsInteractive(nil) should be false")
	}
}

func TestConfirmTerminal_NotInteractive(t *testing.T) {
	_, err := ConfirmTerminal(context.Background(), strings.NewReader("y\n"), &bytes.Buffer{}, "Continue?")
	if err != ErrNotInteractive {
		t.Errorf("ConfirmTerminal() error = %v, want ErrNotInteractive", err)
	}
}
