package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tcr/pretty-cron/internal/cli"
	"github.com/tcr/pretty-cron/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_SingleExpression(t *testing.T) {
	out, err := run(t, "15 * * * 1,3")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := "Every 15th minute past every hour on Mon and Wed\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRoot_MultipleExpressionsArePrefixed(t *testing.T) {
	out, err := run(t, "* * * * * *", "0 * * * *")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "* * * * * *: Every second\n0 * * * *: Every hour, on the hour\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRoot_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"steps", []string{"--steps", "*/15 * * * *"}, "Every 15 minutes\n"},
		{"clock", []string{"-c", "30 9 * * *"}, "09:30 every day\n"},
		{"no flags", []string{"*/15 * * * *"}, "Every 0, 15, 30 and 45th minute\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRoot_NextRuns(t *testing.T) {
	out, err := run(t, "--next", "2", "0 0 1 1 *")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out)
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "  ") || !strings.Contains(l, "-01-01T00:00:00Z") {
			t.Errorf("unexpected run line %q", l)
		}
	}
}

func TestRoot_JSON(t *testing.T) {
	out, err := run(t, "--format", "json", "* * * * *")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var got []struct {
		Expr        string `json:"expr"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 1 || got[0].Description != "Every minute" {
		t.Errorf("unexpected output %+v", got)
	}
}

func TestRoot_Errors(t *testing.T) {
	if _, err := run(t); err == nil {
		t.Error("expected error without arguments")
	}
	if _, err := run(t, "--format", "xml", "* * * * *"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := run(t, "99 * * * *"); !errors.Is(err, domain.ErrInvalidCronExpr) {
		t.Errorf("error = %v, want ErrInvalidCronExpr", err)
	}
}

func TestFields(t *testing.T) {
	out, err := run(t, "--steps", "fields", "*/15 9 * * 1-5")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want header + 6 fields: %q", len(lines), out)
	}
	checks := map[int][]string{
		2: {"minutes", "false", "step", "15", "0,15,30,45"},
		3: {"hours", "false", "singleton", "9"},
		6: {"day of week", "false", "step", "2,3,4,5,6"},
	}
	for i, wants := range checks {
		for _, w := range wants {
			if !strings.Contains(lines[i], w) {
				t.Errorf("line %d %q missing %q", i, lines[i], w)
			}
		}
	}
}
