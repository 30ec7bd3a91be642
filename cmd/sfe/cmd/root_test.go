package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/sfe/foundation/core/error"
)

const testConfig = `
[general]
log_level = "warn"
log_format = "json"

[limits]
max_pad_length = 20

[aliases.de]
pos_e = ["pos_esc"]

[aliases.fr]
explode_e = ["eclater_e"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with fresh flag values and returns stdout
// and stderr
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, verbose, langs = "", false, ""
	callNoNewline, batchFailuresOnly = false, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := Execute()
	return out.String(), errOut.String(), err
}

func TestCall(t *testing.T) {
	cfg := writeFile(t, "sfe.toml", testConfig)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"pos_e", []string{"call", "pos_e", "hello world", "o", "5"}, "7\n"},
		{"pad_e center", []string{"call", "pad_e", "Title", "11", "-", "center"}, "---Title---\n"},
		{"pad_e bounded by config", []string{"call", "pad_e", "a", "100", "."}, strings.Repeat(".", 19) + "a\n"},
		{"negative position after dash", []string{"call", "explode_e", "--", "a,b,c", ",", "-1"}, "c\n"},
		{"escaped replacement", []string{"call", "replace_e", "a;b", ";", `\n`}, "a\nb\n"},
		{"no newline", []string{"call", "-n", "stripnewlines", "a\n\n\nb"}, "a\nb"},
		{"alias of any language", []string{"call", "eclater_e", "x y", `\x20`, "1"}, "y\n"},
		{"alias of selected language", []string{"--lang", "de", "call", "pos_esc", "abc", "c"}, "2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", append([]string{"--config", cfg}, tt.args...)...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v", tt.args, err)
			}
			if out != tt.expected {
				t.Errorf("execute(%v) = %q; want %q", tt.args, out, tt.expected)
			}
		})
	}
}

func TestCall_Errors(t *testing.T) {
	cfg := writeFile(t, "sfe.toml", testConfig)

	_, _, err := execute(t, "", "--config", cfg, "call", "len_e", "abc")
	if !mdwerror.HasCode(err, mdwerror.CodeUnknownFunction) {
		t.Errorf("unknown function error = %v", err)
	}

	_, _, err = execute(t, "", "--config", cfg, "--lang", "fr", "call", "pos_esc", "abc", "c")
	if !mdwerror.HasCode(err, mdwerror.CodeUnknownFunction) {
		t.Errorf("alias outside selected language error = %v", err)
	}

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "call", "pos_e", "a", "a")
	if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("missing config error = %v", err)
	}

	bad := writeFile(t, "bad.toml", "[general]\nlog_level = \"loud\"\n")
	_, _, err = execute(t, "", "--config", bad, "call", "pos_e", "a", "a")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("invalid config error = %v", err)
	}
}

func TestVerbose(t *testing.T) {
	cfg := writeFile(t, "sfe.toml", testConfig)

	_, stderr, err := execute(t, "", "--config", cfg, "-v", "call", "rpos_e", "a/b", "/")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "function invoked") || !strings.Contains(stderr, "invocationId") {
		t.Errorf("verbose log missing invocation entry:\n%s", stderr)
	}

	_, stderr, _ = execute(t, "", "--config", cfg, "call", "rpos_e", "a/b", "/")
	if stderr != "" {
		t.Errorf("warn level should be silent, got:\n%s", stderr)
	}
}

func TestErrorReporting(t *testing.T) {
	cfg := writeFile(t, "sfe.toml", testConfig)
	quiet := writeFile(t, "quiet.toml", "[general]\nlog_level = \"error\"\nlog_format = \"text\"\n")
	missing := filepath.Join(t.TempDir(), "missing.toml")

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "unknown function through the configured logger",
			args:    []string{"--config", cfg, "call", "len_e", "abc"},
			want:    []string{`"level":"warn"`, `"error_code":"UNKNOWN_FUNCTION"`, `"error_category":"registry"`, `"error_function":"len_e"`},
			notWant: []string{"Error:"},
		},
		{
			name: "missing config before setup",
			args: []string{"--config", missing, "call", "pos_e", "a", "a"},
			want: []string{"ERR sfe:", "error_code=MISSING_CONFIG", "error_category=configuration"},
		},
		{
			name: "usage error",
			args: []string{"nope"},
			want: []string{"ERR sfe: ", "unknown command"},
		},
		{
			name:    "warning below the configured level",
			args:    []string{"--config", quiet, "call", "len_e", "abc"},
			want:    []string{"Error: unknown function len_e"},
			notWant: []string{"WRN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, "", tt.args...)
			if err == nil {
				t.Fatalf("execute(%v) should fail", tt.args)
			}
			for _, w := range tt.want {
				if !strings.Contains(stderr, w) {
					t.Errorf("stderr missing %q:\n%s", w, stderr)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(stderr, w) {
					t.Errorf("stderr should not contain %q:\n%s", w, stderr)
				}
			}
		})
	}
}

func TestBatch(t *testing.T) {
	cfg := writeFile(t, "sfe.toml", testConfig)
	batch := writeFile(t, "batch.yaml", `
- name: last piece
  fn: explode_e
  args: [a/b/c, /, -1]
  expect: c
- fn: stripnewlines
  args: ["x\n\ny"]
`)

	out, _, err := execute(t, "", "--config", cfg, "batch", batch)
	if err != nil {
		t.Fatalf("batch error = %v\n%s", err, out)
	}
	for _, want := range []string{"PASS last piece", `stripnewlines: "x\ny"`, "2 items, 0 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("batch output missing %q:\n%s", want, out)
		}
	}
}

func TestBatch_Failures(t *testing.T) {
	cfg := writeFile(t, "sfe.toml", testConfig)
	input := `
- fn: pos_e
  args: [abc, c]
  expect: "1"
- fn: len_e
- fn: rpos_e
  args: [abc, c]
`

	out, _, err := execute(t, input, "--config", cfg, "batch", "--failures", "-")
	if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Fatalf("batch error = %v; want CodeValidationFailed", err)
	}
	for _, want := range []string{`FAIL pos_e: got "2", want "1"`, "FAIL len_e", "3 items, 2 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("batch output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "rpos_e") {
		t.Errorf("--failures should hide passing items:\n%s", out)
	}
}

func TestBatch_MissingFile(t *testing.T) {
	cfg := writeFile(t, "sfe.toml", testConfig)

	_, _, err := execute(t, "", "--config", cfg, "batch", filepath.Join(t.TempDir(), "none.yaml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing batch error = %v", err)
	}
}

func TestList(t *testing.T) {
	cfg := writeFile(t, "sfe.toml", testConfig)

	out, _, err := execute(t, "", "--config", cfg, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"pos_e", "value|needle|offset=0",
		"stripnewlines",
		"aliases: pos_esc",
		"aliases: eclater_e",
		"limits: needle 30, pad 20, result 1000",
		"StringFunctionsEscaped 1.0.1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	// An unusable config must not break version output
	out, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "sfe ") || !strings.Contains(out, "Go Version:") {
		t.Errorf("version output = %q", out)
	}
}

func TestSplitLangs(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"de", 1},
		{" de , fr ,", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := splitLangs(tt.input); len(got) != tt.expected {
				t.Errorf("splitLangs(%q) = %v; want %d entries", tt.input, got, tt.expected)
			}
		})
	}
}
