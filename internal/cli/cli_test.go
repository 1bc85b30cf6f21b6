package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/andyh1203/npyi/internal/registrytest"
	"github.com/andyh1203/npyi/pkg/buildinfo"
	"github.com/andyh1203/npyi/pkg/errors"
	"github.com/andyh1203/npyi/pkg/npyi"
)

type result struct {
	out  string
	logs string
	err  error
}

// isolateConfig points XDG_CONFIG_HOME at a fresh directory and returns it.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	var out, errOut, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return result{out: out.String(), logs: logs.String(), err: err}
}

func TestSearchTable(t *testing.T) {
	isolateConfig(t)
	srv := registrytest.NewServer(t)

	r := runCLI(t, "search", "--base-url", srv.BaseURL(), "--first-name", "kathleen", "--state", "md")
	if r.err != nil {
		t.Fatalf("search error: %v", r.err)
	}
	for _, want := range []string{"KATHLEEN VOSS", "1417367343", "Family Medicine", "BALTIMORE, MD"} {
		if !strings.Contains(r.out, want) {
			t.Errorf("output missing %q:\n%s", want, r.out)
		}
	}

	q := srv.LastQuery()
	if q.Get("first_name") != "kathleen" || q.Get("state") != "md" || q.Get("version") != "2.1" {
		t.Errorf("query = %v", q)
	}
	if q.Has("city") || q.Has("limit") {
		t.Errorf("unset flags were sent: %v", q)
	}
}

func TestSearchJSON(t *testing.T) {
	isolateConfig(t)
	srv := registrytest.NewServer(t)

	r := runCLI(t, "search", "--base-url", srv.BaseURL(), "--first-name", "jeffrey", "--limit", "200", "-o", "json")
	if r.err != nil {
		t.Fatalf("search error: %v", r.err)
	}
	var payload struct {
		ResultCount int   `json:"result_count"`
		Results     []any `json:"results"`
	}
	if err := json.Unmarshal([]byte(r.out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, r.out)
	}
	if payload.ResultCount != 200 || len(payload.Results) != 200 {
		t.Errorf("result_count = %d, len(results) = %d; want 200", payload.ResultCount, len(payload.Results))
	}
}

func TestSearchNoResults(t *testing.T) {
	isolateConfig(t)
	srv := registrytest.NewServer(t)

	r := runCLI(t, "search", "--base-url", srv.BaseURL(), "--last-name", "nobody")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.out, "No providers found") {
		t.Errorf("output = %q", r.out)
	}
}

func TestSearchErrors(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		code         errors.Code
		wantRequests int
	}{
		{"raw unknown key", []string{"--param", "foo=bar"}, errors.ErrCodeInvalidParameter, 0},
		{"raw malformed", []string{"--param", "foo"}, errors.ErrCodeInvalidInput, 0},
		{"bad alias", []string{"--first-name", "bob", "--use-first-name-alias", "yes"}, errors.ErrCodeInvalidUseFirstNameAlias, 0},
		{"bad purpose", []string{"--city", "x", "--address-purpose", "home"}, errors.ErrCodeInvalidAddressPurpose, 0},
		{"bad version", []string{"--number", "1417367343", "--api-version", "3"}, errors.ErrCodeInvalidVersion, 0},
		{"bad output", []string{"--number", "1417367343", "-o", "xml"}, errors.ErrCodeInvalidConfig, 0},
		{"no criteria", nil, errors.ErrCodeRegistry, 1},
		{"limit zero", []string{"--first-name", "jeffrey", "--limit", "0"}, errors.ErrCodeRegistry, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			srv := registrytest.NewServer(t)

			args := append([]string{"search", "--base-url", srv.BaseURL()}, tt.args...)
			r := runCLI(t, args...)
			if !errors.Is(r.err, tt.code) {
				t.Fatalf("error = %v, want code %s", r.err, tt.code)
			}
			if n := srv.RequestCount(); n != tt.wantRequests {
				t.Errorf("RequestCount() = %d, want %d", n, tt.wantRequests)
			}
		})
	}
}

func TestSearchDeprecatedVersion(t *testing.T) {
	isolateConfig(t)
	srv := registrytest.NewServer(t)

	r := runCLI(t, "search", "--base-url", srv.BaseURL(), "--number", "1417367343", "--api-version", "1")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if v := srv.LastQuery().Get("version"); v != "1.0" {
		t.Errorf("version = %q, want 1.0", v)
	}
	if !strings.Contains(r.logs, "Version 1.0 of the NPPES API will be deprecated on 2019-06-01") {
		t.Errorf("logs missing deprecation warning:\n%s", r.logs)
	}
}

func TestLookup(t *testing.T) {
	isolateConfig(t)
	srv := registrytest.NewServer(t)

	r := runCLI(t, "lookup", "--base-url", srv.BaseURL(), "1417367343")
	if r.err != nil {
		t.Fatal(r.err)
	}
	for _, want := range []string{"KATHLEEN VOSS", "NPI-1", "12 OAK ST", "PO BOX 7"} {
		if !strings.Contains(r.out, want) {
			t.Errorf("output missing %q:\n%s", want, r.out)
		}
	}

	r = runCLI(t, "lookup", "--base-url", srv.BaseURL(), "-o", "json", "1417367343")
	if r.err != nil {
		t.Fatal(r.err)
	}
	var p struct {
		Number json.Number `json:"number"`
	}
	if err := json.Unmarshal([]byte(r.out), &p); err != nil || p.Number.String() != "1417367343" {
		t.Errorf("json lookup = %q (%v)", r.out, err)
	}

	r = runCLI(t, "lookup", "--base-url", srv.BaseURL(), "1234567890")
	if !errors.Is(r.err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", r.err)
	}

	r = runCLI(t, "lookup", "--base-url", srv.BaseURL(), "12")
	if !errors.Is(r.err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", r.err)
	}
}

func TestParams(t *testing.T) {
	r := runCLI(t, "params")
	if r.err != nil {
		t.Fatal(r.err)
	}
	lines := strings.Split(r.out, "\n")
	for _, key := range npyi.ValidSearchParams() {
		flag := "--" + strings.ReplaceAll(key, "_", "-")
		found := false
		for _, line := range lines {
			if strings.Contains(line, key) && strings.Contains(line, flag) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no line lists %s with %s:\n%s", key, flag, r.out)
		}
	}

	for _, want := range []string{
		"1.0  deprecated, sunset 2019-06-01",
		"2.0  deprecated, sunset 2019-09-01",
		"2.1  default",
		"SECONDARY",
	} {
		if !strings.Contains(r.out, want) {
			t.Errorf("output missing %q:\n%s", want, r.out)
		}
	}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, appName, "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigPath(t *testing.T) {
	dir := isolateConfig(t)

	r := runCLI(t, "config", "path")
	if r.err != nil {
		t.Fatal(r.err)
	}
	want := filepath.Join(dir, "npyi", "config.toml")
	if strings.TrimSpace(r.out) != want {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(r.out), want)
	}

	r = runCLI(t, "--config", "/tmp/custom.toml", "config", "path")
	if strings.TrimSpace(r.out) != "/tmp/custom.toml" {
		t.Errorf("--config path = %q", r.out)
	}
}

func TestConfigShowDefaults(t *testing.T) {
	isolateConfig(t)

	r := runCLI(t, "config", "show")
	if r.err != nil {
		t.Fatal(r.err)
	}
	for _, want := range []string{
		`base_url = "https://npiregistry.cms.hhs.gov/api/"`,
		`api_version = "2.1"`,
		`timeout = "10s"`,
		`output = "table"`,
	} {
		if !strings.Contains(r.out, want) {
			t.Errorf("config show missing %q:\n%s", want, r.out)
		}
	}
}

func TestConfigFileAndOverrides(t *testing.T) {
	dir := isolateConfig(t)
	srv := registrytest.NewServer(t)
	writeConfig(t, dir, fmt.Sprintf(`
base_url = %q
api_version = "2"
limit = 3
output = "json"
`, srv.BaseURL()))

	count := func(out string) int {
		var payload struct {
			Results []any `json:"results"`
		}
		if err := json.Unmarshal([]byte(out), &payload); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		return len(payload.Results)
	}

	r := runCLI(t, "search", "--first-name", "jeffrey")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if n := count(r.out); n != 3 {
		t.Errorf("results = %d, want config limit 3", n)
	}
	if v := srv.LastQuery().Get("version"); v != "2.0" {
		t.Errorf("version = %q, want 2.0 from config", v)
	}

	r = runCLI(t, "search", "--first-name", "jeffrey", "--limit", "5", "--api-version", "2.1")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if n := count(r.out); n != 5 {
		t.Errorf("results = %d, want flag limit 5", n)
	}
	if v := srv.LastQuery().Get("version"); v != "2.1" {
		t.Errorf("version = %q, want 2.1 from flag", v)
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", `colour = "blue"`},
		{"bad url", `base_url = "ftp://example.com"`},
		{"bad timeout", `timeout = "soon"`},
		{"negative timeout", `timeout = "-1s"`},
		{"bad output", `output = "yaml"`},
		{"negative limit", `limit = -1`},
		{"not toml", `base_url = `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolateConfig(t)
			writeConfig(t, dir, tt.body)

			r := runCLI(t, "config", "show")
			if !errors.Is(r.err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want INVALID_CONFIG", r.err)
			}
		})
	}

	t.Run("explicit missing file", func(t *testing.T) {
		isolateConfig(t)
		r := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "config", "show")
		if !errors.Is(r.err, errors.ErrCodeInvalidConfig) {
			t.Errorf("error = %v, want INVALID_CONFIG", r.err)
		}
	})

	t.Run("timeout flag", func(t *testing.T) {
		isolateConfig(t)
		r := runCLI(t, "--timeout", "0s", "config", "show")
		if !errors.Is(r.err, errors.ErrCodeInvalidConfig) {
			t.Errorf("error = %v, want INVALID_CONFIG", r.err)
		}
	})
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		r := runCLI(t, "completion", shell)
		if r.err != nil {
			t.Errorf("completion %s: %v", shell, r.err)
		}
		if !strings.Contains(r.out, "npyi") {
			t.Errorf("completion %s output does not mention npyi", shell)
		}
	}

	if r := runCLI(t, "completion", "tcsh"); r.err == nil {
		t.Error("completion tcsh should fail")
	}

	r := runCLI(t, "completion", "--help")
	if r.err != nil {
		t.Fatal(r.err)
	}
	for _, want := range []string{"--address-purpose", "--use-first-name-alias", "--api-version", "--output", "SECONDARY", "2.1"} {
		if !strings.Contains(r.out, want) {
			t.Errorf("completion help missing %q", want)
		}
	}
}

func TestFlagValueCompletion(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"search", "--address-purpose", ""}, []string{"LOCATION", "MAILING", "PRIMARY", "SECONDARY"}},
		{[]string{"search", "--use-first-name-alias", ""}, []string{"true", "false"}},
		{[]string{"search", "--api-version", ""}, []string{"1.0", "2.0", "2.1"}},
		{[]string{"lookup", "--output", ""}, []string{"table", "json"}},
	}
	for _, tt := range tests {
		t.Run(tt.args[1], func(t *testing.T) {
			r := runCLI(t, append([]string{cobra.ShellCompRequestCmd}, tt.args...)...)
			if r.err != nil {
				t.Fatal(r.err)
			}
			for _, want := range tt.want {
				if !strings.Contains(r.out, want+"\n") {
					t.Errorf("completions missing %q:\n%s", want, r.out)
				}
			}
		})
	}
}

func TestVersionFlag(t *testing.T) {
	r := runCLI(t, "--version")
	if r.err != nil {
		t.Fatal(r.err)
	}
	if !strings.Contains(r.out, "npyi version "+buildinfo.Version) {
		t.Errorf("--version output = %q", r.out)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New(errors.ErrCodeRegistry, "No valid search criteria"))
	if !strings.Contains(buf.String(), "No valid search criteria") {
		t.Errorf("output = %q", buf.String())
	}
	if strings.Contains(buf.String(), "REGISTRY_ERROR") {
		t.Errorf("output should not include the code: %q", buf.String())
	}
}
