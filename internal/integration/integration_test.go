// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"ssp/internal/app"
	"ssp/pkg/api"
)

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.RunContextIO(t.Context(), args, strings.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEndStdin(t *testing.T) {
	cases := map[string]string{
		"3 ab bc cd":  "abcd\n",
		"2 ab ba":     "aba\n",
		"2 xyz xyz":   "xyz\n",
		"1 abc":       "abc\n",
		"0":           "\n",
		"":            "\n",
		"garbage":     "\n",
		"2\nab\nbc\n": "abc\n",
	}
	for in, want := range cases {
		code, out, errOut := run(t, in)
		if code != 0 {
			t.Fatalf("%q: exit %d, err=%s", in, code, errOut)
		}
		if out != want {
			t.Errorf("%q: got %q want %q", in, out, want)
		}
	}
}

func TestEndToEndGzipFile(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, _ = gw.Write([]byte("3\nab\nbc\ncd\n"))
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	fn := write(t, "frags.txt.gz", buf.Bytes())

	code, out, errOut := run(t, "", fn)
	if code != 0 || out != "abcd\n" {
		t.Fatalf("exit %d out %q err %s", code, out, errOut)
	}
}

func randomInput(n int) string {
	r := rand.New(rand.NewSource(2024))
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", n)
	for i := 0; i < n; i++ {
		l := 3 + r.Intn(12)
		for k := 0; k < l; k++ {
			sb.WriteByte("ACGT"[r.Intn(4)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestParallelMatchesSerial(t *testing.T) {
	in := randomInput(150)
	get := func(threads int) string {
		code, out, errOut := run(t, in, "--threads", fmt.Sprint(threads), "--verify")
		if code != 0 {
			t.Fatalf("threads %d: exit %d err %s", threads, code, errOut)
		}
		return out
	}
	serial := get(1)
	for _, th := range []int{2, 4, 8} {
		if got := get(th); got != serial {
			t.Fatalf("threads=%d output differs from serial\nserial:   %s\nparallel: %s", th, serial, got)
		}
	}
}

func TestJSONOutputWithStatsAndVerify(t *testing.T) {
	code, out, errOut := run(t, "3 ab bc cd", "-o", "json", "--stats", "--verify", "-t", "2")
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errOut)
	}
	var res api.ResultV1
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("bad json %q: %v", out, err)
	}
	if res.Superstring != "abcd" || res.Length != 4 || res.Fragments != 3 || res.InputLength != 6 {
		t.Errorf("unexpected result %+v", res)
	}
	if res.Threads != 2 || res.Iterations != 2 || res.RunID == "" {
		t.Errorf("unexpected metadata %+v", res)
	}
	if res.Verified == nil || !*res.Verified || res.Stats == nil {
		t.Errorf("verify/stats missing: %+v", res)
	}
	if !strings.Contains(errOut, "serial_fraction=") {
		t.Errorf("stats line missing from stderr: %q", errOut)
	}
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--threads", "-2"},
		{"--output", "xml"},
		{"--no-such-flag"},
		{"a", "b"},
		{filepath.Join(t.TempDir(), "missing.txt")},
	} {
		code, _, errOut := run(t, "", args...)
		if code != 2 {
			t.Errorf("%v: want exit 2, got %d (err %s)", args, code, errOut)
		}
	}
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := run(t, "", "--version")
	if code != 0 || !strings.HasPrefix(out, "ssp version ") {
		t.Fatalf("version: exit %d out %q", code, out)
	}
	code, out, _ = run(t, "", "--help")
	if code != 0 || !strings.Contains(out, "--threads") {
		t.Fatalf("help: exit %d out %q", code, out)
	}
}

func TestConfigFile(t *testing.T) {
	cfg := write(t, "ssp.yaml", []byte("output: json\nquiet: true\n"))
	code, out, errOut := run(t, "2 ab bc", "--config", cfg)
	if code != 0 || !strings.Contains(out, `"superstring": "abc"`) {
		t.Fatalf("exit %d out %q err %s", code, out, errOut)
	}
	if errOut != "" {
		t.Errorf("quiet config should silence logs, got %q", errOut)
	}
}

func TestDebugLogging(t *testing.T) {
	code, _, errOut := run(t, "3 ab bc cd", "--log-level", "debug")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{`"msg":"fragments loaded"`, `"msg":"merged pair"`, `"run_id"`} {
		if !strings.Contains(errOut, want) {
			t.Errorf("missing %s in logs:\n%s", want, errOut)
		}
	}
}
