package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLIBinaryIntegration(t *testing.T) {
	// 1. Build the CLI binary.
	tmpBuildDir, err := os.MkdirTemp("", "verprompt_build")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpBuildDir)

	binPath := filepath.Join(tmpBuildDir, "verprompt")
	// Since this test resides in cmd/integration, the main package is two directories up.
	buildCmd := exec.Command("go", "build", "-o", binPath, "../..")
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build CLI binary: %v; build output: %s", err, string(buildOutput))
	}

	// 2. Run from an empty directory so no config file is picked up.
	workDir := t.TempDir()
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "VERPROMPT_") {
			env = append(env, kv)
		}
	}

	run := func(stdin string, args ...string) (string, string) {
		t.Helper()
		cmd := exec.Command(binPath, args...)
		cmd.Dir = workDir
		cmd.Env = env
		cmd.Stdin = strings.NewReader(stdin)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			t.Fatalf("CLI command %v failed: %v; stdout: %s; stderr: %s", args, err, stdout.String(), stderr.String())
		}
		return stdout.String(), stderr.String()
	}

	// 3. Walk a release through its lifecycle interactively.
	steps := []struct {
		from  string
		input string
		to    string
	}{
		{"1.2.3", "3\n2\n", "1.3.0-alpha.0"}, // minor, alpha
		{"1.3.0-alpha.0", "2\n", "1.3.0-alpha.1"}, // stay in alpha
		{"1.3.0-alpha.1", "4\n", "1.3.0-rc.0"},    // bump up to rc
		{"1.3.0-rc.0", "3\n", "1.3.0"},            // go to production
		{"1.3.0", "2\n1\n", "1.3.1"},              // patch, no prerelease
	}
	for _, step := range steps {
		out, errOut := run(step.input, step.from)
		if got := strings.TrimSpace(out); got != step.to {
			t.Errorf("%s with input %q: got %q, expected %q; stderr:\n%s", step.from, step.input, got, step.to, errOut)
		}
	}

	// 4. Non-interactive selection with structured output.
	out, _ := run("", "--format", "yaml", "--select", "major", "--select", "rc", "1.3.1")
	expected := "oldVersion: 1.3.1\nnewVersion: 2.0.0-rc.0\nreleaseType: premajor\n"
	if out != expected {
		t.Errorf("expected YAML output %q, got %q", expected, out)
	}
}
