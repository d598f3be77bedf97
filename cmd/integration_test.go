package cmd

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `math score,reading score,writing score,gender,parental level of education
72,70,74,female,bachelor's degree
69,90,88,female,some college
90,95,93,female,master's degree
47,57,44,male,associate's degree
76,78,75,male,some college
71,83,78,female,associate's degree
88,95,92,male,bachelor's degree
40,43,39,male,some college
64,64,67,female,some college
38,60,50,male,master's degree
58,54,52,female,associate's degree
65,81,73,male,bachelor's degree
`

// runCmd executes the root command with args and returns stdout and stderr.
func runCmd(t *testing.T, args ...string) (string, string) {
	t.Helper()
	out, errOut, err := runCmdErr(args...)
	if err != nil {
		t.Fatalf("command %v failed: %v\nstderr:\n%s", args, err, errOut)
	}
	return out, errOut
}

func runCmdErr(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSample(t *testing.T, body string) (dataPath, outDir, cfgPath string) {
	t.Helper()
	dir := t.TempDir()
	dataPath = filepath.Join(dir, "data.csv")
	if err := os.WriteFile(dataPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}
	outDir = filepath.Join(dir, "plots")
	cfgPath = filepath.Join(dir, "config.yaml")
	return dataPath, outDir, cfgPath
}

func TestAnalyzeCommand(t *testing.T) {
	dataPath, outDir, cfgPath := writeSample(t, sampleCSV)

	out, _ := runCmd(t, "analyze", dataPath, "--config", cfgPath, "--out", outDir, "--column", "math score")
	for _, want := range []string{
		"Dataset Description:",
		"First rows:",
		"Last rows:",
		"Correlation Matrix:",
		"For the attribute math score:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("analyze output missing %q:\n%s", want, out)
		}
	}

	for _, name := range []string{"relational_plot.png", "categorical_plot.png", "statistical_plot.png"} {
		info, err := os.Stat(filepath.Join(outDir, name))
		if err != nil {
			t.Errorf("missing plot %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("plot %s is empty", name)
		}
	}
}

func TestAnalyzeNormalColumn(t *testing.T) {
	// ~normal math scores: mean 66, std 15. Skewness lands near 0 and the
	// excess kurtosis near-but-not-exactly 0, so the kurtosis label depends
	// only on its sign; the exact-zero mesokurtic case does not occur.
	rng := rand.New(rand.NewSource(7))
	levels := []string{"bachelor's degree", "some college", "master's degree", "associate's degree"}
	var b strings.Builder
	b.WriteString("math score,reading score,writing score,gender,parental level of education\n")
	for i := 0; i < 1000; i++ {
		math := 66 + rng.NormFloat64()*15
		reading := math + rng.NormFloat64()*5
		writing := reading + rng.NormFloat64()*5
		gender := "female"
		if i%2 == 1 {
			gender = "male"
		}
		fmt.Fprintf(&b, "%.1f,%.1f,%.1f,%s,%s\n", math, reading, writing, gender, levels[i%len(levels)])
	}
	dataPath, outDir, cfgPath := writeSample(t, b.String())

	out, _ := runCmd(t, "analyze", dataPath, "--config", cfgPath, "--out", outDir, "--column", "math score")
	if !strings.Contains(out, "The data was not skewed and ") {
		t.Errorf("normal data should classify as not skewed:\n%s", out)
	}
	if !strings.Contains(out, "platykurtic") && !strings.Contains(out, "leptokurtic") {
		t.Errorf("near-zero kurtosis should classify by sign, got:\n%s", out)
	}
}

func TestMomentsCommand(t *testing.T) {
	dataPath, outDir, cfgPath := writeSample(t, sampleCSV)

	out, _ := runCmd(t, "moments", dataPath, "--config", cfgPath, "--out", outDir, "--column", "reading score")
	if !strings.Contains(out, "For the attribute reading score:") {
		t.Errorf("moments output missing attribute line:\n%s", out)
	}
	if !strings.Contains(out, "The data was ") {
		t.Errorf("moments output missing interpretation:\n%s", out)
	}
}

func TestDescribeCommand(t *testing.T) {
	dataPath, outDir, cfgPath := writeSample(t, sampleCSV)

	out, _ := runCmd(t, "describe", dataPath, "--config", cfgPath, "--out", outDir, "--column", "math score")
	if !strings.Contains(out, "Correlation Matrix:") {
		t.Errorf("describe output missing correlation matrix:\n%s", out)
	}
	if strings.Contains(out, "For the attribute") {
		t.Errorf("describe should not run the moments step:\n%s", out)
	}
}

func TestPlotOnly(t *testing.T) {
	dataPath, outDir, cfgPath := writeSample(t, sampleCSV)

	runCmd(t, "plot", dataPath, "--config", cfgPath, "--out", outDir, "--column", "math score", "--only", "relational")
	if _, err := os.Stat(filepath.Join(outDir, "relational_plot.png")); err != nil {
		t.Errorf("missing relational plot: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "categorical_plot.png")); !os.IsNotExist(err) {
		t.Errorf("--only relational should not render the categorical plot")
	}
	plotOnly = ""
}

func TestPlotOnlyInvalid(t *testing.T) {
	dataPath, outDir, cfgPath := writeSample(t, sampleCSV)

	_, _, err := runCmdErr("plot", dataPath, "--config", cfgPath, "--out", outDir, "--column", "math score", "--only", "pie")
	if err == nil || !strings.Contains(err.Error(), "unsupported --only") {
		t.Errorf("want unsupported --only error, got %v", err)
	}
	// reset for later tests sharing the global flag
	plotOnly = ""
}

func TestAnalyzeMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runCmdErr("analyze", filepath.Join(dir, "absent.csv"),
		"--config", filepath.Join(dir, "config.yaml"), "--out", dir, "--column", "math score")
	if err == nil {
		t.Fatal("analyze on a missing file should fail")
	}
	if !strings.Contains(err.Error(), "absent.csv") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()
	out, _ := runCmd(t, "config", "show", "--config", filepath.Join(dir, "config.yaml"), "--out", dir, "--column", "math score")
	for _, key := range []string{"data_path:", "analysis_column:", "relational_plot:"} {
		if !strings.Contains(out, key) {
			t.Errorf("config show missing %q:\n%s", key, out)
		}
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	runCmd(t, "config", "init", "--config", cfgPath, "--out", dir, "--column", "math score")
	body, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(body), "analysis_column: math score") {
		t.Errorf("config file missing analysis column:\n%s", body)
	}
}
