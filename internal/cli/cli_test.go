package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2025, 10, 18, 12, 0, 0, 0, time.UTC)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables outlive a single Execute.
	cfgFile, logLevel, outputDir, companiesFile, tradesFile = "", "", "", "", ""
	genVariant, genSeed, genTimezone, genFormat = "", 0, "", ""
	analyzeCommodity, analyzeTimeframe, savingsCompany = "", "", ""
	importConnection, importDropExisting = "", false

	prevNow := now
	now = func() time.Time { return testNow }
	t.Cleanup(func() { now = prevNow })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))

	err := rootCmd.Execute()
	return out.String(), err
}

func generate(t *testing.T, dir string, extra ...string) string {
	t.Helper()

	args := append([]string{"generate", "--output-dir", dir, "--seed", "7", "--timezone", "UTC"}, extra...)
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	return out
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out := generate(t, dir)

	for _, want := range []string{
		"Generated 6 companies\n",
		"Generated 556 historical trades\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	for _, name := range []string{"demo_companies.json", "demo_trades.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestGenerateWithoutSubcommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--output-dir", dir, "--seed", "7", "--timezone", "UTC")
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}
	if !strings.Contains(out, "Generated 556 historical trades") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestGenerateReproducible(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	generate(t, first, "--variant", "uniform")
	generate(t, second, "--variant", "uniform")

	a, err := os.ReadFile(filepath.Join(first, "demo_trades.json"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(second, "demo_trades.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Same seed produced different trade documents")
	}
}

func TestGenerateXLSX(t *testing.T) {
	dir := t.TempDir()
	generate(t, dir, "--format", "xlsx")

	for _, name := range []string{"demo_companies.xlsx", "demo_trades.xlsx"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestGenerateInvalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown variant", []string{"--variant", "hourly"}, "unknown variant"},
		{"unknown format", []string{"--format", "csv"}, "unknown output format"},
		{"bad timezone", []string{"--timezone", "Mars/Olympus"}, "invalid timezone"},
		{"path as file name", []string{"--trades-file", "../trades.json"}, "plain file name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "--output-dir", t.TempDir()}, tt.args...)
			_, err := execute(t, args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	generate(t, dir)

	out, err := execute(t, "verify", "--output-dir", dir)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	for _, want := range []string{
		"Loaded 6 companies\n",
		"Loaded 556 historical trades\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestVerifyRejectsInvalidDataset(t *testing.T) {
	dir := t.TempDir()
	generate(t, dir)

	path := filepath.Join(dir, "demo_trades.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data = bytes.Replace(data, []byte(`"type": "buy"`), []byte(`"type": "swap"`), 1)
	data = bytes.Replace(data, []byte(`"type": "sell"`), []byte(`"type": "swap"`), 1)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = execute(t, "verify", "--output-dir", dir)
	if err == nil || !strings.Contains(err.Error(), "dataset is invalid") {
		t.Errorf("error = %v, want invalid dataset", err)
	}
}

func TestVerifyMissingFiles(t *testing.T) {
	_, err := execute(t, "verify", "--output-dir", t.TempDir())
	if err == nil {
		t.Error("Expected error for missing documents")
	}
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	generate(t, dir)

	out, err := execute(t, "analyze", "--output-dir", dir, "--commodity", "Electricity", "--timeframe", "1y")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if !strings.Contains(out, "Average Electricity prices, last 1y:") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestAnalyzeInvalid(t *testing.T) {
	dir := t.TempDir()
	generate(t, dir)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing commodity", nil, "--commodity is required"},
		{"unknown commodity", []string{"--commodity", "Coal"}, "unknown commodity"},
		{"bad timeframe", []string{"--commodity", "Gas", "--timeframe", "2w"}, "unknown timeframe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"analyze", "--output-dir", dir}, tt.args...)
			_, err := execute(t, args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSavings(t *testing.T) {
	dir := t.TempDir()
	generate(t, dir)

	out, err := execute(t, "savings", "--output-dir", dir, "--timeframe", "30d",
		"--company", "GreenHydro Corp")
	if err != nil {
		t.Fatalf("savings failed: %v", err)
	}
	for _, want := range []string{"Savings over the last 30d", "Electricity", "Total", "EUR"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	_, err = execute(t, "savings", "--output-dir", dir, "--company", "Nobody Ltd")
	if err == nil || !strings.Contains(err.Error(), "unknown company") {
		t.Errorf("error = %v, want unknown company", err)
	}
}

func TestImportRequiresConnection(t *testing.T) {
	_, err := execute(t, "import", "--output-dir", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "connection string is required") {
		t.Errorf("error = %v, want missing connection", err)
	}
}

func TestListings(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"version"}, []string{"siphon-seed"}},
		{[]string{"commodities"}, []string{"Electricity", "Hydrogen", "Heat", "Gas", "MMBtu"}},
		{[]string{"variants"}, []string{"tiered", "uniform", "json", "xlsx"}},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("%s failed: %v", tt.args[0], err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
		})
	}
}
