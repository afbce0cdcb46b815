// FILE: flagini/benchmark/bench_ini_test.go
package benchmark_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flagini"
)

func benchIniSet() *flagini.FlagSet {
	fs := flagini.New()
	fs.Config("config", 'c', "config file")
	fs.Bool("debug", 0, "")
	fs.String("host", 0, "localhost", "")
	fs.Int("port", 0, 80, "")
	fs.Float64("ratio", 0, 0, "")
	fs.String("message", 0, "", "")
	return fs
}

const benchIniContent = `; benchmark configuration
debug = true
host = example.com
port = 8080
ratio = 0.75

# continued value
message = hello from \
          a continued line
`

func BenchmarkIniReader(b *testing.B) {
	fs := benchIniSet()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := fs.ParseIniReader(strings.NewReader(benchIniContent)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIniFile(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.ini")
	if err := os.WriteFile(path, []byte(benchIniContent), 0644); err != nil {
		b.Fatal(err)
	}

	fs := benchIniSet()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := fs.ParseIni(path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIniInclusionChain(b *testing.B) {
	dir := b.TempDir()
	inner := filepath.Join(dir, "inner.ini")
	outer := filepath.Join(dir, "outer.ini")
	if err := os.WriteFile(inner, []byte("port = 9090\n"), 0644); err != nil {
		b.Fatal(err)
	}
	if err := os.WriteFile(outer, []byte("host = example.com\nconfig = "+inner+"\n"), 0644); err != nil {
		b.Fatal(err)
	}

	fs := benchIniSet()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := fs.ParseIni(outer); err != nil {
			b.Fatal(err)
		}
	}
}
