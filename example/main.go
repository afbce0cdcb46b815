// FILE: flagini/example/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"flagini"
)

// Options holds the demo program's configuration. Field values are the
// defaults; after a successful parse the struct holds the resolved state.
type Options struct {
	Verbose bool   `flag:"verbose" short:"v" desc:"Enable verbose output"`
	Name    string `flag:"name" short:"n" desc:"Name to greet"`
	Count   int    `flag:"count" desc:"Number of greetings"`
	Server  struct {
		Host string `flag:"host" desc:"Listen address"`
		Port int    `flag:"port" short:"p" desc:"Listen port"`
	} `flag:"server"`
}

const configFilePath = "example.ini"

func main() {
	log.Println("Creating demo configuration file...")
	content := `; demo configuration
# both comment styles work
name = gopher
count = 2
server.host = example.com
server.port = 8080
greeting.msg = hello from \
               a continued line
`
	if err := os.WriteFile(configFilePath, []byte(content), 0644); err != nil {
		log.Fatalf("failed to write %s: %v", configFilePath, err)
	}
	defer os.Remove(configFilePath)

	opts := Options{Name: "world", Count: 1}
	opts.Server.Host = "localhost"
	opts.Server.Port = 80

	// Token order decides precedence: the config file is resolved at the
	// --config position, so the trailing --server.port wins over the file.
	args := os.Args
	if len(args) == 1 {
		args = []string{args[0], "--config", configFilePath, "--server.port", "9090", "-v"}
		log.Printf("No arguments given, demonstrating with: %v", args[1:])
	}

	fs, err := flagini.NewBuilder().
		WithStruct(&opts).
		WithConfigFlag("config", 'c', "Path to an INI config file").
		WithIgnoreUnknown().
		WithArgs(args).
		Build()
	if err != nil {
		fs.PrintError(os.Stderr)
		os.Exit(flagini.ExitCode(err))
	}

	fmt.Println("Resolved configuration:")
	fmt.Printf("  verbose:     %v\n", opts.Verbose)
	fmt.Printf("  name:        %s\n", opts.Name)
	fmt.Printf("  count:       %d\n", opts.Count)
	fmt.Printf("  server.host: %s\n", opts.Server.Host)
	fmt.Printf("  server.port: %d\n", opts.Server.Port)

	if opts.Verbose {
		fmt.Println("\nValues():")
		for name, value := range fs.Values() {
			fmt.Printf("  %s = %v\n", name, value)
		}
	}

	for i := 0; i < opts.Count; i++ {
		fmt.Printf("Hello, %s!\n", opts.Name)
	}
}
