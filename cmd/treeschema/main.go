// Command treeschema validates JSON and YAML documents against schema
// trees from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/erraggy/treeschema"
	"github.com/erraggy/treeschema/cmd/treeschema/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("treeschema v%s\n", treeschema.Version())
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		if err := commands.HandleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "formats":
		if err := commands.HandleFormats(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within an edit
// distance of 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	commands := []string{"validate", "parse", "formats", "mcp", "version", "help"}

	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println("treeschema - validate JSON and YAML documents against schema trees")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  treeschema <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  validate    Validate a document against a schema")
	fmt.Println("  parse       Parse a document and print a structural summary")
	fmt.Println("  formats     List registered string format names")
	fmt.Println("  mcp         Run the MCP server over stdio")
	fmt.Println("  version     Print the treeschema version")
	fmt.Println("  help        Show this help message")
	fmt.Println()
	fmt.Println("Run 'treeschema <command> -h' for command-specific flags.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  treeschema validate -schema order-schema.yaml order.json")
	fmt.Println("  cat order.json | treeschema validate -schema order-schema.yaml -")
	fmt.Println("  treeschema validate -schema s.yaml -format json order.json | jq '.valid'")
	fmt.Println("  treeschema parse config.yaml")
}
