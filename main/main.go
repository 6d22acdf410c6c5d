/*
File    : gojinja/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the gojinja template parser. It
provides three modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live parsing
2. File Mode: Parse a gojinja template file from the command line
3. Server Mode: `server <port>` starts a REPL per TCP connection

The tool only ever parses templates and prints their AST back out as
regenerated source - it does not render or evaluate templates.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/gojinja/lexer"
	"github.com/akashmaji946/gojinja/parser"
	"github.com/akashmaji946/gojinja/repl"
	"github.com/fatih/color"
)

// MODE defines the default operating mode of the tool.
var MODE = "repl"

// VERSION represents the current version of the gojinja parser.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the tool's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License).
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "gojinja >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ▄▄▄▄▄                    ▀  ██
  ██▀▀▀▀█   ▄████▄             ██
 ██       ██▀   ▀█  ▄█▄███▄ ▄███▀██▄  ▄████▄    ▄█▀██▄
 ██       ██     █  ██▀ ▀▀   ██   ██  ██▄▄▄██  ██   ██
 ██▄▄▄▄█  ▀█▄▄▄█▀  ██         ██  ██  ▀█▄▄▄▄  ▄██▄▄██▀
  ▀▀▀▀▀     ▀▀▀    ▀▀          ▀▀▀▀     ▀▀▀▀▀  ▀▀  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output.
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the gojinja parser tool.
//
// Usage:
//
//	gojinja              - Start in REPL (interactive) mode
//	gojinja <filename>   - Parse the specified template file
//	gojinja server <port>- Start a REPL server
//	gojinja --help       - Display help information
//	gojinja --version    - Display version information
//
// The -trim-blocks and -lstrip-blocks flags may precede any mode and
// turn on the corresponding environment-wide whitespace-control default.
func main() {
	cfg := lexer.DefaultConfig
	var args []string
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-trim-blocks", "--trim-blocks":
			cfg.TrimBlocks = true
		case "-lstrip-blocks", "--lstrip-blocks":
			cfg.LstripBlocks = true
		default:
			args = append(args, arg)
		}
	}
	opts := &parser.Options{Config: cfg}

	if len(args) > 0 {
		arg := args[0]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(args) < 2 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: gojinja server <port>\n")
				os.Exit(1)
			}
			port := args[1]
			startServer(port, opts)
			return
		}

		fileName := arg
		runFile(fileName, opts)
	} else {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Opts = opts
		repler.Start(os.Stdin, os.Stdout)
	}
}

// showHelp displays the help information for the gojinja tool.
func showHelp() {
	cyanColor.Println("gojinja - A Jinja-style template parser")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  gojinja                    Start interactive REPL mode")
	yellowColor.Println("  gojinja <path-to-file>      Parse a template file (.jinja)")
	yellowColor.Println("  gojinja server <port>       Start REPL server on specified port")
	yellowColor.Println("  gojinja --help              Display this help message")
	yellowColor.Println("  gojinja --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("FLAGS (any mode):")
	yellowColor.Println("  -trim-blocks               Drop the first newline after a block tag")
	yellowColor.Println("  -lstrip-blocks             Strip whitespace from line start to a block tag")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                      Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  gojinja                    # Start REPL")
	yellowColor.Println("  gojinja templates/index.jinja")
	yellowColor.Println("  gojinja server 8080        # Start REPL server on port 8080")
}

// showVersion displays the version information for the gojinja tool.
func showVersion() {
	cyanColor.Println("gojinja - A Jinja-style template parser")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads a template file and prints its regenerated source.
func runFile(fileName string, opts *parser.Options) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	source := string(fileContent)
	executeFileWithRecovery(fileName, source, opts)
}

// startServer initializes and runs the gojinja REPL server.
func startServer(port string, opts *parser.Options) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("gojinja REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn, opts)
	}
}

// handleClient manages a single client connection for the REPL server.
func handleClient(conn net.Conn, opts *parser.Options) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Opts = opts
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery parses a template and prints its regenerated
// source, recovering from any panic the parser might raise.
func executeFileWithRecovery(fileName, source string, opts *parser.Options) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	root, err := parser.Parse(fileName, source, opts)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", err)
		os.Exit(1)
	}

	printAST(root)
}

// printAST prints the regenerated source text of a parsed template,
// letting a reader inspect exactly what the parser understood.
func printAST(root *parser.Root) {
	fmt.Println(parser.Print(root))
}
