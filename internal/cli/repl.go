package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Outdated(ctx context.Context) error
	Add(ctx context.Context) error
	Update(ctx context.Context) error
	Delete(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Import(ctx context.Context, path string) error
	Export(ctx context.Context, path string) error
	report(err error)
}

const helpText = `Available commands:
  list | l          show all records
  outdated          show records not updated for over a month
  add               add or overwrite a record
  update            edit a record by id
  delete            remove a record by id
  search [text]     filter the view; without text, clear the filter
  import <path>     load records from a CSV file
  export [path]     write the current view to a CSV file
  exit | quit       leave the program`

// runREPL reads commands from reader until EOF, "exit" or "quit". A
// non-empty prompt from promptFn is written to w before each line.
//
// Handler errors are reported through a.report and never stop the loop.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if p := promptFn(); p != "" {
			fmt.Fprint(w, p)
		}
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "outdated":
			cmdErr = a.Outdated(ctx)

		case "add":
			cmdErr = a.Add(ctx)

		case "update":
			cmdErr = a.Update(ctx)

		case "delete":
			cmdErr = a.Delete(ctx)

		case "search":
			cmdErr = a.Search(ctx, strings.Join(args, " "))

		case "import":
			if len(args) == 0 {
				printlnFn("Usage: import <path>")
				continue
			}
			cmdErr = a.Import(ctx, strings.Join(args, " "))

		case "export":
			cmdErr = a.Export(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			a.report(cmdErr)
		}
	}
}
