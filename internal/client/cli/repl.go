package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	SetField(ctx context.Context, field, value string) error
	SetContentType(ctx context.Context, value string) error
	SetSticker(ctx context.Context, id string) error
	ListStickers(ctx context.Context) error
	Show(ctx context.Context) error
	Preview(ctx context.Context) error
	Download(ctx context.Context, path string) error
	UploadDocument(ctx context.Context, path string) error
	UploadLogo(ctx context.Context, path string) error
}

const helpText = `Commands:
  type <url|text|email|document|review|phone>   switch content type
  set <field> <value>                           edit the form
      fields: content, color, background, size, margin, format, ec, body, eye
  sticker <id|none>        select a decorative sticker
  stickers                 list the sticker catalog
  logo <file|none>         upload an image as logo
  upload <file>            upload a document and encode its URL
  show                     print form, state and preview path
  preview                  regenerate the preview right now
  download [path]          save the QR in the target format
  register, login, logout, whoami, forgot, reset
  exit | quit`

// runREPL starts a read-eval-print loop for the QR Studio CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("QR Studio CLI (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("qr (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)
			if !a.isLoggedIn() {
				printlnFn("Not logged in: uploads and downloads still work, accounts are optional.")
			}

		case "type":
			if len(args) != 1 {
				printlnFn("Usage: type <url|text|email|document|review|phone>")
				continue
			}
			if err := a.SetContentType(ctx, args[0]); err != nil {
				printlnFn(err.Error())
			}

		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set <field> <value>")
				continue
			}
			// content values may contain spaces
			if err := a.SetField(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
				printlnFn(err.Error())
			}

		case "sticker":
			if len(args) != 1 {
				printlnFn("Usage: sticker <id|none>")
				continue
			}
			if err := a.SetSticker(ctx, args[0]); err != nil {
				printlnFn(err.Error())
			}

		case "stickers":
			_ = a.ListStickers(ctx)

		case "logo":
			if len(args) != 1 {
				printlnFn("Usage: logo <file|none>")
				continue
			}
			_ = a.UploadLogo(ctx, args[0])

		case "upload":
			if len(args) != 1 {
				printlnFn("Usage: upload <file>")
				continue
			}
			_ = a.UploadDocument(ctx, args[0])

		case "show":
			_ = a.Show(ctx)

		case "preview":
			_ = a.Preview(ctx)

		case "download":
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			_ = a.Download(ctx, path)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
