package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it;
// tests provide a stub.
type execIface interface {
	isAuthenticated() bool
	Navigate(ctx context.Context, path string) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Reload(ctx context.Context) error
	DeletePost(ctx context.Context, id string) error
	DeleteComment(ctx context.Context, id string) error
}

// runREPL reads commands from in until EOF, "exit" or "quit".
//
//	help              show available commands
//	open <path>       go to any client path, e.g. /post/3
//	home              list posts
//	post <id>         show a post and its comments
//	editor [id]       write a new post or edit post <id>
//	delete <id>       delete a post
//	uncomment <id>    delete a comment
//	user              show the profile
//	login | logout | register
//	whoami            show the stored credential
//	reload            fetch the profile again
//
// View commands are navigations and pass through the guard. Command errors
// are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("blog %s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isAuthenticated() {
				printlnFn("Available commands: home, post <id>, editor [id], delete <id>, uncomment <id>, user, open <path>, whoami, reload, logout, exit")
			} else {
				printlnFn("Available commands: home, post <id>, open <path>, login, register, exit")
			}

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			report(a.Navigate(ctx, args[0]))

		case "home":
			report(a.Navigate(ctx, "/"))

		case "post":
			if len(args) == 0 {
				printlnFn("Usage: post <id>")
				continue
			}
			report(a.Navigate(ctx, "/post/"+args[0]))

		case "editor":
			path := "/editor"
			if len(args) > 0 {
				path += "/" + args[0]
			}
			report(a.Navigate(ctx, path))

		case "user":
			report(a.Navigate(ctx, "/user"))

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			report(a.DeletePost(ctx, args[0]))

		case "uncomment":
			if len(args) == 0 {
				printlnFn("Usage: uncomment <id>")
				continue
			}
			report(a.DeleteComment(ctx, args[0]))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "register":
			report(a.Register(ctx))

		case "whoami":
			report(a.WhoAmI(ctx))

		case "reload":
			report(a.Reload(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
