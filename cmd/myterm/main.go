// Command myterm runs a shell inside a PTY and drives a headless terminal
// core over it, printing VT screen updates to stdout in raw mode.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/yuvalk/myterm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		shell        string
		scrollback   int
		writeTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "myterm",
		Short: "Run a shell inside an embedded terminal core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), shell, scrollback, writeTimeout)
		},
	}

	cmd.Flags().StringVar(&shell, "shell", defaultShell(), "shell to run")
	cmd.Flags().IntVar(&scrollback, "scrollback", 10000, "scrollback line limit")
	cmd.Flags().DurationVar(&writeTimeout, "write-timeout", 5*time.Second, "PTY write timeout")

	return cmd
}

func defaultShell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}

func run(ctx context.Context, shell string, scrollback int, writeTimeout time.Duration) error {
	stdinFd := int(os.Stdin.Fd())

	rows, cols := 24, 80
	if w, h, err := term.GetSize(stdinFd); err == nil {
		rows, cols = h, w
	}

	screen := myterm.New(rows, cols, myterm.WithScrollback(scrollback))

	pt, err := myterm.NewPTY(shell, nil, rows, cols, myterm.WithTrueColor())
	if err != nil {
		return err
	}
	defer pt.Close()

	go func() { _ = pt.Wait() }()

	state, err := term.MakeRaw(stdinFd)
	if err != nil {
		return err
	}
	defer term.Restore(stdinFd, state)

	engine := myterm.NewEngine(pt, screen, writeTimeout)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go pumpStdin(ctx, engine, os.Stdin)
	go watchResize(ctx, engine, stdinFd)
	go renderLoop(ctx, screen, os.Stdout)

	return engine.Run(ctx)
}

// pumpStdin reads raw bytes typed by the user and forwards each as a
// plain character key; a host embedding richer key events (e.g. from a
// GUI toolkit) would call Engine.SubmitKey directly instead.
func pumpStdin(ctx context.Context, engine *myterm.Engine, in *os.File) {
	buf := make([]byte, 256)
	for {
		n, err := in.Read(buf)
		for _, b := range buf[:n] {
			engine.SubmitKey(myterm.CharKey(rune(b)))
		}
		if err != nil {
			engine.SubmitClose()
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// watchResize listens for SIGWINCH and forwards the host terminal's new
// size to the engine. TIOCGWINSZ reports both the character-cell grid and
// the pixel dimensions of the window, so this derives a per-cell pixel
// size and goes through Engine.SubmitResize's pixel-based signature the
// same way a GUI host driven by mouse/font metrics would.
func watchResize(ctx context.Context, engine *myterm.Engine, stdinFd int) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGWINCH)
	defer signal.Stop(sigCh)

	deliver := func() {
		ws, err := unix.IoctlGetWinsize(stdinFd, unix.TIOCGWINSZ)
		if err != nil || ws.Col == 0 || ws.Row == 0 {
			return
		}
		widthPx, heightPx := int(ws.Xpixel), int(ws.Ypixel)
		cellW, cellH := widthPx/int(ws.Col), heightPx/int(ws.Row)
		if widthPx == 0 || heightPx == 0 || cellW == 0 || cellH == 0 {
			// No pixel geometry reported (common over a plain pty); fall
			// back to treating each reported cell as a 1x1 "pixel" so the
			// rows/cols math in SubmitResize reduces to the raw cell count.
			engine.SubmitResize(int(ws.Col), int(ws.Row), 1, 1)
			return
		}
		engine.SubmitResize(widthPx, heightPx, cellW, cellH)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigCh:
			deliver()
		}
	}
}

// renderLoop polls the screen for dirty cells and rewrites the whole
// viewport to out on each pass. A real GUI host would instead diff
// DirtyCells and blit only changed glyphs.
func renderLoop(ctx context.Context, screen *myterm.Screen, out *os.File) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !screen.HasDirty() {
				continue
			}
			fmt.Fprint(out, "\x1b[H\x1b[2J")
			rows, cols := screen.Dimensions()
			for row := 0; row < rows; row++ {
				for col := 0; col < cols; col++ {
					cell := screen.Cell(row, col)
					fmt.Fprint(out, string(cell.Char))
				}
				fmt.Fprint(out, "\r\n")
			}
			screen.ClearDirty()
		}
	}
}
