package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"pokerdemo/internal/config"
	"pokerdemo/pkg/demo"
)

const clearScreen = "\033[H\033[2J"

var dump = flag.Bool("dump", false, "dump every view to the debug log")

var dumpOptions = litter.Options{
	Compact:           true,
	StripPackageNames: true,
	HidePrivateFields: true,
}

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	session, err := demo.NewSession(logrus.StandardLogger(), demo.Options{
		PlayerNames: cfg.Players,
		HoleCards:   cfg.HoleCards,
		Seed:        cfg.Seed,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create session")
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		logrus.Fatal("stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		logrus.WithError(err).Fatal("could not enter raw mode")
	}

	err = run(os.Stdin, os.Stdout, session)
	_ = term.Restore(fd, state)

	if err != nil {
		logrus.WithError(err).Fatal("demo exited")
	}
}

// readKeys forwards every read from in until it fails or done is closed
func readKeys(in io.Reader, done <-chan struct{}) (<-chan []byte, <-chan error) {
	chunks := make(chan []byte)
	errs := make(chan error, 1)

	go func() {
		for {
			buf := make([]byte, 16)
			n, err := in.Read(buf)
			if n > 0 {
				select {
				case chunks <- buf[:n]:
				case <-done:
					return
				}
			}

			if err != nil {
				errs <- err
				return
			}
		}
	}()

	return chunks, errs
}

// run draws the session and applies key presses until the viewer quits or input ends
func run(in io.Reader, out io.Writer, session *demo.Session) error {
	if err := draw(out, session.View()); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)

	chunks, errs := readKeys(in, done)

	var parser keyParser
	var escape <-chan time.Time
	for {
		var cmds []command
		var readErr error

		select {
		case b := <-chunks:
			cmds = parser.Parse(b)
		case <-escape:
			// input that arrived with the timer still completes the sequence
			select {
			case b := <-chunks:
				cmds = parser.Parse(b)
			default:
				cmds = parser.Flush()
			}
		case readErr = <-errs:
			cmds = parser.Flush()
		}

		escape = nil
		if parser.Pending() {
			escape = time.After(escapeTimeout)
		}

		quit, err := apply(out, session, cmds)
		if err != nil || quit {
			return err
		}

		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}

			return readErr
		}
	}
}

// apply runs the commands in order, redrawing after each change
func apply(out io.Writer, session *demo.Session, cmds []command) (bool, error) {
	for _, cmd := range cmds {
		if cmd.quit {
			return true, nil
		}

		changed, err := session.Apply(cmd.action)
		if err != nil {
			return false, err
		}

		if changed {
			if err := draw(out, session.View()); err != nil {
				return false, err
			}
		}
	}

	return false, nil
}

func draw(out io.Writer, v *demo.View) error {
	if *dump {
		logrus.Debug(dumpOptions.Sdump(v))
	}

	s, err := render(v)
	if err != nil {
		return err
	}

	// raw mode does not translate newlines
	_, err = fmt.Fprint(out, clearScreen+strings.ReplaceAll(s, "\n", "\r\n"))
	return err
}

func setupLogger() {
	// the screen belongs to the demo
	logrus.SetOutput(os.Stderr)

	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
