// reversi-term is a terminal application to play Reversi with two players at one keyboard.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reversi-term/config"
	"reversi-term/engine"
	"reversi-term/input"
	"reversi-term/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagPlain      = flag.Bool("plain", false, "Play in line mode on stdin/stdout instead of the full screen board")
	flagCandidates = flag.Bool("candidates", false, "Mark empty cells next to a disc")
	flagInitConfig = flag.Bool("init-config", false, "Write the current configuration to the config directory and exit")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	header := "Environment variables:"
	flag.Usage = cleanenv.FUsage(flag.CommandLine.Output(), &config.Config{}, &header, flag.Usage)
	flag.Parse()

	if *flagVersion {
		fmt.Printf("reversi-term %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *flagCandidates {
		cfg.Theme.ShowCandidates = true
	}

	if *flagInitConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save config: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	closeLog := initLogger(cfg)
	defer closeLog()

	if *flagPlain {
		if err := runPlain(); err != nil {
			log.Error().Err(err).Msg("line mode stopped")
			fmt.Fprintln(os.Stderr, err)
			closeLog()
			os.Exit(1)
		}
		return
	}

	if err := runBoard(); err != nil {
		log.Error().Err(err).Msg("application stopped")
		closeLog()
		panic(err)
	}
}

// initLogger sends the global logger to a file in the cache directory, since
// the terminal belongs to the game.
func initLogger(c *config.Config) func() {
	zerolog.SetGlobalLevel(c.LogLevel())
	if c.Log.File == "" || c.LogLevel() == zerolog.Disabled {
		log.Logger = zerolog.Nop()
		return func() {}
	}

	path, err := c.LogPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %s\n", err)
		log.Logger = zerolog.Nop()
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %s\n", err)
		log.Logger = zerolog.Nop()
		return func() {}
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }
}

// runPlain plays one game in line mode.
func runPlain() error {
	sess, err := engine.NewSession(engine.DefaultConfig(), log.Logger)
	if err != nil {
		return err
	}
	src := input.NewLineSource(os.Stdin, os.Stdout)
	r := ui.NewTextRenderer(os.Stdout, cfg.Theme)
	if err := engine.Run(sess, src, r); err != nil {
		return err
	}
	io.WriteString(os.Stdout, "\n")
	return nil
}

// runBoard plays in the full screen board view until the user quits.
func runBoard() error {
	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● reversi ○ ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardUI(cfg, gameHint)

	gameFrame := ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			gameBoard.PlayMove()
		case tcell.KeyEsc:
			gameBoard.ResetSelection()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case ' ':
				gameBoard.PlayMove()
			case 'u':
				gameBoard.ResetSelection()
			case 'p':
				gameBoard.Pass()
			case 'r':
				if !gameBoard.IsFinished() {
					confirmResign()
				}
			case 'n':
				if gameBoard.IsFinished() {
					if err := newGame(); err != nil {
						showError(err)
					}
				}
			case 'q':
				app.Stop()
			}
		}
		return event
	})

	rootPage.AddPage("gameview", gameFrame, true, true)

	if err := newGame(); err != nil {
		return err
	}
	return app.SetRoot(rootPage, true).Run()
}

// newGame starts a fresh game on the board view.
func newGame() error {
	sess, err := engine.NewSession(engine.DefaultConfig(), log.Logger)
	if err != nil {
		return err
	}
	gameBoard.ConnectEngine(sess)
	return nil
}

func confirmResign() {
	modal := tview.NewModal().
		SetText("Resign this game?").
		AddButtons([]string{"Resign", "Cancel"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "Resign" {
				gameBoard.Resign()
			}
			rootPage.RemovePage("resign")
			app.SetFocus(gameBoard.Box)
		})
	rootPage.AddPage("resign", modal, true, true)
}

func showError(err error) {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
			app.SetFocus(gameBoard.Box)
		})
	rootPage.AddPage("error", modal, true, true)
}
