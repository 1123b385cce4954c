package crud

import (
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
)

// Logger receives progress events from pipeline runs. A nil Logger disables
// logging.
type Logger interface {
	LogMessage(msg string)
	LogHandlerComplete(success bool, elapsed time.Duration, pos int)
}

type DefaultLogger struct{}

func (l DefaultLogger) LogMessage(msg string) {
	log.Print(msg)
}

func (l DefaultLogger) LogHandlerComplete(success bool, elapsed time.Duration, pos int) {

	// Column 1: Success or failure
	lbl := color.New(color.FgWhite).Add(color.BgGreen).Sprintf(" OK  ")
	if !success {
		lbl = color.New(color.FgWhite).Add(color.BgRed).Sprintf(" ERR ")
	}

	// Column 2: Time elapsed
	tclr := color.New(color.FgWhite, color.Faint)
	if elapsed > time.Millisecond {
		tclr = color.New(color.FgWhite).Add(color.BgCyan)
	}
	t := tclr.Sprintf("%13v", elapsed)

	// Column 3: Pipeline position

	log.Print("|" + lbl + "| " + t + " | " + fmt.Sprintf("handler[%d]", pos))
}
