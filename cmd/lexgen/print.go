package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	successStyle = color.New(color.FgGreen)
	acceptStyle  = color.New(color.FgGreen, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	bannerStyle  = color.New(color.FgBlue, color.Bold)
)

const banner = `
 _
| | _____  ____ _  ___ _ __
| |/ _ \ \/ / _' |/ _ \ '_ \
| |  __/>  < (_| |  __/ | | |
|_|\___/_/\_\__, |\___|_| |_|
            |___/
`

func printBanner(w io.Writer) {
	fmt.Fprintln(w, bannerStyle.Sprint(banner))
}
