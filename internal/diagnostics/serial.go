package diagnostics

import (
	"strings"

	"golang.design/x/clipboard"
)

// FormatSerialLog renders the accumulated SC=0x81 serial bytes as
// text, stripping trailing NUL padding some test ROMs leave at the
// end of their transcript. This is pure and exercised directly by
// tests; only CopySerial below touches the display server.
func FormatSerialLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00")
}

// CopySerial copies the accumulated serial-output log to the system
// clipboard, the same role the teacher's utils.CopyImage plays for a
// screenshot: clipboard.Init is only invoked here, never from
// FormatSerialLog, so headless test runs never touch the display
// server.
func CopySerial(log []byte) error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(FormatSerialLog(log)))
	return nil
}
