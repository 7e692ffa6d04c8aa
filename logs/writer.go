package logs

import (
	"io"
	"os"
	"testing"

	"github.com/reusee/gaji/modes"
)

type Writer io.Writer

func (Module) Writer(
	mode modes.Mode,
	t *testing.T,
) Writer {
	if mode == modes.ModeDevelopment && t != nil {
		return t.Output()
	}
	return os.Stderr
}
