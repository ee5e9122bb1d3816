package configloader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/gobasic/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// ErrConfigExists is returned when the target file exists and overwriting
// was neither forced nor confirmed.
var ErrConfigExists = errors.New("configuration file already exists")

// WriteOptions controls WriteConfig.
type WriteOptions struct {
	// Path is the file to create.
	Path string

	// Force overwrites an existing file without asking.
	Force bool

	// NonInteractive disables the overwrite prompt (e.g., in CI).
	NonInteractive bool

	// In and Out carry the prompt. They default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

// WriteConfig writes the starter configuration. A .toml path gets the
// defaults encoded as TOML; anything else gets the commented YAML template.
// When the file exists and a terminal is attached, the user is asked before
// it is replaced.
func WriteConfig(opts WriteOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	_, err := os.Stat(opts.Path)
	switch {
	case err == nil && !opts.Force:
		if opts.NonInteractive || !isInteractive(opts.In) {
			return fmt.Errorf("%s: %w; use --force to overwrite", opts.Path, ErrConfigExists)
		}
		ok, err := confirm(opts.In, opts.Out, fmt.Sprintf("%s exists. Overwrite? [y/N] ", opts.Path))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: %w", opts.Path, ErrConfigExists)
		}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", opts.Path, err)
	}

	content := config.Template()
	if IsTOMLConfig(opts.Path) {
		content, err = config.NewConfig().ToTOML()
		if err != nil {
			return err
		}
		content = append([]byte("# gobasic configuration\n\n"), content...)
	}

	if err := os.WriteFile(opts.Path, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := io.WriteString(out, prompt); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read response: %w", err)
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// isInteractive returns true if in is a terminal.
func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
