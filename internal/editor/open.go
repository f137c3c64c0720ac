// Package editor opens a match target in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Editor is the command used to open files.
type Editor string

// gotoEditors accept a single --goto file:line:column argument.
var gotoEditors = map[Editor]bool{
	"code":     true,
	"cursor":   true,
	"codium":   true,
	"windsurf": true,
}

// detectOrder fixes the PATH probe order.
var detectOrder = []Editor{"code", "cursor", "codium", "windsurf"}

// Detect picks an editor: explicit config value first, then $EDITOR,
// then the first goto-capable editor on PATH.
func Detect(configured string) (Editor, error) {
	if configured != "" {
		return Editor(configured), nil
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return Editor(env), nil
	}
	for _, ed := range detectOrder {
		if _, err := exec.LookPath(string(ed)); err == nil {
			return ed, nil
		}
	}
	return "", fmt.Errorf("no editor found (set ui.editor or $EDITOR)")
}

// Open launches the editor on file at line and column without waiting
// for it to exit. Goto-capable editors get file:line:column; everything
// else gets the vi-style +line argument.
func Open(ed Editor, file string, line, column int) error {
	var cmd *exec.Cmd
	if gotoEditors[ed] {
		cmd = exec.Command(string(ed), "--goto", fmt.Sprintf("%s:%d:%d", file, line, column))
	} else {
		cmd = exec.Command(string(ed), fmt.Sprintf("+%d", line), file)
	}
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}
