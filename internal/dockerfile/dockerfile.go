// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dockerfile

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

// Template names.
const (
	// Pkg copies the static QEMU binaries into an empty image.
	Pkg Template = "pkg"
	// Register creates the busybox based image with the register script.
	Register Template = "register"
	// Final combines the register image with the binaries of the pkg image.
	Final Template = "final"
)

// Variables used by the built-in templates.
const (
	VarBaseArch      = "base_arch"
	VarBinfmtConfURL = "binfmt_conf_url"
	VarRegisterImage = "register_image"
	VarPkgImage      = "pkg_image"
)

// DefaultBinfmtConfURL is the location of the binfmt configuration script
// that is added to the register image.
const DefaultBinfmtConfURL = "https://raw.githubusercontent.com/umarcor/qemu/" +
	"series-qemu-binfmt-conf/scripts/qemu-binfmt-conf.sh"

var (
	// ErrMissingVariable is returned if a placeholder has no value.
	ErrMissingVariable = errors.New("missing variable")

	// ErrUnknownTemplate is returned if no template of the name exists.
	ErrUnknownTemplate = errors.New("unknown template")
)

//go:embed templates/*.Dockerfile
var builtin embed.FS

// Template is the name of a Dockerfile template.
type Template string

// FileName returns the name of the template file.
func (t Template) FileName() string {
	return string(t) + ".Dockerfile"
}

// Vars are the placeholder values for rendering.
type Vars map[string]string

// Renderer renders Dockerfile templates from a file system.
type Renderer struct {
	fsys fs.FS
}

// New creates a new [Renderer] reading templates from the given file system.
// If it is nil, the built-in templates are used.
func New(fsys fs.FS) *Renderer {
	if fsys == nil {
		fsys, _ = fs.Sub(builtin, "templates")
	}

	return &Renderer{fsys: fsys}
}

// Render renders the named template with the given variables.
func (r *Renderer) Render(tpl Template, vars Vars) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, tpl.FileName())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, tpl)
		}

		return nil, fmt.Errorf("read template %s: %w", tpl, err)
	}

	t, err := fasttemplate.NewTemplate(string(content), startTag, endTag)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", tpl, err)
	}

	rendered, err := t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		name := strings.TrimSpace(tag)

		value, exists := vars[name]
		if !exists {
			return 0, fmt.Errorf("%w: %s", ErrMissingVariable, name)
		}

		return w.Write([]byte(value))
	})
	if err != nil {
		return nil, fmt.Errorf("render template %s: %w", tpl, err)
	}

	return []byte(rendered), nil
}
