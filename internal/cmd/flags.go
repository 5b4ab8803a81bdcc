// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
	"slices"

	"github.com/aibor/qus/internal/arch"
	"github.com/aibor/qus/internal/binfmt"
	"github.com/aibor/qus/internal/build"
	"github.com/aibor/qus/internal/docker"
	"github.com/aibor/qus/internal/dockerfile"
	"github.com/aibor/qus/internal/image"
)

const (
	name = "qus"

	repoDefault       = "aptman/qus"
	sourceDefault     = "debian"
	binDirDefault     = "./bin-static"
	contextDirDefault = "."

	usageMessage = `Usage of 'qus':
    qus [flags...] action [arch...]

Actions:
    resolve   print the name of each given architecture (default: host)
    list      print all known architectures
    register  register the QEMU interpreter for each given architecture
    pkg       build the pkg image for each given architecture (default: host)
    images    build register and final images for each given architecture
    build     build pkg, register and final images (default: host)
    status    show binfmt_misc state for each given architecture (default: all)

Architectures may be given by canonical name or alias, like "amd64" or
"x86_64".

All qus flags can also be provided via environment variable QUS_ARGS or via
file ./.qus-args, with one argument per line.
`
)

// Known actions.
const (
	actionResolve  = "resolve"
	actionList     = "list"
	actionRegister = "register"
	actionPkg      = "pkg"
	actionImages   = "images"
	actionBuild    = "build"
	actionStatus   = "status"
)

var actions = []string{
	actionResolve,
	actionList,
	actionRegister,
	actionPkg,
	actionImages,
	actionBuild,
	actionStatus,
}

type flags struct {
	flagSet *flag.FlagSet

	ConfigPath    string
	Strict        bool
	Scheme        arch.Scheme
	Repo          string
	Source        image.Source
	QEMUVersion   string
	BinDir        string
	ContextDir    string
	TemplateDir   string
	DockerBin     string
	RegisterImage string
	BinfmtConfURL string
	BinfmtPath    string
	DryRun        bool
	Debug         bool
	Version       bool

	Action string
	Archs  []string
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		Scheme:        arch.SchemeCanonical,
		Repo:          repoDefault,
		Source:        image.Source{Name: sourceDefault},
		BinDir:        binDirDefault,
		ContextDir:    contextDirDefault,
		DockerBin:     docker.DefaultExecutable,
		RegisterImage: build.DefaultRegisterImage,
		BinfmtConfURL: dockerfile.DefaultBinfmtConfURL,
		BinfmtPath:    binfmt.DefaultPath,
	}

	flags.initFlagset(output)

	return flags
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := newFlags(output)

	err := flags.ParseArgs(args[1:])
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.Version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	positionalArgs := f.flagSet.Args()

	if len(positionalArgs) < 1 {
		return f.fail("no action given", nil)
	}

	f.Action = positionalArgs[0]
	if !slices.Contains(actions, f.Action) {
		return f.fail("action "+f.Action, ErrUnknownAction)
	}

	f.Archs = positionalArgs[1:]

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.StringVar(
		&f.ConfigPath,
		"config",
		f.ConfigPath,
		"architecture config file (default config.yml next to the "+
			"executable, built-in config if not present)",
	)

	flagSet.BoolVar(
		&f.Strict,
		"strict",
		f.Strict,
		"fail if aliases in the config resolve ambiguously",
	)

	flagSet.TextVar(
		&f.Scheme,
		"scheme",
		f.Scheme,
		"naming scheme for resolve output: canonical, qemu, docker",
	)

	flagSet.StringVar(
		&f.Repo,
		"repo",
		f.Repo,
		"image repository",
	)

	flagSet.Var(
		&f.Source,
		"source",
		"source of the QEMU binaries as name or name=tag (default "+
			sourceDefault+")",
	)

	flagSet.StringVar(
		&f.QEMUVersion,
		"qemu-version",
		f.QEMUVersion,
		"QEMU version used in image tags",
	)

	flagSet.StringVar(
		&f.BinDir,
		"bin-dir",
		f.BinDir,
		"directory with the static QEMU binaries",
	)

	flagSet.StringVar(
		&f.ContextDir,
		"context",
		f.ContextDir,
		"build context of the register image, containing register.sh",
	)

	flagSet.StringVar(
		&f.TemplateDir,
		"templates",
		f.TemplateDir,
		"directory with Dockerfile templates replacing the built-in ones",
	)

	flagSet.StringVar(
		&f.DockerBin,
		"docker-bin",
		f.DockerBin,
		"docker CLI to use",
	)

	flagSet.StringVar(
		&f.RegisterImage,
		"register-image",
		f.RegisterImage,
		"image used for registering interpreters",
	)

	flagSet.StringVar(
		&f.BinfmtConfURL,
		"binfmt-conf-url",
		f.BinfmtConfURL,
		"location of qemu-binfmt-conf.sh added to register images",
	)

	flagSet.StringVar(
		&f.BinfmtPath,
		"binfmt-path",
		f.BinfmtPath,
		"mount point of binfmt_misc",
	)

	flagSet.BoolVar(
		&f.DryRun,
		"dry-run",
		f.DryRun,
		"print docker commands instead of running them",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
