// This file is part of padnotes.
//
// padnotes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padnotes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padnotes.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/padnotes/padnotes/annotate"
	"github.com/padnotes/padnotes/batch"
	"github.com/padnotes/padnotes/container"
	"github.com/padnotes/padnotes/digest"
	"github.com/padnotes/padnotes/export"
	"github.com/padnotes/padnotes/logger"
	"github.com/padnotes/padnotes/modalflag"
	"github.com/padnotes/padnotes/paths"
	"github.com/padnotes/padnotes/prefs"
	"github.com/padnotes/padnotes/statsview"
	"github.com/padnotes/padnotes/version"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitError = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch decides on the mode from the arguments and runs it. the returned
// value should be used with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("ANNOTATE", "LIST", "EXPORT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "ANNOTATE":
		p, err = annotateMode(ctx, md)
	case "LIST":
		p, err = listMode(md)
	case "EXPORT":
		p, err = exportMode(md)
	case "VERSION":
		p, err = versionMode(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		if p == modalflag.ParseError {
			return exitParse
		}
		return exitError
	}

	return exitOK
}

// the result of annotating a single replay file
type annotated struct {
	res     annotate.Result
	before  string
	after   string
	written bool
}

func annotateMode(ctx context.Context, md *modalflag.Modes) (modalflag.ParseResult, error) {
	md.NewMode()

	filter := md.AddString("filter", "", "prefix of the participant's display name")
	button := md.AddString("button", "", "trigger button (eg. DPADDOWN, A, START)")
	clip := md.AddInt("clip", 0, "number of frames before the press covered by the note")
	message := md.AddString("message", "", "text of the inserted notes")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this session: \"key::value; ...\"")
	savePrefs := md.AddBool("saveprefs", false, "save the preferences in effect to disk")
	dryrun := md.AddBool("dryrun", false, "do not write the replay file")
	parallel := md.AddInt("parallel", 4, "number of replay files to process at once")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	md.AdditionalHelp("replay files can be given as glob patterns (eg. replays/**/*.pnrp)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return p, err
	}

	if len(md.RemainingArgs()) == 0 {
		return modalflag.ParseError, fmt.Errorf("replay file required for %s mode", md)
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}
	logger.Log(logger.Allow, "padnotes", version.Version().String())

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "* statsview not available in this build")
		}
	}

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
	}

	pref, err := annotate.NewPreferences()
	if prefs.SizeCommandLineStack() > 0 {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "padnotes", "unused preferences: %s", unused)
		}
	}
	if err != nil {
		return modalflag.ParseContinue, err
	}

	// flags take priority over preferences
	var flagErr error
	md.Visit(func(flag string) {
		if flagErr != nil {
			return
		}
		switch flag {
		case "filter":
			flagErr = pref.Filter.Set(*filter)
		case "button":
			flagErr = pref.Button.Set(*button)
		case "clip":
			flagErr = pref.Clip.Set(*clip)
		case "message":
			flagErr = pref.Message.Set(*message)
		}
	})
	if flagErr != nil {
		return modalflag.ParseError, flagErr
	}

	cfg := pref.Config()
	if err := cfg.Validate(); err != nil {
		return modalflag.ParseError, err
	}

	if *savePrefs {
		if err := pref.Save(); err != nil {
			return modalflag.ParseContinue, err
		}
	}

	files, err := batch.Expand(md.RemainingArgs())
	if err != nil {
		return modalflag.ParseContinue, err
	}

	outcomes, err := batch.Run(ctx, files, *parallel, func(_ context.Context, file string) (annotated, error) {
		return annotateFile(file, cfg, *dryrun)
	})

	var failed int
	for _, o := range outcomes {
		if len(outcomes) > 1 {
			fmt.Fprintf(md.Output, "%s\n", o.File)
		}
		if o.Err != nil {
			fmt.Fprintf(md.Output, "* error: %v\n", o.Err)
			failed++
			continue
		}

		fmt.Fprintf(md.Output, "Added %d notes to your replay\n", o.Result.res.Added)
		if o.Result.res.Skipped > 0 {
			fmt.Fprintf(md.Output, "Skipped %d already existing notes\n", o.Result.res.Skipped)
		}
		if *dryrun && o.Result.res.Added > 0 {
			fmt.Fprintln(md.Output, "Replay not written (dry run)")
		}
		logger.Logf(logger.Allow, "padnotes", "%s: digest %s -> %s (written: %v)", o.File, o.Result.before, o.Result.after, o.Result.written)
	}

	if err != nil {
		return modalflag.ParseContinue, err
	}
	if failed > 0 {
		return modalflag.ParseContinue, fmt.Errorf("%d of %d replay files failed", failed, len(outcomes))
	}

	return modalflag.ParseContinue, nil
}

// annotateFile runs the annotation pipeline on a single replay file. the file
// is only written if notes were added
func annotateFile(file string, cfg annotate.Config, dryrun bool) (annotated, error) {
	var a annotated

	f, err := container.Load(file)
	if err != nil {
		return a, err
	}

	a.before, err = digest.Hash(f.Notes)
	if err != nil {
		return a, err
	}

	a.res, err = annotate.Run(f.Recording, f.Notes, cfg)
	if err != nil {
		return a, err
	}

	a.after, err = digest.Hash(f.Notes)
	if err != nil {
		return a, err
	}

	if a.res.Added == 0 || dryrun {
		return a, nil
	}

	if err := container.WriteNotes(file, f.Notes); err != nil {
		return a, err
	}
	a.written = true

	return a, nil
}

func listMode(md *modalflag.Modes) (modalflag.ParseResult, error) {
	md.NewMode()

	mv := md.AddString("memviz", "", "write a graphviz dump of the note store to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return p, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return modalflag.ParseError, fmt.Errorf("replay file required for %s mode", md)
	case 1:
	default:
		return modalflag.ParseError, fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := container.Load(md.GetArg(0))
	if err != nil {
		return modalflag.ParseContinue, err
	}

	fmt.Fprintf(md.Output, "%s (%s)\n", f.Path, f.Variant)

	fmt.Fprintln(md.Output, "participants:")
	for port := range f.Recording.Names {
		frames := f.Recording.Frames[port]
		if frames == nil {
			fmt.Fprintf(md.Output, "  %d: unused\n", port)
			continue
		}
		fmt.Fprintf(md.Output, "  %d: %q (%d frames)\n", port, annotate.DecodeName(f.Recording.Names[port]), len(frames))
	}

	fmt.Fprintf(md.Output, "text notes: %d\n", f.Notes.NumText())
	for i := range f.Notes.NumText() {
		n := f.Notes.Text(i)
		fmt.Fprintf(md.Output, "  %d: %d-%d %s\n", i, n.Start, n.End(), n.Text)
	}
	fmt.Fprintf(md.Output, "image notes: %d\n", f.Notes.NumImage())

	hash, err := digest.Hash(f.Notes)
	if err != nil {
		return modalflag.ParseContinue, err
	}
	fmt.Fprintf(md.Output, "digest: %s\n", hash)

	if *mv != "" {
		w, err := os.Create(*mv)
		if err != nil {
			return modalflag.ParseContinue, err
		}
		memviz.Map(w, f.Notes)
		if err := w.Close(); err != nil {
			return modalflag.ParseContinue, err
		}
	}

	return modalflag.ParseContinue, nil
}

func exportMode(md *modalflag.Modes) (modalflag.ParseResult, error) {
	md.NewMode()

	format := md.AddString("format", string(export.FormatJSON), "export format: JSON, XLSX")
	out := md.AddString("out", "", "output file (default is a unique filename in the working directory)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return p, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return modalflag.ParseError, fmt.Errorf("replay file required for %s mode", md)
	case 1:
	default:
		return modalflag.ParseError, fmt.Errorf("too many arguments for %s mode", md)
	}

	fm, err := export.ParseFormat(*format)
	if err != nil {
		return modalflag.ParseError, err
	}

	replayFile := md.GetArg(0)
	f, err := container.Load(replayFile)
	if err != nil {
		return modalflag.ParseContinue, err
	}

	fn := *out
	if fn == "" {
		fn = paths.UniqueFilename("notes", replayFile, strings.ToLower(string(fm)))
	}

	switch fm {
	case export.FormatJSON:
		w, err := os.Create(fn)
		if err != nil {
			return modalflag.ParseContinue, err
		}
		err = export.JSON(w, replayFile, f.Notes)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return modalflag.ParseContinue, err
		}
	case export.FormatXLSX:
		if err := export.XLSX(fn, f.Notes); err != nil {
			return modalflag.ParseContinue, err
		}
	}

	fmt.Fprintf(md.Output, "exported %d notes to %s\n", f.Notes.NumText(), fn)

	return modalflag.ParseContinue, nil
}

func versionMode(md *modalflag.Modes) (modalflag.ParseResult, error) {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return p, err
	}

	inf := version.Version()
	if *revision {
		fmt.Fprintln(md.Output, inf)
	} else {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, inf.Version)
	}

	return modalflag.ParseContinue, nil
}
