// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qr prints QR codes as text.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	qr "github.com/unixdj/qrsym"
	"github.com/unixdj/qrsym/coding"
	"github.com/unixdj/qrsym/internal/config"
)

var g = struct {
	level   qr.Level    // QR correction level
	mode    qr.Mode     // encoding mode unless auto
	auto    bool        // split into segments automatically
	ver     qr.Version  // QR version, 0 for auto
	border  int         // quiet zone
	format  string      // output format
	charset string      // input charset
	upper   bool        // uppercase
	debug   int         // -d count
	logger  *log.Logger // diagnostics
}{
	logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "qr"}),
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults are read from the configuration file
given with -c.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 1.0.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func debug() { g.debug++ }

var modeNames = []string{"auto", "numeric", "alphanumeric", "byte"}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(opt(debug), 'd', "log encoding details; "+
		"-dd: also per-mask penalties").SetFlag()
	cfgFile := getopt.String('c', "", "YAML configuration file", "file")
	getopt.Flag(&g.upper, 'u', "convert input to uppercase")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "m",
		"error correction level, lowest to highest", "l|m|q|h")
	mode := getopt.Enum('M', modeNames, "auto",
		"encoding mode; auto splits input into segments",
		strings.Join(modeNames, "|"))
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR version, 0 for the lowest that fits", "ver")
	border := getopt.Unsigned('m', 4, &getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: 1 << 10},
		"quiet zone modules", "margin")
	ff := getopt.Enum('t', config.Formats, "",
		`output format, one of: `+strings.Join(config.Formats, ", ")+
			`; types with "i" appended have colours inverted; `+
			`if standard output is a TTY, default is utf8, `+
			`otherwise ascii`, "type")
	cs := getopt.Enum('i', config.Charsets, "utf8",
		"input charset; latin1 and utf16 are converted to UTF-8",
		strings.Join(config.Charsets, "|"))

	getopt.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		g.logger.Fatal(err)
	}
	if getopt.IsSet('l') {
		cfg.Level = *lev
	}
	if getopt.IsSet('M') {
		cfg.Mode = *mode
	}
	if getopt.IsSet('v') {
		cfg.Version = int(*ver)
	}
	if getopt.IsSet('m') {
		cfg.Border = int(*border)
	}
	if getopt.IsSet('t') {
		cfg.Format = *ff
	}
	if getopt.IsSet('i') {
		cfg.Charset = *cs
	}
	switch {
	case g.debug == 1:
		cfg.LogLevel = "info"
	case g.debug > 1:
		cfg.LogLevel = "debug"
	case *cfgFile == "":
		cfg.LogLevel = "warn"
	}
	if err := cfg.Validate(); err != nil {
		g.logger.Fatal(err)
	}
	g.level, _ = cfg.QRLevel()
	g.mode, g.auto, _ = cfg.QRMode()
	g.ver = qr.Version(cfg.Version)
	g.border = cfg.Border
	g.charset = cfg.Charset
	g.format = cfg.Format
	if g.format == "" {
		if isatty.IsTerminal(uintptr(syscall.Stdout)) {
			g.format = "utf8"
		} else {
			g.format = "ascii"
		}
	}
	lvl, _ := cfg.LoggerLevel()
	g.logger.SetLevel(lvl)
}

// decode converts s from the input charset to UTF-8.
func decode(s, charset string) (string, error) {
	switch charset {
	case "latin1":
		return charmap.ISO8859_1.NewDecoder().String(s)
	case "utf16":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).
			NewDecoder().String(s)
	}
	return s, nil
}

// segments returns the segments for s and the version to use.
func segments(s string) ([]coding.Segment, qr.Version, error) {
	if !g.auto {
		return []coding.Segment{{Text: s, Mode: g.mode}}, g.ver, nil
	}
	segs, v, err := qr.Split(s, g.level)
	if g.ver != 0 {
		v = g.ver
	}
	return segs, v, err
}

func main() {
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			g.logger.Fatal(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	s, err := decode(s, g.charset)
	if err != nil {
		g.logger.Fatal("decoding input", "charset", g.charset, "err", err)
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	segs, v, err := segments(s)
	if err != nil {
		g.logger.Fatal(err)
	}
	for _, seg := range segs {
		g.logger.Debug("segment", "mode", seg.Mode, "len", seg.CharLength())
	}
	c, err := qr.EncodeSegments(g.level, v, segs...)
	if err != nil {
		g.logger.Fatal(err)
	}
	g.logger.Info("encoded", "version", c.Version(), "level", c.Level(),
		"mask", c.Mask(), "size", c.Size())
	if g.logger.GetLevel() <= log.DebugLevel {
		if pen, err := qr.Penalties(g.level, c.Version(), segs...); err == nil {
			g.logger.Debug("mask penalties", "penalties", pen)
		}
	}
	if err := write(os.Stdout, c, g.format, g.border); err != nil {
		g.logger.Fatal(err)
	}
}
