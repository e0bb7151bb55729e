// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yeetrun/tonbi/pkg/cli"
)

var errNegativeLines = errors.New("lines must not be negative")

type head struct {
	Lines  int    `flag:"lines" short:"n" help:"Number of lines to print"`
	Number bool   `short:"N" help:"Prefix each line with its number"`
	File   string `pos:"0" help:"File to read"`

	out io.Writer
}

func (*head) Description() string { return "Print the first lines of a file" }
func (*head) Version() string     { return "1.0.0" }

func (h *head) Run() error {
	if h.Lines < 0 {
		return errNegativeLines
	}
	f, err := os.Open(h.File)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for n := 1; n <= h.Lines && sc.Scan(); n++ {
		line := sc.Text()
		if h.Number {
			line = fmt.Sprintf("%6d  %s", n, line)
		}
		if _, err := fmt.Fprintln(h.out, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func main() {
	cli.MainRunnable("head", &head{Lines: 10, out: os.Stdout})
}
