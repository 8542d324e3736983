package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// statusPrinter writes progress lines to stderr, styled with pterm when the
// stream is a terminal and as plain text otherwise.
type statusPrinter struct {
	w       io.Writer
	styled  bool
	info    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
}

func newStatus(w io.Writer) *statusPrinter {
	return &statusPrinter{
		w:       w,
		styled:  isTerminalWriter(w),
		info:    pterm.Info.WithWriter(w),
		success: pterm.Success.WithWriter(w),
	}
}

func (s *statusPrinter) Info(msg string) {
	if s.styled {
		s.info.Println(msg)
		return
	}
	fmt.Fprintln(s.w, msg)
}

func (s *statusPrinter) Success(msg string) {
	if s.styled {
		s.success.Println(msg)
		return
	}
	fmt.Fprintln(s.w, msg)
}
