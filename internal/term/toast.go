// Copyright (c) 2026 Hiraku. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package term is the terminal presentation layer.

It implements the notification sink consumed by the controllers and renders
the profile view. All output is plain text on one writer; no state is kept
beyond the writer itself.
*/
package term

import (
	"fmt"
	"io"
	"sync"
)

// Toaster renders notifications as single terminal lines. It implements the
// [auth.Notifier] contract.
type Toaster struct {
	mu  sync.Mutex
	out io.Writer
}

// NewToaster constructs a [Toaster] writing to out.
func NewToaster(out io.Writer) *Toaster {
	return &Toaster{out: out}
}

// Success renders a success-kind notification.
func (toaster *Toaster) Success(title, message string) {
	toaster.mu.Lock()
	defer toaster.mu.Unlock()
	fmt.Fprintf(toaster.out, "\n  [ok] %s %s\n\n", title, message)
}

// Error renders an error-kind notification.
func (toaster *Toaster) Error(title, message string) {
	toaster.mu.Lock()
	defer toaster.mu.Unlock()
	fmt.Fprintf(toaster.out, "\n  [error] %s %s\n\n", title, message)
}
