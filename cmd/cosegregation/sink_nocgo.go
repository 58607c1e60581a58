//go:build !cgo
// +build !cgo

package main

import "fmt"

func OpenSink(path string) (Sink, error) {
	return nil, fmt.Errorf("cannot write %s: this binary was built without cgo, which SQLite output requires", path)
}
