// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	if err := os.WriteFile(src, []byte("hello\n"), 0o640); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old contents that are longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}
	same, err := Identical(src, dst)
	if err != nil {
		t.Fatalf("Identical() error = %v", err)
	}
	if !same {
		t.Error("Identical() = false after copy")
	}
	if _, err := os.Stat(dst + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temporary file left behind: %v", err)
	}
}

func TestCopyFileErrors(t *testing.T) {
	dir := t.TempDir()
	if err := CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "out")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("CopyFile(missing) error = %v, want ErrNotExist", err)
	}
	if err := CopyFile(dir, filepath.Join(dir, "out")); err == nil {
		t.Error("CopyFile(dir) error = nil, want error")
	}
	if _, err := os.Stat(filepath.Join(dir, "out")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("destination created on failure: %v", err)
	}
}

func TestIdentical(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	if err := os.WriteFile(a, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}
	if same, err := Identical(a, b); err != nil || same {
		t.Errorf("Identical(a, b) = %v, %v; want false, nil", same, err)
	}
	if same, err := Identical(a, filepath.Join(dir, "missing")); err != nil || same {
		t.Errorf("Identical(a, missing) = %v, %v; want false, nil", same, err)
	}
}
