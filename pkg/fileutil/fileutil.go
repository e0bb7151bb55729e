// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// CopyFile copies a file from src to dst, keeping src's mode. It writes to a
// temporary file next to dst and renames it into place, so a reader of dst
// never sees a partial copy.
func CopyFile(src, dst string) (err error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcStat, err := srcFile.Stat()
	if err != nil {
		return err
	}
	if srcStat.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	tempDst := dst + ".tmp"
	dstFile, err := os.OpenFile(tempDst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcStat.Mode())
	if err != nil {
		return err
	}
	defer func() {
		dstFile.Close()
		if err == nil {
			err = os.Rename(tempDst, dst)
		}
		if err != nil {
			os.Remove(tempDst)
		}
	}()

	if _, err = io.Copy(dstFile, srcFile); err != nil {
		return err
	}
	return dstFile.Sync()
}

// Identical reports whether the contents of two files are identical.
func Identical(file1, file2 string) (bool, error) {
	f1, err := os.Open(file1)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open file1: %w", err)
	}
	defer f1.Close()

	f2, err := os.Open(file2)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open file2: %w", err)
	}
	defer f2.Close()

	hasher1 := sha256.New()
	hasher2 := sha256.New()
	if _, err := io.Copy(hasher1, f1); err != nil {
		return false, fmt.Errorf("failed to hash file1: %v", err)
	}
	if _, err := io.Copy(hasher2, f2); err != nil {
		return false, fmt.Errorf("failed to hash file2: %v", err)
	}

	return bytes.Equal(hasher1.Sum(nil), hasher2.Sum(nil)), nil
}
