// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for binary formats.
//
// [Hex] turns an annotated hex fixture into bytes, so tests can lay a
// wire encoding out field by field with a comment per field.
// [RequireBytes] compares byte slices and reports the first differing
// offset with surrounding context rather than two opaque dumps.
// [WriteFile] places fixture data in a per-test temporary directory.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no dependencies on other packages in this module.
package testutil
