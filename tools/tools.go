// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build tools

// Package tools pins the versions of the developer tools used on this module
// through go.mod. Install them with:
// $ go generate -tags tools tools/tools.go
package tools

// NOTE: keep the directive unindented and apart from the import block so
// goimports leaves it alone.
//go:generate go install mvdan.cc/gofumpt

import (
	_ "mvdan.cc/gofumpt"
)
