// Copyright © 2020 The numtheory Authors
//
// This file is part of numtheory. The full numtheory copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"github.com/ipfs/go-log"
)

// LoggerName is the go-log subsystem used by every package in this module.
const LoggerName = "numtheory"

var Logger = log.Logger(LoggerName)
