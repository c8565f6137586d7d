/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rid

import "errors"

var ErrMalformed = errors.New("malformed record identifier")

var ErrOutOfRange = errors.New("record identifier is out of range")
