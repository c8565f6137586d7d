/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

type kbParams struct {
	SchemaFiles []string
}

type formatParams struct {
	File          string
	DropExtra     bool
	AddDefaults   bool
	IgnoreMissing bool
	IgnoreExtra   bool
}
