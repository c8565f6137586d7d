/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

// Creates and returns new registry builder
func New() IRegistryBuilder {
	return newRegistryBuilder()
}
