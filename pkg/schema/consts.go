/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package schema

// Property data kinds
const (
	DataKind_null DataKind = iota
	DataKind_string
	DataKind_long
	DataKind_link
	DataKind_linkset
	DataKind_integer
	DataKind_embeddedlist
	DataKind_embeddedset
	DataKind_boolean
	DataKind_embedded

	DataKind_FakeLast
)

// Permission bits
const (
	Permission_None   Permission = 0b0000
	Permission_Delete Permission = 0b0001
	Permission_Update Permission = 0b0010
	Permission_Read   Permission = 0b0100
	Permission_Create Permission = 0b1000
	Permission_All    Permission = Permission_Create | Permission_Read | Permission_Update | Permission_Delete
)

// Permission groups every class has
const (
	PermissionGroup_Default  = "default"
	PermissionGroup_Readonly = "readonly"
)

// Conventional operations exposed by routes
const (
	Operation_List Operation = iota
	Operation_Read
	Operation_Create
	Operation_Update
	Operation_Delete

	Operation_Count
)

// Index types
const (
	IndexType_Unique             IndexType = "UNIQUE"
	IndexType_NotUnique          IndexType = "NOTUNIQUE"
	IndexType_UniqueHash         IndexType = "UNIQUE_HASH_INDEX"
	IndexType_NotUniqueHash      IndexType = "NOTUNIQUE_HASH_INDEX"
	IndexType_Fulltext           IndexType = "FULLTEXT"
	IndexType_FulltextHash       IndexType = "FULLTEXT_HASH_INDEX"
	IndexType_FulltextLuceneHash IndexType = "FULLTEXT_HASH_INDEX_LUCENE"
)

// System attributes of records
const (
	// Record identifier attribute
	Attr_RID = "@rid"

	// Record class discriminator attribute
	Attr_Class = "@class"

	// Edge source endpoint
	Attr_Out = "out"

	// Edge target endpoint
	Attr_In = "in"
)

// Suffix of the index name which denotes the active (uniqueness) index of class.
// Active index of class `Disease` is named `Disease.active`.
const ActiveIndexSuffix = ".active"

// Classes with mutually circular bootstrap dependencies.
//
// These classes are always placed to the first level by SplitClassLevels.
var BootstrapClasses = []string{"V", "E", "User", "UserGroup", "Permissions"}

// Class names which route name is not pluralized.
//
// Compared in lower case.
var unpluralizedRouteNames = map[string]bool{
	"evidence": true,
}

// Default size of the merged properties cache
const DefaultPropertiesCacheSize = 1024
