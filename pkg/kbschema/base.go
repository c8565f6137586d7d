/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package kbschema

import (
	"github.com/voedger/kbschema/pkg/schema"
)

// Properties tracking record identity and history. Shared by vertices and edges
func auditProperties() []schema.PropertyDescription {
	return []schema.PropertyDescription{
		{Name: schema.Attr_RID, Cast: schema.CastToRID, Description: "record identifier"},
		{Name: schema.Attr_Class, Cast: castClassName, Description: "record class name"},
		{
			Name:        Attr_UUID,
			Mandatory:   true,
			Nullable:    schema.Ptr(false),
			Generated:   true,
			Cast:        schema.CastUUID,
			Default:     schema.GenerateDefault(schema.NewUUID),
			Description: "internal identifier shared by all versions of the record",
		},
		{
			Name:      Attr_CreatedAt,
			Type:      schema.DataKind_long,
			Mandatory: true,
			Nullable:  schema.Ptr(false),
			Generated: true,
			Default:   schema.GenerateDefault(timestamp),
		},
		requiredLink(Attr_CreatedBy, Class_User),
		{Name: Attr_UpdatedAt, Type: schema.DataKind_long, Generated: true, Default: schema.GenerateDefault(timestamp)},
		link(Attr_UpdatedBy, Class_User),
		{Name: Attr_DeletedAt, Type: schema.DataKind_long},
		link(Attr_DeletedBy, Class_User),
		link(Attr_History, Class_V),
		{Name: Attr_Comment, Cast: castTrimmed},
		{Name: Attr_DisplayName, Cast: castTrimmed},
	}
}

func baseDescriptions() schema.Descriptions {
	return schema.Descriptions{
		Class_V: {
			Name:        Class_V,
			Description: "base vertex class",
			IsAbstract:  true,
			Properties:  auditProperties(),
		},
		Class_E: {
			Name:        Class_E,
			Description: "base edge class",
			IsAbstract:  true,
			IsEdge:      true,
			Properties:  auditProperties(),
		},
		Class_User: {
			Name:        Class_User,
			Description: "user of the knowledge base",
			Inherits:    []string{Class_V},
			Properties: []schema.PropertyDescription{
				{Name: Attr_Name, Mandatory: true, Nullable: schema.Ptr(false), NonEmpty: true, Example: "admin"},
				{Name: "email", Cast: schema.CastEmail},
				linkset("groups", Class_UserGroup),
				{Name: "signedLicenseAt", Type: schema.DataKind_long},
				{Name: "firstLoginAt", Type: schema.DataKind_long},
				{Name: "lastLoginAt", Type: schema.DataKind_long},
			},
			Indices: []schema.IndexDescription{
				activeIndex(Class_User, Attr_Name),
				{Name: "User.name", Type: schema.IndexType_UniqueHash, Properties: []string{Attr_Name}},
			},
		},
		Class_UserGroup: {
			Name:        Class_UserGroup,
			Description: "group of users sharing permissions",
			Inherits:    []string{Class_V},
			Permissions: map[string]schema.Permission{
				schema.PermissionGroup_Default: schema.Permission_Read,
			},
			Properties: []schema.PropertyDescription{
				{Name: Attr_Name, Mandatory: true, Nullable: schema.Ptr(false), NonEmpty: true},
				{Name: "permissions", Type: schema.DataKind_embedded, LinkedClass: Class_Permissions},
			},
			Indices: []schema.IndexDescription{
				activeIndex(Class_UserGroup, Attr_Name),
			},
		},
		Class_Source: {
			Name:        Class_Source,
			Description: "source of the imported or curated content",
			Inherits:    []string{Class_V},
			Properties: []schema.PropertyDescription{
				{Name: Attr_Name, Mandatory: true, Nullable: schema.Ptr(false), NonEmpty: true},
				{Name: "version"},
				{Name: "url", Cast: castTrimmed},
				{Name: "description", Cast: castTrimmed},
				{Name: "usage", Cast: castTrimmed},
				{Name: "license", Cast: castTrimmed},
				{Name: "sort", Type: schema.DataKind_integer, Default: schema.Static(99999)},
			},
			Indices: []schema.IndexDescription{
				activeIndex(Class_Source, Attr_Name, "version"),
			},
		},
		Class_Evidence: {
			Name:        Class_Evidence,
			Description: "content which supports statements",
			IsAbstract:  true,
		},
		Class_Biomarker: {
			Name:        Class_Biomarker,
			Description: "measurable condition of statements",
			IsAbstract:  true,
		},
	}
}

// Describes embedded permissions record with permission bits for every
// class in names.
func permissionsDescription(names []string) schema.ClassDescription {
	d := schema.ClassDescription{
		Name:        Class_Permissions,
		Description: "permission bits of user group by class",
		Embedded:    true,
	}
	for _, n := range names {
		d.Properties = append(d.Properties, schema.PropertyDescription{
			Name:    n,
			Type:    schema.DataKind_integer,
			Min:     schema.Ptr(float64(schema.Permission_None)),
			Max:     schema.Ptr(float64(schema.Permission_All)),
			Default: schema.Static(int64(schema.Permission_None)),
		})
	}
	return d
}
