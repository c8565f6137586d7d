/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package positions

// Position class names
const (
	Class_Position         = "Position"
	Class_BasicPosition    = "BasicPosition"
	Class_GenomicPosition  = "GenomicPosition"
	Class_ExonicPosition   = "ExonicPosition"
	Class_IntronicPosition = "IntronicPosition"
	Class_RnaPosition      = "RnaPosition"
	Class_ProteinPosition  = "ProteinPosition"
	Class_CdsPosition      = "CdsPosition"
	Class_NonCdsPosition   = "NonCdsPosition"
	Class_CytobandPosition = "CytobandPosition"
)

// Position attributes
const (
	Attr_Pos       = "pos"
	Attr_RefAA     = "refAA"
	Attr_Offset    = "offset"
	Attr_Arm       = "arm"
	Attr_MajorBand = "majorBand"
	Attr_MinorBand = "minorBand"
)

// Notation prefixes by position class
var prefixes = map[string]string{
	Class_GenomicPosition:  "g",
	Class_ExonicPosition:   "e",
	Class_IntronicPosition: "i",
	Class_RnaPosition:      "r",
	Class_ProteinPosition:  "p",
	Class_CdsPosition:      "c",
	Class_NonCdsPosition:   "n",
	Class_CytobandPosition: "y",
}

// Used in place of unknown position parts
const unknown = "?"
