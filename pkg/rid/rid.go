/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rid

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Prefix of the canonical record identifier string representation
	Prefix = "#"

	// Separates cluster and position parts
	Delimiter = ":"

	// Maximum cluster number
	MaxCluster = 32767
)

// NullRecordID is used to denote absent record identifier
var NullRecordID = RecordID{}

// Record identifier.
//
// Canonical string representation is `#cluster:position`, like `#12:3`.
type RecordID struct {
	cluster  int32
	position int64
}

var (
	ridPattern     = regexp.MustCompile(`^#?-?\d{1,5}:-?\d+$`)
	ridHashPattern = regexp.MustCompile(`^#-?\d{1,5}:-?\d+$`)
)

// Returns new record identifier from cluster and position.
//
// # Panics:
//   - if cluster or position is out of range
func New(cluster int32, position int64) RecordID {
	id := RecordID{cluster, position}
	if err := id.Validate(); err != nil {
		panic(err)
	}
	return id
}

// Returns is string looks like record identifier.
//
// If requireHash is true then leading `#` is required.
func LooksLike(s string, requireHash bool) bool {
	s = strings.TrimSpace(s)
	if requireHash {
		return ridHashPattern.MatchString(s)
	}
	return ridPattern.MatchString(s)
}

// Parses record identifier from string. Leading `#` is optional.
func Parse(s string) (RecordID, error) {
	s = strings.TrimSpace(s)
	if !LooksLike(s, false) {
		return NullRecordID, fmt.Errorf("«%s» does not look like a record identifier: %w", s, ErrMalformed)
	}
	c, p, _ := strings.Cut(strings.TrimPrefix(s, Prefix), Delimiter)

	cluster, err := strconv.ParseInt(c, 10, 32)
	if err != nil {
		return NullRecordID, fmt.Errorf("record identifier «%s» cluster: %w", s, ErrOutOfRange)
	}
	position, err := strconv.ParseInt(p, 10, 64)
	if err != nil {
		return NullRecordID, fmt.Errorf("record identifier «%s» position: %w", s, ErrOutOfRange)
	}

	id := RecordID{int32(cluster), position}
	if err := id.Validate(); err != nil {
		return NullRecordID, err
	}
	return id, nil
}

// Parses record identifier from string.
//
// # Panics:
//   - if string is not a valid record identifier
func MustParse(s string) RecordID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Returns cluster number
func (id RecordID) Cluster() int32 { return id.cluster }

// Returns position inside cluster
func (id RecordID) Position() int64 { return id.position }

// Returns is identifier null
func (id RecordID) IsNull() bool { return id == NullRecordID }

// Returns error if cluster or position is out of range
func (id RecordID) Validate() error {
	if id.cluster < 0 || id.cluster > MaxCluster {
		return fmt.Errorf("record identifier %v cluster %d is out of range [0…%d]: %w", id, id.cluster, MaxCluster, ErrOutOfRange)
	}
	if id.position < 0 {
		return fmt.Errorf("record identifier %v position %d is negative: %w", id, id.position, ErrOutOfRange)
	}
	return nil
}

// Returns canonical string representation, like `#12:3`
func (id RecordID) String() string {
	return Prefix + strconv.FormatInt(int64(id.cluster), 10) + Delimiter + strconv.FormatInt(id.position, 10)
}

func (id RecordID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id RecordID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *RecordID) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

func (id *RecordID) UnmarshalText(text []byte) (err error) {
	*id, err = Parse(string(text))
	return err
}
