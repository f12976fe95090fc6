package asa

import (
	"strconv"
	"strings"
)

type queryKind int

const (
	queryByAssetID queryKind = iota + 1
	queryByName
)

// TokenQuery selects registry records either by exact asset ID or by
// case-insensitive name substring. Build one with ByAssetID or ByName.
type TokenQuery struct {
	kind    queryKind
	assetID uint64
	name    string
}

func ByAssetID(assetID uint64) TokenQuery {
	return TokenQuery{kind: queryByAssetID, assetID: assetID}
}

func ByName(search string) TokenQuery {
	return TokenQuery{kind: queryByName, name: strings.ToLower(search)}
}

// Matches reports whether token satisfies the query. The zero TokenQuery
// matches nothing.
func (query TokenQuery) Matches(token CreatedAsset) bool {
	switch query.kind {
	case queryByAssetID:
		return token.AssetID == query.assetID
	case queryByName:
		return strings.Contains(strings.ToLower(token.Name), query.name)
	default:
		return false
	}
}

func (query TokenQuery) String() string {
	switch query.kind {
	case queryByAssetID:
		return "assetId=" + strconv.FormatUint(query.assetID, 10)
	case queryByName:
		return "name~" + query.name
	default:
		return "none"
	}
}
