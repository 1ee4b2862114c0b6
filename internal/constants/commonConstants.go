package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixTagCatalog CachePrefix = "TAG_CATALOG"
	CachePrefixPartyList  CachePrefix = "PARTY_LIST"
)
