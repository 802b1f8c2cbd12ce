package model

// farmUnknownStr is the string representation for unknown farm values.
const farmUnknownStr = "unknown"

// WikiFarm identifies the hosting family a catalog entry belongs to.
// It is informational: resolution never branches on the farm, but reports
// group entries by it and downstream tools use it to pick API quirks.
type WikiFarm string

// Wiki farm constants.
const (
	// WikiFarmNone marks an independently hosted installation.
	WikiFarmNone WikiFarm = ""
	// WikiFarmWikimedia represents the Wikimedia Foundation cluster.
	WikiFarmWikimedia WikiFarm = "wikimedia"
	// WikiFarmFandom represents Fandom (formerly Wikia/Gamepedia).
	WikiFarmFandom WikiFarm = "fandom"
	// WikiFarmMiraheze represents the Miraheze farm.
	WikiFarmMiraheze WikiFarm = "miraheze"
	// WikiFarmWikiGG represents the wiki.gg farm.
	WikiFarmWikiGG WikiFarm = "wiki.gg"
	// WikiFarmShoutWiki represents the ShoutWiki farm.
	WikiFarmShoutWiki WikiFarm = "shoutwiki"
	// WikiFarmTelepedia represents the Telepedia farm.
	WikiFarmTelepedia WikiFarm = "telepedia"
	// WikiFarmWikiOasis represents the WikiOasis farm.
	WikiFarmWikiOasis WikiFarm = "wikioasis"
)

// String returns the string representation of the WikiFarm.
func (f WikiFarm) String() string {
	if f == WikiFarmNone {
		return farmUnknownStr
	}
	return string(f)
}

// IsValid returns true if this is a known farm (including "none").
func (f WikiFarm) IsValid() bool {
	switch f {
	case WikiFarmNone, WikiFarmWikimedia, WikiFarmFandom, WikiFarmMiraheze,
		WikiFarmWikiGG, WikiFarmShoutWiki, WikiFarmTelepedia, WikiFarmWikiOasis:
		return true
	default:
		return false
	}
}

// ParseWikiFarm converts a string to WikiFarm.
// Unknown values map to WikiFarmNone so that catalogs can carry farm names
// this build does not know yet without failing to load.
func ParseWikiFarm(s string) WikiFarm {
	switch s {
	case "wikimedia":
		return WikiFarmWikimedia
	case "fandom", "wikia", "gamepedia":
		return WikiFarmFandom
	case "miraheze":
		return WikiFarmMiraheze
	case "wiki.gg", "wikigg":
		return WikiFarmWikiGG
	case "shoutwiki":
		return WikiFarmShoutWiki
	case "telepedia":
		return WikiFarmTelepedia
	case "wikioasis":
		return WikiFarmWikiOasis
	default:
		return WikiFarmNone
	}
}

// Direction is the ordering applied to captured id-string groups before
// they are joined with the project separator.
type Direction string

// Id-string ordering constants.
const (
	// DirectionAsc joins captured groups in match order.
	DirectionAsc Direction = "asc"
	// DirectionDesc reverses captured groups before joining.
	DirectionDesc Direction = "desc"
)

// IsValid returns true if this is a known direction.
func (d Direction) IsValid() bool {
	return d == DirectionAsc || d == DirectionDesc
}

// String returns the string representation of the Direction.
func (d Direction) String() string {
	return string(d)
}
