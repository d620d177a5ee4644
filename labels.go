package usaddr

// The address component labels follow the United States Thoroughfare,
// Landmark, and Postal Address Data Standard
// http://www.urisa.org/advocacy/united-states-thoroughfare-landmark-and-postal-address-data-standard

// Labels is the closed vocabulary of address component labels a sequence
// labeler may assign. A "Second " prefixed variant of the StreetName family
// is synthesized for street names appearing after an intersection separator.
var Labels = []string{
	"AddressNumberPrefix",
	"AddressNumber",
	"AddressNumberSuffix",
	"StreetNamePreModifier",
	"StreetNamePreDirectional",
	"StreetNamePreType",
	"StreetName",
	"StreetNamePostType",
	"StreetNamePostDirectional",
	"SubaddressType",
	"SubaddressIdentifier",
	"BuildingName",
	"OccupancyType",
	"OccupancyIdentifier",
	"CornerOf",
	"LandmarkName",
	"PlaceName",
	"StateName",
	"ZipCode",
	"USPSBoxType",
	"USPSBoxID",
	"USPSBoxGroupType",
	"USPSBoxGroupID",
	"IntersectionSeparator",
	"Recipient",
	"NotAddress",
}

// Grouping labels used by downstream consumers that collect multiple
// address strings.
const (
	ParentLabel = "AddressString"
	GroupLabel  = "AddressCollection"
)

// Address types derived from which labels appear in a parse.
const (
	AddressTypeStreet       = "Street Address"
	AddressTypeIntersection = "Intersection"
	AddressTypePOBox        = "PO Box"
	AddressTypeAmbiguous    = "Ambiguous"
)

// directions holds compass words and abbreviations that mark directional
// street name parts.
var directions = map[string]bool{
	"n": true, "s": true, "e": true, "w": true,
	"ne": true, "nw": true, "se": true, "sw": true,
	"north": true, "south": true, "east": true, "west": true,
	"northeast": true, "northwest": true, "southeast": true, "southwest": true,
}

// streetNames holds the USPS street suffix abbreviations and spellings from
// Publication 28 Appendix C1.
var streetNames = map[string]bool{
	"allee": true, "alley": true, "ally": true, "aly": true, "anex": true, "annex": true,
	"annx": true, "anx": true, "arc": true, "arcade": true, "av": true, "ave": true, "aven": true,
	"avenu": true, "avenue": true, "avn": true, "avnue": true, "bayoo": true, "bayou": true,
	"bch": true, "beach": true, "bend": true, "bg": true, "bgs": true, "blf": true, "blfs": true,
	"bluf": true, "bluff": true, "bluffs": true, "blvd": true, "bnd": true, "bot": true,
	"bottm": true, "bottom": true, "boul": true, "boulevard": true, "boulv": true, "br": true,
	"branch": true, "brdge": true, "brg": true, "bridge": true, "brk": true, "brks": true,
	"brnch": true, "brook": true, "brooks": true, "btm": true, "burg": true, "burgs": true,
	"byp": true, "bypa": true, "bypas": true, "bypass": true, "byps": true, "byu": true,
	"camp": true, "canyn": true, "canyon": true, "cape": true, "causeway": true, "causwa": true,
	"cen": true, "cent": true, "center": true, "centers": true, "centr": true, "centre": true,
	"cir": true, "circ": true, "circl": true, "circle": true, "circles": true, "cirs": true,
	"clb": true, "clf": true, "clfs": true, "cliff": true, "cliffs": true, "club": true,
	"cmn": true, "cmns": true, "cmp": true, "cnter": true, "cntr": true, "cnyn": true,
	"common": true, "commons": true, "cor": true, "corner": true, "corners": true, "cors": true,
	"course": true, "court": true, "courts": true, "cove": true, "coves": true, "cp": true,
	"cpe": true, "crcl": true, "crcle": true, "creek": true, "cres": true, "crescent": true,
	"crest": true, "crk": true, "crossing": true, "crossroad": true, "crossroads": true,
	"crse": true, "crsent": true, "crsnt": true, "crssng": true, "crst": true, "cswy": true,
	"ct": true, "ctr": true, "ctrs": true, "cts": true, "curv": true, "curve": true, "cv": true,
	"cvs": true, "cyn": true, "dale": true, "dam": true, "div": true, "divide": true, "dl": true,
	"dm": true, "dr": true, "driv": true, "drive": true, "drives": true, "drs": true, "drv": true,
	"dv": true, "dvd": true, "est": true, "estate": true, "estates": true, "ests": true,
	"exp": true, "expr": true, "express": true, "expressway": true, "expw": true, "expy": true,
	"ext": true, "extension": true, "extensions": true, "extn": true, "extnsn": true,
	"exts": true, "fall": true, "falls": true, "ferry": true, "field": true, "fields": true,
	"flat": true, "flats": true, "fld": true, "flds": true, "fls": true, "flt": true,
	"flts": true, "ford": true, "fords": true, "forest": true, "forests": true, "forg": true,
	"forge": true, "forges": true, "fork": true, "forks": true, "fort": true, "frd": true,
	"frds": true, "freeway": true, "freewy": true, "frg": true, "frgs": true, "frk": true,
	"frks": true, "frry": true, "frst": true, "frt": true, "frway": true, "frwy": true,
	"fry": true, "ft": true, "fwy": true, "garden": true, "gardens": true, "gardn": true,
	"gateway": true, "gatewy": true, "gatway": true, "gdn": true, "gdns": true, "glen": true,
	"glens": true, "gln": true, "glns": true, "grden": true, "grdn": true, "grdns": true,
	"green": true, "greens": true, "grn": true, "grns": true, "grov": true, "grove": true,
	"groves": true, "grv": true, "grvs": true, "gtway": true, "gtwy": true, "harb": true,
	"harbor": true, "harbors": true, "harbr": true, "haven": true, "hbr": true, "hbrs": true,
	"heights": true, "highway": true, "highwy": true, "hill": true, "hills": true, "hiway": true,
	"hiwy": true, "hl": true, "hllw": true, "hls": true, "hollow": true, "hollows": true,
	"holw": true, "holws": true, "hrbor": true, "ht": true, "hts": true, "hvn": true,
	"hway": true, "hwy": true, "inlet": true, "inlt": true, "is": true, "island": true,
	"islands": true, "isle": true, "isles": true, "islnd": true, "islnds": true, "iss": true,
	"jct": true, "jction": true, "jctn": true, "jctns": true, "jcts": true, "junction": true,
	"junctions": true, "junctn": true, "juncton": true, "key": true, "keys": true, "knl": true,
	"knls": true, "knol": true, "knoll": true, "knolls": true, "ky": true, "kys": true,
	"lake": true, "lakes": true, "land": true, "landing": true, "lane": true, "lck": true,
	"lcks": true, "ldg": true, "ldge": true, "lf": true, "lgt": true, "lgts": true, "light": true,
	"lights": true, "lk": true, "lks": true, "ln": true, "lndg": true, "lndng": true,
	"loaf": true, "lock": true, "locks": true, "lodg": true, "lodge": true, "loop": true,
	"loops": true, "mall": true, "manor": true, "manors": true, "mdw": true, "mdws": true,
	"meadow": true, "meadows": true, "medows": true, "mews": true, "mill": true, "mills": true,
	"mission": true, "missn": true, "ml": true, "mls": true, "mnr": true, "mnrs": true,
	"mnt": true, "mntain": true, "mntn": true, "mntns": true, "motorway": true, "mount": true,
	"mountain": true, "mountains": true, "mountin": true, "msn": true, "mssn": true, "mt": true,
	"mtin": true, "mtn": true, "mtns": true, "mtwy": true, "nck": true, "neck": true,
	"opas": true, "orch": true, "orchard": true, "orchrd": true, "oval": true, "overpass": true,
	"ovl": true, "park": true, "parks": true, "parkway": true, "parkways": true, "parkwy": true,
	"pass": true, "passage": true, "path": true, "paths": true, "pike": true, "pikes": true,
	"pine": true, "pines": true, "pkway": true, "pkwy": true, "pkwys": true, "pky": true,
	"pl": true, "place": true, "plain": true, "plains": true, "plaza": true, "pln": true,
	"plns": true, "plz": true, "plza": true, "pne": true, "pnes": true, "point": true,
	"points": true, "port": true, "ports": true, "pr": true, "prairie": true, "prk": true,
	"prr": true, "prt": true, "prts": true, "psge": true, "pt": true, "pts": true, "rad": true,
	"radial": true, "radiel": true, "radl": true, "ramp": true, "ranch": true, "ranches": true,
	"rapid": true, "rapids": true, "rd": true, "rdg": true, "rdge": true, "rdgs": true,
	"rds": true, "rest": true, "ridge": true, "ridges": true, "riv": true, "river": true,
	"rivr": true, "rnch": true, "rnchs": true, "road": true, "roads": true, "route": true,
	"row": true, "rpd": true, "rpds": true, "rst": true, "rte": true, "rue": true, "run": true,
	"rvr": true, "shl": true, "shls": true, "shoal": true, "shoals": true, "shoar": true,
	"shoars": true, "shore": true, "shores": true, "shr": true, "shrs": true, "skwy": true,
	"skyway": true, "smt": true, "spg": true, "spgs": true, "spng": true, "spngs": true,
	"spring": true, "springs": true, "sprng": true, "sprngs": true, "spur": true, "spurs": true,
	"sq": true, "sqr": true, "sqre": true, "sqrs": true, "sqs": true, "squ": true, "square": true,
	"squares": true, "st": true, "sta": true, "station": true, "statn": true, "stn": true,
	"str": true, "stra": true, "strav": true, "straven": true, "stravenue": true, "stravn": true,
	"stream": true, "street": true, "streets": true, "streme": true, "strm": true, "strt": true,
	"strvn": true, "strvnue": true, "sts": true, "sumit": true, "sumitt": true, "summit": true,
	"ter": true, "terr": true, "terrace": true, "throughway": true, "tpke": true, "trace": true,
	"traces": true, "track": true, "tracks": true, "trafficway": true, "trail": true,
	"trailer": true, "trails": true, "trak": true, "trce": true, "trfy": true, "trk": true,
	"trks": true, "trl": true, "trlr": true, "trlrs": true, "trls": true, "trnpk": true,
	"trwy": true, "tunel": true, "tunl": true, "tunls": true, "tunnel": true, "tunnels": true,
	"tunnl": true, "turnpike": true, "turnpk": true, "un": true, "underpass": true, "union": true,
	"unions": true, "uns": true, "upas": true, "valley": true, "valleys": true, "vally": true,
	"vdct": true, "via": true, "viadct": true, "viaduct": true, "view": true, "views": true,
	"vill": true, "villag": true, "village": true, "villages": true, "ville": true, "villg": true,
	"villiage": true, "vis": true, "vist": true, "vista": true, "vl": true, "vlg": true,
	"vlgs": true, "vlly": true, "vly": true, "vlys": true, "vst": true, "vsta": true, "vw": true,
	"vws": true, "walk": true, "walks": true, "wall": true, "way": true, "ways": true,
	"well": true, "wells": true, "wl": true, "wls": true, "wy": true, "xing": true, "xrd": true,
	"xrds": true,
}
