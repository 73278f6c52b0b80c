// Package schema is the bidirectional Matroska element registry: it maps
// element names to their wire IDs and back, tags each with a payload type,
// and marks the two elements (Segment, Cluster) that must be flat-parsed
// rather than buffered whole. It also hosts the schema-driven streaming
// parser and serializer built on top of package ebml's generic codec.
//
// The registry is a plain lookup table, not a type hierarchy: each element
// is a sum type over its Kind plus a row in this table, rather than a
// class per element.
package schema

// Kind tags the payload type of an element, mirroring RFC 8794's element
// types plus Master for elements that contain children.
type Kind int

const (
	KindUnknown Kind = iota
	KindMaster
	KindUint
	KindInt
	KindFloat
	KindString
	KindUTF8
	KindDate
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindMaster:
		return "master"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindUTF8:
		return "utf-8"
	case KindDate:
		return "date"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Def is one schema entry: an element's wire ID, its payload Kind, and
// whether it is flat-parsed (Segment, Cluster) rather than fully buffered.
type Def struct {
	Name string
	ID   uint32
	Kind Kind
	Flat bool
}

// UnknownName is the sentinel name used for IDs absent from the registry.
// Their payload is retained as opaque binary; nothing is lost.
const UnknownName = "Unknown"

var byName = make(map[string]Def)
var byID = make(map[uint32]Def)

func define(name string, id uint32, kind Kind, flat bool) {
	d := Def{Name: name, ID: id, Kind: kind, Flat: flat}
	byName[name] = d
	byID[id] = d
}

// ByName returns the schema entry for an element name, if known.
func ByName(name string) (Def, bool) {
	d, ok := byName[name]
	return d, ok
}

// ByID returns the schema entry for a wire element ID. Unknown IDs report
// ok=false; callers fall back to the Unknown sentinel and binary payload.
func ByID(id uint32) (Def, bool) {
	d, ok := byID[id]
	return d, ok
}

func init() {
	// EBML header.
	define("EBML", 0x1A45DFA3, KindMaster, false)
	define("EBMLVersion", 0x4286, KindUint, false)
	define("EBMLReadVersion", 0x42F7, KindUint, false)
	define("EBMLMaxIDLength", 0x42F2, KindUint, false)
	define("EBMLMaxSizeLength", 0x42F3, KindUint, false)
	define("DocType", 0x4282, KindString, false)
	define("DocTypeVersion", 0x4287, KindUint, false)
	define("DocTypeReadVersion", 0x4285, KindUint, false)

	// Segment and its top-level children. Segment is flat: the parser only
	// consumes its header and keeps parsing children at the parent level.
	define("Segment", 0x18538067, KindMaster, true)

	// SeekHead.
	define("SeekHead", 0x114D9B74, KindMaster, false)
	define("Seek", 0x4DBB, KindMaster, false)
	define("SeekID", 0x53AB, KindBinary, false)
	define("SeekPosition", 0x53AC, KindUint, false)

	// Info.
	define("Info", 0x1549A966, KindMaster, false)
	define("SegmentUID", 0x73A4, KindBinary, false)
	define("TimestampScale", 0x2AD7B1, KindUint, false)
	define("Duration", 0x4489, KindFloat, false)
	define("DateUTC", 0x4461, KindDate, false)
	define("Title", 0x7BA9, KindUTF8, false)
	define("MuxingApp", 0x4D80, KindUTF8, false)
	define("WritingApp", 0x5741, KindUTF8, false)

	// Tracks.
	define("Tracks", 0x1654AE6B, KindMaster, false)
	define("TrackEntry", 0xAE, KindMaster, false)
	define("TrackNumber", 0xD7, KindUint, false)
	define("TrackUID", 0x73C5, KindUint, false)
	define("TrackType", 0x83, KindUint, false)
	define("FlagEnabled", 0xB9, KindUint, false)
	define("FlagDefault", 0x88, KindUint, false)
	define("FlagForced", 0x55AA, KindUint, false)
	define("FlagLacing", 0x9C, KindUint, false)
	define("DefaultDuration", 0x23E383, KindUint, false)
	define("Name", 0x536E, KindUTF8, false)
	define("Language", 0x22B59C, KindString, false)
	define("CodecID", 0x86, KindString, false)
	define("CodecPrivate", 0x63A2, KindBinary, false)
	define("CodecName", 0x258688, KindUTF8, false)
	define("CodecDelay", 0x56AA, KindUint, false)
	define("SeekPreRoll", 0x56BB, KindUint, false)

	// Video.
	define("Video", 0xE0, KindMaster, false)
	define("FlagInterlaced", 0x9A, KindUint, false)
	define("PixelWidth", 0xB0, KindUint, false)
	define("PixelHeight", 0xBA, KindUint, false)
	define("DisplayWidth", 0x54B0, KindUint, false)
	define("DisplayHeight", 0x54BA, KindUint, false)
	define("Colour", 0x55B0, KindMaster, false)
	define("MatrixCoefficients", 0x55B1, KindUint, false)
	define("Range", 0x55B9, KindUint, false)
	define("TransferCharacteristics", 0x55BA, KindUint, false)
	define("Primaries", 0x55BB, KindUint, false)

	// Audio.
	define("Audio", 0xE1, KindMaster, false)
	define("SamplingFrequency", 0xB5, KindFloat, false)
	define("OutputSamplingFrequency", 0x78B5, KindFloat, false)
	define("Channels", 0x9F, KindUint, false)
	define("BitDepth", 0x6264, KindUint, false)

	// Cluster and its children. Cluster is flat for the same streaming
	// reason as Segment: it may be arbitrarily large, and in practice
	// several real-world encoders emit it with an unknown size.
	define("Cluster", 0x1F43B675, KindMaster, true)
	define("Timecode", 0xE7, KindUint, false)
	define("PrevSize", 0xAB, KindUint, false)
	define("SimpleBlock", 0xA3, KindBinary, false)
	define("BlockGroup", 0xA0, KindMaster, false)
	define("Block", 0xA1, KindBinary, false)
	define("BlockDuration", 0x9B, KindUint, false)
	define("ReferenceBlock", 0xFB, KindInt, false)
	define("DiscardPadding", 0x75A2, KindInt, false)

	// Cues.
	define("Cues", 0x1C53BB6B, KindMaster, false)
	define("CuePoint", 0xBB, KindMaster, false)
	define("CueTime", 0xB3, KindUint, false)
	define("CueTrackPositions", 0xB7, KindMaster, false)
	define("CueTrack", 0xF7, KindUint, false)
	define("CueClusterPosition", 0xF1, KindUint, false)

	// Tags/Chapters/Attachments: recognized at the top level so a
	// round-trip decode→reserialize of a third-party file does not
	// demote them to Unknown, even though this library's muxer never
	// emits them itself.
	define("Tags", 0x1254C367, KindMaster, false)
	define("Tag", 0x7373, KindMaster, false)
	define("Targets", 0x63C0, KindMaster, false)
	define("TagTrackUID", 0x63C5, KindUint, false)
	define("SimpleTag", 0x67C8, KindMaster, false)
	define("TagName", 0x45A3, KindUTF8, false)
	define("TagLanguage", 0x447A, KindString, false)
	define("TagDefault", 0x4484, KindUint, false)
	define("TagString", 0x4487, KindUTF8, false)
	define("TagBinary", 0x4485, KindBinary, false)
	define("Chapters", 0x1043A770, KindMaster, false)
	define("EditionEntry", 0x45B9, KindMaster, false)
	define("ChapterAtom", 0xB6, KindMaster, false)
	define("ChapterUID", 0x73C4, KindUint, false)
	define("ChapterTimeStart", 0x91, KindUint, false)
	define("ChapterTimeEnd", 0x92, KindUint, false)
	define("ChapterDisplay", 0x80, KindMaster, false)
	define("ChapString", 0x85, KindUTF8, false)
	define("Attachments", 0x1941A469, KindMaster, false)
	define("AttachedFile", 0x61A7, KindMaster, false)
	define("FileName", 0x466E, KindUTF8, false)
	define("FileMimeType", 0x4660, KindString, false)
	define("FileData", 0x465C, KindBinary, false)
	define("FileUID", 0x46AE, KindUint, false)

	define("Void", 0xEC, KindBinary, false)
}
