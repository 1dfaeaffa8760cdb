package shapes

// Kind identifies the concrete representation of a stored shape.
// The set is closed; the numeric order is the iteration order.
type Kind uint8

// Kind constants. Each kind maps to exactly one value type of the layout
// package; the array kinds repeat the kind listed before them.
const (
	KindPolygon               Kind = iota // layout.Polygon
	KindPolygonRef                        // layout.PolygonRef
	KindPolygonPtrArray                   // layout.PolygonPtrArray
	KindSimplePolygon                     // layout.SimplePolygon
	KindSimplePolygonRef                  // layout.SimplePolygonRef
	KindSimplePolygonPtrArray             // layout.SimplePolygonPtrArray
	KindEdge                              // layout.Edge
	KindEdgePair                          // layout.EdgePair
	KindPath                              // layout.Path
	KindPathRef                           // layout.PathRef
	KindPathPtrArray                      // layout.PathPtrArray
	KindBox                               // layout.Box
	KindBoxArray                          // layout.BoxArray
	KindShortBox                          // layout.ShortBox
	KindShortBoxArray                     // layout.ShortBoxArray
	KindText                              // layout.Text
	KindTextRef                           // layout.TextRef
	KindTextPtrArray                      // layout.TextPtrArray
	KindPoint                             // layout.Point
	KindUserObject                        // layout.UserObject

	numKinds = int(KindUserObject) + 1
)

var kindNames = [numKinds]string{
	KindPolygon:               "Polygon",
	KindPolygonRef:            "PolygonRef",
	KindPolygonPtrArray:       "PolygonPtrArray",
	KindSimplePolygon:         "SimplePolygon",
	KindSimplePolygonRef:      "SimplePolygonRef",
	KindSimplePolygonPtrArray: "SimplePolygonPtrArray",
	KindEdge:                  "Edge",
	KindEdgePair:              "EdgePair",
	KindPath:                  "Path",
	KindPathRef:               "PathRef",
	KindPathPtrArray:          "PathPtrArray",
	KindBox:                   "Box",
	KindBoxArray:              "BoxArray",
	KindShortBox:              "ShortBox",
	KindShortBoxArray:         "ShortBoxArray",
	KindText:                  "Text",
	KindTextRef:               "TextRef",
	KindTextPtrArray:          "TextPtrArray",
	KindPoint:                 "Point",
	KindUserObject:            "UserObject",
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if int(k) < numKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// IsArray reports whether the kind stores arrays of objects.
func (k Kind) IsArray() bool {
	switch k {
	case KindPolygonPtrArray, KindSimplePolygonPtrArray, KindPathPtrArray,
		KindBoxArray, KindShortBoxArray, KindTextPtrArray:
		return true
	default:
		return false
	}
}

// IsRef reports whether the kind stores repository references.
func (k Kind) IsRef() bool {
	switch k {
	case KindPolygonRef, KindSimplePolygonRef, KindPathRef, KindTextRef:
		return true
	default:
		return false
	}
}

// MemberKind returns the kind of the individual members of an array kind,
// which is where editable containers put expanded arrays.
// Non-array kinds return themselves.
func (k Kind) MemberKind() Kind {
	if k.IsArray() {
		return k - 1
	}
	return k
}

// Flag returns the selection flag covering the kind.
func (k Kind) Flag() Flags {
	switch {
	case k <= KindPolygonPtrArray:
		return Polygons
	case k <= KindSimplePolygonPtrArray:
		return SimplePolygons
	case k == KindEdge:
		return Edges
	case k == KindEdgePair:
		return EdgePairs
	case k <= KindPathPtrArray:
		return Paths
	case k <= KindShortBoxArray:
		return Boxes
	case k <= KindTextPtrArray:
		return Texts
	case k == KindPoint:
		return Points
	default:
		return UserObjects
	}
}

// Flags selects shape categories for iteration, counting and clearing.
type Flags uint32

// Selection flags.
const (
	Polygons Flags = 1 << iota
	SimplePolygons
	Edges
	EdgePairs
	Paths
	Boxes
	Texts
	Points
	UserObjects

	// Properties restricts the selection to shapes with properties.
	Properties

	// Nothing selects no shapes at all.
	Nothing Flags = 0

	// Regions selects everything with an area.
	Regions = Polygons | SimplePolygons | Paths | Boxes

	// All selects every category, with or without properties.
	All = Polygons | SimplePolygons | Edges | EdgePairs | Paths | Boxes | Texts | Points | UserObjects

	// AllWithProperties selects every category, with properties only.
	AllWithProperties = All | Properties
)

// Type classifies what a Shape handle refers to. Unlike Kind it
// distinguishes a whole array from one member of it.
type Type uint8

// Type constants.
const (
	TypeNull Type = iota
	TypePolygon
	TypePolygonRef
	TypePolygonPtrArray
	TypePolygonPtrArrayMember
	TypeSimplePolygon
	TypeSimplePolygonRef
	TypeSimplePolygonPtrArray
	TypeSimplePolygonPtrArrayMember
	TypeEdge
	TypeEdgePair
	TypePath
	TypePathRef
	TypePathPtrArray
	TypePathPtrArrayMember
	TypeBox
	TypeBoxArray
	TypeBoxArrayMember
	TypeShortBox
	TypeShortBoxArray
	TypeShortBoxArrayMember
	TypeText
	TypeTextRef
	TypeTextPtrArray
	TypeTextPtrArrayMember
	TypePoint
	TypeUserObject
)

// kindTypes maps each kind to the type of a handle to the stored object.
var kindTypes = [numKinds]Type{
	KindPolygon:               TypePolygon,
	KindPolygonRef:            TypePolygonRef,
	KindPolygonPtrArray:       TypePolygonPtrArray,
	KindSimplePolygon:         TypeSimplePolygon,
	KindSimplePolygonRef:      TypeSimplePolygonRef,
	KindSimplePolygonPtrArray: TypeSimplePolygonPtrArray,
	KindEdge:                  TypeEdge,
	KindEdgePair:              TypeEdgePair,
	KindPath:                  TypePath,
	KindPathRef:               TypePathRef,
	KindPathPtrArray:          TypePathPtrArray,
	KindBox:                   TypeBox,
	KindBoxArray:              TypeBoxArray,
	KindShortBox:              TypeShortBox,
	KindShortBoxArray:         TypeShortBoxArray,
	KindText:                  TypeText,
	KindTextRef:               TypeTextRef,
	KindTextPtrArray:          TypeTextPtrArray,
	KindPoint:                 TypePoint,
	KindUserObject:            TypeUserObject,
}

var typeNames = [...]string{
	TypeNull:                        "Null",
	TypePolygon:                     "Polygon",
	TypePolygonRef:                  "PolygonRef",
	TypePolygonPtrArray:             "PolygonPtrArray",
	TypePolygonPtrArrayMember:       "PolygonPtrArrayMember",
	TypeSimplePolygon:               "SimplePolygon",
	TypeSimplePolygonRef:            "SimplePolygonRef",
	TypeSimplePolygonPtrArray:       "SimplePolygonPtrArray",
	TypeSimplePolygonPtrArrayMember: "SimplePolygonPtrArrayMember",
	TypeEdge:                        "Edge",
	TypeEdgePair:                    "EdgePair",
	TypePath:                        "Path",
	TypePathRef:                     "PathRef",
	TypePathPtrArray:                "PathPtrArray",
	TypePathPtrArrayMember:          "PathPtrArrayMember",
	TypeBox:                         "Box",
	TypeBoxArray:                    "BoxArray",
	TypeBoxArrayMember:              "BoxArrayMember",
	TypeShortBox:                    "ShortBox",
	TypeShortBoxArray:               "ShortBoxArray",
	TypeShortBoxArrayMember:         "ShortBoxArrayMember",
	TypeText:                        "Text",
	TypeTextRef:                     "TextRef",
	TypeTextPtrArray:                "TextPtrArray",
	TypeTextPtrArrayMember:          "TextPtrArrayMember",
	TypePoint:                       "Point",
	TypeUserObject:                  "UserObject",
}

// String returns a human-readable name for the type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// IsArrayMember reports whether the type denotes one member of an array.
func (t Type) IsArrayMember() bool {
	switch t {
	case TypePolygonPtrArrayMember, TypeSimplePolygonPtrArrayMember, TypePathPtrArrayMember,
		TypeBoxArrayMember, TypeShortBoxArrayMember, TypeTextPtrArrayMember:
		return true
	default:
		return false
	}
}

// typeOf returns the handle type for a kind, or for one member of it.
func typeOf(k Kind, member bool) Type {
	t := kindTypes[k]
	if member {
		t++ // member types directly follow their array type
	}
	return t
}
