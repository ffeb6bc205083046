package tag

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies a legacy tag type.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as an invalid Kind

	KindProperty
	KindGetter
	KindSetter
	KindSerialize
	KindDeserialize
	KindWriteNullProperties
	KindView
	KindManagedReference
	KindBackReference
	KindIgnore
	KindIgnoreProperties
	KindIgnoreType
	KindPropertyOrder
	KindRawValue
	KindSubTypes
	KindTypeName
	KindRootName
	KindFilter
	KindInject
	KindAnyGetter
	KindAnySetter
	KindCreator
	KindValue
	KindAutoDetect

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsValid reports whether k names a defined tag kind.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}
