package component

// Name lets entities be found by prefab-assigned name, e.g. "pivot".
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
