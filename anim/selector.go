package anim

// Selector picks the target of Manager.SwitchTo: either a registered
// Animation by name, or a frame index within the current Animation.
type Selector struct {
	kind  selectorKind
	name  string
	index int
}

type selectorKind int

const (
	selectByName selectorKind = iota
	selectByIndex
)

// ByName selects the Animation registered under name as current.
func ByName(name string) Selector {
	return Selector{kind: selectByName, name: name}
}

// ByIndex seeks the current Animation to the given frame index without
// changing which Animation is current.
func ByIndex(index int) Selector {
	return Selector{kind: selectByIndex, index: index}
}

// PlayPolicy controls playback after a SwitchTo selection.
type PlayPolicy int

const (
	// PlayKeep carries the playing state across the switch: if the current
	// Animation was playing before selection, the selected one plays too.
	PlayKeep PlayPolicy = iota
	// PlayStart always starts playback after selection.
	PlayStart
	// PlayStop stops playback if it was running before selection.
	PlayStop
)
