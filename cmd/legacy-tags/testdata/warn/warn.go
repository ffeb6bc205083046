// Package warn carries legacy tags that parse but shadow each other.
package warn

type Node struct {
	Parent *Node  `legacy:"managedReference=tree;backReference=tree"`
	Label  string `legacy:"property=label"`
}
