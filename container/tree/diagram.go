package tree

import (
	"strings"

	"github.com/eaugeas/arbor/container/stack"
)

const emptyTree = "Empty"

// diagramLine is either a subtree still to be rendered, with the
// prefixes for the lines above, at and below its root, or a line
// of text that is ready to be written
type diagramLine[N any] struct {
	node   N
	top    string
	root   string
	bottom string

	text  string
	ready bool
}

// diagram renders the subtree rooted at n. The right subtree is
// drawn above the node and the left subtree below it, an absent
// child of a node with one child is drawn as nil
func diagram[N linkedNode[N]](n N) string {
	var null N
	var b strings.Builder

	pending := stack.New(diagramLine[N]{node: n})
	for !pending.Empty() {
		line, _ := pending.Pop()

		switch {
		case line.ready:
			b.WriteString(line.text)
		case line.node == null:
			b.WriteString(line.root + "nil\n")
		case line.node.leftChild() == null && line.node.rightChild() == null:
			b.WriteString(line.root + line.node.label() + "\n")
		default:
			// lines are pushed in reverse order of output
			pending.Push(diagramLine[N]{
				node:   line.node.leftChild(),
				top:    line.bottom + "│ ",
				root:   line.bottom + "└──",
				bottom: line.bottom + " ",
			})
			pending.Push(diagramLine[N]{
				text:  line.root + line.node.label() + "\n",
				ready: true,
			})
			pending.Push(diagramLine[N]{
				node:   line.node.rightChild(),
				top:    line.top + " ",
				root:   line.top + "┌──",
				bottom: line.top + "│ ",
			})
		}
	}

	return b.String()
}

// describe renders a whole tree under a title line
func describe[N linkedNode[N]](title string, root N) string {
	var null N
	if root == null {
		return title + "\n" + emptyTree
	}

	return title + "\n" + diagram(root)
}
