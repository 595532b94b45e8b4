/*
Package framedebug produces textual renderings of layout trees.

Intended for tests and diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"fmt"

	"github.com/npillmayer/tinte/engine/dom"
	"github.com/npillmayer/tinte/engine/frame/boxtree"
	"github.com/xlab/treeprint"
)

// BoxTreeString returns an indented tree rendering of a layout tree,
// one line per box, with box type, node name and geometry.
func BoxTreeString(root *boxtree.LayoutBox) string {
	if root == nil {
		return "(empty box tree)"
	}
	tp := treeprint.New()
	tp.SetValue(boxLabel(root))
	addChildren(tp, root)
	return tp.String()
}

func addChildren(branch treeprint.Tree, box *boxtree.LayoutBox) {
	for _, ch := range box.Children() {
		if len(ch.Children()) == 0 {
			branch.AddNode(boxLabel(ch))
			continue
		}
		sub := branch.AddBranch(boxLabel(ch))
		addChildren(sub, ch)
	}
}

func boxLabel(box *boxtree.LayoutBox) string {
	name := "anonymous"
	if sn, err := box.StyleNode(); err == nil {
		name = dom.NodeName(sn.HTMLNode())
	}
	return fmt.Sprintf("%s %s %v", box.Type(), name, box.Dimensions.Content)
}
