package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where descriptions start, counted from line start.
	descriptionColumn = 30
)

// FileEntry is a file to show in a tree.
type FileEntry struct {
	// Path is relative to the tree root, slash or OS separated.
	Path string

	// Description is shown aligned at descriptionColumn.
	Description string

	// Status is shown after the description (created, overwritten, failed).
	Status string
}

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	Status      string
	IsDir       bool
	Children    []*TreeNode
}

// TreeOptions controls tree rendering.
type TreeOptions struct {
	// Styled enables lipgloss styling.
	Styled bool
}

// RenderFileTree renders entries as a tree rooted at rootName.
func RenderFileTree(rootName string, entries []FileEntry, opts TreeOptions) string {
	if len(entries) == 0 {
		return ""
	}

	root := &TreeNode{Name: rootName, IsDir: true}

	for _, e := range entries {
		parts := strings.Split(filepath.ToSlash(e.Path), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &TreeNode{Name: part, IsDir: !isLast}
				current.Children = append(current.Children, child)
			}

			if isLast {
				child.Description = e.Description
				child.Status = e.Status
			}

			current = child
		}
	}

	sortTree(root)

	var sb strings.Builder
	renderNode(&sb, root, "", true, true, opts)
	return sb.String()
}

// sortTree recursively sorts tree nodes (directories first, then alphabetically).
func sortTree(node *TreeNode) {
	if len(node.Children) == 0 {
		return
	}

	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})

	for _, child := range node.Children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool, opts TreeOptions) {
	if isRoot {
		sb.WriteString(Styled(opts.Styled, StyleBold, node.Name+"/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name += "/"
		}

		// Padding is computed on the unstyled line so columns align.
		line := prefix + connector + name
		width := len([]rune(line))
		sb.WriteString(Styled(opts.Styled, StyleMuted, prefix+connector))
		sb.WriteString(Styled(opts.Styled, StyleNoun, name))

		if node.Description != "" || node.Status != "" {
			padding := descriptionColumn - width
			if padding < 2 {
				padding = 2
			}
			sb.WriteString(strings.Repeat(" ", padding))
			sb.WriteString(Styled(opts.Styled, StyleMuted, node.Description))
			if node.Status != "" {
				if node.Description != "" {
					sb.WriteString("  ")
				}
				sb.WriteString(Styled(opts.Styled, StatusStyle(node.Status), node.Status))
			}
		}

		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childIsLast := i == len(node.Children)-1

		var childPrefix string
		switch {
		case isRoot:
			childPrefix = ""
		case isLast:
			childPrefix = prefix + treeSpace
		default:
			childPrefix = prefix + treeVert
		}

		renderNode(sb, child, childPrefix, false, childIsLast, opts)
	}
}
