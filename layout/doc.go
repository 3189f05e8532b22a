// Package layout computes rectangular placements for widget trees in
// whole terminal cells.
//
// A Widget answers fit queries: the size it wants under given width and
// height constraints. Containers (Align, Fixed, Flex, Margin) are
// widgets that additionally position children, producing Placement
// records relative to their own origin. All queries flow through a
// Context, which sanitizes inputs and outputs and memoizes leaf fits.
//
// Trees are retained and mutable: containers and leaf widgets announce
// mutations through an embedded Notifier so an owner can re-render only
// when something actually changed. The package is not goroutine safe; a
// tree belongs to the single goroutine that mutates and renders it.
package layout
