package containment

// ChildrenFunc returns the ordered visual children of a node
type ChildrenFunc[N any] func(node N) []N

// TypedFunc reports whether a node wraps a modeled concept
type TypedFunc[N any] func(node N) bool

// CollectDirect returns the immediate children of container that are typed
func CollectDirect[N any](container N, children ChildrenFunc[N], isTyped TypedFunc[N]) []N {
	var result []N
	for _, child := range children(container) {
		if isTyped(child) {
			result = append(result, child)
		}
	}
	return result
}

// CollectRecursive returns every typed descendant of container in depth-first
// preorder. Untyped nodes are not returned but their children are still visited.
func CollectRecursive[N any](container N, children ChildrenFunc[N], isTyped TypedFunc[N]) []N {
	var result []N
	for _, child := range children(container) {
		if isTyped(child) {
			result = append(result, child)
		}
		result = append(result, CollectRecursive(child, children, isTyped)...)
	}
	return result
}
