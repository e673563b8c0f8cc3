package component

// Renderable carries the flat fill color the shell draws an entity with.
type Renderable struct {
	R, G, B, A uint8
}
