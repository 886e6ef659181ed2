package handlers

// HandlerBundle groups the handler sets the router wires up.
type HandlerBundle struct {
	Chat      *ChatHandler
	Catalog   *CatalogHandler
	Dashboard *DashboardHandler
}
