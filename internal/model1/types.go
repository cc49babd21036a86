package model1

const NAValue = "n/a"

// DecoratorFunc decorates a cell value for display.
type DecoratorFunc func(string) string

// Renderer converts backend objects into display rows.
type Renderer interface {
	// Header returns the table header for the given region.
	Header(region string) Header

	// Render fills a row from a backend object.
	Render(o any, region string, row *Row) error
}
