package bc

// DefaultMaxDepth is the nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 256

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type depthopt int

// parsectx holds general data for parsing.
type parsectx struct {
	// depth is the current nesting depth of parseterm.
	depth int
	// maxdepth is the greatest depth parseterm may reach.
	maxdepth int
}

// MaxDepth limits how deeply expressions may nest, counting brackets, unary
// operators, and right operands. A statement that nests deeper fails to parse
// with a DepthError. Values below 1 select DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	if p.maxdepth < 1 {
		p.maxdepth = DefaultMaxDepth
	}
	return p
}
