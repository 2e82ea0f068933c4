package pipes

// basePipes is the full 14-shape domain before any boundary
// filtering, in the fixed enumeration order used by the external
// canonical encoding: every 1/2/3-opening combination except the
// closed (0000) and open (1111) vectors, each Up,Right,Down,Left.
var basePipes = [14]Pipe{
	{true, true, true, false},
	{true, true, false, true},
	{true, true, false, false},
	{true, false, true, true},
	{true, false, true, false},
	{true, false, false, true},
	{true, false, false, false},
	{false, true, true, true},
	{false, true, true, false},
	{false, true, false, true},
	{false, true, false, false},
	{false, false, true, true},
	{false, false, true, false},
	{false, false, false, true},
}

// BaseDomain returns a copy of the 14-shape base domain, in
// canonical enumeration order, before any boundary filtering.
func BaseDomain() []Pipe {
	d := make([]Pipe, len(basePipes))
	copy(d, basePipes[:])
	return d
}

// CellDomain builds the domain for the cell at idx on an n x n
// grid: the base domain with any shape excluded that would open
// toward a grid boundary.
func CellDomain(g Grid, idx int) []Pipe {
	var domain []Pipe
	top := g.OnBoundary(idx, Up)
	right := g.OnBoundary(idx, Right)
	bottom := g.OnBoundary(idx, Down)
	left := g.OnBoundary(idx, Left)
	for _, p := range basePipes {
		if top && p.Open(Up) {
			continue
		}
		if right && p.Open(Right) {
			continue
		}
		if bottom && p.Open(Down) {
			continue
		}
		if left && p.Open(Left) {
			continue
		}
		domain = append(domain, p)
	}
	return domain
}
