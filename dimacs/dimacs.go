package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/floodflow/core"
	"github.com/katalvlaran/floodflow/flow"
)

var (
	// ErrSyntax indicates a malformed line.
	ErrSyntax = errors.New("dimacs: syntax error")

	// ErrNoProblem indicates a missing or repeated problem line.
	ErrNoProblem = errors.New("dimacs: missing or duplicate problem line")

	// ErrNodeRange indicates a node ID outside [1, NODES].
	ErrNodeRange = errors.New("dimacs: node id out of range")

	// ErrLowerBound indicates an arc with a non-zero lower bound, which core.Graph cannot express.
	ErrLowerBound = errors.New("dimacs: non-zero lower bound")
)

// Write encodes g and demands as a DIMACS min-cost flow problem. Each
// comment is written on its own "c" line before the problem line.
func Write(w io.Writer, g *core.Graph, demands flow.Demands, comments ...string) error {
	if g == nil {
		return flow.ErrNilGraph
	}
	bw := bufio.NewWriter(w)

	vertices := g.Vertices()
	ids := make(map[string]int, len(vertices))
	for i, v := range vertices {
		ids[v] = i + 1
	}
	edges := g.Edges()

	for _, c := range comments {
		for _, line := range strings.Split(c, "\n") {
			fmt.Fprintf(bw, "c %s\n", line)
		}
	}
	fmt.Fprintf(bw, "p min %d %d\n", len(vertices), len(edges))
	for _, v := range vertices {
		fmt.Fprintf(bw, "c node %d %s\n", ids[v], v)
	}
	for _, v := range vertices {
		if d := demands[v]; d != 0 {
			fmt.Fprintf(bw, "n %d %d\n", ids[v], -d)
		}
	}
	for _, e := range edges {
		fmt.Fprintf(bw, "a %d %d 0 %d %d\n", ids[e.From], ids[e.To], e.Capacity, e.Cost)
	}

	return errors.Wrap(bw.Flush(), "dimacs: write")
}

// Read decodes a DIMACS min-cost flow problem. Vertices are named by their
// "c node" comment when present, else by their decimal ID.
func Read(r io.Reader) (*core.Graph, flow.Demands, error) {
	type arc struct {
		from, to       int
		capacity, cost int64
	}
	var (
		nodes   = -1
		names   = map[int]string{}
		supply  = map[int]int64{}
		arcs    []arc
		lineNum int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNum++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		bad := func() error {
			return fmt.Errorf("%w: line %d: %q", ErrSyntax, lineNum, sc.Text())
		}

		switch fields[0] {
		case "c":
			if len(fields) == 4 && fields[1] == "node" {
				id, err := strconv.Atoi(fields[2])
				if err != nil {
					return nil, nil, bad()
				}
				names[id] = fields[3]
			}
		case "p":
			if nodes >= 0 {
				return nil, nil, fmt.Errorf("%w: line %d", ErrNoProblem, lineNum)
			}
			if len(fields) != 4 || fields[1] != "min" {
				return nil, nil, bad()
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, nil, bad()
			}
			nodes = n
		case "n":
			nums, err := ints(fields[1:], 2)
			if err != nil {
				return nil, nil, bad()
			}
			supply[int(nums[0])] += nums[1]
		case "a":
			nums, err := ints(fields[1:], 5)
			if err != nil {
				return nil, nil, bad()
			}
			if nums[2] != 0 {
				return nil, nil, fmt.Errorf("%w: line %d", ErrLowerBound, lineNum)
			}
			arcs = append(arcs, arc{from: int(nums[0]), to: int(nums[1]), capacity: nums[3], cost: nums[4]})
		default:
			return nil, nil, bad()
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "dimacs: read")
	}
	if nodes < 0 {
		return nil, nil, ErrNoProblem
	}

	name := func(id int) (string, error) {
		if id < 1 || id > nodes {
			return "", fmt.Errorf("%w: %d not in [1,%d]", ErrNodeRange, id, nodes)
		}
		if n, ok := names[id]; ok {
			return n, nil
		}
		return strconv.Itoa(id), nil
	}

	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for id := 1; id <= nodes; id++ {
		n, _ := name(id)
		if err := g.AddVertex(n); err != nil {
			return nil, nil, err
		}
	}
	demands := flow.Demands{}
	for id, s := range supply {
		n, err := name(id)
		if err != nil {
			return nil, nil, err
		}
		if s != 0 {
			demands[n] = -s
		}
	}
	for _, a := range arcs {
		from, err := name(a.from)
		if err != nil {
			return nil, nil, err
		}
		to, err := name(a.to)
		if err != nil {
			return nil, nil, err
		}
		if _, err = g.AddEdge(from, to, a.cost, a.capacity); err != nil {
			return nil, nil, err
		}
	}

	return g, demands, nil
}

func ints(fields []string, n int) ([]int64, error) {
	if len(fields) != n {
		return nil, ErrSyntax
	}
	out := make([]int64, n)
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
