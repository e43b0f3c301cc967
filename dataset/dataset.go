package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routenet/analysis"
	"github.com/katalvlaran/routenet/core"
)

var (
	// ErrUnknownDataset indicates a catalog name that does not exist.
	ErrUnknownDataset = errors.New("dataset: unknown dataset")

	// ErrInvalidDataset indicates malformed YAML or a network without vertices.
	ErrInvalidDataset = errors.New("dataset: invalid dataset")
)

//go:embed catalog.yaml
var catalogYAML []byte

// Route is one weighted route of a Network.
type Route struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Network is a named route network as stored in YAML.
type Network struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Directed    bool     `yaml:"directed"`
	Vertices    []string `yaml:"vertices"`
	Routes      []Route  `yaml:"routes,omitempty"`
}

// Spec converts the network into the analysis input.
func (n Network) Spec() analysis.GraphSpec {
	edges := make([]core.EdgeSpec, len(n.Routes))
	for i, r := range n.Routes {
		edges[i] = core.EdgeSpec{From: r.From, To: r.To, Weight: r.Weight}
	}
	labels := make([]string, len(n.Vertices))
	copy(labels, n.Vertices)

	return analysis.GraphSpec{Labels: labels, Directed: n.Directed, Edges: edges}
}

func (n Network) clone() Network {
	out := n
	out.Vertices = append([]string(nil), n.Vertices...)
	out.Routes = append([]Route(nil), n.Routes...)

	return out
}

func (n Network) validate() error {
	if len(n.Vertices) == 0 {
		return fmt.Errorf("dataset: network %q has no vertices: %w", n.Name, ErrInvalidDataset)
	}

	return nil
}

// Parse decodes one network from YAML.
func Parse(data []byte) (Network, error) {
	var n Network
	if err := decodeStrict(data, &n); err != nil {
		return Network{}, err
	}
	if err := n.validate(); err != nil {
		return Network{}, err
	}

	return n, nil
}

// LoadFile reads and parses one network from path. A missing name defaults
// to the path.
func LoadFile(path string) (Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Network{}, fmt.Errorf("dataset: %w", err)
	}
	n, err := Parse(data)
	if err != nil {
		return Network{}, fmt.Errorf("%s: %w", path, err)
	}
	if n.Name == "" {
		n.Name = path
	}

	return n, nil
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("dataset: decode: %w: %w", ErrInvalidDataset, err)
	}

	return nil
}

type catalogFile struct {
	Networks []Network `yaml:"networks"`
}

// catalog is parsed once; callers only ever receive copies.
var catalog = sync.OnceValues(func() (map[string]Network, error) {
	var f catalogFile
	if err := decodeStrict(catalogYAML, &f); err != nil {
		return nil, err
	}
	out := make(map[string]Network, len(f.Networks))
	for _, n := range f.Networks {
		if err := n.validate(); err != nil {
			return nil, err
		}
		if _, dup := out[n.Name]; dup {
			return nil, fmt.Errorf("dataset: duplicate catalog entry %q: %w", n.Name, ErrInvalidDataset)
		}
		out[n.Name] = n
	}

	return out, nil
})

// Names returns the catalog names in sorted order.
func Names() []string {
	c, err := catalog()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Lookup returns a copy of the catalog network called name.
func Lookup(name string) (Network, error) {
	c, err := catalog()
	if err != nil {
		return Network{}, err
	}
	n, ok := c[name]
	if !ok {
		return Network{}, fmt.Errorf("dataset: %q: %w", name, ErrUnknownDataset)
	}

	return n.clone(), nil
}

// All returns copies of every catalog network, sorted by name.
func All() ([]Network, error) {
	c, err := catalog()
	if err != nil {
		return nil, err
	}
	out := make([]Network, 0, len(c))
	for _, name := range Names() {
		out = append(out, c[name].clone())
	}

	return out, nil
}
