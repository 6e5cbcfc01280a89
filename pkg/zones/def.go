package zones

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/steeb/pkg/errors"
)

// Def describes one copper zone and the drawing paths that outline it.
type Def struct {
	Layer       string
	Net         int
	NetName     string
	Priority    int
	HasPriority bool
	Names       []string
}

type defsFile struct {
	Zones []defEntry `toml:"zone"`
}

type defEntry struct {
	Layer    string   `toml:"layer"`
	Net      int      `toml:"net"`
	NetName  string   `toml:"net_name"`
	Priority *int     `toml:"priority"`
	Names    []string `toml:"names"`
}

// ParseDefs decodes zone definitions from TOML:
//
//	[[zone]]
//	layer = "B.Cu"
//	net = 39
//	net_name = "+5V"
//	priority = 2
//	names = ["b5v-out", "b5v-in"]
func ParseDefs(data []byte) ([]Def, error) {
	var f defsFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode zone definitions")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown zone definition keys: %s", strings.Join(keys, ", "))
	}

	defs := make([]Def, len(f.Zones))
	for i, z := range f.Zones {
		if z.Layer == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "zone %d: layer is required", i)
		}
		if len(z.Names) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "zone %d: at least one path name is required", i)
		}
		d := Def{
			Layer:   z.Layer,
			Net:     z.Net,
			NetName: z.NetName,
			Names:   z.Names,
		}
		if z.Priority != nil {
			d.Priority, d.HasPriority = *z.Priority, true
		}
		defs[i] = d
	}
	return defs, nil
}

// LoadDefs reads zone definitions from a TOML file.
func LoadDefs(path string) ([]Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeReadFailed, err, "read zone definitions %s", path)
	}
	return ParseDefs(data)
}

// Names returns every path name referenced by defs, in order, without
// duplicates.
func Names(defs []Def) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range defs {
		for _, n := range d.Names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
