package sanitize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPolicyName is the configuration file probed when a field names none.
const DefaultPolicyName = "Default"

// LoadPolicy looks up a named policy file inside a configuration directory.
// JSON is the primary format; YAML is accepted as an alternative. When the
// named file does not exist, the Default file is probed instead. A missing
// configuration is never an error: (nil, nil) is returned and callers fall
// back to the built-in default policy.
func LoadPolicy(dir string, name string) (Policy, error) {
	var names []string
	if name != "" {
		names = append(names, name)
	}
	names = append(names, DefaultPolicyName)

	for _, candidate := range names {
		for _, ext := range []string{".json", ".yaml", ".yml"} {
			path := filepath.Join(dir, candidate+ext)
			data, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("unable to read policy file %s: %w", path, err)
			}
			return parsePolicy(path, data)
		}
	}

	return nil, nil
}

func parsePolicy(path string, data []byte) (Policy, error) {
	var policy Policy
	var err error
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &policy)
	} else {
		err = yaml.Unmarshal(data, &policy)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid policy file %s: %w", path, err)
	}
	return policy, nil
}
