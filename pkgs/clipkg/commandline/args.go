package commandline

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/asyncclient"
	"gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// Request Parameter Arguments
////////////////////////////////////////////////////////////////////////////////

// ParamArgs collects repeated -p key=value flags. Values stay strings except
// for the keys in numericParamKeys, which reach the guards as numbers.
type ParamArgs struct {
	params asyncclient.Params
}

// Set implements flag.Value interface for ParamArgs
func (p *ParamArgs) Set(str string) error {
	key, value, ok := strings.Cut(str, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", str)
	}

	if p.params == nil {
		p.params = asyncclient.Params{}
	}
	p.params[key] = ParseValue(key, value)
	return nil
}

// String implements flag.Value interface for ParamArgs
func (p *ParamArgs) String() string {
	return "key=value"
}

// Params returns nil when no -p flag was given
func (p *ParamArgs) Params() asyncclient.Params {
	return p.params
}

// numericParamKeys are compared as numbers by the dispatch guards
var numericParamKeys = map[string]bool{
	"count":  true,
	"cursor": true,
}

// ParseValue types raw for key. Surrounding quotes force a string.
func ParseValue(key, raw string) any {
	if len(raw) >= 2 {
		if (raw[0] == '"' && raw[len(raw)-1] == '"') || (raw[0] == '\'' && raw[len(raw)-1] == '\'') {
			return raw[1 : len(raw)-1]
		}
	}
	if !numericParamKeys[key] {
		return raw
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	return raw
}

////////////////////////////////////////////////////////////////////////////////
// Parameter Files
////////////////////////////////////////////////////////////////////////////////

// LoadParamsFile reads a YAML (or JSON) mapping of request params
func LoadParamsFile(path string) (asyncclient.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var params map[string]any
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("parse params file %s: %w", path, err)
	}
	if params == nil {
		return asyncclient.Params{}, nil
	}
	return asyncclient.Params(params), nil
}

// LoadParamsBatch reads a YAML (or JSON) sequence of param mappings
func LoadParamsBatch(path string) ([]asyncclient.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var batch []map[string]any
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}

	res := make([]asyncclient.Params, 0, len(batch))
	for _, params := range batch {
		res = append(res, asyncclient.Params(params))
	}
	return res, nil
}

// MergeParams overlays flag params on file params; both may be nil
func MergeParams(base, overlay asyncclient.Params) asyncclient.Params {
	if base == nil && overlay == nil {
		return nil
	}
	res := base.Clone()
	if res == nil {
		res = asyncclient.Params{}
	}
	for k, v := range overlay {
		res[k] = v
	}
	return res
}
