package script

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/pilot/pkg/pilot/stack"
)

// Op is a step operation.
type Op string

const (
	OpPush      Op = "push"
	OpPop       Op = "pop"
	OpPopExpect Op = "pop_expect"
	OpPopAt     Op = "pop_at"
	OpRemove    Op = "remove"
	OpClear     Op = "clear"
)

var ops = []Op{OpPush, OpPop, OpPopExpect, OpPopAt, OpRemove, OpClear}

// Expected error kinds for Step.ExpectError.
const (
	ExpectConstruction = "construction"
	ExpectIllegalState = "illegal_state"
)

// Script is a parsed navigation script.
type Script struct {
	Name     string    `toml:"name"`
	Variants []Variant `toml:"variant"`
	Steps    []Step    `toml:"step"`
}

// Variant declares a frame variant available to the script.
type Variant struct {
	Name      string `toml:"name"`
	Invisible bool   `toml:"invisible"`
	Arg       bool   `toml:"arg"` // constructor takes one string argument
}

// Step is one operation against the stack.
type Step struct {
	Op          Op      `toml:"op"`
	Variant     string  `toml:"variant"`
	Arg         *string `toml:"arg"`
	PopType     string  `toml:"pop_type"`
	Notify      *bool   `toml:"notify"`
	Index       *int    `toml:"index"` // frame position, negative counts from the top
	ExpectError string  `toml:"expect_error"`
}

// ShouldNotify returns the step's notify flag, defaulting to true.
func (s Step) ShouldNotify() bool {
	return s.Notify == nil || *s.Notify
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	var sc Script
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&sc)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks variant declarations and step references.
func (sc *Script) Validate() error {
	declared := make(map[string]bool, len(sc.Variants))
	for i, v := range sc.Variants {
		if v.Name == "" {
			return fmt.Errorf("variant %d: missing name", i)
		}
		if declared[v.Name] {
			return fmt.Errorf("variant %q declared twice", v.Name)
		}
		declared[v.Name] = true
	}

	for i, st := range sc.Steps {
		if !slices.Contains(ops, st.Op) {
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
		switch st.Op {
		case OpPush, OpPopAt:
			if st.Variant == "" {
				return fmt.Errorf("step %d: %s needs a variant", i, st.Op)
			}
		case OpRemove:
			if st.Index == nil {
				return fmt.Errorf("step %d: remove needs an index", i)
			}
		}
		if st.Op == OpPopAt {
			if _, err := parsePopType(st.PopType); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}
		switch st.ExpectError {
		case "", ExpectConstruction, ExpectIllegalState:
		default:
			return fmt.Errorf("step %d: unknown expect_error %q", i, st.ExpectError)
		}
	}
	return nil
}

func parsePopType(raw string) (stack.PopType, error) {
	switch strings.ToLower(raw) {
	case "", "inclusive":
		return stack.Inclusive, nil
	case "exclusive":
		return stack.Exclusive, nil
	default:
		return 0, fmt.Errorf("unknown pop_type %q", raw)
	}
}
