package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"collection-adapter/core/utils"
	"collection-adapter/feature/session/models"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is returned for scenario files that cannot be run.
var ErrInvalidScenario = errors.New("invalid scenario")

// Action names a scenario step.
type Action string

const (
	ActionSet       Action = "set"
	ActionAttach    Action = "attach"
	ActionDetach    Action = "detach"
	ActionRefresh   Action = "refresh"
	ActionCapacity  Action = "capacity"
	ActionClearPool Action = "clear_pool"
)

// Scenario is a scripted sequence of collection changes.
type Scenario struct {
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	StashSize   *int        `yaml:"stash_size,omitempty" json:"stash_size,omitempty"`
	StartOffset *int        `yaml:"start_offset,omitempty" json:"start_offset,omitempty"`
	EndOffset   *int        `yaml:"end_offset,omitempty" json:"end_offset,omitempty"`
	Capacities  map[int]int `yaml:"capacities,omitempty" json:"capacities,omitempty"`
	Steps       []Step      `yaml:"steps" json:"steps"`
}

// Step is one action. Items is used by set, Type and Max by capacity.
type Step struct {
	Action Action        `json:"action"`
	Items  []models.Item `json:"items,omitempty"`
	Type   int           `json:"type,omitempty"`
	Max    int           `json:"max,omitempty"`
}

// String describes the step on one line.
func (s Step) String() string {
	switch s.Action {
	case ActionSet:
		texts := make([]string, len(s.Items))
		for i, it := range s.Items {
			if it.Type != 0 {
				texts[i] = fmt.Sprintf("%d:%s", it.Type, it.Text)
			} else {
				texts[i] = it.Text
			}
		}
		return fmt.Sprintf("set [%s]", strings.Join(texts, " "))
	case ActionCapacity:
		return fmt.Sprintf("capacity type=%d max=%d", s.Type, s.Max)
	default:
		return string(s.Action)
	}
}

// UnmarshalYAML accepts a bare action name ("attach") or a single-key mapping
// ("set: [...]", "capacity: {type: 1, max: 2}").
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		a := Action(node.Value)
		switch a {
		case ActionSet, ActionAttach, ActionDetach, ActionRefresh, ActionClearPool:
			s.Action = a
			return nil
		}
		return fmt.Errorf("line %d: unknown step %q", node.Line, node.Value)

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: a step must have exactly one action", node.Line)
		}
		key, value := node.Content[0], node.Content[1]
		s.Action = Action(key.Value)
		switch s.Action {
		case ActionSet:
			var items []itemValue
			if err := value.Decode(&items); err != nil {
				return err
			}
			s.Items = make([]models.Item, len(items))
			for i, it := range items {
				s.Items[i] = models.Item(it)
			}
			return nil
		case ActionCapacity:
			var raw struct {
				Type any `yaml:"type"`
				Max  any `yaml:"max"`
			}
			if err := value.Decode(&raw); err != nil {
				return err
			}
			typ, err := utils.ToInt(raw.Type)
			if err != nil {
				return fmt.Errorf("line %d: capacity type: %w", value.Line, err)
			}
			max, err := utils.ToInt(raw.Max)
			if err != nil {
				return fmt.Errorf("line %d: capacity max: %w", value.Line, err)
			}
			s.Type, s.Max = typ, max
			return nil
		case ActionAttach, ActionDetach, ActionRefresh, ActionClearPool:
			return nil
		}
		return fmt.Errorf("line %d: unknown step %q", key.Line, key.Value)
	}
	return fmt.Errorf("line %d: a step must be a name or a mapping", node.Line)
}

// itemValue decodes an item from "text", "2:text" or {type: 2, text: text}.
type itemValue models.Item

func (v *itemValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		typ, text, ok := utils.SplitTyped(node.Value)
		if ok {
			v.Type, v.Text = typ, text
		} else {
			v.Text = node.Value
		}
		return nil
	case yaml.MappingNode:
		var raw struct {
			Type any    `yaml:"type"`
			Text string `yaml:"text"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		if raw.Type != nil {
			typ, err := utils.ToInt(raw.Type)
			if err != nil {
				return fmt.Errorf("line %d: item type: %w", node.Line, err)
			}
			v.Type = typ
		}
		v.Text = raw.Text
		return nil
	}
	return fmt.Errorf("line %d: an item must be a string or a mapping", node.Line)
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario can be run.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: %s has no steps", ErrInvalidScenario, sc.Name)
	}
	for name, v := range map[string]*int{"stash_size": sc.StashSize, "start_offset": sc.StartOffset, "end_offset": sc.EndOffset} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidScenario, name)
		}
	}
	for i, st := range sc.Steps {
		if st.Action == ActionCapacity && st.Max < 0 {
			return fmt.Errorf("%w: step %d: max must not be negative", ErrInvalidScenario, i+1)
		}
	}
	return nil
}
