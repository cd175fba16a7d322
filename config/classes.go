package config

import (
	"errors"
	"fmt"
	"os"

	"battle/game"

	"gopkg.in/yaml.v3"
)

var ErrUnknownClass = errors.New("unknown class")

type skillSpec struct {
	Name    string   `yaml:"name"`
	Cost    int      `yaml:"cost"`
	Damage  int      `yaml:"damage"`
	Enqueue []string `yaml:"enqueue"`
}

type classSpec struct {
	Name    string    `yaml:"name"`
	HP      int       `yaml:"hp"`
	SP      int       `yaml:"sp"`
	Defense int       `yaml:"defense"`
	Attack  skillSpec `yaml:"attack"`
	Special skillSpec `yaml:"special"`
	Tree    string    `yaml:"tree"` // "" or "default"
}

type classFile struct {
	Classes []classSpec `yaml:"classes"`
}

// Classes is an effect table keyed by class name. Classes are shared by every
// character built from them and must not be modified.
type Classes map[string]*game.Class

func StandardClasses() Classes {
	return Classes(game.StandardClasses())
}

// LoadClasses reads an effect table from a YAML file. An empty path returns
// the standard table.
func LoadClasses(path string) (Classes, error) {
	if path == "" {
		return StandardClasses(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class table: %w", err)
	}
	classes, err := ParseClasses(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return classes, nil
}

func ParseClasses(data []byte) (Classes, error) {
	var file classFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse class table: %w", err)
	}
	if len(file.Classes) == 0 {
		return nil, errors.New("class table is empty")
	}

	classes := make(Classes, len(file.Classes))
	for _, spec := range file.Classes {
		if _, ok := classes[spec.Name]; ok {
			return nil, fmt.Errorf("class %q defined twice", spec.Name)
		}
		class, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", spec.Name, err)
		}
		classes[spec.Name] = class
	}
	return classes, nil
}

func (c Classes) Lookup(name string) (*game.Class, error) {
	class, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	return class, nil
}

func (s classSpec) build() (*game.Class, error) {
	switch {
	case s.Name == "":
		return nil, errors.New("missing name")
	case s.HP <= 0 || s.SP < 0 || s.Defense < 0:
		return nil, fmt.Errorf("invalid stats hp=%d sp=%d defense=%d", s.HP, s.SP, s.Defense)
	}

	class := &game.Class{
		Name:    s.Name,
		HP:      s.HP,
		SP:      s.SP,
		Defense: s.Defense,
	}
	var err error
	if class.Attack, err = s.Attack.build(false); err != nil {
		return nil, fmt.Errorf("attack: %w", err)
	}

	switch s.Tree {
	case "":
		class.Special, err = s.Special.build(false)
	case "default":
		class.Special, err = s.Special.build(true)
		class.Tree = game.DefaultSkillTree(game.NewStandardRogue(), game.NewStandardMage())
	default:
		return nil, fmt.Errorf("unknown skill tree %q", s.Tree)
	}
	if err != nil {
		return nil, fmt.Errorf("special: %w", err)
	}
	return class, nil
}

// build checks a skill. Every skill costs SP so that battles end. A skill
// resolved through a tree only needs its cost.
func (s skillSpec) build(costOnly bool) (game.Skill, error) {
	if s.Cost <= 0 {
		return game.Skill{}, fmt.Errorf("cost must be positive, got %d", s.Cost)
	}
	skill := game.Skill{Name: s.Name, Cost: s.Cost}
	if costOnly {
		return skill, nil
	}
	if s.Damage < 0 {
		return game.Skill{}, fmt.Errorf("damage must not be negative, got %d", s.Damage)
	}
	skill.Damage = s.Damage
	for _, name := range s.Enqueue {
		target, err := game.ParseTarget(name)
		if err != nil {
			return game.Skill{}, err
		}
		skill.Enqueue = append(skill.Enqueue, target)
	}
	return skill, nil
}
