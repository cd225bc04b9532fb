package loader

// document is the YAML layout of a diagram file
type document struct {
	Elements      []elementDocument      `yaml:"elements"`
	Relationships []relationshipDocument `yaml:"relationships"`
	Views         []viewDocument         `yaml:"views"`
}

type elementDocument struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Type           string `yaml:"type"`
	Specialization string `yaml:"specialization"`
}

type relationshipDocument struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Type           string `yaml:"type"`
	Specialization string `yaml:"specialization"`
	Source         string `yaml:"source"`
	Target         string `yaml:"target"`
}

type viewDocument struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name"`
	Properties    map[string]string `yaml:"properties"`
	Nodes         []nodeDocument    `yaml:"nodes"`
	Relationships []string          `yaml:"relationships"`
}

// nodeDocument sets exactly one of Group, Element, Reference or Note
type nodeDocument struct {
	Group      string            `yaml:"group"`
	Element    string            `yaml:"element"`
	Reference  string            `yaml:"reference"`
	Note       string            `yaml:"note"`
	Properties map[string]string `yaml:"properties"`
	Children   []nodeDocument    `yaml:"children"`
}
